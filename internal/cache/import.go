package cache

import (
	"github.com/rs/zerolog"

	"github.com/vaultsandbox/ecc-go/internal/crypto"
	"github.com/vaultsandbox/ecc-go/internal/curve"
)

// NewDecapCache creates the tag cache owned by one decryption key. Keys are
// lowercase tag hex, values the symmetric keys recovered from those tags.
func NewDecapCache(size int) *Store[[]byte] {
	return New[[]byte](size)
}

// ImportCache holds parsed keys by encoded string, one store per role. An
// encoded string imported for one role is never returned for another.
type ImportCache struct {
	reg  *curve.Registry
	size int
	log  *zerolog.Logger

	Encryption *Store[*crypto.EncryptionKey]
	Decryption *Store[*crypto.DecryptionKey]
	Signing    *Store[curve.SigningKey]
	Verifying  *Store[curve.VerifyingKey]
}

// ImportStats is a snapshot of the counters of every role store.
type ImportStats struct {
	Encryption Stats `json:"enc"`
	Decryption Stats `json:"dec"`
	Signing    Stats `json:"sig"`
	Verifying  Stats `json:"ver"`
}

// NewImportCache creates an import cache resolving curves through reg.
// size bounds every role store and every decryption key's tag cache. A nil
// log disables logging.
func NewImportCache(reg *curve.Registry, size int, log *zerolog.Logger) *ImportCache {
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	return &ImportCache{
		reg:        reg,
		size:       size,
		log:        log,
		Encryption: New[*crypto.EncryptionKey](size),
		Decryption: New[*crypto.DecryptionKey](size),
		Signing:    New[curve.SigningKey](size),
		Verifying:  New[curve.VerifyingKey](size),
	}
}

// EncryptionKey returns the imported public key for encoded, together with
// its memoized encapsulation.
func (c *ImportCache) EncryptionKey(encoded string) (*crypto.EncryptionKey, error) {
	return c.Encryption.GetOrLoad(encoded, func() (*crypto.EncryptionKey, error) {
		pub, err := crypto.ImportKEMPublicKey(c.reg, encoded)
		if err != nil {
			return nil, err
		}
		c.imported(crypto.RoleEncryption, pub)
		return crypto.NewEncryptionKey(pub), nil
	})
}

// DecryptionKey returns the imported secret key for encoded, together with
// its tag cache.
func (c *ImportCache) DecryptionKey(encoded string) (*crypto.DecryptionKey, error) {
	return c.Decryption.GetOrLoad(encoded, func() (*crypto.DecryptionKey, error) {
		sec, err := crypto.ImportKEMSecretKey(c.reg, encoded)
		if err != nil {
			return nil, err
		}
		c.imported(crypto.RoleDecryption, sec)
		return crypto.NewDecryptionKey(sec, NewDecapCache(c.size)), nil
	})
}

// SigningKey returns the imported signing key for encoded.
func (c *ImportCache) SigningKey(encoded string) (curve.SigningKey, error) {
	return c.Signing.GetOrLoad(encoded, func() (curve.SigningKey, error) {
		key, err := crypto.ImportSigningKey(c.reg, encoded)
		if err != nil {
			return nil, err
		}
		c.imported(crypto.RoleSigning, key)
		return key, nil
	})
}

// VerifyingKey returns the imported verifying key for encoded.
func (c *ImportCache) VerifyingKey(encoded string) (curve.VerifyingKey, error) {
	return c.Verifying.GetOrLoad(encoded, func() (curve.VerifyingKey, error) {
		key, err := crypto.ImportVerifyingKey(c.reg, encoded)
		if err != nil {
			return nil, err
		}
		c.imported(crypto.RoleVerifying, key)
		return key, nil
	})
}

func (c *ImportCache) imported(role crypto.Role, key curve.Key) {
	c.log.Debug().
		Str("role", role.String()).
		Str("curve", key.Curve().ID()).
		Msg("key imported")
}

// Purge empties every role store. Dropping a decryption key drops its tag
// cache with it.
func (c *ImportCache) Purge() {
	c.Encryption.Purge()
	c.Decryption.Purge()
	c.Signing.Purge()
	c.Verifying.Purge()
}

// Stats returns the counters of every role store.
func (c *ImportCache) Stats() ImportStats {
	return ImportStats{
		Encryption: c.Encryption.Stats(),
		Decryption: c.Decryption.Stats(),
		Signing:    c.Signing.Stats(),
		Verifying:  c.Verifying.Stats(),
	}
}
