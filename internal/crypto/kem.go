package crypto

import (
	"fmt"
	"strings"
	"sync"

	"github.com/vaultsandbox/ecc-go/internal/curve"
)

// GenerateKEM creates a key encapsulation pair on c.
func GenerateKEM(c curve.Curve) (curve.KEMSecretKey, error) {
	return c.GenerateKEM(random())
}

// GenerateSigning creates a signature pair on c.
func GenerateSigning(c curve.Curve) (curve.SigningKey, error) {
	return c.GenerateSigning(random())
}

// KEMContext is the result of one encapsulation: a symmetric key and the
// tag from which the secret key holder recovers it.
type KEMContext struct {
	// Key is the derived symmetric key.
	Key []byte
	// Tag is the raw encapsulation tag.
	Tag []byte
	// TagHex is Tag as lowercase hex, the form embedded in envelopes.
	TagHex string
}

// Encapsulate derives a fresh symmetric key for pub.
func Encapsulate(pub curve.KEMPublicKey) (*KEMContext, error) {
	shared, tag, err := pub.Encapsulate(random())
	if err != nil {
		return nil, fmt.Errorf("encapsulate: %w", err)
	}

	key, err := deriveSymmetricKey(shared, tag, pub.Curve().ID())
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	return &KEMContext{Key: key, Tag: tag, TagHex: ToHex(tag)}, nil
}

// Decapsulate recovers the symmetric key bound to tag.
func Decapsulate(sec curve.KEMSecretKey, tag []byte) ([]byte, error) {
	shared, err := sec.Decapsulate(tag)
	if err != nil {
		return nil, fmt.Errorf("decapsulate: %w", err)
	}

	key, err := deriveSymmetricKey(shared, tag, sec.Curve().ID())
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	return key, nil
}

// EncryptionKey is an imported public key together with its memoized
// encapsulation.
type EncryptionKey struct {
	Public curve.KEMPublicKey

	mu  sync.Mutex
	kem *KEMContext
}

// NewEncryptionKey wraps pub.
func NewEncryptionKey(pub curve.KEMPublicKey) *EncryptionKey {
	return &EncryptionKey{Public: pub}
}

// Context returns the encapsulation to seal with. With reuse set the first
// successful encapsulation is kept and returned on every later call; fresh
// reports whether this call created it. Without reuse every call
// encapsulates anew and nothing is stored.
func (k *EncryptionKey) Context(reuse bool) (kem *KEMContext, fresh bool, err error) {
	if !reuse {
		kem, err = Encapsulate(k.Public)
		return kem, err == nil, err
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if k.kem != nil {
		return k.kem, false, nil
	}
	kem, err = Encapsulate(k.Public)
	if err != nil {
		return nil, false, err
	}
	k.kem = kem
	return kem, true, nil
}

// TagCache memoizes symmetric keys by lowercase tag hex.
type TagCache interface {
	GetOrLoad(tag string, load func() ([]byte, error)) ([]byte, error)
}

// DecryptionKey is an imported secret key together with the symmetric keys
// already recovered from it.
type DecryptionKey struct {
	Secret curve.KEMSecretKey

	tags TagCache
}

// NewDecryptionKey wraps sec. A nil tags cache decapsulates on every call.
func NewDecryptionKey(sec curve.KEMSecretKey, tags TagCache) *DecryptionKey {
	return &DecryptionKey{Secret: sec, tags: tags}
}

// SymmetricKey returns the key bound to the hex tag, decapsulating only if
// the tag has not been seen before.
func (k *DecryptionKey) SymmetricKey(tagHex string) ([]byte, error) {
	tagHex = strings.ToLower(tagHex)

	load := func() ([]byte, error) {
		tag, err := FromHex(tagHex)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTag, errInvalidHex)
		}
		return Decapsulate(k.Secret, tag)
	}

	if k.tags == nil {
		return load()
	}
	return k.tags.GetOrLoad(tagHex, load)
}
