package ecc

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vaultsandbox/ecc-go/internal/cache"
	"github.com/vaultsandbox/ecc-go/internal/crypto"
	"github.com/vaultsandbox/ecc-go/internal/curve"
)

// Registry resolves the curve id prefix of key strings.
type Registry = curve.Registry

// CacheStats is a snapshot of one key cache's counters.
type CacheStats = cache.Stats

// Stats holds the counters of the encryption, decryption, signing and
// verifying key caches.
type Stats = cache.ImportStats

// NewRegistry returns a registry holding only the named built-in curves.
func NewRegistry(ids ...string) (*Registry, error) {
	curves := make([]curve.Curve, 0, len(ids))
	for _, id := range ids {
		c, err := curve.Default().Lookup(id)
		if err != nil {
			return nil, err
		}
		curves = append(curves, c)
	}
	return curve.NewRegistry(curves...)
}

// Curves lists the ids of the built-in curves.
func Curves() []string {
	return curve.Default().IDs()
}

// Ciphers lists the names accepted by WithCipher.
func Ciphers() []string {
	return crypto.AEADNames()
}

// Hashes lists the names accepted by WithHash.
func Hashes() []string {
	return crypto.HashNames()
}

// Toolkit generates key pairs and encrypts, decrypts, signs and verifies
// with encoded key strings. Every key string is parsed once per role and
// kept in the toolkit's caches.
//
// A Toolkit is safe for concurrent use.
type Toolkit struct {
	registry     *curve.Registry
	defaultCurve string
	cipher       *crypto.HybridCipher
	hash         crypto.Hash
	keys         *cache.ImportCache
	logger       *zerolog.Logger
}

// New creates a toolkit.
func New(opts ...Option) (*Toolkit, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.registry == nil {
		return nil, fmt.Errorf("%w: nil registry", ErrUnknownCurve)
	}
	if _, err := cfg.registry.Lookup(cfg.defaultCurve); err != nil {
		return nil, fmt.Errorf("default curve: %w", err)
	}

	suite, err := crypto.LookupAEAD(cfg.cipher)
	if err != nil {
		return nil, err
	}

	hash, err := crypto.LookupHash(cfg.hash)
	if err != nil {
		return nil, err
	}

	logger := cfg.logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &Toolkit{
		registry:     cfg.registry,
		defaultCurve: cfg.defaultCurve,
		cipher:       crypto.NewHybridCipher(suite, cfg.reuseKEM),
		hash:         hash,
		keys:         cache.NewImportCache(cfg.registry, cfg.cacheSize, logger),
		logger:       logger,
	}, nil
}

// Generate creates a key pair of the given kind on curveID, or on the
// default curve when curveID is empty.
func (t *Toolkit) Generate(kind Kind, curveID string) (*KeyPair, error) {
	if curveID == "" {
		curveID = t.defaultCurve
	}

	c, err := t.registry.Lookup(curveID)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	switch kind {
	case EncDec:
		sec, err := crypto.GenerateKEM(c)
		if err != nil {
			return nil, fmt.Errorf("generate: %w", err)
		}
		return &KeyPair{
			Kind:   kind,
			Curve:  c.ID(),
			Public: crypto.EncodeKey(sec.Public()),
			Secret: crypto.EncodeKey(sec),
		}, nil
	case SigVer:
		sec, err := crypto.GenerateSigning(c)
		if err != nil {
			return nil, fmt.Errorf("generate: %w", err)
		}
		return &KeyPair{
			Kind:   kind,
			Curve:  c.ID(),
			Public: crypto.EncodeKey(sec.Public()),
			Secret: crypto.EncodeKey(sec),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}

// Encrypt seals plaintext to the encryption key encKey and returns the
// envelope as JSON.
func (t *Toolkit) Encrypt(encKey string, plaintext []byte) (string, error) {
	key, err := t.keys.EncryptionKey(encKey)
	if err != nil {
		return "", wrapError(err)
	}

	env, err := t.cipher.Seal(key, plaintext)
	if err != nil {
		return "", fmt.Errorf("encrypt: %w", err)
	}
	return env.String(), nil
}

// Decrypt opens an envelope produced by Encrypt with the decryption key
// decKey. All failures match ErrDecryptionFailed and are *DecryptionError
// values; tampering or a wrong key also matches ErrAuthenticationFailed.
func (t *Toolkit) Decrypt(decKey, envelope string) ([]byte, error) {
	env, err := crypto.ParseEnvelope(envelope)
	if err != nil {
		return nil, t.decryptFailed(err)
	}

	key, err := t.keys.DecryptionKey(decKey)
	if err != nil {
		return nil, t.decryptFailed(err)
	}

	plaintext, err := t.cipher.Open(key, env)
	if err != nil {
		return nil, t.decryptFailed(err)
	}
	return plaintext, nil
}

func (t *Toolkit) decryptFailed(err error) error {
	decErr := decryptionError(err)
	t.logger.Debug().Str("stage", decErr.Stage).Msg("decryption failed")
	return decErr
}

// Sign signs msg with the signing key sigKey and returns the signature as
// hex. The configured digest of msg is signed unless WithoutHash is given.
func (t *Toolkit) Sign(sigKey string, msg []byte, opts ...SignOption) (string, error) {
	key, err := t.keys.SigningKey(sigKey)
	if err != nil {
		return "", wrapError(err)
	}

	sig, err := crypto.Sign(key, msg, t.digest(opts))
	if err != nil {
		return "", err
	}
	return crypto.ToHex(sig), nil
}

// Verify reports whether signature is a valid hex signature of msg under
// the verifying key verKey. It never fails: a malformed key or signature
// reports false.
func (t *Toolkit) Verify(verKey, signature string, msg []byte, opts ...SignOption) bool {
	key, err := t.keys.VerifyingKey(verKey)
	if err != nil {
		t.logger.Debug().Str("reason", "malformed key").Msg("verification failed")
		return false
	}

	sig, err := crypto.FromHex(signature)
	if err != nil {
		t.logger.Debug().Str("reason", "signature is not hex").Msg("verification failed")
		return false
	}

	if !crypto.Verify(key, sig, msg, t.digest(opts)) {
		t.logger.Debug().
			Str("reason", "signature mismatch").
			Str("curve", key.Curve().ID()).
			Msg("verification failed")
		return false
	}
	return true
}

func (t *Toolkit) digest(opts []SignOption) crypto.Hash {
	cfg := &signConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.noHash {
		return nil
	}
	return t.hash
}

// Purge drops every cached key, encapsulation and recovered symmetric key.
func (t *Toolkit) Purge() {
	t.keys.Purge()
}

// Stats returns the counters of the key caches.
func (t *Toolkit) Stats() Stats {
	return t.keys.Stats()
}

// DefaultCurve returns the curve id Generate uses when given none.
func (t *Toolkit) DefaultCurve() string {
	return t.defaultCurve
}

// Cipher returns the name of the AEAD Encrypt seals with.
func (t *Toolkit) Cipher() string {
	return t.cipher.Suite().Name()
}

// Hash returns the name of the digest signed by default.
func (t *Toolkit) Hash() string {
	return t.hash.Name()
}

// Curves lists the ids of the toolkit's registry.
func (t *Toolkit) Curves() []string {
	return t.registry.IDs()
}
