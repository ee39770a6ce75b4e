package ecc

import (
	"github.com/rs/zerolog"

	"github.com/vaultsandbox/ecc-go/internal/crypto"
	"github.com/vaultsandbox/ecc-go/internal/curve"
)

const (
	// DefaultCurve is the curve used when Generate is given no curve id.
	DefaultCurve = curve.DefaultID
	// DefaultCipher is the AEAD used to seal envelopes.
	DefaultCipher = crypto.AES256GCM
	// DefaultHash is the digest signed when hashing is not disabled.
	DefaultHash = crypto.SHA256
)

// Cipher names accepted by WithCipher.
const (
	CipherAES256GCM         = crypto.AES256GCM
	CipherXChaCha20Poly1305 = crypto.XChaCha20Poly1305
)

// Hash names accepted by WithHash.
const (
	HashSHA256     = crypto.SHA256
	HashSHA384     = crypto.SHA384
	HashSHA512     = crypto.SHA512
	HashSHA3_256   = crypto.SHA3_256
	HashBLAKE2b256 = crypto.BLAKE2b256
)

// toolkitConfig holds configuration for the toolkit.
type toolkitConfig struct {
	registry     *curve.Registry
	defaultCurve string
	cipher       string
	hash         string
	cacheSize    int
	reuseKEM     bool
	logger       *zerolog.Logger
}

// signConfig holds per-call configuration for Sign and Verify.
type signConfig struct {
	noHash bool
}

// Option configures the toolkit.
type Option func(*toolkitConfig)

// SignOption configures a single Sign or Verify call.
type SignOption func(*signConfig)

func defaultConfig() *toolkitConfig {
	return &toolkitConfig{
		registry:     curve.Default(),
		defaultCurve: DefaultCurve,
		cipher:       DefaultCipher,
		hash:         DefaultHash,
		reuseKEM:     true,
	}
}

// WithRegistry sets the curves key strings are resolved against.
// Default: the built-in curves (255, 256, 384, 448, 521, sk1)
func WithRegistry(reg *curve.Registry) Option {
	return func(c *toolkitConfig) {
		c.registry = reg
	}
}

// WithDefaultCurve sets the curve Generate uses when given no curve id.
// Default: "256"
func WithDefaultCurve(id string) Option {
	return func(c *toolkitConfig) {
		c.defaultCurve = id
	}
}

// WithCipher sets the AEAD used by Encrypt. Decrypt accepts envelopes
// sealed with any supported cipher.
// Default: "aes-256-gcm"
func WithCipher(name string) Option {
	return func(c *toolkitConfig) {
		c.cipher = name
	}
}

// WithHash sets the digest applied to messages before signing.
// Default: "sha256"
func WithHash(name string) Option {
	return func(c *toolkitConfig) {
		c.hash = name
	}
}

// WithCacheSize bounds every key cache, and every decryption key's tag
// cache, to size entries with least-recently-used eviction.
// Default: 0 (unbounded)
func WithCacheSize(size int) Option {
	return func(c *toolkitConfig) {
		c.cacheSize = size
	}
}

// WithKEMReuse controls whether every message encrypted to the same key
// shares one encapsulation. Sharing saves an encapsulation per message and
// leaves nonce uniqueness entirely to the AEAD's random nonces; prefer
// CipherXChaCha20Poly1305 when encrypting many messages to one key.
// Default: true
func WithKEMReuse(reuse bool) Option {
	return func(c *toolkitConfig) {
		c.reuseKEM = reuse
	}
}

// WithLogger sets the logger for debug events. Key material is never logged.
// Default: disabled
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *toolkitConfig) {
		c.logger = logger
	}
}

// WithoutHash signs or verifies the raw message instead of its digest.
func WithoutHash() SignOption {
	return func(c *signConfig) {
		c.noHash = true
	}
}
