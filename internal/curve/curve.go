package curve

import "io"

// IDLength is the fixed width of every curve identifier.
const IDLength = 3

// Curve is the arithmetic a registry entry provides.
type Curve interface {
	// ID returns the IDLength-character identifier of the curve.
	ID() string
	// Name returns a human readable curve name (e.g., "P-256").
	Name() string

	// GenerateKEM creates a new key encapsulation pair.
	GenerateKEM(rand io.Reader) (KEMSecretKey, error)
	// GenerateSigning creates a new signature pair.
	GenerateSigning(rand io.Reader) (SigningKey, error)

	// NewKEMPublicKey parses a public point body.
	NewKEMPublicKey(b []byte) (KEMPublicKey, error)
	// NewKEMSecretKey parses a secret scalar body.
	NewKEMSecretKey(b []byte) (KEMSecretKey, error)
	// NewVerifyingKey parses a public point body for signature verification.
	NewVerifyingKey(b []byte) (VerifyingKey, error)
	// NewSigningKey parses a secret scalar body for signing.
	NewSigningKey(b []byte) (SigningKey, error)
}

// Key is the part shared by all key types.
type Key interface {
	// Curve returns the curve the key belongs to.
	Curve() Curve
	// Bytes returns the fixed-width body of the key. Callers must not modify it.
	Bytes() []byte
}

// KEMPublicKey encapsulates fresh shared secrets.
type KEMPublicKey interface {
	Key
	// Encapsulate returns a shared secret and the tag a holder of the
	// matching secret key needs to recover it.
	Encapsulate(rand io.Reader) (shared, tag []byte, err error)
}

// KEMSecretKey recovers shared secrets from tags.
type KEMSecretKey interface {
	Key
	// Public returns the matching public key.
	Public() KEMPublicKey
	// Decapsulate recovers the shared secret bound to tag.
	// Returns ErrInvalidTag if tag is not a valid point for the curve.
	Decapsulate(tag []byte) ([]byte, error)
}

// VerifyingKey checks signatures.
type VerifyingKey interface {
	Key
	// Verify reports whether sig is a valid signature of msg.
	Verify(msg, sig []byte) bool
}

// SigningKey produces signatures.
type SigningKey interface {
	Key
	// Public returns the matching verifying key.
	Public() VerifyingKey
	// Sign signs msg. ECDSA curves treat msg as a digest and use only its
	// leading order-size bytes; EdDSA curves sign msg in full.
	Sign(rand io.Reader, msg []byte) ([]byte, error)
}
