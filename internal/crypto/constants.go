package crypto

const (
	// HKDFContext is the context string used in HKDF key derivation
	// for domain separation.
	HKDFContext = "ecc:kem:v1"

	// SymmetricKeySize is the size of keys derived from an encapsulation.
	SymmetricKeySize = 32

	// EnvelopeVersion is the only envelope version this package produces
	// and accepts.
	EnvelopeVersion = 1

	// AESNonceSize is the size of an AES-GCM nonce in bytes.
	AESNonceSize = 12
	// XChaChaNonceSize is the size of an XChaCha20-Poly1305 nonce in bytes.
	XChaChaNonceSize = 24
	// AEADTagSize is the size of the authentication tag of both AEADs in bytes.
	AEADTagSize = 16
)

// AEAD suite names accepted by [LookupAEAD].
const (
	AES256GCM         = "aes-256-gcm"
	XChaCha20Poly1305 = "xchacha20-poly1305"
)

// Hash names accepted by [LookupHash].
const (
	SHA256     = "sha256"
	SHA384     = "sha384"
	SHA512     = "sha512"
	SHA3_256   = "sha3-256"
	BLAKE2b256 = "blake2b-256"
)
