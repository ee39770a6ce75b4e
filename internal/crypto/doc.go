// Package crypto implements the protocol layer of the toolkit: the key string
// codec, the ElGamal-style key encapsulation engine, the hybrid cipher that
// seals payloads into JSON envelopes, and the signature engine.
//
// # Algorithm Suite
//
//   - Key encapsulation: ephemeral-static ECDH on the key's curve. The
//     ephemeral public point is the encapsulation tag.
//
//   - HKDF-SHA-512 (RFC 5869): derives the 256-bit symmetric key from the ECDH
//     shared secret, salted with SHA-256 of the tag and bound to the curve id.
//
//   - AES-256-GCM (default) or XChaCha20-Poly1305: authenticated encryption
//     of the payload. The envelope header and tag are authenticated as AAD.
//
//   - ECDSA / EdDSA signatures over a SHA-256 digest of the message (the
//     digest function is configurable and may be skipped per call).
//
// # Key Strings
//
// Keys travel as a curve identifier followed by hex:
//
//	256 1f2c...ab    (no space; "256" selects P-256)
//
// Public keys carry the point body, secret keys the scalar body. See
// [EncodeKey] and [DecodeKey].
//
// # Critical Security Notes
//
// An [EncryptionKey] memoizes its encapsulation by default, so every message
// sealed to the same public key shares one symmetric key. Nonce uniqueness
// then rests entirely on the AEAD nonces, which are drawn at random for every
// message. Prefer XChaCha20-Poly1305 (192-bit nonces) when a single key seals
// a large number of messages, or disable reuse.
//
// Secret key material must never be logged or included in errors. Errors
// produced here carry the role and curve of a key, never its body.
package crypto
