// Package curve holds the elliptic-curve primitives used by the toolkit and
// the registry that resolves short curve identifiers to them.
//
// Every curve offers two key flavours: an ECDH-based key encapsulation pair
// and a signature pair. Keys are imported from and exported to fixed-width
// byte bodies, which the key codec in internal/crypto turns into strings.
//
// # Built-in curves
//
//   - "256", "384", "521": NIST P-256/P-384/P-521 via crypto/ecdh and crypto/ecdsa.
//   - "sk1": secp256k1 via btcec.
//   - "255": X25519 key agreement and Ed25519 signatures via circl.
//   - "448": X448 key agreement and Ed448 signatures via circl.
package curve
