// Package ecc provides curve-based hybrid encryption and signatures over
// plain string-encoded keys.
//
// A key string is a 3-character curve id followed by the hex encoding of
// the key body, for example "256" + hex(x‖y) for a P-256 public key.
// Encryption derives a symmetric key with an ElGamal-style key
// encapsulation and seals the message with an AEAD; the result is a JSON
// envelope carrying the encapsulation tag.
//
// Basic usage:
//
//	tk, err := ecc.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pair, err := tk.Generate(ecc.EncDec, "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	envelope, err := tk.Encrypt(pair.Public, []byte("hello"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plaintext, err := tk.Decrypt(pair.Secret, envelope)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Imported keys are cached per role for the lifetime of the Toolkit, and
// by default every message encrypted to one key reuses a single
// encapsulation. See WithKEMReuse and WithCacheSize.
package ecc
