package crypto

import (
	"fmt"
	"io"
)

// HybridCipher seals payloads to KEM public keys and opens them with the
// matching secret keys.
type HybridCipher struct {
	suite    AEAD
	reuseKEM bool
}

// NewHybridCipher creates a cipher sealing with suite. With reuseKEM set,
// every message sealed to the same EncryptionKey shares one encapsulation.
func NewHybridCipher(suite AEAD, reuseKEM bool) *HybridCipher {
	return &HybridCipher{suite: suite, reuseKEM: reuseKEM}
}

// Suite returns the AEAD used for sealing.
func (h *HybridCipher) Suite() AEAD {
	return h.suite
}

// Seal encrypts plaintext to key.
//
// The sealing process:
//  1. Fetch the memoized encapsulation for key (or encapsulate afresh)
//  2. Draw a random nonce
//  3. AEAD-encrypt plaintext, authenticating the envelope header and tag
func (h *HybridCipher) Seal(key *EncryptionKey, plaintext []byte) (*Envelope, error) {
	kem, _, err := key.Context(h.reuseKEM)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, h.suite.NonceSize())
	if _, err := io.ReadFull(random(), nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	env := newEnvelope(h.suite, kem.TagHex)
	ciphertext, err := h.suite.Seal(kem.Key, nonce, plaintext, env.additionalData())
	if err != nil {
		return nil, fmt.Errorf("seal: %w", err)
	}

	env.IV = ToBase64(nonce)
	env.CT = ToBase64(ciphertext)
	return env, nil
}

// Open decrypts env with key. Any envelope accepted by ParseEnvelope can be
// opened, whichever suite this cipher seals with.
//
// The opening process:
//  1. Decode the nonce and ciphertext
//  2. Recover the symmetric key for the tag (cached per key and tag)
//  3. AEAD-decrypt, failing with ErrAuthenticationFailed on any alteration
func (h *HybridCipher) Open(key *DecryptionKey, env *Envelope) ([]byte, error) {
	suite, err := aeadFor(env.Cipher, env.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrAuthenticationFailed, ErrMalformedEnvelope, err)
	}

	nonce, err := FromBase64(env.IV)
	if err != nil {
		return nil, fmt.Errorf("%w: decode iv", ErrAuthenticationFailed)
	}

	ciphertext, err := FromBase64(env.CT)
	if err != nil {
		return nil, fmt.Errorf("%w: decode ct", ErrAuthenticationFailed)
	}

	symmetricKey, err := key.SymmetricKey(env.Tag)
	if err != nil {
		return nil, err
	}

	return suite.Open(symmetricKey, nonce, ciphertext, env.additionalData())
}
