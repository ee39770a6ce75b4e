package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"sort"

	"golang.org/x/crypto/chacha20poly1305"
)

// AEAD is a symmetric authenticated cipher suite. Cipher and Mode are the
// values written to the envelope's "cipher" and "mode" fields.
type AEAD interface {
	Name() string
	Cipher() string
	Mode() string
	KeySize() int
	NonceSize() int
	TagSize() int

	// Seal encrypts and authenticates plaintext and aad.
	Seal(key, nonce, plaintext, aad []byte) ([]byte, error)
	// Open returns ErrAuthenticationFailed if ciphertext or aad were altered
	// or key is wrong.
	Open(key, nonce, ciphertext, aad []byte) ([]byte, error)
}

type aeadSuite struct {
	name      string
	cipher    string
	mode      string
	nonceSize int
	newAEAD   func(key []byte) (cipher.AEAD, error)
}

var aeadSuites = map[string]*aeadSuite{
	AES256GCM: {
		name:      AES256GCM,
		cipher:    "aes",
		mode:      "gcm",
		nonceSize: AESNonceSize,
		newAEAD: func(key []byte) (cipher.AEAD, error) {
			block, err := aes.NewCipher(key)
			if err != nil {
				return nil, fmt.Errorf("failed to create cipher: %w", err)
			}
			return cipher.NewGCM(block)
		},
	},
	XChaCha20Poly1305: {
		name:      XChaCha20Poly1305,
		cipher:    "xchacha20",
		mode:      "poly1305",
		nonceSize: XChaChaNonceSize,
		newAEAD:   chacha20poly1305.NewX,
	},
}

// LookupAEAD returns the suite registered under name.
func LookupAEAD(name string) (AEAD, error) {
	s, ok := aeadSuites[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCipher, name)
	}
	return s, nil
}

// aeadFor resolves the envelope cipher/mode pair.
func aeadFor(cipherName, mode string) (AEAD, error) {
	for _, s := range aeadSuites {
		if s.cipher == cipherName && s.mode == mode {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %s/%s", ErrUnsupportedCipher, cipherName, mode)
}

// AEADNames lists the supported suites in sorted order.
func AEADNames() []string {
	names := make([]string, 0, len(aeadSuites))
	for name := range aeadSuites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *aeadSuite) Name() string   { return s.name }
func (s *aeadSuite) Cipher() string { return s.cipher }
func (s *aeadSuite) Mode() string   { return s.mode }
func (s *aeadSuite) KeySize() int   { return SymmetricKeySize }
func (s *aeadSuite) NonceSize() int { return s.nonceSize }
func (s *aeadSuite) TagSize() int   { return AEADTagSize }

func (s *aeadSuite) check(key, nonce []byte) error {
	if len(key) != SymmetricKeySize {
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), SymmetricKeySize)
	}

	if len(nonce) != s.nonceSize {
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), s.nonceSize)
	}
	return nil
}

func (s *aeadSuite) Seal(key, nonce, plaintext, aad []byte) ([]byte, error) {
	if err := s.check(key, nonce); err != nil {
		return nil, err
	}

	aead, err := s.newAEAD(key)
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, nonce, plaintext, aad), nil
}

func (s *aeadSuite) Open(key, nonce, ciphertext, aad []byte) ([]byte, error) {
	if err := s.check(key, nonce); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	aead, err := s.newAEAD(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}
