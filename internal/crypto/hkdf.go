package crypto

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DeriveKey derives a key using HKDF-SHA-512.
//
// Parameters:
//   - secret: the input key material (e.g., shared secret from KEM)
//   - salt: salt value; HKDF treats an empty salt as 64 zero bytes
//   - info: context/application-specific info for domain separation
//   - length: desired output key length in bytes
func DeriveKey(secret, salt, info []byte, length int) ([]byte, error) {
	reader := hkdf.New(sha512.New, secret, salt, info)
	key := make([]byte, length)

	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	return key, nil
}

// deriveSymmetricKey turns an ECDH shared secret into an AEAD key.
//
// The key derivation uses:
//   - IKM (input key material): the shared secret
//   - Salt: SHA-256 hash of the encapsulation tag
//   - Info: context string || curve id
func deriveSymmetricKey(shared, tag []byte, curveID string) ([]byte, error) {
	salt := sha256.Sum256(tag)

	info := make([]byte, 0, len(HKDFContext)+len(curveID))
	info = append(info, HKDFContext...)
	info = append(info, curveID...)

	return DeriveKey(shared, salt[:], info, SymmetricKeySize)
}
