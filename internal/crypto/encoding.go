package crypto

import (
	"encoding/base64"
	"encoding/hex"
)

// ToHex encodes bytes to lowercase hex.
func ToHex(data []byte) string {
	return hex.EncodeToString(data)
}

// FromHex decodes hex in either case.
func FromHex(s string) ([]byte, error) {
	return hex.DecodeString(s)
}

// ToBase64 encodes bytes to standard base64 with padding.
// Envelope payload fields use this encoding.
func ToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// FromBase64 decodes standard base64 (with padding) to bytes.
func FromBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}
