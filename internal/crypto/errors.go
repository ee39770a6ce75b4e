package crypto

import (
	"errors"
	"fmt"

	"github.com/vaultsandbox/ecc-go/internal/curve"
)

var (
	// ErrMalformedKey is returned when a key string cannot be decoded or
	// imported: missing or unknown curve id, invalid hex, or a body the
	// curve rejects.
	ErrMalformedKey = errors.New("malformed key")

	// ErrInvalidTag is returned when an encapsulation tag is not a valid
	// point for the secret key's curve.
	ErrInvalidTag = curve.ErrInvalidTag

	// ErrAuthenticationFailed is returned when the AEAD rejects a payload.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrMalformedEnvelope is returned when envelope text cannot be parsed or
	// names no supported suite.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrUnsupportedCipher is returned for an unknown AEAD suite.
	ErrUnsupportedCipher = errors.New("unsupported cipher")

	// ErrUnsupportedHash is returned for an unknown hash name.
	ErrUnsupportedHash = errors.New("unsupported hash")

	// ErrInvalidKeySize is returned when a symmetric key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")
)

// KeyError describes a key string that could not be imported. It never
// carries the key itself.
type KeyError struct {
	Role  Role
	Curve string // empty when the curve id could not be resolved
	Err   error
}

func (e *KeyError) Error() string {
	if e.Curve != "" {
		return fmt.Sprintf("malformed %s key (curve %s): %v", e.Role, e.Curve, e.Err)
	}
	return fmt.Sprintf("malformed %s key: %v", e.Role, e.Err)
}

// Unwrap returns the underlying error.
func (e *KeyError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *KeyError) Is(target error) bool {
	return target == ErrMalformedKey
}
