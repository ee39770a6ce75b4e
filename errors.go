package ecc

import (
	"errors"
	"fmt"

	"github.com/vaultsandbox/ecc-go/internal/crypto"
	"github.com/vaultsandbox/ecc-go/internal/curve"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrUnknownKind is returned when a key pair kind is neither EncDec nor SigVer.
	ErrUnknownKind = errors.New("unknown key pair kind")

	// ErrUnknownCurve is returned when a curve id is not registered.
	ErrUnknownCurve = curve.ErrUnknownCurve

	// ErrMalformedKey is returned when a key string cannot be decoded or imported.
	ErrMalformedKey = crypto.ErrMalformedKey

	// ErrInvalidTag is returned when an envelope's encapsulation tag is not
	// valid for the decryption key's curve.
	ErrInvalidTag = crypto.ErrInvalidTag

	// ErrAuthenticationFailed is returned when a ciphertext was altered or
	// sealed to a different key.
	ErrAuthenticationFailed = crypto.ErrAuthenticationFailed

	// ErrMalformedEnvelope is returned when envelope text cannot be parsed or
	// names no supported suite.
	ErrMalformedEnvelope = crypto.ErrMalformedEnvelope

	// ErrUnsupportedCipher is returned for an unknown AEAD suite name.
	ErrUnsupportedCipher = crypto.ErrUnsupportedCipher

	// ErrUnsupportedHash is returned for an unknown hash name.
	ErrUnsupportedHash = crypto.ErrUnsupportedHash

	// ErrDecryptionFailed matches every error returned by Decrypt.
	ErrDecryptionFailed = errors.New("decryption failed")
)

// ECCError is implemented by all typed errors of this package.
type ECCError interface {
	error
	ECCError() // marker method
}

// KeyError describes a key string that could not be imported. The key
// itself is never part of the error.
type KeyError struct {
	Role  string // "enc", "dec", "sig" or "ver"
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

// ECCError implements the ECCError interface.
func (e *KeyError) ECCError() {}

// DecryptionError reports the stage at which Decrypt failed.
type DecryptionError struct {
	Stage string // "envelope", "key", "kem", "aead"
	Err   error
}

func (e *DecryptionError) Error() string {
	return fmt.Sprintf("decryption failed at %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecryptionError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *DecryptionError) Is(target error) bool {
	return target == ErrDecryptionFailed
}

// ECCError implements the ECCError interface.
func (e *DecryptionError) ECCError() {}

// wrapError converts internal key errors to public errors.
// This ensures that errors.As() checks work with the public KeyError.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var keyErr *crypto.KeyError
	if errors.As(err, &keyErr) {
		return &KeyError{
			Role:  keyErr.Role.String(),
			Curve: keyErr.Curve,
			Err:   keyErr.Err,
		}
	}

	return err
}

// decryptionError tags err with the stage it came from.
func decryptionError(err error) *DecryptionError {
	stage := "aead"
	switch {
	case errors.Is(err, ErrMalformedEnvelope):
		stage = "envelope"
	case errors.Is(err, ErrMalformedKey):
		stage = "key"
	case errors.Is(err, ErrInvalidTag):
		stage = "kem"
	}
	return &DecryptionError{Stage: stage, Err: wrapError(err)}
}
