package crypto

import (
	"errors"
	"fmt"

	"github.com/vaultsandbox/ecc-go/internal/curve"
)

// Role names the purpose a key string is imported for. Each role has its
// own import cache namespace.
type Role int

const (
	// RoleEncryption is a public key messages are encrypted to ("enc").
	RoleEncryption Role = iota
	// RoleDecryption is the matching secret key ("dec").
	RoleDecryption
	// RoleSigning is a secret key producing signatures ("sig").
	RoleSigning
	// RoleVerifying is the matching public key ("ver").
	RoleVerifying
)

func (r Role) String() string {
	switch r {
	case RoleEncryption:
		return "enc"
	case RoleDecryption:
		return "dec"
	case RoleSigning:
		return "sig"
	case RoleVerifying:
		return "ver"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

var (
	errMissingCurveID = errors.New("missing curve id")
	errEmptyBody      = errors.New("empty key body")
	errInvalidHex     = errors.New("invalid hex")
)

// EncodeKey renders k as its curve id followed by the hex of its body.
// Public keys encode the point (x then y for Weierstrass curves), secret
// keys the scalar.
func EncodeKey(k curve.Key) string {
	return k.Curve().ID() + ToHex(k.Bytes())
}

// DecodeKey splits s into its curve and body. The curve must resolve in reg
// and the remainder must be non-empty hex; the body length is checked by the
// curve on import.
func DecodeKey(reg *curve.Registry, s string) (curve.Curve, []byte, error) {
	if len(s) < curve.IDLength {
		return nil, nil, errMissingCurveID
	}

	c, err := reg.Lookup(s[:curve.IDLength])
	if err != nil {
		// The lookup error quotes the prefix; it may be key material.
		return nil, nil, curve.ErrUnknownCurve
	}

	body, err := FromHex(s[curve.IDLength:])
	if err != nil {
		return c, nil, errInvalidHex
	}
	if len(body) == 0 {
		return c, nil, errEmptyBody
	}
	return c, body, nil
}

func importKey[K curve.Key](reg *curve.Registry, role Role, s string, parse func(curve.Curve, []byte) (K, error)) (K, error) {
	var zero K

	c, body, err := DecodeKey(reg, s)
	if err != nil {
		keyErr := &KeyError{Role: role, Err: err}
		if c != nil {
			keyErr.Curve = c.ID()
		}
		return zero, keyErr
	}

	k, err := parse(c, body)
	if err != nil {
		return zero, &KeyError{Role: role, Curve: c.ID(), Err: err}
	}
	return k, nil
}

// ImportKEMPublicKey parses an encoded encryption key.
func ImportKEMPublicKey(reg *curve.Registry, s string) (curve.KEMPublicKey, error) {
	return importKey(reg, RoleEncryption, s, curve.Curve.NewKEMPublicKey)
}

// ImportKEMSecretKey parses an encoded decryption key.
func ImportKEMSecretKey(reg *curve.Registry, s string) (curve.KEMSecretKey, error) {
	return importKey(reg, RoleDecryption, s, curve.Curve.NewKEMSecretKey)
}

// ImportSigningKey parses an encoded signing key.
func ImportSigningKey(reg *curve.Registry, s string) (curve.SigningKey, error) {
	return importKey(reg, RoleSigning, s, curve.Curve.NewSigningKey)
}

// ImportVerifyingKey parses an encoded verifying key.
func ImportVerifyingKey(reg *curve.Registry, s string) (curve.VerifyingKey, error) {
	return importKey(reg, RoleVerifying, s, curve.Curve.NewVerifyingKey)
}
