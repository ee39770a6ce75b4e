package ecc

import (
	"fmt"
	"strings"
)

// Kind selects the flavor of a generated key pair.
type Kind int

const (
	// EncDec is a key encapsulation pair used with Encrypt and Decrypt.
	EncDec Kind = iota + 1
	// SigVer is a signature pair used with Sign and Verify.
	SigVer
)

// String returns the canonical name of k.
func (k Kind) String() string {
	switch k {
	case EncDec:
		return "encdec"
	case SigVer:
		return "sigver"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses "encdec" or "sigver", case-insensitively and with an
// optional dash or underscore ("enc-dec", "SIG_VER").
func ParseKind(s string) (Kind, error) {
	norm := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch norm {
	case "encdec":
		return EncDec, nil
	case "sigver":
		return SigVer, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k != EncDec && k != SigVer {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// fieldNames returns the JSON names of the public and secret halves.
func (k Kind) fieldNames() (public, secret string) {
	if k == SigVer {
		return "ver", "sig"
	}
	return "enc", "dec"
}
