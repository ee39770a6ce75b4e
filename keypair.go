package ecc

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/vaultsandbox/ecc-go/internal/curve"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// KeyPair holds the encoded halves of a generated key pair.
//
// Public is given to others: the encryption key of an EncDec pair or the
// verifying key of a SigVer pair. Secret must stay private.
type KeyPair struct {
	Kind   Kind
	Curve  string
	Public string
	Secret string
}

// MarshalJSON encodes an EncDec pair as {"enc":...,"dec":...} and a SigVer
// pair as {"ver":...,"sig":...}.
func (p KeyPair) MarshalJSON() ([]byte, error) {
	if p.Kind != EncDec && p.Kind != SigVer {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(p.Kind))
	}
	public, secret := p.Kind.fieldNames()
	return json.Marshal(map[string]string{public: p.Public, secret: p.Secret})
}

// UnmarshalJSON accepts either field layout written by MarshalJSON. The
// curve is taken from the public key's prefix.
func (p *KeyPair) UnmarshalJSON(data []byte) error {
	var fields map[string]string
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	switch {
	case fields["enc"] != "" || fields["dec"] != "":
		*p = KeyPair{Kind: EncDec, Public: fields["enc"], Secret: fields["dec"]}
	case fields["ver"] != "" || fields["sig"] != "":
		*p = KeyPair{Kind: SigVer, Public: fields["ver"], Secret: fields["sig"]}
	default:
		return fmt.Errorf("%w: no key fields", ErrUnknownKind)
	}

	switch {
	case len(p.Public) >= curve.IDLength:
		p.Curve = p.Public[:curve.IDLength]
	case len(p.Secret) >= curve.IDLength:
		p.Curve = p.Secret[:curve.IDLength]
	}
	return nil
}
