package curve

import (
	"errors"
	"fmt"
	"io"

	"github.com/cloudflare/circl/dh/x25519"
	"github.com/cloudflare/circl/dh/x448"
	"github.com/cloudflare/circl/sign/ed25519"
	"github.com/cloudflare/circl/sign/ed448"
)

var errLowOrderPoint = errors.New("low order point")

// edwardsCurve implements Curve for the Curve25519 and Curve448 families:
// Montgomery-form Diffie-Hellman for encapsulation and the birationally
// equivalent Edwards form for signatures. Bodies are the canonical RFC 7748
// and RFC 8032 encodings.
type edwardsCurve struct {
	id   string
	name string

	dhSize   int
	dhKeyGen func(pub, sec []byte)
	dhShared func(shared, sec, pub []byte) bool

	seedSize  int
	pointSize int
	fromSeed  func(seed []byte) (pub []byte, sign func(msg []byte) []byte)
	verify    func(pub, msg, sig []byte) bool
}

var curve25519 = &edwardsCurve{
	id:     "255",
	name:   "Curve25519",
	dhSize: x25519.Size,
	dhKeyGen: func(pub, sec []byte) {
		x25519.KeyGen((*x25519.Key)(pub), (*x25519.Key)(sec))
	},
	dhShared: func(shared, sec, pub []byte) bool {
		return x25519.Shared((*x25519.Key)(shared), (*x25519.Key)(sec), (*x25519.Key)(pub))
	},
	seedSize:  ed25519.SeedSize,
	pointSize: ed25519.PublicKeySize,
	fromSeed: func(seed []byte) ([]byte, func([]byte) []byte) {
		priv := ed25519.NewKeyFromSeed(seed)
		return priv.Public().(ed25519.PublicKey), func(msg []byte) []byte {
			return ed25519.Sign(priv, msg)
		}
	},
	verify: func(pub, msg, sig []byte) bool {
		return ed25519.Verify(ed25519.PublicKey(pub), msg, sig)
	},
}

var curve448 = &edwardsCurve{
	id:     "448",
	name:   "Curve448",
	dhSize: x448.Size,
	dhKeyGen: func(pub, sec []byte) {
		x448.KeyGen((*x448.Key)(pub), (*x448.Key)(sec))
	},
	dhShared: func(shared, sec, pub []byte) bool {
		return x448.Shared((*x448.Key)(shared), (*x448.Key)(sec), (*x448.Key)(pub))
	},
	seedSize:  ed448.SeedSize,
	pointSize: ed448.PublicKeySize,
	fromSeed: func(seed []byte) ([]byte, func([]byte) []byte) {
		priv := ed448.NewKeyFromSeed(seed)
		return priv.Public().(ed448.PublicKey), func(msg []byte) []byte {
			return ed448.Sign(priv, msg, "")
		}
	},
	verify: func(pub, msg, sig []byte) bool {
		return ed448.Verify(ed448.PublicKey(pub), msg, sig, "")
	},
}

// Curve25519 returns X25519/Ed25519, identifier "255".
func Curve25519() Curve { return curve25519 }

// Curve448 returns X448/Ed448, identifier "448".
func Curve448() Curve { return curve448 }

func (c *edwardsCurve) ID() string { return c.id }

func (c *edwardsCurve) Name() string { return c.name }

func (c *edwardsCurve) randomBytes(rand io.Reader, n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand, b); err != nil {
		return nil, fmt.Errorf("generate %s key: %w", c.name, err)
	}
	return b, nil
}

func (c *edwardsCurve) newDHSecret(sec []byte) *edwardsKEMSecret {
	pub := make([]byte, c.dhSize)
	c.dhKeyGen(pub, sec)
	return &edwardsKEMSecret{curve: c, sec: sec, pub: &edwardsKEMPublic{curve: c, pub: pub}}
}

func (c *edwardsCurve) newSigner(seed []byte) *edwardsSigning {
	pub, sign := c.fromSeed(seed)
	return &edwardsSigning{curve: c, seed: seed, sign: sign, pub: &edwardsVerifying{curve: c, pub: pub}}
}

func (c *edwardsCurve) GenerateKEM(rand io.Reader) (KEMSecretKey, error) {
	sec, err := c.randomBytes(rand, c.dhSize)
	if err != nil {
		return nil, err
	}
	return c.newDHSecret(sec), nil
}

func (c *edwardsCurve) GenerateSigning(rand io.Reader) (SigningKey, error) {
	seed, err := c.randomBytes(rand, c.seedSize)
	if err != nil {
		return nil, err
	}
	return c.newSigner(seed), nil
}

func (c *edwardsCurve) NewKEMPublicKey(b []byte) (KEMPublicKey, error) {
	if len(b) != c.dhSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidPoint, len(b), c.dhSize)
	}
	return &edwardsKEMPublic{curve: c, pub: append([]byte(nil), b...)}, nil
}

func (c *edwardsCurve) NewKEMSecretKey(b []byte) (KEMSecretKey, error) {
	if len(b) != c.dhSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidScalar, len(b), c.dhSize)
	}
	return c.newDHSecret(append([]byte(nil), b...)), nil
}

func (c *edwardsCurve) NewVerifyingKey(b []byte) (VerifyingKey, error) {
	if len(b) != c.pointSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidPoint, len(b), c.pointSize)
	}
	return &edwardsVerifying{curve: c, pub: append([]byte(nil), b...)}, nil
}

func (c *edwardsCurve) NewSigningKey(b []byte) (SigningKey, error) {
	if len(b) != c.seedSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidScalar, len(b), c.seedSize)
	}
	return c.newSigner(append([]byte(nil), b...)), nil
}

type edwardsKEMPublic struct {
	curve *edwardsCurve
	pub   []byte
}

func (k *edwardsKEMPublic) Curve() Curve { return k.curve }

func (k *edwardsKEMPublic) Bytes() []byte { return k.pub }

func (k *edwardsKEMPublic) Encapsulate(rand io.Reader) ([]byte, []byte, error) {
	eph, err := k.curve.randomBytes(rand, k.curve.dhSize)
	if err != nil {
		return nil, nil, err
	}
	tag := make([]byte, k.curve.dhSize)
	k.curve.dhKeyGen(tag, eph)

	shared := make([]byte, k.curve.dhSize)
	if !k.curve.dhShared(shared, eph, k.pub) {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidPoint, errLowOrderPoint)
	}
	return shared, tag, nil
}

type edwardsKEMSecret struct {
	curve *edwardsCurve
	sec   []byte
	pub   *edwardsKEMPublic
}

func (k *edwardsKEMSecret) Curve() Curve { return k.curve }

func (k *edwardsKEMSecret) Bytes() []byte { return k.sec }

func (k *edwardsKEMSecret) Public() KEMPublicKey { return k.pub }

func (k *edwardsKEMSecret) Decapsulate(tag []byte) ([]byte, error) {
	if len(tag) != k.curve.dhSize {
		return nil, ErrInvalidTag
	}
	shared := make([]byte, k.curve.dhSize)
	if !k.curve.dhShared(shared, k.sec, tag) {
		return nil, ErrInvalidTag
	}
	return shared, nil
}

type edwardsVerifying struct {
	curve *edwardsCurve
	pub   []byte
}

func (k *edwardsVerifying) Curve() Curve { return k.curve }

func (k *edwardsVerifying) Bytes() []byte { return k.pub }

func (k *edwardsVerifying) Verify(msg, sig []byte) bool {
	return k.curve.verify(k.pub, msg, sig)
}

type edwardsSigning struct {
	curve *edwardsCurve
	seed  []byte
	sign  func(msg []byte) []byte
	pub   *edwardsVerifying
}

func (k *edwardsSigning) Curve() Curve { return k.curve }

func (k *edwardsSigning) Bytes() []byte { return k.seed }

func (k *edwardsSigning) Public() VerifyingKey { return k.pub }

// Sign is deterministic; rand is not used.
func (k *edwardsSigning) Sign(_ io.Reader, msg []byte) ([]byte, error) {
	return k.sign(msg), nil
}
