package curve

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/elliptic"
	"fmt"
	"io"
)

// nistCurve implements Curve for the NIST prime curves. Point bodies are the
// uncompressed SEC 1 encoding without its 0x04 prefix, so x then y.
type nistCurve struct {
	id         string
	name       string
	dh         ecdh.Curve
	ec         elliptic.Curve
	scalarSize int
}

var (
	p256 = &nistCurve{id: "256", name: "P-256", dh: ecdh.P256(), ec: elliptic.P256(), scalarSize: 32}
	p384 = &nistCurve{id: "384", name: "P-384", dh: ecdh.P384(), ec: elliptic.P384(), scalarSize: 48}
	p521 = &nistCurve{id: "521", name: "P-521", dh: ecdh.P521(), ec: elliptic.P521(), scalarSize: 66}
)

// P256 returns NIST P-256, identifier "256".
func P256() Curve { return p256 }

// P384 returns NIST P-384, identifier "384".
func P384() Curve { return p384 }

// P521 returns NIST P-521, identifier "521".
func P521() Curve { return p521 }

func (c *nistCurve) ID() string   { return c.id }
func (c *nistCurve) Name() string { return c.name }

func (c *nistCurve) pointSize() int { return 2 * c.scalarSize }

// uncompressed prepends the SEC 1 uncompressed marker to a point body.
func uncompressed(body []byte) []byte {
	out := make([]byte, 0, len(body)+1)
	out = append(out, 0x04)
	return append(out, body...)
}

func (c *nistCurve) GenerateKEM(rand io.Reader) (KEMSecretKey, error) {
	priv, err := c.dh.GenerateKey(rand)
	if err != nil {
		return nil, fmt.Errorf("generate %s key: %w", c.name, err)
	}
	return &nistKEMSecret{curve: c, priv: priv}, nil
}

func (c *nistCurve) GenerateSigning(rand io.Reader) (SigningKey, error) {
	priv, err := ecdsa.GenerateKey(c.ec, rand)
	if err != nil {
		return nil, fmt.Errorf("generate %s key: %w", c.name, err)
	}
	return c.newSigning(priv)
}

func (c *nistCurve) NewKEMPublicKey(b []byte) (KEMPublicKey, error) {
	pub, err := c.parsePoint(b)
	if err != nil {
		return nil, err
	}
	return &nistKEMPublic{curve: c, pub: pub, body: append([]byte(nil), b...)}, nil
}

func (c *nistCurve) NewKEMSecretKey(b []byte) (KEMSecretKey, error) {
	if len(b) != c.scalarSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidScalar, len(b), c.scalarSize)
	}
	priv, err := c.dh.NewPrivateKey(b)
	if err != nil {
		return nil, ErrInvalidScalar
	}
	return &nistKEMSecret{curve: c, priv: priv}, nil
}

func (c *nistCurve) NewVerifyingKey(b []byte) (VerifyingKey, error) {
	if len(b) != c.pointSize() {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidPoint, len(b), c.pointSize())
	}
	pub, err := ecdsa.ParseUncompressedPublicKey(c.ec, uncompressed(b))
	if err != nil {
		return nil, ErrInvalidPoint
	}
	return &nistVerifying{curve: c, pub: pub, body: append([]byte(nil), b...)}, nil
}

func (c *nistCurve) NewSigningKey(b []byte) (SigningKey, error) {
	if len(b) != c.scalarSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidScalar, len(b), c.scalarSize)
	}
	priv, err := ecdsa.ParseRawPrivateKey(c.ec, b)
	if err != nil {
		return nil, ErrInvalidScalar
	}
	return c.newSigning(priv)
}

func (c *nistCurve) parsePoint(b []byte) (*ecdh.PublicKey, error) {
	if len(b) != c.pointSize() {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidPoint, len(b), c.pointSize())
	}
	pub, err := c.dh.NewPublicKey(uncompressed(b))
	if err != nil {
		return nil, ErrInvalidPoint
	}
	return pub, nil
}

func (c *nistCurve) newSigning(priv *ecdsa.PrivateKey) (*nistSigning, error) {
	scalar, err := priv.Bytes()
	if err != nil {
		return nil, fmt.Errorf("export %s key: %w", c.name, err)
	}
	point, err := priv.PublicKey.Bytes()
	if err != nil {
		return nil, fmt.Errorf("export %s key: %w", c.name, err)
	}
	return &nistSigning{
		curve:  c,
		priv:   priv,
		scalar: scalar,
		public: &nistVerifying{curve: c, pub: &priv.PublicKey, body: point[1:]},
	}, nil
}

type nistKEMPublic struct {
	curve *nistCurve
	pub   *ecdh.PublicKey
	body  []byte
}

func (k *nistKEMPublic) Curve() Curve  { return k.curve }
func (k *nistKEMPublic) Bytes() []byte { return k.body }

func (k *nistKEMPublic) Encapsulate(rand io.Reader) ([]byte, []byte, error) {
	eph, err := k.curve.dh.GenerateKey(rand)
	if err != nil {
		return nil, nil, fmt.Errorf("generate ephemeral key: %w", err)
	}
	shared, err := eph.ECDH(k.pub)
	if err != nil {
		return nil, nil, err
	}
	return shared, eph.PublicKey().Bytes()[1:], nil
}

type nistKEMSecret struct {
	curve *nistCurve
	priv  *ecdh.PrivateKey
}

func (k *nistKEMSecret) Curve() Curve  { return k.curve }
func (k *nistKEMSecret) Bytes() []byte { return k.priv.Bytes() }

func (k *nistKEMSecret) Public() KEMPublicKey {
	pub := k.priv.PublicKey()
	return &nistKEMPublic{curve: k.curve, pub: pub, body: pub.Bytes()[1:]}
}

func (k *nistKEMSecret) Decapsulate(tag []byte) ([]byte, error) {
	eph, err := k.curve.parsePoint(tag)
	if err != nil {
		return nil, ErrInvalidTag
	}
	shared, err := k.priv.ECDH(eph)
	if err != nil {
		return nil, ErrInvalidTag
	}
	return shared, nil
}

type nistVerifying struct {
	curve *nistCurve
	pub   *ecdsa.PublicKey
	body  []byte
}

func (k *nistVerifying) Curve() Curve  { return k.curve }
func (k *nistVerifying) Bytes() []byte { return k.body }

func (k *nistVerifying) Verify(msg, sig []byte) bool {
	return ecdsa.VerifyASN1(k.pub, msg, sig)
}

type nistSigning struct {
	curve  *nistCurve
	priv   *ecdsa.PrivateKey
	scalar []byte
	public *nistVerifying
}

func (k *nistSigning) Curve() Curve         { return k.curve }
func (k *nistSigning) Bytes() []byte        { return k.scalar }
func (k *nistSigning) Public() VerifyingKey { return k.public }

func (k *nistSigning) Sign(rand io.Reader, msg []byte) ([]byte, error) {
	return ecdsa.SignASN1(rand, k.priv, msg)
}
