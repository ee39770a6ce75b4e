package curve

import (
	"fmt"
	"io"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

const (
	secp256k1ScalarSize = 32
	secp256k1PointSize  = 64
)

// secp256k1Curve implements Curve for secp256k1. Point bodies are x then y,
// signatures are DER encoded.
type secp256k1Curve struct{}

var secp256k1 = secp256k1Curve{}

// Secp256k1 returns the secp256k1 curve, identifier "sk1".
func Secp256k1() Curve { return secp256k1 }

func (secp256k1Curve) ID() string { return "sk1" }

func (secp256k1Curve) Name() string { return "secp256k1" }

// generate draws scalars from rand until one is in [1, N-1].
func (secp256k1Curve) generate(rand io.Reader) (*btcec.PrivateKey, error) {
	buf := make([]byte, secp256k1ScalarSize)
	for {
		if _, err := io.ReadFull(rand, buf); err != nil {
			return nil, fmt.Errorf("generate secp256k1 key: %w", err)
		}
		if validSecp256k1Scalar(buf) {
			priv, _ := btcec.PrivKeyFromBytes(buf)
			return priv, nil
		}
	}
}

func validSecp256k1Scalar(b []byte) bool {
	d := new(big.Int).SetBytes(b)
	return d.Sign() > 0 && d.Cmp(btcec.S256().Params().N) < 0
}

func (c secp256k1Curve) parsePoint(b []byte) (*btcec.PublicKey, error) {
	if len(b) != secp256k1PointSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidPoint, len(b), secp256k1PointSize)
	}
	pub, err := btcec.ParsePubKey(uncompressed(b))
	if err != nil {
		return nil, ErrInvalidPoint
	}
	return pub, nil
}

func (c secp256k1Curve) parseScalar(b []byte) (*btcec.PrivateKey, error) {
	if len(b) != secp256k1ScalarSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidScalar, len(b), secp256k1ScalarSize)
	}
	if !validSecp256k1Scalar(b) {
		return nil, ErrInvalidScalar
	}
	priv, _ := btcec.PrivKeyFromBytes(b)
	return priv, nil
}

func (c secp256k1Curve) GenerateKEM(rand io.Reader) (KEMSecretKey, error) {
	priv, err := c.generate(rand)
	if err != nil {
		return nil, err
	}
	return &secp256k1KEMSecret{secp256k1Secret{priv: priv}}, nil
}

func (c secp256k1Curve) GenerateSigning(rand io.Reader) (SigningKey, error) {
	priv, err := c.generate(rand)
	if err != nil {
		return nil, err
	}
	return &secp256k1Signing{secp256k1Secret{priv: priv}}, nil
}

func (c secp256k1Curve) NewKEMPublicKey(b []byte) (KEMPublicKey, error) {
	pub, err := c.parsePoint(b)
	if err != nil {
		return nil, err
	}
	return &secp256k1Public{pub: pub}, nil
}

func (c secp256k1Curve) NewKEMSecretKey(b []byte) (KEMSecretKey, error) {
	priv, err := c.parseScalar(b)
	if err != nil {
		return nil, err
	}
	return &secp256k1KEMSecret{secp256k1Secret{priv: priv}}, nil
}

func (c secp256k1Curve) NewVerifyingKey(b []byte) (VerifyingKey, error) {
	pub, err := c.parsePoint(b)
	if err != nil {
		return nil, err
	}
	return &secp256k1Public{pub: pub}, nil
}

func (c secp256k1Curve) NewSigningKey(b []byte) (SigningKey, error) {
	priv, err := c.parseScalar(b)
	if err != nil {
		return nil, err
	}
	return &secp256k1Signing{secp256k1Secret{priv: priv}}, nil
}

// secp256k1Public serves as both KEMPublicKey and VerifyingKey; the point
// algebra is the same for both schemes.
type secp256k1Public struct {
	pub *btcec.PublicKey
}

func (k *secp256k1Public) Curve() Curve {
	return secp256k1
}

func (k *secp256k1Public) Bytes() []byte {
	return k.pub.SerializeUncompressed()[1:]
}

func (k *secp256k1Public) Encapsulate(rand io.Reader) ([]byte, []byte, error) {
	eph, err := secp256k1.generate(rand)
	if err != nil {
		return nil, nil, err
	}
	shared := btcec.GenerateSharedSecret(eph, k.pub)
	return shared, eph.PubKey().SerializeUncompressed()[1:], nil
}

func (k *secp256k1Public) Verify(msg, sig []byte) bool {
	parsed, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return false
	}
	return parsed.Verify(msg, k.pub)
}

// secp256k1Secret holds the scalar shared by the KEM and signing key types.
type secp256k1Secret struct {
	priv *btcec.PrivateKey
}

func (k *secp256k1Secret) Curve() Curve {
	return secp256k1
}

func (k *secp256k1Secret) Bytes() []byte {
	return k.priv.Serialize()
}

type secp256k1KEMSecret struct {
	secp256k1Secret
}

func (k *secp256k1KEMSecret) Public() KEMPublicKey {
	return &secp256k1Public{pub: k.priv.PubKey()}
}

func (k *secp256k1KEMSecret) Decapsulate(tag []byte) ([]byte, error) {
	eph, err := secp256k1.parsePoint(tag)
	if err != nil {
		return nil, ErrInvalidTag
	}
	return btcec.GenerateSharedSecret(k.priv, eph), nil
}

type secp256k1Signing struct {
	secp256k1Secret
}

func (k *secp256k1Signing) Public() VerifyingKey {
	return &secp256k1Public{pub: k.priv.PubKey()}
}

// Sign produces a deterministic (RFC 6979) signature; rand is not used.
func (k *secp256k1Signing) Sign(_ io.Reader, msg []byte) ([]byte, error) {
	return ecdsa.Sign(k.priv, msg).Serialize(), nil
}
