// Package curvetest provides a counting curve.Curve for tests.
package curvetest

import (
	"io"
	"math/rand/v2"
	"sync/atomic"

	"github.com/vaultsandbox/ecc-go/internal/curve"
)

// ID is the identifier used by New when none is given.
const ID = "tst"

// Curve re-registers an existing curve under another identifier and counts
// the calls made into it. It is safe for concurrent use.
type Curve struct {
	curve.Curve
	id string

	imports        atomic.Int64
	encapsulations atomic.Int64
	decapsulations atomic.Int64
	signatures     atomic.Int64
}

// New wraps Curve25519 under ID. Curve25519 draws every key byte from the
// supplied reader, so keys generated from Reader are reproducible.
func New() *Curve {
	return Wrap(ID, curve.Curve25519())
}

// Wrap wraps base under id.
func Wrap(id string, base curve.Curve) *Curve {
	return &Curve{Curve: base, id: id}
}

// Reader returns a deterministic byte stream derived from seed.
func Reader(seed byte) io.Reader {
	return rand.NewChaCha8([32]byte{seed})
}

// ID returns the wrapper identifier.
func (c *Curve) ID() string { return c.id }

// Imports returns how many keys were parsed from bytes.
func (c *Curve) Imports() int64 { return c.imports.Load() }

// Encapsulations returns how many times Encapsulate was called.
func (c *Curve) Encapsulations() int64 { return c.encapsulations.Load() }

// Decapsulations returns how many times Decapsulate was called.
func (c *Curve) Decapsulations() int64 { return c.decapsulations.Load() }

// Signatures returns how many times Sign was called.
func (c *Curve) Signatures() int64 { return c.signatures.Load() }

func (c *Curve) GenerateKEM(r io.Reader) (curve.KEMSecretKey, error) {
	k, err := c.Curve.GenerateKEM(r)
	if err != nil {
		return nil, err
	}
	return &kemSecret{KEMSecretKey: k, c: c}, nil
}

func (c *Curve) GenerateSigning(r io.Reader) (curve.SigningKey, error) {
	k, err := c.Curve.GenerateSigning(r)
	if err != nil {
		return nil, err
	}
	return &signing{SigningKey: k, c: c}, nil
}

func (c *Curve) NewKEMPublicKey(b []byte) (curve.KEMPublicKey, error) {
	c.imports.Add(1)
	k, err := c.Curve.NewKEMPublicKey(b)
	if err != nil {
		return nil, err
	}
	return &kemPublic{KEMPublicKey: k, c: c}, nil
}

func (c *Curve) NewKEMSecretKey(b []byte) (curve.KEMSecretKey, error) {
	c.imports.Add(1)
	k, err := c.Curve.NewKEMSecretKey(b)
	if err != nil {
		return nil, err
	}
	return &kemSecret{KEMSecretKey: k, c: c}, nil
}

func (c *Curve) NewVerifyingKey(b []byte) (curve.VerifyingKey, error) {
	c.imports.Add(1)
	k, err := c.Curve.NewVerifyingKey(b)
	if err != nil {
		return nil, err
	}
	return &verifying{VerifyingKey: k, c: c}, nil
}

func (c *Curve) NewSigningKey(b []byte) (curve.SigningKey, error) {
	c.imports.Add(1)
	k, err := c.Curve.NewSigningKey(b)
	if err != nil {
		return nil, err
	}
	return &signing{SigningKey: k, c: c}, nil
}

type kemPublic struct {
	curve.KEMPublicKey
	c *Curve
}

func (k *kemPublic) Curve() curve.Curve { return k.c }

func (k *kemPublic) Encapsulate(r io.Reader) ([]byte, []byte, error) {
	k.c.encapsulations.Add(1)
	return k.KEMPublicKey.Encapsulate(r)
}

type kemSecret struct {
	curve.KEMSecretKey
	c *Curve
}

func (k *kemSecret) Curve() curve.Curve { return k.c }

func (k *kemSecret) Public() curve.KEMPublicKey {
	return &kemPublic{KEMPublicKey: k.KEMSecretKey.Public(), c: k.c}
}

func (k *kemSecret) Decapsulate(tag []byte) ([]byte, error) {
	k.c.decapsulations.Add(1)
	return k.KEMSecretKey.Decapsulate(tag)
}

type verifying struct {
	curve.VerifyingKey
	c *Curve
}

func (k *verifying) Curve() curve.Curve { return k.c }

type signing struct {
	curve.SigningKey
	c *Curve
}

func (k *signing) Curve() curve.Curve { return k.c }

func (k *signing) Public() curve.VerifyingKey {
	return &verifying{VerifyingKey: k.SigningKey.Public(), c: k.c}
}

func (k *signing) Sign(r io.Reader, msg []byte) ([]byte, error) {
	k.c.signatures.Add(1)
	return k.SigningKey.Sign(r, msg)
}
