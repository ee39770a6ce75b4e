package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/vaultsandbox/ecc-go/internal/crypto"
	"github.com/vaultsandbox/ecc-go/internal/curve"
	"github.com/vaultsandbox/ecc-go/internal/curve/curvetest"
)

func newTestRegistry(t *testing.T) (*curve.Registry, *curvetest.Curve) {
	t.Helper()
	tc := curvetest.New()
	reg, err := curve.NewRegistry(tc, curve.P256())
	require.NoError(t, err)
	return reg, tc
}

func TestImportCache_ImportsOnce(t *testing.T) {
	t.Parallel()
	reg, tc := newTestRegistry(t)
	c := NewImportCache(reg, 0, nil)

	sec, err := crypto.GenerateKEM(tc)
	require.NoError(t, err)
	enc := crypto.EncodeKey(sec.Public())

	first, err := c.EncryptionKey(enc)
	require.NoError(t, err)
	second, err := c.EncryptionKey(enc)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.EqualValues(t, 1, tc.Imports())
}

func TestImportCache_ConcurrentImports(t *testing.T) {
	t.Parallel()
	reg, tc := newTestRegistry(t)
	c := NewImportCache(reg, 0, nil)

	key, err := crypto.GenerateSigning(tc)
	require.NoError(t, err)
	encoded := crypto.EncodeKey(key)

	results := make([]curve.SigningKey, 32)
	var g errgroup.Group
	for i := range results {
		g.Go(func() error {
			k, err := c.SigningKey(encoded)
			results[i] = k
			return err
		})
	}
	require.NoError(t, g.Wait())

	for _, k := range results {
		assert.Same(t, results[0], k)
	}
	assert.EqualValues(t, 1, tc.Imports())
}

func TestImportCache_RolesAreSeparate(t *testing.T) {
	t.Parallel()
	reg, tc := newTestRegistry(t)
	c := NewImportCache(reg, 0, nil)

	sec, err := crypto.GenerateKEM(tc)
	require.NoError(t, err)
	encoded := crypto.EncodeKey(sec.Public())

	_, err = c.EncryptionKey(encoded)
	require.NoError(t, err)
	_, err = c.VerifyingKey(encoded)
	require.NoError(t, err)

	assert.EqualValues(t, 2, tc.Imports())

	stats := c.Stats()
	assert.EqualValues(t, 1, stats.Encryption.Entries)
	assert.EqualValues(t, 1, stats.Verifying.Entries)
	assert.Zero(t, stats.Decryption.Entries)
	assert.Zero(t, stats.Signing.Entries)
}

func TestImportCache_MalformedNotCached(t *testing.T) {
	t.Parallel()
	reg, _ := newTestRegistry(t)
	c := NewImportCache(reg, 0, nil)

	for i := 0; i < 2; i++ {
		_, err := c.DecryptionKey("256zz")
		assert.ErrorIs(t, err, crypto.ErrMalformedKey)
	}
	assert.Zero(t, c.Stats().Decryption.Entries)
	assert.EqualValues(t, 2, c.Stats().Decryption.Misses)
}

func TestImportCache_DecryptionKeyOwnsTagCache(t *testing.T) {
	t.Parallel()
	reg, tc := newTestRegistry(t)
	c := NewImportCache(reg, 0, nil)

	sec, err := crypto.GenerateKEM(tc)
	require.NoError(t, err)
	kem, err := crypto.Encapsulate(sec.Public())
	require.NoError(t, err)

	dec, err := c.DecryptionKey(crypto.EncodeKey(sec))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		key, err := dec.SymmetricKey(kem.TagHex)
		require.NoError(t, err)
		assert.Equal(t, kem.Key, key)
	}
	assert.EqualValues(t, 1, tc.Decapsulations())
}

func TestImportCache_Purge(t *testing.T) {
	t.Parallel()
	reg, tc := newTestRegistry(t)
	c := NewImportCache(reg, 0, nil)

	key, err := crypto.GenerateSigning(tc)
	require.NoError(t, err)
	encoded := crypto.EncodeKey(key.Public())

	_, err = c.VerifyingKey(encoded)
	require.NoError(t, err)
	c.Purge()
	_, err = c.VerifyingKey(encoded)
	require.NoError(t, err)

	assert.EqualValues(t, 2, tc.Imports())
}

func TestNewDecapCache(t *testing.T) {
	t.Parallel()
	var _ crypto.TagCache = NewDecapCache(0)
	assert.Equal(t, 8, NewDecapCache(8).Size())
}
