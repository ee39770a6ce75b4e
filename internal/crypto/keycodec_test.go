package crypto

import (
	"crypto/rand"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultsandbox/ecc-go/internal/curve"
)

func TestEncodeKey_Format(t *testing.T) {
	t.Parallel()
	sec, err := curve.P256().GenerateKEM(rand.Reader)
	require.NoError(t, err)

	pub := EncodeKey(sec.Public())
	assert.True(t, strings.HasPrefix(pub, "256"))
	assert.Len(t, pub, 3+2*64)

	encodedSec := EncodeKey(sec)
	assert.True(t, strings.HasPrefix(encodedSec, "256"))
	assert.Len(t, encodedSec, 3+2*32)
	assert.Equal(t, strings.ToLower(encodedSec), encodedSec)
}

func TestDecodeKey_RoundTrip(t *testing.T) {
	t.Parallel()
	reg := curve.Default()

	for _, id := range reg.IDs() {
		c, err := reg.Lookup(id)
		require.NoError(t, err)

		t.Run(id, func(t *testing.T) {
			kem, err := GenerateKEM(c)
			require.NoError(t, err)
			sig, err := GenerateSigning(c)
			require.NoError(t, err)

			for _, k := range []curve.Key{kem, kem.Public(), sig, sig.Public()} {
				decoded, body, err := DecodeKey(reg, EncodeKey(k))
				require.NoError(t, err)
				assert.Equal(t, id, decoded.ID())
				assert.Equal(t, k.Bytes(), body)
			}
		})
	}
}

func TestImport_RoundTrip(t *testing.T) {
	t.Parallel()
	reg := curve.Default()

	for _, id := range reg.IDs() {
		c, err := reg.Lookup(id)
		require.NoError(t, err)

		t.Run(id, func(t *testing.T) {
			kem, err := GenerateKEM(c)
			require.NoError(t, err)

			pub, err := ImportKEMPublicKey(reg, EncodeKey(kem.Public()))
			require.NoError(t, err)
			assert.Equal(t, EncodeKey(kem.Public()), EncodeKey(pub))

			sec, err := ImportKEMSecretKey(reg, EncodeKey(kem))
			require.NoError(t, err)
			assert.Equal(t, EncodeKey(kem), EncodeKey(sec))

			sig, err := GenerateSigning(c)
			require.NoError(t, err)

			ver, err := ImportVerifyingKey(reg, EncodeKey(sig.Public()))
			require.NoError(t, err)
			assert.Equal(t, EncodeKey(sig.Public()), EncodeKey(ver))

			signing, err := ImportSigningKey(reg, EncodeKey(sig))
			require.NoError(t, err)
			assert.Equal(t, EncodeKey(sig), EncodeKey(signing))
		})
	}
}

func TestImport_UppercaseHex(t *testing.T) {
	t.Parallel()
	kem, err := GenerateKEM(curve.P256())
	require.NoError(t, err)

	encoded := EncodeKey(kem.Public())
	upper := encoded[:3] + strings.ToUpper(encoded[3:])

	pub, err := ImportKEMPublicKey(curve.Default(), upper)
	require.NoError(t, err)
	assert.Equal(t, encoded, EncodeKey(pub))
}

func TestImport_Malformed(t *testing.T) {
	t.Parallel()
	kem, err := GenerateKEM(curve.P256())
	require.NoError(t, err)
	valid := EncodeKey(kem.Public())

	tests := []struct {
		name    string
		input   string
		cause   error
		curveID string
	}{
		{"empty", "", errMissingCurveID, ""},
		{"short", "25", errMissingCurveID, ""},
		{"unknown curve", "192" + valid[3:], curve.ErrUnknownCurve, ""},
		{"no body", "256", errEmptyBody, "256"},
		{"bad hex", "256xyz", errInvalidHex, "256"},
		{"odd hex", valid[:len(valid)-1], errInvalidHex, "256"},
		{"truncated", valid[:len(valid)-2], curve.ErrInvalidPoint, "256"},
		{"wrong curve length", "384" + valid[3:], curve.ErrInvalidPoint, "384"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ImportKEMPublicKey(curve.Default(), tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedKey)
			assert.ErrorIs(t, err, tt.cause)

			var keyErr *KeyError
			require.True(t, errors.As(err, &keyErr))
			assert.Equal(t, RoleEncryption, keyErr.Role)
			assert.Equal(t, tt.curveID, keyErr.Curve)
		})
	}
}

func TestImport_ErrorNeverContainsKeyMaterial(t *testing.T) {
	t.Parallel()
	kem, err := GenerateKEM(curve.P256())
	require.NoError(t, err)

	secret := EncodeKey(kem)
	body := secret[3:]

	inputs := []string{
		"xyz" + body,
		body,
		"256" + body[:len(body)-2],
		"256" + body + "zz",
	}

	for _, input := range inputs {
		_, err := ImportKEMSecretKey(curve.Default(), input)
		require.Error(t, err)
		assert.NotContains(t, err.Error(), body[:16])
	}
}

func TestRole_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "enc", RoleEncryption.String())
	assert.Equal(t, "dec", RoleDecryption.String())
	assert.Equal(t, "sig", RoleSigning.String())
	assert.Equal(t, "ver", RoleVerifying.String())
	assert.Equal(t, "role(9)", Role(9).String())
}

func TestKeyError_Message(t *testing.T) {
	t.Parallel()
	err := &KeyError{Role: RoleDecryption, Curve: "256", Err: curve.ErrInvalidScalar}
	assert.Equal(t, "malformed dec key (curve 256): invalid scalar", err.Error())

	err = &KeyError{Role: RoleSigning, Err: curve.ErrUnknownCurve}
	assert.Equal(t, "malformed sig key: unknown curve", err.Error())
}
