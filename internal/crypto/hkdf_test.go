package crypto

import (
	"crypto/sha512"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey(t *testing.T) {
	t.Parallel()
	secret := randomBytes(t, 32)

	tests := []struct {
		name   string
		salt   []byte
		info   []byte
		length int
	}{
		{"basic 32 bytes", make([]byte, 32), []byte("info"), 32},
		{"empty salt", nil, []byte("info"), 32},
		{"empty info", make([]byte, 32), nil, 32},
		{"16 byte key", make([]byte, 32), []byte("info"), 16},
		{"64 byte key", make([]byte, 32), []byte("info"), 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := DeriveKey(secret, tt.salt, tt.info, tt.length)
			require.NoError(t, err)
			assert.Len(t, key, tt.length)
		})
	}
}

func TestDeriveKey_Deterministic(t *testing.T) {
	t.Parallel()
	secret := []byte("test secret key for derivation")
	salt := []byte("test salt value")
	info := []byte("test info value")

	key1, err := DeriveKey(secret, salt, info, 32)
	require.NoError(t, err)

	key2, err := DeriveKey(secret, salt, info, 32)
	require.NoError(t, err)

	assert.Equal(t, key1, key2)
}

func TestDeriveKey_EmptySalt(t *testing.T) {
	t.Parallel()
	secret := []byte("secret")

	withNil, err := DeriveKey(secret, nil, []byte("info"), 32)
	require.NoError(t, err)
	withZeros, err := DeriveKey(secret, make([]byte, sha512.Size), []byte("info"), 32)
	require.NoError(t, err)
	assert.Equal(t, withZeros, withNil)
}

func TestDeriveKey_ExceedsMaxLength(t *testing.T) {
	t.Parallel()
	// HKDF-SHA-512 can produce at most 255 * 64 = 16320 bytes
	_, err := DeriveKey([]byte("secret"), []byte("salt"), []byte("info"), 16321)
	assert.Error(t, err)
}

func TestDeriveSymmetricKey_BindsInputs(t *testing.T) {
	t.Parallel()
	shared := []byte("shared secret")
	tag := []byte("tag")

	base, err := deriveSymmetricKey(shared, tag, "256")
	require.NoError(t, err)
	assert.Len(t, base, SymmetricKeySize)

	otherShared, _ := deriveSymmetricKey([]byte("other secret"), tag, "256")
	otherTag, _ := deriveSymmetricKey(shared, []byte("other tag"), "256")
	otherCurve, _ := deriveSymmetricKey(shared, tag, "384")

	assert.NotEqual(t, base, otherShared)
	assert.NotEqual(t, base, otherTag)
	assert.NotEqual(t, base, otherCurve)
}
