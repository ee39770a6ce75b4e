package ecc

import (
	stdjson "encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyPair_MarshalJSON(t *testing.T) {
	tests := []struct {
		pair KeyPair
		want string
	}{
		{
			pair: KeyPair{Kind: EncDec, Curve: "256", Public: "256aa", Secret: "256bb"},
			want: `{"dec":"256bb","enc":"256aa"}`,
		},
		{
			pair: KeyPair{Kind: SigVer, Curve: "255", Public: "255aa", Secret: "255bb"},
			want: `{"sig":"255bb","ver":"255aa"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.pair.Kind.String(), func(t *testing.T) {
			data, err := stdjson.Marshal(tt.pair)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))

			data, err = stdjson.Marshal(&tt.pair)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))

			var got KeyPair
			require.NoError(t, stdjson.Unmarshal(data, &got))
			assert.Equal(t, tt.pair, got)
		})
	}
}

func TestKeyPair_MarshalUnknownKind(t *testing.T) {
	_, err := stdjson.Marshal(KeyPair{Public: "256aa"})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestKeyPair_UnmarshalInvalid(t *testing.T) {
	var p KeyPair
	assert.ErrorIs(t, stdjson.Unmarshal([]byte(`{"pub":"x"}`), &p), ErrUnknownKind)
	assert.Error(t, stdjson.Unmarshal([]byte(`[1]`), &p))
}

func TestKeyPair_UnmarshalHalf(t *testing.T) {
	tests := []struct {
		input string
		want  KeyPair
	}{
		{`{"dec":"384bb"}`, KeyPair{Kind: EncDec, Curve: "384", Secret: "384bb"}},
		{`{"enc":"384aa"}`, KeyPair{Kind: EncDec, Curve: "384", Public: "384aa"}},
		{`{"sig":"sk1bb"}`, KeyPair{Kind: SigVer, Curve: "sk1", Secret: "sk1bb"}},
		{`{"ver":"448aa"}`, KeyPair{Kind: SigVer, Curve: "448", Public: "448aa"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var got KeyPair
			require.NoError(t, stdjson.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}
