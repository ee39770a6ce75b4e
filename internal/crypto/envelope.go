package crypto

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Envelope is the serialized form of a sealed message. The payload fields
// follow the AEAD suite; Tag is the hex encapsulation tag.
type Envelope struct {
	// V is the envelope version number.
	V int `json:"v"`
	// Cipher is the block or stream cipher (e.g., "aes").
	Cipher string `json:"cipher"`
	// Mode is the AEAD mode (e.g., "gcm").
	Mode string `json:"mode"`
	// KS is the key size in bits.
	KS int `json:"ks"`
	// TS is the authentication tag size in bits.
	TS int `json:"ts"`
	// IV is the nonce (standard base64).
	IV string `json:"iv"`
	// CT is the ciphertext including the authentication tag (standard base64).
	CT string `json:"ct"`
	// Tag is the encapsulation tag (hex).
	Tag string `json:"tag"`
}

func newEnvelope(suite AEAD, tagHex string) *Envelope {
	return &Envelope{
		V:      EnvelopeVersion,
		Cipher: suite.Cipher(),
		Mode:   suite.Mode(),
		KS:     suite.KeySize() * 8,
		TS:     suite.TagSize() * 8,
		Tag:    tagHex,
	}
}

// additionalData binds the header fields and tag to the ciphertext.
func (e *Envelope) additionalData() []byte {
	return fmt.Appendf(nil, "%d:%s:%s:%d:%d:%s", e.V, e.Cipher, e.Mode, e.KS, e.TS, strings.ToLower(e.Tag))
}

// String serializes the envelope as JSON.
func (e *Envelope) String() string {
	// Marshal cannot fail for a struct of strings and ints.
	data, _ := json.Marshal(e)
	return string(data)
}

// ParseEnvelope parses and validates envelope JSON. Text that is not an
// envelope fails with ErrMalformedEnvelope. Header values that disagree with
// every supported suite are authenticated fields that were altered, so they
// also match ErrAuthenticationFailed.
func ParseEnvelope(s string) (*Envelope, error) {
	var env Envelope
	if err := json.UnmarshalFromString(s, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}

	if env.Tag == "" {
		return nil, fmt.Errorf("%w: missing tag", ErrMalformedEnvelope)
	}
	if _, err := FromHex(env.Tag); err != nil {
		return nil, fmt.Errorf("%w: tag is not hex", ErrMalformedEnvelope)
	}

	if env.V != EnvelopeVersion {
		return nil, fmt.Errorf("%w: %w: unsupported version %d", ErrAuthenticationFailed, ErrMalformedEnvelope, env.V)
	}

	suite, err := aeadFor(env.Cipher, env.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrAuthenticationFailed, ErrMalformedEnvelope, err)
	}
	if env.KS != suite.KeySize()*8 || env.TS != suite.TagSize()*8 {
		return nil, fmt.Errorf("%w: %w: unsupported key or tag size %d/%d", ErrAuthenticationFailed, ErrMalformedEnvelope, env.KS, env.TS)
	}

	return &env, nil
}
