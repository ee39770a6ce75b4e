package crypto

import (
	"fmt"

	"github.com/vaultsandbox/ecc-go/internal/curve"
)

// Sign signs msg with key. When h is non-nil the digest of msg is signed
// instead of msg itself.
func Sign(key curve.SigningKey, msg []byte, h Hash) ([]byte, error) {
	if h != nil {
		msg = h.Digest(msg)
	}

	sig, err := key.Sign(random(), msg)
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}
	return sig, nil
}

// Verify reports whether sig is a valid signature of msg under key, using
// the same optional digest as Sign. It never fails: malformed signatures and
// panics inside the primitive report false.
func Verify(key curve.VerifyingKey, sig, msg []byte, h Hash) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	if h != nil {
		msg = h.Digest(msg)
	}
	return key.Verify(msg, sig)
}
