package crypto

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"sort"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Hash digests messages before they are signed or verified.
type Hash interface {
	Name() string
	Digest(msg []byte) []byte
}

type hashFunc struct {
	name string
	new  func() hash.Hash
}

var hashes = map[string]*hashFunc{
	SHA256:     {name: SHA256, new: sha256.New},
	SHA384:     {name: SHA384, new: sha512.New384},
	SHA512:     {name: SHA512, new: sha512.New},
	SHA3_256:   {name: SHA3_256, new: sha3.New256},
	BLAKE2b256: {name: BLAKE2b256, new: newBLAKE2b256},
}

func newBLAKE2b256() hash.Hash {
	// New256 only fails for keys longer than 64 bytes.
	h, _ := blake2b.New256(nil)
	return h
}

// LookupHash returns the hash registered under name.
func LookupHash(name string) (Hash, error) {
	h, ok := hashes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedHash, name)
	}
	return h, nil
}

// HashNames lists the supported hashes in sorted order.
func HashNames() []string {
	names := make([]string, 0, len(hashes))
	for name := range hashes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (h *hashFunc) Name() string { return h.name }

func (h *hashFunc) Digest(msg []byte) []byte {
	d := h.new()
	d.Write(msg)
	return d.Sum(nil)
}
