package curve

import (
	"fmt"
	"sort"
	"sync"
)

// DefaultID is the curve used when the caller does not pick one.
const DefaultID = "256"

// Registry resolves curve identifiers. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	curves map[string]Curve
}

// NewRegistry creates a registry holding the given curves.
func NewRegistry(curves ...Curve) (*Registry, error) {
	r := &Registry{curves: make(map[string]Curve, len(curves))}
	for _, c := range curves {
		if err := r.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry of built-in curves. The built-in curves are
// registered once; callers must not Register on the returned registry.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = &Registry{curves: make(map[string]Curve)}
		for _, c := range []Curve{P256(), P384(), P521(), Secp256k1(), Curve25519(), Curve448()} {
			defaultRegistry.curves[c.ID()] = c
		}
	})
	return defaultRegistry
}

// Register adds c to the registry.
func (r *Registry) Register(c Curve) error {
	id := c.ID()
	if len(id) != IDLength {
		return fmt.Errorf("%w: %q must be %d characters", ErrInvalidCurveID, id, IDLength)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.curves[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCurve, id)
	}
	r.curves[id] = c
	return nil
}

// Lookup returns the curve registered under id.
func (r *Registry) Lookup(id string) (Curve, error) {
	r.mu.RLock()
	c, ok := r.curves[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, id)
	}
	return c, nil
}

// IDs returns the registered identifiers in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.curves))
	for id := range r.curves {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
