package cache

import (
	"sync/atomic"

	"github.com/bluele/gcache"
	"golang.org/x/sync/singleflight"
)

// Stats is a snapshot of a store's counters.
type Stats struct {
	Entries   int64 `json:"entries"`
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
}

// Store maps string keys to values of type V. A store created with a
// positive size evicts the least recently used entry once full; otherwise
// it grows without bound.
type Store[V any] struct {
	entries gcache.Cache
	group   singleflight.Group

	size      int
	count     atomic.Int64
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

// New creates a store holding at most size entries, or any number of
// entries when size <= 0.
func New[V any](size int) *Store[V] {
	s := &Store[V]{size: size}

	if size <= 0 {
		s.entries = gcache.New(0).Build()
		return s
	}

	s.entries = gcache.New(size).
		LRU().
		EvictedFunc(func(key, value interface{}) {
			s.count.Add(-1)
			s.evictions.Add(1)
		}).
		Build()
	return s
}

// Size returns the configured bound, 0 meaning unbounded.
func (s *Store[V]) Size() int {
	if s.size < 0 {
		return 0
	}
	return s.size
}

// get returns the value stored under key, if any.
func (s *Store[V]) get(key string) (V, bool) {
	v, err := s.entries.GetIFPresent(key)
	if err != nil {
		var zero V
		return zero, false
	}
	return v.(V), true
}

// GetOrLoad returns the value stored under key, calling load to create it
// when absent. Concurrent callers for the same key share one load call.
// Errors from load are returned to every waiting caller and not stored.
func (s *Store[V]) GetOrLoad(key string, load func() (V, error)) (V, error) {
	if v, ok := s.get(key); ok {
		s.hits.Add(1)
		return v, nil
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		// A load that finished between the lookup above and joining the
		// group has already stored the value.
		if v, ok := s.get(key); ok {
			return v, nil
		}

		s.misses.Add(1)
		v, err := load()
		if err != nil {
			return nil, err
		}
		if err := s.entries.Set(key, v); err != nil {
			return nil, err
		}
		s.count.Add(1)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// Purge removes every entry. Counters other than Entries are kept.
func (s *Store[V]) Purge() {
	s.entries.Purge()
	s.count.Store(0)
}

// Stats returns the current counters.
func (s *Store[V]) Stats() Stats {
	return Stats{
		Entries:   s.count.Load(),
		Hits:      s.hits.Load(),
		Misses:    s.misses.Load(),
		Evictions: s.evictions.Load(),
	}
}
