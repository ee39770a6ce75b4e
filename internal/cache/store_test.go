package cache

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetOrLoad(t *testing.T) {
	t.Parallel()
	s := New[string](0)

	var calls int
	load := func() (string, error) {
		calls++
		return "value", nil
	}

	v, err := s.GetOrLoad("k", load)
	require.NoError(t, err)
	assert.Equal(t, "value", v)

	v, err = s.GetOrLoad("k", load)
	require.NoError(t, err)
	assert.Equal(t, "value", v)

	assert.Equal(t, 1, calls)
	assert.Equal(t, Stats{Entries: 1, Hits: 1, Misses: 1}, s.Stats())
}

func TestStore_Get(t *testing.T) {
	t.Parallel()
	s := New[[]byte](0)

	_, ok := s.get("missing")
	assert.False(t, ok)

	_, err := s.GetOrLoad("k", func() ([]byte, error) { return []byte{1, 2}, nil })
	require.NoError(t, err)

	v, ok := s.get("k")
	assert.True(t, ok)
	assert.Equal(t, []byte{1, 2}, v)
}

func TestStore_ErrorsNotStored(t *testing.T) {
	t.Parallel()
	s := New[int](0)
	errLoad := errors.New("load failed")

	_, err := s.GetOrLoad("k", func() (int, error) { return 0, errLoad })
	assert.ErrorIs(t, err, errLoad)

	_, ok := s.get("k")
	assert.False(t, ok)

	v, err := s.GetOrLoad("k", func() (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.EqualValues(t, 1, s.Stats().Entries)
}

func TestStore_ConcurrentLoadOnce(t *testing.T) {
	t.Parallel()
	s := New[*int](0)

	var calls atomic.Int64
	release := make(chan struct{})
	load := func() (*int, error) {
		calls.Add(1)
		<-release
		v := 42
		return &v, nil
	}

	const workers = 64
	results := make([]*int, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := s.GetOrLoad("shared", load)
			if err == nil {
				results[i] = v
			}
		}(i)
	}

	// Give the workers time to pile up behind the first load.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.EqualValues(t, 1, calls.Load())
	for _, v := range results {
		require.NotNil(t, v)
		assert.Same(t, results[0], v)
	}
}

func TestStore_UnrelatedKeysNotSerialized(t *testing.T) {
	t.Parallel()
	s := New[string](0)

	blocked := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = s.GetOrLoad("slow", func() (string, error) {
			<-blocked
			return "slow", nil
		})
	}()

	v, err := s.GetOrLoad("fast", func() (string, error) { return "fast", nil })
	require.NoError(t, err)
	assert.Equal(t, "fast", v)

	close(blocked)
	<-done
}

func TestStore_LRU(t *testing.T) {
	t.Parallel()
	s := New[int](2)
	assert.Equal(t, 2, s.Size())

	for i := 0; i < 3; i++ {
		_, err := s.GetOrLoad(fmt.Sprint(i), func() (int, error) { return i, nil })
		require.NoError(t, err)
	}

	_, ok := s.get("0")
	assert.False(t, ok, "oldest entry evicted")
	_, ok = s.get("2")
	assert.True(t, ok)

	stats := s.Stats()
	assert.EqualValues(t, 2, stats.Entries)
	assert.EqualValues(t, 1, stats.Evictions)
}

func TestStore_Unbounded(t *testing.T) {
	t.Parallel()
	s := New[int](-1)
	assert.Equal(t, 0, s.Size())

	for i := 0; i < 1000; i++ {
		_, err := s.GetOrLoad(fmt.Sprint(i), func() (int, error) { return i, nil })
		require.NoError(t, err)
	}
	assert.EqualValues(t, 1000, s.Stats().Entries)
	assert.Zero(t, s.Stats().Evictions)
}

func TestStore_Purge(t *testing.T) {
	t.Parallel()
	s := New[int](4)

	_, err := s.GetOrLoad("k", func() (int, error) { return 1, nil })
	require.NoError(t, err)

	s.Purge()
	_, ok := s.get("k")
	assert.False(t, ok)
	assert.Zero(t, s.Stats().Entries)

	v, err := s.GetOrLoad("k", func() (int, error) { return 2, nil })
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}
