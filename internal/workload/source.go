package workload

import (
	"sync"

	"github.com/hashicorp/golang-lru/v2"
)

// keySetID identifies a generated key set.
type keySetID struct {
	order Order
	size  int
	seed  int64
}

// KeySource hands out key sets and keeps recently generated ones in an LRU
// cache, so that repeated rounds over the same order and size reuse the
// permutation instead of regenerating it.
//
// Returned slices are shared and must be treated as read-only.
type KeySource struct {
	mu    sync.Mutex
	cache *lru.Cache[keySetID, []int]

	// Metrics
	hits   uint64
	misses uint64
}

// NewKeySource creates a KeySource caching up to size key sets.
func NewKeySource(size int) (*KeySource, error) {
	if size <= 0 {
		size = 16 // Default cache size
	}

	cache, err := lru.New[keySetID, []int](size)
	if err != nil {
		return nil, err
	}

	return &KeySource{cache: cache}, nil
}

// Keys returns the keys 1..n in the given order.
func (s *KeySource) Keys(order Order, n int, seed int64) []int {
	id := keySetID{order: order, size: n, seed: seed}
	if order != OrderRandom {
		id.seed = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if keys, found := s.cache.Get(id); found {
		s.hits++
		return keys
	}

	s.misses++
	keys := GenerateKeys(order, n, id.seed)
	s.cache.Add(id, keys)
	return keys
}

// Stats returns the cache hit and miss counts.
func (s *KeySource) Stats() (hits, misses uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits, s.misses
}

// Len returns the number of cached key sets.
func (s *KeySource) Len() int {
	return s.cache.Len()
}
