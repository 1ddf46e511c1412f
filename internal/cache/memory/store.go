package memory

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Store is a bounded, expiring in-memory map. Entries vanish on eviction
// or TTL; nothing outlives the process.
type Store[K comparable, V any] struct {
	lru *expirable.LRU[K, V]
}

func NewStore[K comparable, V any](maxEntries int, ttl time.Duration) *Store[K, V] {
	if maxEntries <= 0 {
		maxEntries = 1
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Store[K, V]{lru: expirable.NewLRU[K, V](maxEntries, nil, ttl)}
}

func (s *Store[K, V]) Get(key K) (V, bool) {
	return s.lru.Get(key)
}

func (s *Store[K, V]) Set(key K, value V) {
	s.lru.Add(key, value)
}

func (s *Store[K, V]) Delete(key K) {
	s.lru.Remove(key)
}

func (s *Store[K, V]) Len() int {
	return s.lru.Len()
}
