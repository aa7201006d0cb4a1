// internal/runutil/lru_set.go
package runutil

import "github.com/hashicorp/golang-lru/v2/simplelru"

// LRUSet is a size-bounded set with least-recently-used eviction. Add
// returns true if the key was already present. Not safe for concurrent use.
type LRUSet[K comparable] struct {
	cap int
	c   *simplelru.LRU[K, struct{}]
}

// DefaultSetCap bounds the remembered job ids when no capacity is given.
const DefaultSetCap = 200_000

func NewLRUSet[K comparable](capacity int) *LRUSet[K] {
	if capacity <= 0 {
		capacity = DefaultSetCap
	}
	c, err := simplelru.NewLRU[K, struct{}](capacity, nil)
	if err != nil {
		panic(err) // only for capacity <= 0
	}
	return &LRUSet[K]{cap: capacity, c: c}
}

// Add inserts k; returns true if it was already present.
func (s *LRUSet[K]) Add(k K) bool {
	if _, ok := s.c.Get(k); ok {
		return true
	}
	s.c.Add(k, struct{}{})
	return false
}

// Len is the number of remembered keys.
func (s *LRUSet[K]) Len() int { return s.c.Len() }
