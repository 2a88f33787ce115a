// cache/memory.go
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// defaultCapacity bounds the in-process resolution cache. Entries are
// idempotent (the same key always re-resolves to the same code once the
// curated table and catalog are fixed), so evicting a cold entry only
// costs one extra geocode on its next lookup.
const defaultCapacity = 65536

// MemoryStore is the default resolution cache: an LRU of normalized
// query keys to airport codes. The LRU is safe for concurrent use.
type MemoryStore struct {
	entries *lru.Cache[string, string]
}

func NewMemoryStore() *MemoryStore {
	// New only fails on a non-positive capacity.
	entries, err := lru.New[string, string](defaultCapacity)
	if err != nil {
		panic(err)
	}
	return &MemoryStore{entries: entries}
}

// Get returns the cached airport code for a normalized key.
func (s *MemoryStore) Get(key string) (string, bool) {
	return s.entries.Get(key)
}

// Put records a resolved code under its normalized key.
func (s *MemoryStore) Put(key, code string) {
	s.entries.Add(key, code)
}

// Len reports the number of cached resolutions.
func (s *MemoryStore) Len() int {
	return s.entries.Len()
}
