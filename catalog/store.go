// catalog/store.go
package catalog

import "sync"

// Store holds the active Catalog snapshot and allows an explicit reload
// to swap in a fresh one while resolutions are in flight. A nil current
// catalog means the dataset never loaded; resolution then degrades to
// curated/cache-only behavior.
type Store struct {
	mu      sync.RWMutex
	current *Catalog
}

// NewStore wraps an initial catalog, which may be nil after a failed load.
func NewStore(initial *Catalog) *Store {
	return &Store{current: initial}
}

// Current returns the active snapshot, or nil when no catalog is loaded.
func (s *Store) Current() *Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Replace atomically swaps in a freshly loaded catalog.
func (s *Store) Replace(c *Catalog) {
	s.mu.Lock()
	s.current = c
	s.mu.Unlock()
}
