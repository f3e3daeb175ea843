package catalog

import "sync/atomic"

// Store holds the current catalog snapshot. Reloads replace the whole
// reference atomically so in-flight calculations always see a consistent
// snapshot; the snapshot itself is never mutated.
type Store struct {
	current atomic.Pointer[Catalog]
}

// NewStore creates a store seeded with the given snapshot.
func NewStore(c *Catalog) *Store {
	s := &Store{}
	s.current.Store(c)
	return s
}

// Get returns the current snapshot.
func (s *Store) Get() *Catalog {
	return s.current.Load()
}

// Swap replaces the current snapshot.
func (s *Store) Swap(c *Catalog) {
	s.current.Store(c)
}
