package core

import "sync"

// Store holds the most recently loaded collection per record type.
// A load replaces the previous collection for its type; nothing is merged.
//
// The mutex only guards the map. Concurrent loads of the same type race
// and the last Put wins.
type Store struct {
	mu    sync.RWMutex
	slots map[RecordType]any
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{slots: make(map[RecordType]any)}
}

// Put replaces the collection stored for c.Type and returns its size.
func Put[T any](s *Store, c Collection[T]) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[c.Type] = c
	return c.Len()
}

// Current returns the collection stored for t.
// Returns false if nothing was loaded for t, or if it was loaded as a different T.
func Current[T any](s *Store, t RecordType) (Collection[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.slots[t].(Collection[T])
	return c, ok
}

// Len returns the size of the collection stored for t, or 0 if absent.
func (s *Store) Len(t RecordType) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if l, ok := s.slots[t].(interface{ Len() int }); ok {
		return l.Len()
	}
	return 0
}

// Reset discards the collection stored for t and returns how many records
// it held.
func (s *Store) Reset(t RecordType) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	if l, ok := s.slots[t].(interface{ Len() int }); ok {
		n = l.Len()
	}
	delete(s.slots, t)
	return n
}
