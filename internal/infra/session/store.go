// Package session keeps short-lived, in-process session state. Nothing here
// is ever persisted; an expired or abandoned session is simply dropped.
package session

import (
	"sync"
	"time"

	"barberflow/internal/pkg/clock"

	"github.com/google/uuid"
)

type entry[T any] struct {
	value   T
	expires time.Time
}

// Store maps session ids to values with a sliding TTL. It only guards the map;
// values that are mutated after Get need their own lock.
type Store[T any] struct {
	mu      sync.Mutex
	kind    string
	ttl     time.Duration
	clock   clock.Clock
	entries map[string]*entry[T]
}

func NewStore[T any](kind string, ttl time.Duration, clk clock.Clock) *Store[T] {
	return &Store[T]{
		kind:    kind,
		ttl:     ttl,
		clock:   clk,
		entries: map[string]*entry[T]{},
	}
}

func (s *Store[T]) Kind() string {
	return s.kind
}

// Create stores value under a fresh random id.
func (s *Store[T]) Create(value T) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = &entry[T]{value: value, expires: s.clock.Now().Add(s.ttl)}
	return id
}

// Get returns the value and extends its lifetime.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	now := s.clock.Now()
	if !ok || !now.Before(e.expires) {
		var zero T
		return zero, false
	}
	e.expires = now.Add(s.ttl)
	return e.value, true
}

func (s *Store[T]) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

// Sweep drops expired entries and returns how many were removed.
func (s *Store[T]) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	removed := 0
	for id, e := range s.entries {
		if !now.Before(e.expires) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
