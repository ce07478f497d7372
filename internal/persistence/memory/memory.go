// Package memory provides an in-memory KV implementation. It backs tests and
// runs where no durable path is configured; contents are lost on exit.
package memory

import (
	"context"
	"sync"

	"github.com/example/trip-planner/internal/persistence"
)

// Store is a mutex-guarded map satisfying persistence.KV. Values are copied
// on the way in and out so callers cannot alias the stored bytes.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New returns an empty store.
func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Get retrieves the value stored under key.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, persistence.ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes key. Deleting an absent key succeeds.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// Close is a no-op for the in-memory implementation.
func (s *Store) Close() error {
	return nil
}
