package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps values in process memory. Used for ephemeral boards and tests.
type MemoryStore struct {
	mu        sync.RWMutex
	values    map[string]string
	writeErr  error
	setCalled int
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Set stores value under key, or returns the injected write error.
func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setCalled++
	if s.writeErr != nil {
		return s.writeErr
	}
	s.values[key] = value
	return nil
}

// FailWrites makes every subsequent Set return err. A nil err restores writes.
func (s *MemoryStore) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = err
}

// Writes returns how many times Set was called.
func (s *MemoryStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.setCalled
}

// Ping always succeeds.
func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}
