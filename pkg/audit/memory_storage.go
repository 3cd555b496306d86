package audit

import (
	"context"
	"slices"
	"sync"
)

// MemoryStorage is an append-only in-memory Storage for tests and
// single-process deployments.
type MemoryStorage struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Store appends the entry.
func (s *MemoryStorage) Store(ctx context.Context, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

// Entries returns a copy of all stored entries in insertion order.
func (s *MemoryStorage) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entries)
}
