package trial

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cortexcloud/entitlements/pkg/limits"
)

// MemoryStore is an in-memory Store for tests and single-process deployments.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*User
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[uuid.UUID]*User),
	}
}

// AddUser stores a copy of the user.
func (s *MemoryStore) AddUser(user User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = &user
}

// FindUser retrieves a copy of the user by ID.
func (s *MemoryStore) FindUser(ctx context.Context, userID uuid.UUID) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[userID]
	if !exists {
		return nil, ErrUserNotFound
	}

	cp := *user
	return &cp, nil
}

// UpdateTrialFields overwrites the user's trial fields and subscription tier.
func (s *MemoryStore) UpdateTrialFields(ctx context.Context, userID uuid.UUID, expiresAt time.Time, tier limits.Tier) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[userID]
	if !exists {
		return nil, ErrUserNotFound
	}

	expiry := expiresAt.UTC()
	user.TrialStarted = true
	user.TrialExpiresAt = &expiry
	user.SubscriptionTier = tier
	user.UpdatedAt = time.Now().UTC()

	cp := *user
	return &cp, nil
}
