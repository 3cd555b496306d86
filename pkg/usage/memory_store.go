package usage

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store for tests and single-process deployments.
// Increments are performed under the store mutex, which gives the same
// no-lost-updates guarantee a database atomic add provides.
//
// Users must be registered before tracking, mirroring the foreign key the
// SQL schema enforces: tracking an unknown user surfaces ErrUserNotFound
// instead of creating an orphaned period.
type MemoryStore struct {
	mu      sync.Mutex
	users   map[uuid.UUID]struct{}
	periods map[uuid.UUID][]*Period
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:   make(map[uuid.UUID]struct{}),
		periods: make(map[uuid.UUID][]*Period),
	}
}

// RegisterUser makes the user known to the store.
func (s *MemoryStore) RegisterUser(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userID] = struct{}{}
}

// Increment adds 1 to the named counter on the period containing now,
// creating the period when none brackets the instant.
func (s *MemoryStore) Increment(ctx context.Context, userID uuid.UUID, counter Counter, now, periodStart, periodEnd time.Time) (*Period, error) {
	if !counter.Valid() {
		return nil, ErrUnknownCounter
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[userID]; !exists {
		return nil, ErrUserNotFound
	}

	// Containment lookup: reuse any period bracketing now, even if its
	// window was stamped from a slightly different instant.
	for _, p := range s.periods[userID] {
		if p.Contains(now) {
			addCounter(p, counter)
			p.UpdatedAt = now
			cp := *p
			return &cp, nil
		}
	}

	p := &Period{
		ID:          uuid.New(),
		UserID:      userID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	addCounter(p, counter)
	s.periods[userID] = append(s.periods[userID], p)

	cp := *p
	return &cp, nil
}

// Periods returns copies of all retained periods for a user, newest first.
func (s *MemoryStore) Periods(ctx context.Context, userID uuid.UUID) ([]Period, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.periods[userID]
	out := make([]Period, 0, len(stored))
	for _, p := range stored {
		out = append(out, *p)
	}
	slices.SortFunc(out, func(a, b Period) int {
		return b.PeriodStart.Compare(a.PeriodStart)
	})
	return out, nil
}

func addCounter(p *Period, counter Counter) {
	switch counter {
	case CounterWorkflowRuns:
		p.WorkflowRuns++
	case CounterDocumentsProcessed:
		p.DocumentsProcessed++
	case CounterAPICalls:
		p.APICalls++
	}
}
