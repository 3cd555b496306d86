package trial

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/cortexcloud/entitlements/pkg/audit"
	"github.com/cortexcloud/entitlements/pkg/limits"
)

// TrialDays is the length of the CortexCloud trial window in calendar days.
const TrialDays = 14

const (
	// ActionStarted is audited when a trial window is stamped for the first time.
	ActionStarted = "trial.started"
	// ActionReset is audited when Start overwrites an existing trial window.
	// Re-extending a trial is an administrative action and must leave a trace.
	ActionReset = "trial.reset"
)

// Service manages the trial lifecycle of a user's subscription.
type Service interface {
	// Start begins (or resets) the user's trial: stamps trial_started,
	// sets the expiry to now + 14 calendar days, and moves the user to the
	// trial tier. The overwrite is unconditional, so calling Start on a
	// user with a running or consumed trial resets the window, which is
	// why every call is audited.
	Start(ctx context.Context, userID uuid.UUID) (*User, error)

	// Get returns the user's current trial fields.
	Get(ctx context.Context, userID uuid.UUID) (*User, error)
}

// Option configures the trial service.
type Option func(*service)

// WithClock overrides the time source for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithAuditLogger records every Start call to the audit log.
func WithAuditLogger(log audit.Logger) Option {
	return func(s *service) {
		s.audit = log
	}
}

// service implements the Service interface.
type service struct {
	store Store
	audit audit.Logger
	now   func() time.Time
}

// NewService creates a trial Service backed by the given store.
// Panics if store is nil to fail fast during initialization.
func NewService(store Store, opts ...Option) Service {
	if store == nil {
		panic("trial: store is required")
	}

	s := &service{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start begins or resets the user's trial window.
func (s *service) Start(ctx context.Context, userID uuid.UUID) (*User, error) {
	user, err := s.store.FindUser(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.Join(ErrFailedToStartTrial, err)
	}

	action := ActionStarted
	if user.TrialStarted {
		action = ActionReset
	}

	// AddDate counts calendar days, so the window survives DST shifts.
	expiresAt := s.now().UTC().AddDate(0, 0, TrialDays)

	updated, err := s.store.UpdateTrialFields(ctx, userID, expiresAt, limits.TierTrial)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.Join(ErrFailedToStartTrial, err)
	}

	if s.audit != nil {
		// Audit failures must not fail the trial itself; the entry is a
		// side effect, not part of the state change.
		_ = s.audit.Log(ctx, action,
			audit.WithUserID(userID.String()),
			audit.WithResource("user", userID.String()),
			audit.WithMetadata("trial_expires_at", expiresAt.Format(time.RFC3339)),
		)
	}

	return updated, nil
}

// Get returns the user's current trial fields.
func (s *service) Get(ctx context.Context, userID uuid.UUID) (*User, error) {
	return s.store.FindUser(ctx, userID)
}
