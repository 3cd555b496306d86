package usage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Tracker records metered actions against the user's current calendar-month
// period. It records unconditionally: quota enforcement is the caller's
// responsibility and happens before tracking, via the limits package.
type Tracker interface {
	// Track increments the named counter for the user's current period,
	// creating the period lazily on the first event of a new month.
	Track(ctx context.Context, userID uuid.UUID, counter Counter) (*Period, error)

	// CurrentValue returns the named counter's value for the user's current
	// period. A month with no tracked events yet reads as zero.
	CurrentValue(ctx context.Context, userID uuid.UUID, counter Counter) (int64, error)

	// History returns all retained periods for a user, newest first.
	History(ctx context.Context, userID uuid.UUID) ([]Period, error)
}

// Option configures the tracker.
type Option func(*tracker)

// WithClock overrides the time source, enabling deterministic tests and
// period-boundary simulations.
func WithClock(now func() time.Time) Option {
	return func(t *tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// tracker implements the Tracker interface.
type tracker struct {
	store Store
	now   func() time.Time
}

// NewTracker creates a Tracker backed by the given store.
// Panics if store is nil to fail fast during initialization.
func NewTracker(store Store, opts ...Option) Tracker {
	if store == nil {
		panic("usage: store is required")
	}

	t := &tracker{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Track increments the named counter for the user's current period.
func (t *tracker) Track(ctx context.Context, userID uuid.UUID, counter Counter) (*Period, error) {
	if !counter.Valid() {
		return nil, ErrUnknownCounter
	}

	now := t.now().UTC()
	periodStart, periodEnd := MonthWindow(now)

	period, err := t.store.Increment(ctx, userID, counter, now, periodStart, periodEnd)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrUnknownCounter) {
			return nil, err
		}
		return nil, errors.Join(ErrFailedToTrackUsage, err)
	}

	return period, nil
}

// CurrentValue returns the named counter's value for the user's current period.
func (t *tracker) CurrentValue(ctx context.Context, userID uuid.UUID, counter Counter) (int64, error) {
	if !counter.Valid() {
		return 0, ErrUnknownCounter
	}

	now := t.now().UTC()

	periods, err := t.store.Periods(ctx, userID)
	if err != nil {
		return 0, err
	}

	for i := range periods {
		if periods[i].Contains(now) {
			return periods[i].Value(counter), nil
		}
	}

	// No period yet this month: nothing has been tracked.
	return 0, nil
}

// History returns all retained periods for a user, newest first.
func (t *tracker) History(ctx context.Context, userID uuid.UUID) ([]Period, error) {
	return t.store.Periods(ctx, userID)
}
