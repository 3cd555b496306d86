package usage

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store persists usage periods. Implementations must make Increment a
// single atomic find-or-create-and-add operation: concurrent calls for the
// same user and window must not lose updates, so the add cannot be a
// read-modify-write pair in application code.
type Store interface {
	// Increment adds 1 to the named counter on the period containing `now`
	// for the user, creating the period with the given window when none
	// exists yet. The lookup is by containment, not window equality, so a
	// period created from a slightly different "now" within the same month
	// is still reused. Returns the period after the increment.
	//
	// Returns ErrUserNotFound when the user does not exist.
	Increment(ctx context.Context, userID uuid.UUID, counter Counter, now, periodStart, periodEnd time.Time) (*Period, error)

	// Periods returns all retained periods for a user, newest first.
	Periods(ctx context.Context, userID uuid.UUID) ([]Period, error)
}
