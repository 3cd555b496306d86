package trial

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cortexcloud/entitlements/pkg/limits"
)

// Store persists the trial fields of the user aggregate.
type Store interface {
	// FindUser retrieves a user by ID.
	// Returns ErrUserNotFound if no user exists.
	FindUser(ctx context.Context, userID uuid.UUID) (*User, error)

	// UpdateTrialFields overwrites the user's trial fields and subscription
	// tier, returning the updated user.
	// Returns ErrUserNotFound if no user exists.
	UpdateTrialFields(ctx context.Context, userID uuid.UUID, expiresAt time.Time, tier limits.Tier) (*User, error)
}
