package trial

import (
	"time"

	"github.com/google/uuid"

	"github.com/cortexcloud/entitlements/pkg/limits"
)

// User carries the subscription fields of the user aggregate that the trial
// lifecycle owns. The rest of the user record (credentials, profile) belongs
// to the account layer and is out of scope here.
type User struct {
	ID               uuid.UUID   `json:"id"`
	Email            string      `json:"email"`
	SubscriptionTier limits.Tier `json:"subscription_tier"`
	TrialStarted     bool        `json:"trial_started"`
	TrialExpiresAt   *time.Time  `json:"trial_expires_at,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// IsTrialExpiredAt reports whether the trial window has passed at the given
// time. Expiry is advisory: acting on it (downgrading the tier) is an
// external scheduled job's responsibility.
func (u *User) IsTrialExpiredAt(now time.Time) bool {
	if !u.TrialStarted || u.TrialExpiresAt == nil {
		return false
	}
	return now.UTC().After(*u.TrialExpiresAt)
}

// IsTrialExpired reports whether the trial window has passed.
func (u *User) IsTrialExpired() bool {
	return u.IsTrialExpiredAt(time.Now().UTC())
}

// TrialDaysRemainingAt returns the number of days left in the trial at a
// given time. Returns 0 when no trial is running or it has expired.
// This method is useful for testing with fixed time values.
func (u *User) TrialDaysRemainingAt(now time.Time) int {
	if !u.TrialStarted || u.TrialExpiresAt == nil {
		return 0
	}

	remaining := u.TrialExpiresAt.Sub(now.UTC())
	if remaining <= 0 {
		return 0
	}

	// Round up partial days for better UX
	days := remaining.Hours() / 24
	return int(days + 0.5)
}

// TrialDaysRemaining returns the number of days left in the trial.
func (u *User) TrialDaysRemaining() int {
	return u.TrialDaysRemainingAt(time.Now().UTC())
}
