package trial

import "errors"

// Domain errors for the trial lifecycle.
var (
	// ErrUserNotFound is returned when the user does not exist.
	ErrUserNotFound = errors.New("trial.errors.user_not_found")

	// ErrFailedToStartTrial wraps opaque storage failures.
	ErrFailedToStartTrial = errors.New("trial.errors.failed_to_start_trial")
)
