package usage

import "errors"

// Domain errors for usage tracking.
var (
	// ErrUserNotFound is returned when tracking is attempted for a user
	// that does not exist, instead of silently creating an orphaned period.
	ErrUserNotFound = errors.New("usage.errors.user_not_found")

	// ErrUnknownCounter is returned for counter names outside the tracked set.
	ErrUnknownCounter = errors.New("usage.errors.unknown_counter")

	// ErrFailedToTrackUsage wraps opaque storage failures. Retry policy
	// belongs to the storage layer; this package only propagates.
	ErrFailedToTrackUsage = errors.New("usage.errors.failed_to_track_usage")
)
