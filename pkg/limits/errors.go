package limits

import "errors"

// Domain errors for limit operations.
var (
	// Configuration errors, surfaced at construction time only.
	ErrFailedToLoadTable    = errors.New("limits.errors.failed_to_load_table")
	ErrInvalidConfiguration = errors.New("limits.errors.invalid_configuration")

	// Lookup errors for values that never passed configuration.
	ErrUnknownTier     = errors.New("limits.errors.unknown_tier")
	ErrUnknownResource = errors.New("limits.errors.unknown_resource")
)
