package audit

import "errors"

// Domain errors for audit logging.
var (
	// ErrEntryValidation is returned when a required entry field is missing.
	ErrEntryValidation = errors.New("audit.errors.entry_validation")

	// ErrFailedToStoreEntry wraps storage failures.
	ErrFailedToStoreEntry = errors.New("audit.errors.failed_to_store_entry")
)
