package audit

import "context"

// Storage persists audit entries. Implementations are append-only.
type Storage interface {
	// Store persists a single entry.
	Store(ctx context.Context, entry Entry) error
}
