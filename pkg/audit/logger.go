package audit

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Logger records audited actions.
type Logger interface {
	// Log records a successful action.
	Log(ctx context.Context, action string, opts ...EntryOption) error

	// LogError records a failed action.
	LogError(ctx context.Context, action string, actionErr error, opts ...EntryOption) error
}

// contextExtractor extracts a string value from context.
// It returns (value, found) where found indicates if extraction succeeded.
type contextExtractor func(context.Context) (string, bool)

// Option configures the audit logger.
type Option func(*logger)

// WithUserIDExtractor pulls the acting user ID from the request context so
// call sites don't have to pass it explicitly.
func WithUserIDExtractor(fn contextExtractor) Option {
	return func(l *logger) {
		if fn != nil {
			l.userIDExtractor = fn
		}
	}
}

// WithClock overrides the time source for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(l *logger) {
		if now != nil {
			l.now = now
		}
	}
}

type logger struct {
	storage         Storage
	userIDExtractor contextExtractor
	now             func() time.Time
}

// NewLogger creates a new audit logger.
// Panics if storage is nil to fail fast during initialization.
func NewLogger(storage Storage, opts ...Option) Logger {
	if storage == nil {
		panic("audit: storage cannot be nil")
	}

	l := &logger{
		storage: storage,
		now:     func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Log records a successful action.
func (l *logger) Log(ctx context.Context, action string, opts ...EntryOption) error {
	entry := l.newEntry(ctx, action, ResultSuccess, opts...)

	if err := entry.Validate(); err != nil {
		return err
	}

	if err := l.storage.Store(ctx, entry); err != nil {
		return errors.Join(ErrFailedToStoreEntry, err)
	}
	return nil
}

// LogError records a failed action.
func (l *logger) LogError(ctx context.Context, action string, actionErr error, opts ...EntryOption) error {
	entry := l.newEntry(ctx, action, ResultError, opts...)
	if actionErr != nil {
		entry.Error = actionErr.Error()
	}

	if err := entry.Validate(); err != nil {
		return err
	}

	if err := l.storage.Store(ctx, entry); err != nil {
		return errors.Join(ErrFailedToStoreEntry, err)
	}
	return nil
}

func (l *logger) newEntry(ctx context.Context, action string, result Result, opts ...EntryOption) Entry {
	entry := Entry{
		ID:        uuid.New().String(),
		Action:    action,
		Result:    result,
		CreatedAt: l.now().UTC(),
	}

	if l.userIDExtractor != nil {
		if userID, ok := l.userIDExtractor(ctx); ok {
			entry.UserID = userID
		}
	}

	for _, opt := range opts {
		opt(&entry)
	}

	return entry
}
