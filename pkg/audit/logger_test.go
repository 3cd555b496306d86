package audit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortexcloud/entitlements/pkg/audit"
)

func TestLogger_Log(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	storage := audit.NewMemoryStorage()
	logger := audit.NewLogger(storage, audit.WithClock(func() time.Time { return now }))

	err := logger.Log(context.Background(), "trial.started",
		audit.WithUserID("user-1"),
		audit.WithResource("user", "user-1"),
		audit.WithMetadata("trial_expires_at", "2026-09-15T10:00:00Z"),
	)
	require.NoError(t, err)

	entries := storage.Entries()
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "trial.started", entry.Action)
	assert.Equal(t, audit.ResultSuccess, entry.Result)
	assert.Equal(t, "user-1", entry.UserID)
	assert.Equal(t, "user", entry.Resource)
	assert.Equal(t, "user-1", entry.ResourceID)
	assert.Equal(t, "2026-09-15T10:00:00Z", entry.Metadata["trial_expires_at"])
	assert.Equal(t, now, entry.CreatedAt)
	assert.Empty(t, entry.Error)
}

func TestLogger_LogError(t *testing.T) {
	t.Parallel()

	storage := audit.NewMemoryStorage()
	logger := audit.NewLogger(storage)

	err := logger.LogError(context.Background(), "trial.started", errors.New("boom"),
		audit.WithUserID("user-2"))
	require.NoError(t, err)

	entries := storage.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, audit.ResultError, entries[0].Result)
	assert.Equal(t, "boom", entries[0].Error)
}

func TestLogger_Log_RequiresAction(t *testing.T) {
	t.Parallel()

	storage := audit.NewMemoryStorage()
	logger := audit.NewLogger(storage)

	err := logger.Log(context.Background(), "")
	assert.ErrorIs(t, err, audit.ErrEntryValidation)
	assert.Empty(t, storage.Entries())
}

func TestLogger_UserIDExtractor(t *testing.T) {
	t.Parallel()

	type userIDKey struct{}

	storage := audit.NewMemoryStorage()
	logger := audit.NewLogger(storage, audit.WithUserIDExtractor(func(ctx context.Context) (string, bool) {
		userID, ok := ctx.Value(userIDKey{}).(string)
		return userID, ok
	}))

	ctx := context.WithValue(context.Background(), userIDKey{}, "ctx-user")
	require.NoError(t, logger.Log(ctx, "workflow.run"))

	entries := storage.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "ctx-user", entries[0].UserID)
}

func TestLogger_StorageFailurePropagates(t *testing.T) {
	t.Parallel()

	logger := audit.NewLogger(failingStorage{})

	err := logger.Log(context.Background(), "trial.started")
	assert.ErrorIs(t, err, audit.ErrFailedToStoreEntry)
}

type failingStorage struct{}

func (failingStorage) Store(ctx context.Context, entry audit.Entry) error {
	return errors.New("storage down")
}

func TestMemoryStorage_EntriesAreCopies(t *testing.T) {
	t.Parallel()

	storage := audit.NewMemoryStorage()
	logger := audit.NewLogger(storage)
	require.NoError(t, logger.Log(context.Background(), "a"))

	entries := storage.Entries()
	entries[0].Action = "mutated"

	assert.Equal(t, "a", storage.Entries()[0].Action)
}
