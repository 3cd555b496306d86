package entitlements_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortexcloud/entitlements/pkg/audit"
	"github.com/cortexcloud/entitlements/pkg/limits"
	"github.com/cortexcloud/entitlements/pkg/rbac"
	"github.com/cortexcloud/entitlements/pkg/trial"
	"github.com/cortexcloud/entitlements/pkg/usage"
	"github.com/cortexcloud/entitlements/svc/entitlements"
)

func newTestService(t *testing.T, userID uuid.UUID, now func() time.Time) (*entitlements.Service, *trial.MemoryStore, *audit.MemoryStorage) {
	t.Helper()

	users := trial.NewMemoryStore()
	users.AddUser(trial.User{
		ID:               userID,
		Email:            "founder@example.com",
		SubscriptionTier: limits.TierTrial,
	})

	usageStore := usage.NewMemoryStore()
	usageStore.RegisterUser(userID)

	auditStorage := audit.NewMemoryStorage()

	svc, err := entitlements.New(context.Background(), entitlements.Config{
		UserStore:    users,
		UsageStore:   usageStore,
		AuditStorage: auditStorage,
		Clock:        now,
	})
	require.NoError(t, err)

	return svc, users, auditStorage
}

func TestService_SignupFlow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2025, time.March, 3, 9, 30, 0, 0, time.UTC)
	svc, _, auditStorage := newTestService(t, userID, func() time.Time { return now })

	// Signup starts the 14-day trial.
	user, err := svc.StartTrial(ctx, userID)
	require.NoError(t, err)
	assert.True(t, user.TrialStarted)
	assert.Equal(t, limits.TierTrial, user.SubscriptionTier)
	require.NotNil(t, user.TrialExpiresAt)
	assert.Equal(t, now.AddDate(0, 0, 14), *user.TrialExpiresAt)

	entries := auditStorage.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, trial.ActionStarted, entries[0].Action)

	// Fresh account has the full trial quota available.
	result, err := svc.GetUsage(ctx, userID, limits.ResourceWorkflowRuns)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, int64(100), result.Limit)
	assert.Equal(t, int64(100), result.Remaining)

	// Consume the entire workflow run quota.
	for range 100 {
		_, err := svc.TrackUsage(ctx, userID, usage.CounterWorkflowRuns)
		require.NoError(t, err)
	}

	result, err = svc.GetUsage(ctx, userID, limits.ResourceWorkflowRuns)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, int64(0), result.Remaining)

	// Other counters are unaffected.
	result, err = svc.GetUsage(ctx, userID, limits.ResourceDocuments)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, int64(50), result.Remaining)
}

func TestService_TrialReset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2025, time.March, 3, 9, 30, 0, 0, time.UTC)
	svc, _, auditStorage := newTestService(t, userID, func() time.Time { return now })

	_, err := svc.StartTrial(ctx, userID)
	require.NoError(t, err)

	now = now.AddDate(0, 0, 20)
	user, err := svc.StartTrial(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, user.TrialExpiresAt)
	assert.Equal(t, now.AddDate(0, 0, 14), *user.TrialExpiresAt)

	entries := auditStorage.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, trial.ActionStarted, entries[0].Action)
	assert.Equal(t, trial.ActionReset, entries[1].Action)
}

func TestService_CheckSubscriptionLimit(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	now := time.Now
	svc, _, _ := newTestService(t, userID, now)

	result, err := svc.CheckSubscriptionLimit(limits.TierStarter, limits.ResourceWorkflowRuns, 499)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, int64(1), result.Remaining)

	result, err = svc.CheckSubscriptionLimit(limits.TierStarter, limits.ResourceWorkflowRuns, 500)
	require.NoError(t, err)
	assert.False(t, result.Allowed)

	result, err = svc.CheckSubscriptionLimit(limits.TierEnterprise, limits.ResourceAPICalls, 10_000_000)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, limits.Unlimited, result.Limit)
	assert.Equal(t, limits.Unlimited, result.Remaining)

	_, err = svc.CheckSubscriptionLimit("platinum", limits.ResourceWorkflowRuns, 0)
	assert.ErrorIs(t, err, limits.ErrUnknownTier)
}

func TestService_GetUsageNotMetered(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc, _, _ := newTestService(t, userID, time.Now)

	_, err := svc.GetUsage(context.Background(), userID, limits.ResourceUsers)
	assert.ErrorIs(t, err, entitlements.ErrResourceNotMetered)

	_, err = svc.GetUsage(context.Background(), userID, limits.ResourceIntegrations)
	assert.ErrorIs(t, err, entitlements.ErrResourceNotMetered)
}

func TestService_GetUsageUnknownUser(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc, _, _ := newTestService(t, userID, time.Now)

	_, err := svc.GetUsage(context.Background(), uuid.New(), limits.ResourceAPICalls)
	assert.ErrorIs(t, err, trial.ErrUserNotFound)
}

func TestService_Permissions(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc, _, _ := newTestService(t, userID, time.Now)

	assert.True(t, svc.HasPermission(rbac.RoleAdmin, rbac.PermissionReadAllData))
	assert.False(t, svc.HasPermission(rbac.RoleUser, rbac.PermissionReadAllData))
	assert.True(t, svc.HasAnyPermission(rbac.RoleUser, rbac.PermissionManageSystem, rbac.PermissionReadOwnData))
	assert.False(t, svc.HasAllPermissions(rbac.RoleAdmin, rbac.PermissionReadAllData, rbac.PermissionManageSystem))

	ownerID := uuid.New()
	assert.True(t, svc.CanAccessResource(rbac.RoleUser, ownerID, ownerID, rbac.PermissionReadAllData))
	assert.False(t, svc.CanAccessResource(rbac.RoleUser, ownerID, uuid.New(), rbac.PermissionReadAllData))
}

func TestService_UsageHistory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, userID, func() time.Time { return now })

	_, err := svc.TrackUsage(ctx, userID, usage.CounterAPICalls)
	require.NoError(t, err)

	now = time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)
	_, err = svc.TrackUsage(ctx, userID, usage.CounterAPICalls)
	require.NoError(t, err)

	history, err := svc.UsageHistory(ctx, userID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, history[0].PeriodStart.After(history[1].PeriodStart))
}

func TestService_RequiresStores(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		_, _ = entitlements.New(context.Background(), entitlements.Config{
			UsageStore: usage.NewMemoryStore(),
		})
	})
	assert.Panics(t, func() {
		_, _ = entitlements.New(context.Background(), entitlements.Config{
			UserStore: trial.NewMemoryStore(),
		})
	})
}
