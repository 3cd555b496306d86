package entitlements

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cortexcloud/entitlements/pkg/audit"
	"github.com/cortexcloud/entitlements/pkg/limits"
	"github.com/cortexcloud/entitlements/pkg/rbac"
	"github.com/cortexcloud/entitlements/pkg/trial"
	"github.com/cortexcloud/entitlements/pkg/usage"
)

// ErrResourceNotMetered is returned by GetUsage for resources without a
// usage counter (seats and integrations are counted by their own tables,
// not by the usage tracker).
var ErrResourceNotMetered = errors.New("entitlements.errors.resource_not_metered")

// meteredCounters maps quota resources to their usage counters.
var meteredCounters = map[limits.Resource]usage.Counter{
	limits.ResourceWorkflowRuns: usage.CounterWorkflowRuns,
	limits.ResourceDocuments:    usage.CounterDocumentsProcessed,
	limits.ResourceAPICalls:     usage.CounterAPICalls,
}

// Config carries the collaborators for the composed service.
// UserStore and UsageStore are required; everything else has defaults.
type Config struct {
	// RoleSource defaults to the static CortexCloud roles.
	RoleSource rbac.RoleSource
	// LimitSource defaults to the CortexCloud quota table.
	LimitSource limits.Source
	// UserStore persists user trial fields (required).
	UserStore trial.Store
	// UsageStore persists usage periods (required).
	UsageStore usage.Store
	// AuditStorage, when set, records trial lifecycle actions.
	AuditStorage audit.Storage
	// Logger, when set, receives operational logs.
	Logger *slog.Logger
	// Clock overrides the time source for deterministic tests.
	Clock func() time.Time
}

// Service composes permission resolution, quota checking, usage metering,
// and the trial lifecycle behind one surface for route handlers.
type Service struct {
	resolver rbac.Resolver
	checker  limits.Checker
	tracker  usage.Tracker
	trials   trial.Service
	users    trial.Store
	log      *slog.Logger
}

// New wires the composed service.
// Panics when required stores are missing to fail fast during initialization;
// returns an error for configuration problems found while loading sources.
func New(ctx context.Context, cfg Config) (*Service, error) {
	if cfg.UserStore == nil {
		panic("entitlements: UserStore is required")
	}
	if cfg.UsageStore == nil {
		panic("entitlements: UsageStore is required")
	}

	roleSource := cfg.RoleSource
	if roleSource == nil {
		roleSource = rbac.NewDefaultRoleSource()
	}
	limitSource := cfg.LimitSource
	if limitSource == nil {
		limitSource = limits.NewDefaultSource()
	}

	resolver, err := rbac.NewResolver(ctx, roleSource)
	if err != nil {
		return nil, err
	}

	checker, err := limits.NewChecker(ctx, limitSource)
	if err != nil {
		return nil, err
	}

	var usageOpts []usage.Option
	var trialOpts []trial.Option
	if cfg.Clock != nil {
		usageOpts = append(usageOpts, usage.WithClock(cfg.Clock))
		trialOpts = append(trialOpts, trial.WithClock(cfg.Clock))
	}
	if cfg.AuditStorage != nil {
		auditOpts := []audit.Option{}
		if cfg.Clock != nil {
			auditOpts = append(auditOpts, audit.WithClock(cfg.Clock))
		}
		trialOpts = append(trialOpts, trial.WithAuditLogger(audit.NewLogger(cfg.AuditStorage, auditOpts...)))
	}

	return &Service{
		resolver: resolver,
		checker:  checker,
		tracker:  usage.NewTracker(cfg.UsageStore, usageOpts...),
		trials:   trial.NewService(cfg.UserStore, trialOpts...),
		users:    cfg.UserStore,
		log:      cfg.Logger,
	}, nil
}

// HasPermission reports whether the role holds the permission.
func (s *Service) HasPermission(role rbac.Role, permission rbac.Permission) bool {
	return s.resolver.HasPermission(role, permission)
}

// HasAnyPermission reports whether the role holds at least one of the permissions.
func (s *Service) HasAnyPermission(role rbac.Role, permissions ...rbac.Permission) bool {
	return s.resolver.HasAnyPermission(role, permissions...)
}

// HasAllPermissions reports whether the role holds every one of the permissions.
func (s *Service) HasAllPermissions(role rbac.Role, permissions ...rbac.Permission) bool {
	return s.resolver.HasAllPermissions(role, permissions...)
}

// CanAccessResource applies the owner bypass, then the permission check.
func (s *Service) CanAccessResource(role rbac.Role, resourceOwnerID, currentUserID uuid.UUID, permission rbac.Permission) bool {
	return s.resolver.CanAccessResource(role, resourceOwnerID, currentUserID, permission)
}

// CheckSubscriptionLimit reports whether one more unit of the resource may
// be consumed at the given usage under the given tier.
func (s *Service) CheckSubscriptionLimit(tier limits.Tier, res limits.Resource, currentUsage int64) (limits.Result, error) {
	return s.checker.Check(tier, res, currentUsage)
}

// TrackUsage unconditionally increments the named counter on the user's
// current period. Callers enforce quotas first via CheckSubscriptionLimit
// or GetUsage.
func (s *Service) TrackUsage(ctx context.Context, userID uuid.UUID, counter usage.Counter) (*usage.Period, error) {
	return s.tracker.Track(ctx, userID, counter)
}

// StartTrial begins (or resets) the user's 14-day trial.
func (s *Service) StartTrial(ctx context.Context, userID uuid.UUID) (*trial.User, error) {
	user, err := s.trials.Start(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.log != nil {
		s.log.InfoContext(ctx, "trial started",
			"user_id", userID.String(),
			"expires_at", user.TrialExpiresAt)
	}

	return user, nil
}

// TierFor resolves the user's current subscription tier.
func (s *Service) TierFor(ctx context.Context, userID uuid.UUID) (limits.Tier, error) {
	user, err := s.users.FindUser(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.SubscriptionTier, nil
}

// GetUsage resolves the user's tier and current counter value, then checks
// the quota. This is the read path billing and dashboard pages render from.
func (s *Service) GetUsage(ctx context.Context, userID uuid.UUID, res limits.Resource) (limits.Result, error) {
	counter, metered := meteredCounters[res]
	if !metered {
		return limits.Result{}, ErrResourceNotMetered
	}

	tier, err := s.TierFor(ctx, userID)
	if err != nil {
		return limits.Result{}, err
	}

	current, err := s.tracker.CurrentValue(ctx, userID, counter)
	if err != nil {
		return limits.Result{}, err
	}

	return s.checker.Check(tier, res, current)
}

// UsageHistory returns the user's retained usage periods, newest first.
func (s *Service) UsageHistory(ctx context.Context, userID uuid.UUID) ([]usage.Period, error) {
	return s.tracker.History(ctx, userID)
}
