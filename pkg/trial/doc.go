// Package trial manages the 14-day trial window of a CortexCloud user.
//
// Start stamps the trial fields unconditionally: calling it again resets
// the window. Because a reset silently re-extends a user's trial, every
// call is written to the audit log when a logger is configured, with a
// distinct action for resets.
//
// Expiry is advisory. This package never downgrades a tier on expiry;
// detecting and acting on expired trials belongs to an external scheduled
// job, as do transitions into paid tiers (billing webhooks).
//
// Basic usage:
//
//	store := trial.NewPostgresStore(pool)
//	svc := trial.NewService(store, trial.WithAuditLogger(auditLog))
//
//	user, err := svc.Start(ctx, userID)
//	if err != nil {
//	    // ErrUserNotFound or a wrapped storage failure
//	}
//	_ = user.TrialExpiresAt // now + 14 calendar days
package trial
