// Package audit provides append-only audit logging for CortexCloud.
// Entries record who did what to which resource and are write-once: they
// are never mutated or deleted by this package.
//
// Basic usage:
//
//	storage := audit.NewPostgresStorage(pool)
//	log := audit.NewLogger(storage)
//
//	err := log.Log(ctx, "trial.started",
//	    audit.WithUserID(userID.String()),
//	    audit.WithResource("user", userID.String()),
//	)
//
// The acting user can also be resolved from the request context:
//
//	log := audit.NewLogger(storage, audit.WithUserIDExtractor(userIDFromContext))
package audit
