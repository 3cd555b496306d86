// Package entitlements composes the CortexCloud entitlement cores
// (permission resolution, subscription quotas, usage metering, and the
// trial lifecycle) behind a single service consumed by route handlers.
//
// The intended request flow:
//
//	// signup
//	user, _ := svc.StartTrial(ctx, userID)
//
//	// before each metered action
//	result, _ := svc.GetUsage(ctx, userID, limits.ResourceWorkflowRuns)
//	if !result.Allowed {
//	    // reject: quota reached
//	}
//
//	// after performing the action
//	svc.TrackUsage(ctx, userID, usage.CounterWorkflowRuns)
//
//	// on authorization-sensitive routes
//	if !svc.CanAccessResource(role, ownerID, currentUserID, rbac.PermissionReadAllData) {
//	    // deny
//	}
package entitlements
