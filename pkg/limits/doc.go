// Package limits provides subscription tier quotas for CortexCloud.
// It answers whether a tenant at a given tier may consume one more unit of
// a metered resource, given the tenant's current usage.
//
// The quota table is closed, static configuration: every tier defines every
// resource, the table is validated exhaustively when the checker is built,
// and it is never mutated at runtime. The Unlimited sentinel (-1) marks
// resources with no cap and is propagated unchanged in check results.
//
// Basic usage:
//
//	checker, err := limits.NewChecker(ctx, limits.NewDefaultSource())
//	if err != nil {
//	    // Configuration bug: fail startup
//	}
//
//	res, err := checker.Check(limits.TierProfessional, limits.ResourceDocuments, currentUsage)
//	if err != nil {
//	    // Unknown tier or resource
//	}
//	if !res.Allowed {
//	    // Quota reached: reject the action before tracking usage
//	}
//	if !res.IsUnlimited() {
//	    remaining := res.Remaining // safe: sentinel checked above
//	    _ = remaining
//	}
//
// The checker never records usage. Metering is the usage package's job, and
// enforcement order is the caller's responsibility: check first, then track.
package limits
