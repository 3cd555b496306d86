package limits

// Tier identifies a CortexCloud subscription plan level.
type Tier string

const (
	TierTrial        Tier = "trial"
	TierStarter      Tier = "starter"
	TierProfessional Tier = "professional"
	TierBusiness     Tier = "business"
	TierEnterprise   Tier = "enterprise"
)

// Tiers returns all subscription tiers in ascending order of privilege.
func Tiers() []Tier {
	return []Tier{TierTrial, TierStarter, TierProfessional, TierBusiness, TierEnterprise}
}

// Resource represents a countable metered resource type.
type Resource string

const (
	ResourceWorkflowRuns Resource = "workflow_runs"
	ResourceDocuments    Resource = "documents"
	ResourceUsers        Resource = "users"
	ResourceAPICalls     Resource = "api_calls"
	ResourceIntegrations Resource = "integrations"
)

// Resources returns every metered resource. Each tier must define a limit
// for every entry in this list.
func Resources() []Resource {
	return []Resource{
		ResourceWorkflowRuns,
		ResourceDocuments,
		ResourceUsers,
		ResourceAPICalls,
		ResourceIntegrations,
	}
}

const (
	// Unlimited indicates no limit for a resource (-1 chosen for SQL compatibility).
	Unlimited int64 = -1
)

// Limits maps each resource to its quota for one tier.
type Limits map[Resource]int64

// Table is the full tier-to-limits mapping. It is static configuration:
// loaded once at startup and never mutated at runtime.
type Table map[Tier]Limits

// Result is the outcome of a limit check.
// When the resource is unlimited, Limit and Remaining both carry the
// Unlimited sentinel so callers can distinguish "no cap" from a large cap.
type Result struct {
	Allowed   bool  `json:"allowed"`
	Limit     int64 `json:"limit"`
	Remaining int64 `json:"remaining"`
}

// IsUnlimited reports whether the checked resource has no cap.
// Callers must not do arithmetic on Limit or Remaining when this is true.
func (r Result) IsUnlimited() bool {
	return r.Limit == Unlimited
}
