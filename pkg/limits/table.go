package limits

// DefaultTable returns the CortexCloud quota table.
// Every tier defines every resource; a partial record is a configuration
// bug that NewChecker rejects at startup.
func DefaultTable() Table {
	return Table{
		TierTrial: {
			ResourceWorkflowRuns: 100,
			ResourceDocuments:    50,
			ResourceUsers:        2,
			ResourceAPICalls:     1_000,
			ResourceIntegrations: 1,
		},
		TierStarter: {
			ResourceWorkflowRuns: 500,
			ResourceDocuments:    250,
			ResourceUsers:        5,
			ResourceAPICalls:     10_000,
			ResourceIntegrations: 3,
		},
		TierProfessional: {
			ResourceWorkflowRuns: 2_500,
			ResourceDocuments:    500,
			ResourceUsers:        25,
			ResourceAPICalls:     50_000,
			ResourceIntegrations: 10,
		},
		TierBusiness: {
			ResourceWorkflowRuns: 10_000,
			ResourceDocuments:    2_500,
			ResourceUsers:        100,
			ResourceAPICalls:     250_000,
			ResourceIntegrations: 25,
		},
		TierEnterprise: {
			ResourceWorkflowRuns: Unlimited,
			ResourceDocuments:    Unlimited,
			ResourceUsers:        Unlimited,
			ResourceAPICalls:     Unlimited,
			ResourceIntegrations: Unlimited,
		},
	}
}
