package usage

import (
	"time"

	"github.com/google/uuid"
)

// Counter names a monotonically incrementing usage counter on a period.
type Counter string

const (
	CounterWorkflowRuns       Counter = "workflow_runs"
	CounterDocumentsProcessed Counter = "documents_processed"
	CounterAPICalls           Counter = "api_calls"
)

// Counters returns every tracked counter name.
func Counters() []Counter {
	return []Counter{CounterWorkflowRuns, CounterDocumentsProcessed, CounterAPICalls}
}

// Valid reports whether the counter is one of the tracked counter names.
func (c Counter) Valid() bool {
	switch c {
	case CounterWorkflowRuns, CounterDocumentsProcessed, CounterAPICalls:
		return true
	}
	return false
}

// Period accumulates usage counters for one user over one calendar month.
// The window boundaries are inclusive on both ends. Periods are created
// lazily on the first tracked event of a month, mutated only by increment,
// and never deleted; history is retained for analytics.
type Period struct {
	ID                 uuid.UUID `json:"id"`
	UserID             uuid.UUID `json:"user_id"`
	PeriodStart        time.Time `json:"period_start"`
	PeriodEnd          time.Time `json:"period_end"`
	WorkflowRuns       int64     `json:"workflow_runs"`
	DocumentsProcessed int64     `json:"documents_processed"`
	APICalls           int64     `json:"api_calls"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Value returns the named counter's current value. Unknown counters read as zero.
func (p *Period) Value(c Counter) int64 {
	switch c {
	case CounterWorkflowRuns:
		return p.WorkflowRuns
	case CounterDocumentsProcessed:
		return p.DocumentsProcessed
	case CounterAPICalls:
		return p.APICalls
	}
	return 0
}

// Contains reports whether the instant falls inside the period window,
// boundaries included.
func (p *Period) Contains(at time.Time) bool {
	return !at.Before(p.PeriodStart) && !at.After(p.PeriodEnd)
}
