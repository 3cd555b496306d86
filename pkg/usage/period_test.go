package usage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cortexcloud/entitlements/pkg/usage"
)

func TestMonthWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		at        time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "mid month",
			at:        time.Date(2026, time.September, 15, 13, 45, 0, 0, time.UTC),
			wantStart: time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.September, 30, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:      "first instant of month",
			at:        time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.April, 30, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:      "december rolls into january",
			at:        time.Date(2026, time.December, 31, 23, 59, 59, 999999999, time.UTC),
			wantStart: time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.December, 31, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:      "leap february",
			at:        time.Date(2028, time.February, 10, 6, 0, 0, 0, time.UTC),
			wantStart: time.Date(2028, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2028, time.February, 29, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:      "non-utc input normalized to utc",
			at:        time.Date(2026, time.July, 1, 1, 30, 0, 0, time.FixedZone("CEST", 2*60*60)),
			wantStart: time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.June, 30, 23, 59, 59, 999999999, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			start, end := usage.MonthWindow(tt.at)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestPeriod_Contains(t *testing.T) {
	t.Parallel()

	start, end := usage.MonthWindow(time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC))
	p := usage.Period{PeriodStart: start, PeriodEnd: end}

	assert.True(t, p.Contains(start), "period_start is inclusive")
	assert.True(t, p.Contains(end), "period_end is inclusive")
	assert.True(t, p.Contains(start.AddDate(0, 0, 12)))
	assert.False(t, p.Contains(start.Add(-time.Nanosecond)))
	assert.False(t, p.Contains(end.Add(time.Nanosecond)))
}

func TestPeriod_Value(t *testing.T) {
	t.Parallel()

	p := usage.Period{WorkflowRuns: 7, DocumentsProcessed: 3, APICalls: 42}

	assert.Equal(t, int64(7), p.Value(usage.CounterWorkflowRuns))
	assert.Equal(t, int64(3), p.Value(usage.CounterDocumentsProcessed))
	assert.Equal(t, int64(42), p.Value(usage.CounterAPICalls))
	assert.Equal(t, int64(0), p.Value(usage.Counter("disk_gb")))
}

func TestCounter_Valid(t *testing.T) {
	t.Parallel()

	for _, c := range usage.Counters() {
		assert.True(t, c.Valid())
	}
	assert.False(t, usage.Counter("").Valid())
	assert.False(t, usage.Counter("disk_gb").Valid())
}
