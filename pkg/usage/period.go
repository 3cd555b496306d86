package usage

import "time"

// MonthWindow returns the inclusive calendar-month window bracketing the
// given instant, in UTC. The end boundary is the last representable instant
// of the month, so a timestamp equal to the end still belongs to the window
// and the next nanosecond starts a new one.
func MonthWindow(at time.Time) (start, end time.Time) {
	at = at.UTC()
	start = time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}
