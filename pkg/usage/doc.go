// Package usage meters CortexCloud actions into monthly usage periods.
// Every metered action (workflow run, document processed, API call)
// increments a named counter on the user's current calendar-month period,
// which is created lazily on the first event of a new month.
//
// Tracking is unconditional by design: the tracker never enforces quotas.
// Enforcement happens before tracking, by checking the limits package
// against the counter values this package accumulates.
//
// Concurrency: the increment is a single atomic operation at the storage
// layer (SQL `SET c = c + 1` upsert, Redis HIncrBy, or a mutex-held add in
// memory), so N concurrent tracks for the same user and month always land
// at exactly N. Tracks for different users are fully independent.
//
// Basic usage:
//
//	store := usage.NewPostgresStore(pool)
//	tracker := usage.NewTracker(store)
//
//	period, err := tracker.Track(ctx, userID, usage.CounterAPICalls)
//	if err != nil {
//	    // ErrUserNotFound, ErrUnknownCounter, or a wrapped storage failure
//	}
//	_ = period.APICalls
//
// The clock is injectable for tests:
//
//	tracker := usage.NewTracker(store, usage.WithClock(func() time.Time {
//	    return fixedTime
//	}))
package usage
