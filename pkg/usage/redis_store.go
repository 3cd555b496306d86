package usage

import (
	"context"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// UserExistsFunc reports whether a user exists. Used by RedisStore, which
// has no foreign key to lean on.
type UserExistsFunc func(ctx context.Context, userID uuid.UUID) (bool, error)

// RedisStoreOption configures the RedisStore.
type RedisStoreOption func(*RedisStore)

// WithUserExistsFunc installs a user existence check, restoring the
// no-orphan-periods guarantee the SQL foreign key provides. Without it the
// store accepts any user ID.
func WithUserExistsFunc(fn UserExistsFunc) RedisStoreOption {
	return func(s *RedisStore) {
		if fn != nil {
			s.userExists = fn
		}
	}
}

// RedisStore keeps usage periods in Redis hashes, one hash per user month.
// HIncrBy makes the increment atomic server-side, so concurrent tracks for
// the same user never lose updates. Intended for deployments that meter hot
// counters outside the primary database.
type RedisStore struct {
	client     redis.UniversalClient
	userExists UserExistsFunc
}

// NewRedisStore creates a store backed by the given Redis client.
// Panics if client is nil to fail fast during initialization.
func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) *RedisStore {
	if client == nil {
		panic("usage: redis client is required")
	}

	s := &RedisStore{client: client}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func periodKey(userID uuid.UUID, periodStart time.Time) string {
	return "usage:period:" + userID.String() + ":" + periodStart.UTC().Format("2006-01")
}

func indexKey(userID uuid.UUID) string {
	return "usage:index:" + userID.String()
}

// Increment adds 1 to the named counter on the user's month hash, seeding
// the period metadata fields on first touch.
//
// The month key is derived from the freshly computed window rather than the
// stored boundaries; both resolve to the same calendar month for any "now"
// inside it, which preserves the containment-reuse behavior.
func (s *RedisStore) Increment(ctx context.Context, userID uuid.UUID, counter Counter, now, periodStart, periodEnd time.Time) (*Period, error) {
	if !counter.Valid() {
		return nil, ErrUnknownCounter
	}

	if s.userExists != nil {
		exists, err := s.userExists(ctx, userID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrUserNotFound
		}
	}

	key := periodKey(userID, periodStart)

	pipe := s.client.TxPipeline()
	pipe.HSetNX(ctx, key, "id", uuid.New().String())
	pipe.HSetNX(ctx, key, "period_start", periodStart.UTC().Format(time.RFC3339Nano))
	pipe.HSetNX(ctx, key, "period_end", periodEnd.UTC().Format(time.RFC3339Nano))
	pipe.HSetNX(ctx, key, "created_at", now.UTC().Format(time.RFC3339Nano))
	pipe.HIncrBy(ctx, key, string(counter), 1)
	pipe.HSet(ctx, key, "updated_at", now.UTC().Format(time.RFC3339Nano))
	pipe.SAdd(ctx, indexKey(userID), key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	fields, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	return periodFromHash(userID, fields)
}

// Periods returns all retained periods for a user, newest first.
func (s *RedisStore) Periods(ctx context.Context, userID uuid.UUID) ([]Period, error) {
	keys, err := s.client.SMembers(ctx, indexKey(userID)).Result()
	if err != nil {
		return nil, err
	}

	periods := make([]Period, 0, len(keys))
	for _, key := range keys {
		fields, err := s.client.HGetAll(ctx, key).Result()
		if err != nil {
			return nil, err
		}
		if len(fields) == 0 {
			continue
		}

		p, err := periodFromHash(userID, fields)
		if err != nil {
			return nil, err
		}
		periods = append(periods, *p)
	}

	slices.SortFunc(periods, func(a, b Period) int {
		return b.PeriodStart.Compare(a.PeriodStart)
	})
	return periods, nil
}

func periodFromHash(userID uuid.UUID, fields map[string]string) (*Period, error) {
	p := &Period{UserID: userID}

	if raw, ok := fields["id"]; ok {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		p.ID = id
	}

	var err error
	if p.PeriodStart, err = parseHashTime(fields, "period_start"); err != nil {
		return nil, err
	}
	if p.PeriodEnd, err = parseHashTime(fields, "period_end"); err != nil {
		return nil, err
	}
	if p.CreatedAt, err = parseHashTime(fields, "created_at"); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseHashTime(fields, "updated_at"); err != nil {
		return nil, err
	}

	if p.WorkflowRuns, err = parseHashInt(fields, string(CounterWorkflowRuns)); err != nil {
		return nil, err
	}
	if p.DocumentsProcessed, err = parseHashInt(fields, string(CounterDocumentsProcessed)); err != nil {
		return nil, err
	}
	if p.APICalls, err = parseHashInt(fields, string(CounterAPICalls)); err != nil {
		return nil, err
	}

	return p, nil
}

func parseHashTime(fields map[string]string, field string) (time.Time, error) {
	raw, ok := fields[field]
	if !ok {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, raw)
}

func parseHashInt(fields map[string]string, field string) (int64, error) {
	raw, ok := fields[field]
	if !ok {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}
