package usage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cortexcloud/entitlements/pkg/pg"
)

// counterColumns whitelists the column per counter. Column names are never
// taken from input, so the fmt.Sprintf below cannot inject SQL.
var counterColumns = map[Counter]string{
	CounterWorkflowRuns:       "workflow_runs",
	CounterDocumentsProcessed: "documents_processed",
	CounterAPICalls:           "api_calls",
}

const periodColumns = "id, user_id, period_start, period_end, workflow_runs, documents_processed, api_calls, created_at, updated_at"

// PostgresStore persists usage periods in PostgreSQL.
// Increments are atomic at the database: the containing period is updated
// with a single `SET c = c + 1`, and first-of-month races collapse into the
// unique (user_id, period_start) key via ON CONFLICT.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a store backed by the given connection pool.
// Panics if pool is nil to fail fast during initialization.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	if pool == nil {
		panic("usage: pgx pool is required")
	}
	return &PostgresStore{pool: pool}
}

// Increment adds 1 to the named counter on the period containing now,
// inserting a fresh period when none brackets the instant.
func (s *PostgresStore) Increment(ctx context.Context, userID uuid.UUID, counter Counter, now, periodStart, periodEnd time.Time) (*Period, error) {
	column, ok := counterColumns[counter]
	if !ok {
		return nil, ErrUnknownCounter
	}

	// Containment update first: a period created from a slightly different
	// "now" within the same month is still reused.
	update := fmt.Sprintf(`
		UPDATE usage_periods
		SET %s = %s + 1, updated_at = $3
		WHERE user_id = $1 AND period_start <= $2 AND period_end >= $2
		RETURNING `+periodColumns, column, column)

	period, err := scanPeriod(s.pool.QueryRow(ctx, update, userID, now, now))
	if err == nil {
		return period, nil
	}
	if !pg.IsNotFoundError(err) {
		return nil, err
	}

	// No containing period: insert one with the named counter at 1. A
	// concurrent insert for the same month loses the (user_id, period_start)
	// race and degrades into the increment branch instead of failing.
	insert := fmt.Sprintf(`
		INSERT INTO usage_periods (id, user_id, period_start, period_end, %s, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 1, $5, $5)
		ON CONFLICT (user_id, period_start)
		DO UPDATE SET %s = usage_periods.%s + 1, updated_at = EXCLUDED.updated_at
		RETURNING `+periodColumns, column, column, column)

	period, err = scanPeriod(s.pool.QueryRow(ctx, insert, uuid.New(), userID, periodStart, periodEnd, now))
	if err != nil {
		if pg.IsForeignKeyViolationError(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return period, nil
}

// Periods returns all retained periods for a user, newest first.
func (s *PostgresStore) Periods(ctx context.Context, userID uuid.UUID) ([]Period, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+periodColumns+`
		FROM usage_periods
		WHERE user_id = $1
		ORDER BY period_start DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []Period
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, err
		}
		periods = append(periods, *p)
	}

	return periods, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPeriod(row rowScanner) (*Period, error) {
	var p Period
	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.PeriodStart,
		&p.PeriodEnd,
		&p.WorkflowRuns,
		&p.DocumentsProcessed,
		&p.APICalls,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
