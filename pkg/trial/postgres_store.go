package trial

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cortexcloud/entitlements/pkg/limits"
	"github.com/cortexcloud/entitlements/pkg/pg"
)

const userColumns = "id, email, subscription_tier, trial_started, trial_expires_at, created_at, updated_at"

// PostgresStore persists user trial fields in PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a store backed by the given connection pool.
// Panics if pool is nil to fail fast during initialization.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	if pool == nil {
		panic("trial: pgx pool is required")
	}
	return &PostgresStore{pool: pool}
}

// FindUser retrieves a user by ID.
func (s *PostgresStore) FindUser(ctx context.Context, userID uuid.UUID) (*User, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1`, userID)

	user, err := scanUser(row)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// UpdateTrialFields overwrites the user's trial fields and subscription tier.
// Last writer wins; Start is not expected to race for the same user.
func (s *PostgresStore) UpdateTrialFields(ctx context.Context, userID uuid.UUID, expiresAt time.Time, tier limits.Tier) (*User, error) {
	row := s.pool.QueryRow(ctx, `
		UPDATE users
		SET trial_started = TRUE,
		    trial_expires_at = $2,
		    subscription_tier = $3,
		    updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns, userID, expiresAt.UTC(), string(tier))

	user, err := scanUser(row)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*User, error) {
	var (
		u    User
		tier string
	)
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&tier,
		&u.TrialStarted,
		&u.TrialExpiresAt,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	u.SubscriptionTier = limits.Tier(tier)
	return &u, nil
}
