package audit

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStorage persists audit entries in PostgreSQL.
// The audit_log table is insert-only; nothing in this package updates or
// deletes rows.
type PostgresStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresStorage creates a storage backed by the given connection pool.
// Panics if pool is nil to fail fast during initialization.
func NewPostgresStorage(pool *pgxpool.Pool) *PostgresStorage {
	if pool == nil {
		panic("audit: pgx pool is required")
	}
	return &PostgresStorage{pool: pool}
}

// Store inserts the entry.
func (s *PostgresStorage) Store(ctx context.Context, entry Entry) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO audit_log (id, user_id, action, resource, resource_id, result, error, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		entry.ID,
		nullable(entry.UserID),
		entry.Action,
		nullable(entry.Resource),
		nullable(entry.ResourceID),
		string(entry.Result),
		nullable(entry.Error),
		entry.Metadata,
		entry.CreatedAt,
	)
	return err
}

// nullable maps empty strings to SQL NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
