package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
)

// Execer is the subset of pgxpool.Pool that Migrate needs.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tweets (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS tweets_created_at_idx ON tweets (created_at)`,
}

// Migrate applies the schema statements in order. Every statement is
// idempotent, so running at each startup is safe.
func Migrate(ctx context.Context, db Execer) error {
	for _, stmt := range migrations {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
