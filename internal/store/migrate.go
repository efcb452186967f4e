package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id              BIGSERIAL PRIMARY KEY,
		email           TEXT NOT NULL UNIQUE,
		username        TEXT NOT NULL UNIQUE,
		hashed_password TEXT NOT NULL,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS questions (
		id          BIGSERIAL PRIMARY KEY,
		text        TEXT NOT NULL,
		answer      TEXT NOT NULL,
		language    TEXT NOT NULL DEFAULT 'english',
		subject     TEXT NOT NULL,
		class_level TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		owner_id    BIGINT REFERENCES users (id)
	)`,
	`CREATE INDEX IF NOT EXISTS questions_owner_created_idx
		ON questions (owner_id, created_at DESC)`,
}

// Migrate creates the schema. Statements are idempotent so running the
// command against an existing database is safe.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}
	return nil
}
