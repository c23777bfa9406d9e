package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SchemaSQL is idempotent, safe to run on every service start.
// Users are document-shaped: routines and workouts live in ordered jsonb arrays.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS users
(
    id            SERIAL PRIMARY KEY,
    email         VARCHAR     NOT NULL,
    name          VARCHAR     NOT NULL,
    password_hash VARCHAR     NOT NULL,
    routines      JSONB       NOT NULL DEFAULT '[]',
    workouts      JSONB       NOT NULL DEFAULT '[]',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX IF NOT EXISTS ux_users_email ON users (email);

CREATE TABLE IF NOT EXISTS exercises
(
    id                VARCHAR PRIMARY KEY,
    name              VARCHAR NOT NULL,
    body_part         VARCHAR NOT NULL,
    target            VARCHAR NOT NULL DEFAULT '',
    secondary_muscles JSONB   NOT NULL DEFAULT '[]',
    equipment         VARCHAR NOT NULL DEFAULT '',
    instructions      JSONB   NOT NULL DEFAULT '[]',
    gif_url           VARCHAR NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS ix_exercises_body_part ON exercises (body_part);
`

func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, SchemaSQL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
