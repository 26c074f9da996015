package db

import (
	"context"
	"database/sql"
	"fmt"
)

// EnsureSchema creates the tables the service needs when they do not exist
// yet. Statements are idempotent so startup can run this unconditionally.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            BIGSERIAL PRIMARY KEY,
			username      VARCHAR(100) NOT NULL UNIQUE,
			password_hash VARCHAR(200) NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS auth_sessions (
			id                 BIGSERIAL PRIMARY KEY,
			user_id            BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			session_token_hash CHAR(64) NOT NULL UNIQUE,
			expires_at         TIMESTAMPTZ NOT NULL,
			revoked_at         TIMESTAMPTZ,
			ip_address         VARCHAR(64),
			user_agent         TEXT,
			created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_auth_sessions_user_id ON auth_sessions (user_id)`,
		`CREATE TABLE IF NOT EXISTS test_sessions (
			user_id    BIGINT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			state      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS scores (
			id              UUID PRIMARY KEY,
			user_id         BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			total_score     INTEGER NOT NULL,
			math_score      INTEGER NOT NULL,
			rw_score        INTEGER NOT NULL,
			correct_count   INTEGER NOT NULL DEFAULT 0,
			total_answered  INTEGER NOT NULL DEFAULT 0,
			time_taken_secs BIGINT NOT NULL DEFAULT 0,
			answers_data    JSONB,
			created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scores_user_created ON scores (user_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
