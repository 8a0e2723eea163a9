package schema

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SchemaSQL contains the full database schema initialization script.
// Safe to run repeatedly - every statement uses IF NOT EXISTS.
//
// telemetry_sessions and scores deliberately carry no foreign keys: the game
// client submits raw identifiers and rows are append-only history.
const SchemaSQL = `
-- Accounts
CREATE TABLE IF NOT EXISTS users (
    uid TEXT PRIMARY KEY,
    username TEXT NOT NULL,
    email TEXT UNIQUE NOT NULL,
    school_name TEXT,
    auth_token TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Gameplay telemetry, one row per submission
CREATE TABLE IF NOT EXISTS telemetry_sessions (
    id BIGSERIAL PRIMARY KEY,
    user_id TEXT NOT NULL,
    session_id TEXT NOT NULL,
    level_id TEXT NOT NULL,
    total_questions INTEGER NOT NULL DEFAULT 0,
    wrong_answers INTEGER NOT NULL DEFAULT 0,
    scene_runs INTEGER NOT NULL DEFAULT 0,
    time_zone_3d REAL NOT NULL DEFAULT 0,
    timestamp_start TEXT,
    timestamp_end TEXT,
    hint_used BOOLEAN NOT NULL DEFAULT FALSE,
    final_score INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_telemetry_sessions_user_id ON telemetry_sessions(user_id);
CREATE INDEX IF NOT EXISTS idx_telemetry_sessions_level_id ON telemetry_sessions(level_id);

-- Score history, one row per submission, no uniqueness
CREATE TABLE IF NOT EXISTS scores (
    id BIGSERIAL PRIMARY KEY,
    user_id TEXT NOT NULL,
    level_id TEXT NOT NULL,
    score INTEGER NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_scores_user_id ON scores(user_id);
`

// Ensure applies the schema against the given pool.
func Ensure(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, SchemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
