package db

import (
	"database/sql"
	"fmt"
)

// MigrateUp creates the summaries and usage_events tables and their indexes.
// All statements are idempotent; running migrations repeatedly is safe.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS summaries (
    id              SERIAL PRIMARY KEY,
    source_type     VARCHAR(10) NOT NULL,
    source_content  TEXT,
    summary         TEXT NOT NULL,
    word_count      INTEGER NOT NULL DEFAULT 0,
    original_length INTEGER NOT NULL DEFAULT 0,
    method          VARCHAR(20) NOT NULL,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return fmt.Errorf("create summaries table: %w", err)
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS usage_events (
    id          SERIAL PRIMARY KEY,
    endpoint    TEXT NOT NULL,
    success     BOOLEAN NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return fmt.Errorf("create usage_events table: %w", err)
	}

	indexes := []string{
		// ORDER BY created_at DESC backs the history listing
		`CREATE INDEX IF NOT EXISTS idx_summaries_created_at ON summaries(created_at DESC)`,
		// success-rate aggregation
		`CREATE INDEX IF NOT EXISTS idx_usage_events_success ON usage_events(success)`,
		`CREATE INDEX IF NOT EXISTS idx_usage_events_endpoint ON usage_events(endpoint)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	return nil
}

// MigrateDown drops the service's tables. All data is lost.
func MigrateDown(db *sql.DB) error {
	for _, stmt := range []string{
		`DROP TABLE IF EXISTS usage_events`,
		`DROP TABLE IF EXISTS summaries`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	return nil
}
