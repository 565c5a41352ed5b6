package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS focus_sessions (
		id           TEXT PRIMARY KEY,
		start_time   TEXT NOT NULL,
		end_time     TEXT,
		duration_min INTEGER NOT NULL CHECK(duration_min > 0),
		stop_reason  TEXT NOT NULL DEFAULT ''
		             CHECK(stop_reason IN ('','expired','stopped')),
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_started ON focus_sessions(start_time)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_active ON focus_sessions(start_time) WHERE end_time IS NULL`,

	// Recovery checkpoint and other single-row app state live in a key/value
	// table; the checkpoint is a paint-fast cache, never authoritative.
	`CREATE TABLE IF NOT EXISTS app_state (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS blocklist_entries (
		id         TEXT PRIMARY KEY,
		kind       TEXT NOT NULL CHECK(kind IN ('app','site')),
		pattern    TEXT NOT NULL,
		created_at TEXT NOT NULL,
		UNIQUE(kind, pattern)
	)`,

	`CREATE TABLE IF NOT EXISTS focus_schedules (
		id           TEXT PRIMARY KEY,
		label        TEXT NOT NULL DEFAULT '',
		days         INTEGER NOT NULL DEFAULT 0,
		start_minute INTEGER NOT NULL CHECK(start_minute >= 0 AND start_minute < 1440),
		duration_min INTEGER NOT NULL CHECK(duration_min > 0),
		enabled      INTEGER NOT NULL DEFAULT 1,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	// Record actual elapsed time alongside the committed duration so stats
	// can distinguish planned from achieved focus time.
	`ALTER TABLE focus_sessions ADD COLUMN actual_seconds INTEGER NOT NULL DEFAULT 0`,
}
