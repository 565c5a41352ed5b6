package db_test

import (
	"testing"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesSchema(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	for _, table := range []string{"focus_sessions", "app_state", "blocklist_entries", "focus_schedules"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	// Re-running the full migration set must not error, including the
	// ALTER TABLE statements.
	require.NoError(t, db.Migrate(database))
	require.NoError(t, db.Migrate(database))
}

func TestMigrate_ActualSecondsColumnPresent(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	_, err = database.Exec(`INSERT INTO focus_sessions
		(id, start_time, duration_min, actual_seconds, created_at)
		VALUES ('s1', '2026-03-01T09:00:00Z', 25, 600, '2026-03-01T09:00:00Z')`)
	require.NoError(t, err)

	var actual int
	require.NoError(t, database.QueryRow(
		`SELECT actual_seconds FROM focus_sessions WHERE id = 's1'`).Scan(&actual))
	assert.Equal(t, 600, actual)
}
