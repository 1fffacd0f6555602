package storage

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestRunMigrationsCreatesSchema(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(db))

	tables := []string{
		"routine_items", "routine_completions", "daily_entries",
		"weight_logs", "reading_sessions", "project_logs", "user_settings",
	}
	for _, table := range tables {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}

	version, err := SchemaVersion(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	// Re-running is a no-op
	require.NoError(t, RunMigrations(db))
}

func TestUniqueConstraints(t *testing.T) {
	store := newTestStore(t)

	_, err := store.db.Exec("INSERT INTO routine_completions (routine_id, date) VALUES (1, '2026-03-14')")
	require.NoError(t, err)
	_, err = store.db.Exec("INSERT INTO routine_completions (routine_id, date) VALUES (1, '2026-03-14')")
	require.Error(t, err)
	assert.True(t, isUniqueViolation(err))

	// Same routine on another date is fine
	_, err = store.db.Exec("INSERT INTO routine_completions (routine_id, date) VALUES (1, '2026-03-15')")
	assert.NoError(t, err)
}
