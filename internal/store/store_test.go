package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"crmsync/internal/logger"
	"crmsync/migrations"
)

// newTestAutosaveDB opens a fresh in-memory database with the autosave schema
// applied. MaxOpenConns is pinned to 1 so every query hits the same in-memory
// database.
func newTestAutosaveDB(t *testing.T) *DB {
	t.Helper()
	return newTestDB(t, migrations.MigrateAutosave)
}

func newTestCacheDB(t *testing.T) *DB {
	t.Helper()
	return newTestDB(t, migrations.MigrateCache)
}

func newTestDB(t *testing.T, migrate func(*sql.DB) error) *DB {
	t.Helper()

	conn, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, migrate(conn))

	return &DB{DB: conn, logger: logger.Nop()}
}

func testContext() context.Context {
	return context.Background()
}
