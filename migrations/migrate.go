// Package migrations embeds the goose SQL migrations for the two logical
// client databases and applies them on store open. Migrations are
// additive-only: opening an existing database never drops or rewrites a
// collection that is already there.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed autosave/*.sql cache/*.sql
var embedMigrations embed.FS

// goose keeps the base FS and dialect as package-level state; serialize
// concurrent opens of the two databases.
var mu sync.Mutex

// MigrateAutosave brings the drafts/queue/session database up to date.
func MigrateAutosave(db *sql.DB) error {
	return up(db, "autosave")
}

// MigrateCache brings the offline cache database up to date.
func MigrateCache(db *sql.DB) error {
	return up(db, "cache")
}

func up(db *sql.DB, dir string) error {
	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
