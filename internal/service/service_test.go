package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"crmsync/internal/connectivity"
	"crmsync/internal/logger"
	"crmsync/internal/store"
	"crmsync/migrations"
)

// staticMonitor reports a fixed connectivity state.
type staticMonitor struct {
	online bool
}

func (m staticMonitor) IsOnline() bool                      { return m.online }
func (m staticMonitor) Subscribe() <-chan connectivity.Event { return nil }
func (m staticMonitor) Start(context.Context)                {}
func (m staticMonitor) Stop()                                {}

// newTestAutosaveStorages opens an in-memory autosave database with the real
// schema. One connection max, otherwise each pooled connection would see its
// own empty :memory: database.
func newTestAutosaveStorages(t *testing.T) (store.DraftRepository, store.OperationRepository) {
	t.Helper()

	db, err := store.NewConnectSQLite(context.Background(), ":memory:", logger.Nop())
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.MigrateAutosave(db.DB))

	return store.NewDraftRepository(db, logger.Nop()), store.NewOperationRepository(db, logger.Nop())
}
