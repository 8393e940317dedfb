package store

import (
	"context"
	"fmt"

	"crmsync/internal/config"
	"crmsync/internal/logger"
	"crmsync/migrations"
)

// AutosaveStorages groups the repositories of the drafts/queue database: the
// autosave subsystem's drafts, its operation queue and the login session.
type AutosaveStorages struct {
	Drafts     DraftRepository
	Operations OperationRepository
	Session    SessionRepository
}

// CacheStorages groups the repositories of the offline-cache database: the
// entity mirrors plus that subsystem's own action queue.
type CacheStorages struct {
	Entities   CacheRepository
	Operations OperationRepository
}

// Storages holds both logical databases. They stay separate so clearing the
// offline cache can never touch pending queue entries of the autosave
// subsystem.
type Storages struct {
	Autosave *AutosaveStorages
	Cache    *CacheStorages
}

// NewStorages opens both SQLite databases, applies their goose migrations
// (idempotent, additive-only) and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	autosaveDB, err := NewConnectSQLite(ctx, cfg.AutosaveDSN, log)
	if err != nil {
		return nil, fmt.Errorf("autosave db connection error: %w", err)
	}
	if err := migrations.MigrateAutosave(autosaveDB.DB); err != nil {
		return nil, fmt.Errorf("autosave db migration failed: %w", err)
	}

	cacheDB, err := NewConnectSQLite(ctx, cfg.CacheDSN, log)
	if err != nil {
		return nil, fmt.Errorf("cache db connection error: %w", err)
	}
	if err := migrations.MigrateCache(cacheDB.DB); err != nil {
		return nil, fmt.Errorf("cache db migration failed: %w", err)
	}

	return &Storages{
		Autosave: &AutosaveStorages{
			Drafts:     NewDraftRepository(autosaveDB, log),
			Operations: NewOperationRepository(autosaveDB, log),
			Session:    NewSessionRepository(autosaveDB, log),
		},
		Cache: &CacheStorages{
			Entities:   NewCacheRepository(cacheDB, log),
			Operations: NewOperationRepository(cacheDB, log),
		},
	}, nil
}
