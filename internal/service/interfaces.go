package service

import (
	"context"
	"encoding/json"

	"crmsync/internal/store"
	"crmsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SnapshotFunc captures the current form state of an open editor. Called on
// every autosave tick; returning an empty snapshot skips the tick.
type SnapshotFunc func() json.RawMessage

// AutosaveService owns the per-form autosave timers and the draft store
// behind them.
type AutosaveService interface {
	// StartAutosave begins periodic snapshots for one open form. Starting an
	// already started form cancels the previous timer first, so the latest
	// call's snapshot source wins and exactly one timer runs per
	// (entityType, entityID) pair.
	StartAutosave(ctx context.Context, entityType, entityID string, userID int64, snapshot SnapshotFunc)
	// StopAutosave halts the form's timer. The draft stays on disk.
	StopAutosave(entityType, entityID string)
	// StopAll halts every running timer, used on shutdown.
	StopAll()

	// SaveNow persists one snapshot immediately, outside the timer cadence.
	SaveNow(ctx context.Context, draft models.Draft) error
	// LoadDraft returns the stored draft for the form, refusing drafts owned
	// by a different user.
	LoadDraft(ctx context.Context, entityType, entityID string, userID int64) (models.Draft, error)
	// ListDrafts returns all drafts of one user, for the recovery picker.
	ListDrafts(ctx context.Context, userID int64) ([]models.Draft, error)
	// DiscardDraft removes the stored draft after an explicit save or an
	// explicit user discard.
	DiscardDraft(ctx context.Context, entityType, entityID string) error
}

// DrainResult summarises one queue drain.
type DrainResult struct {
	Delivered int
	Failed    int
	Skipped   bool // another drain was already running
}

// QueueService is the durable offline operation queue and its drain loop.
type QueueService interface {
	// Enqueue persists a mutating intent and, when the authority is
	// reachable, kicks off an asynchronous drain.
	Enqueue(ctx context.Context, entityType, operationType string, userID int64, data json.RawMessage) (models.QueuedOperation, error)
	// Drain delivers pending operations in enqueue order. Re-entrant calls
	// return immediately with Skipped set; at most one drain runs at a time.
	Drain(ctx context.Context) (DrainResult, error)
	// Operations lists queue entries, optionally filtered.
	Operations(ctx context.Context, filter store.OperationFilter) ([]models.QueuedOperation, error)
	// DismissFailed removes one failed operation after the user has given up
	// on it. Pending and completed entries are refused.
	DismissFailed(ctx context.Context, id string) error
}

// StatusService computes the local sync counters and mediates conflict
// resolution with the remote authority.
type StatusService interface {
	// Status returns the local queue counters. Never touches the network.
	Status(ctx context.Context, userID int64) (models.SyncStatus, error)
	// Report combines local counters with the remote conflict list. A failed
	// conflict fetch degrades to Unknown instead of failing the report.
	Report(ctx context.Context, userID int64) (models.StatusReport, error)
	// Resolve resolves one conflict remotely and returns a refreshed report.
	Resolve(ctx context.Context, userID int64, conflictID, resolution string) (models.StatusReport, error)
}

// MaintenanceService owns the retention sweep and the offline entity cache.
type MaintenanceService interface {
	// Cleanup sweeps drafts and completed queue entries older than the
	// retention window. Failed entries are never swept.
	Cleanup(ctx context.Context) (CleanupResult, error)

	StoreForOffline(ctx context.Context, entity models.CachedEntity) error
	OfflineEntities(ctx context.Context, collection string) ([]models.CachedEntity, error)
	ClearCache(ctx context.Context) error
}

// CleanupResult counts what one retention sweep removed.
type CleanupResult struct {
	Drafts     int64
	Operations int64
}
