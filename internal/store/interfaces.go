package store

import (
	"context"
	"time"

	"crmsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DraftRepository is the durable collection of autosaved form snapshots.
// One draft per (entityType, entityID); saving overwrites in place.
type DraftRepository interface {
	SaveDraft(ctx context.Context, draft models.Draft) error
	GetDraft(ctx context.Context, entityType, entityID string) (models.Draft, error)
	GetAllDrafts(ctx context.Context, userID int64) ([]models.Draft, error)
	DeleteDraft(ctx context.Context, entityType, entityID string) error
	DeleteDraftsOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// OperationFilter narrows GetOperations by secondary-index equality.
// Zero values mean "no filter on that column".
type OperationFilter struct {
	Status string
	UserID int64
}

// OperationRepository is the durable offline operation queue. Reads come back
// in enqueue order.
type OperationRepository interface {
	SaveOperation(ctx context.Context, op models.QueuedOperation) error
	GetOperation(ctx context.Context, id string) (models.QueuedOperation, error)
	GetOperations(ctx context.Context, filter OperationFilter) ([]models.QueuedOperation, error)
	// MarkCompleted transitions a pending operation to completed and stamps
	// synced_at. Completed and failed operations are left untouched.
	MarkCompleted(ctx context.Context, id string, syncedAt time.Time) error
	// RecordFailure increments retry_count, stores the failure reason and
	// flips the status to failed once the retry ceiling is reached, all in a
	// single statement so overlapping writers cannot double-count.
	RecordFailure(ctx context.Context, id, reason string, maxAttempts int) (models.QueuedOperation, error)
	DeleteOperation(ctx context.Context, id string) error
	DeleteCompletedOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	CountByStatus(ctx context.Context, userID int64) (models.SyncStatus, error)
}

// CacheRepository mirrors remote collections for offline viewing.
type CacheRepository interface {
	PutEntity(ctx context.Context, entity models.CachedEntity) error
	GetEntities(ctx context.Context, collection string) ([]models.CachedEntity, error)
	DeleteEntity(ctx context.Context, collection, id string) error
	CountEntities(ctx context.Context) (int, error)
	ClearEntities(ctx context.Context) error
}

// SessionRepository persists the single login session row.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context) (models.Session, error)
	DeleteSession(ctx context.Context) error
}
