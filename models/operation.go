package models

import (
	"encoding/json"
	"time"
)

// OperationType enumerates the mutating intents that can be queued against a
// remote entity.
const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// QueuedOperation statuses. Transitions are monotone: pending → completed or
// pending → failed; both end states are terminal.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// MaxDeliveryAttempts is the retry ceiling for a single queued operation.
// Once RetryCount reaches it the operation is marked failed and never
// auto-retried again.
const MaxDeliveryAttempts = 3

// QueuedOperation is a locally persisted mutating intent awaiting delivery to
// the remote authority. The ID doubles as the idempotency key sent with every
// delivery attempt so the authority can dedupe at-least-once submissions.
type QueuedOperation struct {
	ID            string          `json:"id"`
	EntityType    string          `json:"entity_type"`
	OperationType string          `json:"operation_type"`
	UserID        int64           `json:"user_id"`
	OperationData json.RawMessage `json:"operation_data"`
	Status        string          `json:"status"`
	RetryCount    int             `json:"retry_count"`
	LastError     string          `json:"last_error,omitempty"`
	EnqueuedAt    time.Time       `json:"enqueued_at"`
	SyncedAt      *time.Time      `json:"synced_at,omitempty"`
}

// Terminal reports whether the operation has reached an end state.
func (op QueuedOperation) Terminal() bool {
	return op.Status == StatusCompleted || op.Status == StatusFailed
}
