package models

import (
	"encoding/json"
	"time"
)

// Conflict resolutions accepted by the remote authority.
const (
	ResolutionUseOffline = "use_offline"
	ResolutionUseServer  = "use_server"
)

// SyncConflict is a server-detected divergence between a locally queued change
// and the authoritative remote state for the same entity. It exists only until
// explicitly resolved; the authority deletes it on resolution.
type SyncConflict struct {
	ID            string          `json:"id"`
	EntityType    string          `json:"entity_type"`
	OperationType string          `json:"operation_type"`
	LocalData     json.RawMessage `json:"local_data,omitempty"`
	ServerData    json.RawMessage `json:"server_data,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ValidResolution reports whether r is one of the two accepted choices.
func ValidResolution(r string) bool {
	return r == ResolutionUseOffline || r == ResolutionUseServer
}
