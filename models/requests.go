// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// AutosaveRequest is the body of POST /api/sync/autosave. Best effort: the
// client never retries a failed push outside the next autosave tick.
type AutosaveRequest struct {
	EntityType string          `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	Data       json.RawMessage `json:"data"`
}

// DeliverRequest is the body of POST /api/sync/queue. OperationID carries the
// queued operation's UUID so the authority can dedupe duplicate submissions
// under the at-least-once delivery contract.
type DeliverRequest struct {
	OperationID   string          `json:"operation_id"`
	EntityType    string          `json:"entity_type"`
	OperationType string          `json:"operation_type"`
	OperationData json.RawMessage `json:"operation_data"`
}

// ResolveConflictRequest is the body of POST /api/sync/conflicts/{id}/resolve.
type ResolveConflictRequest struct {
	Resolution string `json:"resolution"`
}

// ConflictsResponse is the payload of GET /api/sync/conflicts.
type ConflictsResponse struct {
	Conflicts []SyncConflict `json:"conflicts"`
}

// RemoteStatusResponse is the payload of GET /api/sync/status. Informational
// only; local counters stay authoritative for the UI.
type RemoteStatusResponse struct {
	ConflictCount int `json:"conflict_count"`
}
