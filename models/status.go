package models

import "time"

// SyncStatus aggregates local queue state into the counters shown to the
// user. It is computed purely from the local store, so it stays available
// offline.
type SyncStatus struct {
	Total         int        `json:"total"`
	Pending       int        `json:"pending"`
	Completed     int        `json:"completed"`
	Failed        int        `json:"failed"`
	OldestPending *time.Time `json:"oldest_pending,omitempty"`
}

// StatusReport is what the reporter hands to the UI: the local counters plus
// the remote conflict list. Unknown is set when the conflict fetch failed
// (offline or unreachable authority) — the UI shows an "unknown" badge rather
// than an error.
type StatusReport struct {
	Status    SyncStatus     `json:"status"`
	Conflicts []SyncConflict `json:"conflicts"`
	Unknown   bool           `json:"unknown"`
	FetchedAt time.Time      `json:"fetched_at"`
}
