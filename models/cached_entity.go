package models

import (
	"encoding/json"
	"time"
)

// Cached collections mirrored for offline viewing.
const (
	CollectionGallery   = "gallery"
	CollectionCatalogue = "catalogue"
	CollectionProjects  = "projects"
)

// CachedEntity is a read-mostly mirror of a remote record kept on-device for
// offline viewing. Keyed by (Collection, ID) with put-overwrites semantics.
// The local copy is never authoritative.
type CachedEntity struct {
	Collection       string          `json:"collection"`
	ID               string          `json:"id"`
	Payload          json.RawMessage `json:"payload"`
	CachedAt         time.Time       `json:"cached_at"`
	OfflineAvailable bool            `json:"offline_available"`
}
