package models

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// Draft is a locally persisted snapshot of unsaved form input for a single
// entity. At most one Draft exists per (EntityType, EntityID) pair; every
// autosave tick replaces the previous snapshot in place.
type Draft struct {
	// EntityType names the domain entity the form edits (e.g. "lead", "task").
	EntityType string `json:"entity_type"`

	// EntityID identifies the entity instance. New-entity forms use a
	// client-generated placeholder id until the first explicit save.
	EntityID string `json:"entity_id"`

	// UserID is the owner of the draft. LoadDraft refuses to return a draft
	// to any other user.
	UserID int64 `json:"user_id"`

	// Data is the opaque form snapshot as captured from the UI.
	Data json.RawMessage `json:"data"`

	// SavedAt is the time of the autosave tick that produced this snapshot.
	SavedAt time.Time `json:"saved_at"`

	// Version increases monotonically with every overwrite.
	Version int64 `json:"version"`
}

// Empty reports whether the draft carries no usable snapshot. Whitespace
// inside or around the payload does not make it meaningful: "{ }" is as
// empty as "{}".
func (d Draft) Empty() bool {
	trimmed := strings.TrimSpace(string(d.Data))
	switch trimmed {
	case "", "null", "{}", "[]", `""`:
		return true
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, []byte(trimmed)); err != nil {
		return false
	}
	switch compact.String() {
	case "null", "{}", "[]", `""`:
		return true
	}
	return false
}

// DraftKey is the composite timer/storage key for a draft.
func DraftKey(entityType, entityID string) string {
	return entityType + "_" + entityID
}
