package models

import "time"

// Session is the locally persisted login state: the bearer token for the
// remote authority and the user it belongs to. A missing session means
// "not logged in" — remote sync is skipped, local-only mode continues.
type Session struct {
	UserID  int64     `json:"user_id"`
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}
