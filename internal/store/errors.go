package store

import "errors"

// Sentinel errors returned by repository methods. Callers match with
// [errors.Is].
var (
	// ErrStorageUnavailable wraps any low-level database failure (file
	// locked, disk full, store not initialised). The sync core treats it as
	// non-fatal: the affected feature degrades to a no-op instead of
	// surfacing an error to the user.
	ErrStorageUnavailable = errors.New("local storage unavailable")

	// ErrDraftNotFound is returned when no draft exists for the requested
	// (entity_type, entity_id) key, or when the stored draft belongs to a
	// different user.
	ErrDraftNotFound = errors.New("draft not found")

	// ErrOperationNotFound is returned when a queue entry with the given id
	// does not exist.
	ErrOperationNotFound = errors.New("queued operation not found")

	// ErrSessionNotFound is returned when no login session has been saved.
	ErrSessionNotFound = errors.New("local session not found")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
