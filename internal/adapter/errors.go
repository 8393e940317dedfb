package adapter

import "errors"

// Sentinel errors mapped from remote authority responses. Callers match with
// [errors.Is].
var (
	// ErrAuthMissing is returned before any request is issued when no bearer
	// token is held (or the held token is expired). Treated as "not logged
	// in", not as a failure: local-only mode continues.
	ErrAuthMissing = errors.New("no session token, remote sync skipped")

	// ErrDeliveryFailed wraps transport errors and 5xx responses. Queue
	// deliveries failing with it are counted against the retry ceiling.
	ErrDeliveryFailed = errors.New("remote delivery failed")

	// ErrUnauthorized maps HTTP 401: the held token was rejected.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrBadRequest maps HTTP 400.
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound maps HTTP 404 (e.g. resolving an already-resolved
	// conflict).
	ErrNotFound = errors.New("not found")
)
