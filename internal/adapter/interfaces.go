// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"crmsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteAuthority is the client-side view of the CRM backend: the system of
// record for domain entities. The local store is only an intent log and
// cache; everything here can fail without breaking local operation.
type RemoteAuthority interface {
	// SetToken stores the bearer token used on all subsequent requests.
	SetToken(token string)
	// Token returns the currently held bearer token, or "" if none.
	Token() string

	// PushAutosave sends a draft snapshot to the autosave endpoint.
	// Best effort: the caller logs and swallows any error.
	PushAutosave(ctx context.Context, req models.AutosaveRequest) error

	// Deliver submits one queued operation. The request carries the
	// operation id so the authority can dedupe at-least-once submissions.
	Deliver(ctx context.Context, req models.DeliverRequest) error

	// RemoteStatus fetches the authority's informational sync status.
	RemoteStatus(ctx context.Context) (models.RemoteStatusResponse, error)

	// Conflicts lists outstanding sync conflicts, newest capped at limit.
	Conflicts(ctx context.Context, limit int) ([]models.SyncConflict, error)

	// ResolveConflict resolves a conflict with one of
	// [models.ResolutionUseOffline] or [models.ResolutionUseServer]. The
	// authority deletes the conflict on success.
	ResolveConflict(ctx context.Context, conflictID, resolution string) error

	// Ping probes reachability of the authority without authentication.
	Ping(ctx context.Context) error
}
