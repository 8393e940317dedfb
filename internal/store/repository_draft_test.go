// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crmsync/internal/logger"
	"crmsync/models"
)

func newTestDraftRepo(t *testing.T) DraftRepository {
	t.Helper()
	return NewDraftRepository(newTestAutosaveDB(t), logger.Nop())
}

func sampleDraft(entityType, entityID string, userID int64) models.Draft {
	return models.Draft{
		EntityType: entityType,
		EntityID:   entityID,
		UserID:     userID,
		Data:       []byte(`{"name":"Amit","phone":"+91-900000001"}`),
		SavedAt:    time.Now().UTC().Truncate(time.Second),
		Version:    time.Now().UnixMilli(),
	}
}

func TestDraftRepository_SaveAndGet_RoundTrip(t *testing.T) {
	repo := newTestDraftRepo(t)
	ctx := testContext()
	draft := sampleDraft("lead", "lead-17", 1)

	require.NoError(t, repo.SaveDraft(ctx, draft))

	got, err := repo.GetDraft(ctx, "lead", "lead-17")
	require.NoError(t, err)

	assert.Equal(t, draft.EntityType, got.EntityType)
	assert.Equal(t, draft.EntityID, got.EntityID)
	assert.Equal(t, draft.UserID, got.UserID)
	assert.JSONEq(t, string(draft.Data), string(got.Data))
	assert.Equal(t, draft.Version, got.Version)
	assert.WithinDuration(t, draft.SavedAt, got.SavedAt, time.Second)
}

func TestDraftRepository_Save_OverwritesInPlace(t *testing.T) {
	repo := newTestDraftRepo(t)
	ctx := testContext()

	first := sampleDraft("task", "task-3", 1)
	require.NoError(t, repo.SaveDraft(ctx, first))

	second := first
	second.Data = []byte(`{"title":"call back tomorrow"}`)
	second.Version = first.Version + 1
	require.NoError(t, repo.SaveDraft(ctx, second))

	// at most one live draft per key
	all, err := repo.GetAllDrafts(ctx, 1)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.JSONEq(t, string(second.Data), string(all[0].Data))
	assert.Equal(t, second.Version, all[0].Version)
}

func TestDraftRepository_Get_Missing(t *testing.T) {
	repo := newTestDraftRepo(t)

	_, err := repo.GetDraft(testContext(), "lead", "nope")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestDraftRepository_GetAll_FiltersByUser(t *testing.T) {
	repo := newTestDraftRepo(t)
	ctx := testContext()

	require.NoError(t, repo.SaveDraft(ctx, sampleDraft("lead", "a", 1)))
	require.NoError(t, repo.SaveDraft(ctx, sampleDraft("lead", "b", 2)))

	mine, err := repo.GetAllDrafts(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "a", mine[0].EntityID)

	everyone, err := repo.GetAllDrafts(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, everyone, 2)
}

func TestDraftRepository_Delete_Idempotent(t *testing.T) {
	repo := newTestDraftRepo(t)
	ctx := testContext()

	require.NoError(t, repo.SaveDraft(ctx, sampleDraft("lead", "x", 1)))
	require.NoError(t, repo.DeleteDraft(ctx, "lead", "x"))
	// second delete of the same key is a no-op, not an error
	require.NoError(t, repo.DeleteDraft(ctx, "lead", "x"))

	_, err := repo.GetDraft(ctx, "lead", "x")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestDraftRepository_DeleteOlderThan(t *testing.T) {
	repo := newTestDraftRepo(t)
	ctx := testContext()
	now := time.Now().UTC()

	old := sampleDraft("lead", "old", 1)
	old.SavedAt = now.Add(-8 * 24 * time.Hour)
	fresh := sampleDraft("lead", "fresh", 1)
	fresh.SavedAt = now.Add(-6 * 24 * time.Hour)

	require.NoError(t, repo.SaveDraft(ctx, old))
	require.NoError(t, repo.SaveDraft(ctx, fresh))

	removed, err := repo.DeleteDraftsOlderThan(ctx, now.Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = repo.GetDraft(ctx, "lead", "old")
	assert.ErrorIs(t, err, ErrDraftNotFound)

	_, err = repo.GetDraft(ctx, "lead", "fresh")
	assert.NoError(t, err)
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	repo := NewSessionRepository(newTestAutosaveDB(t), logger.Nop())
	ctx := testContext()

	_, err := repo.GetSession(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	session := models.Session{UserID: 7, Token: "bearer-token", SavedAt: time.Now().UTC()}
	require.NoError(t, repo.SaveSession(ctx, session))

	got, err := repo.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, got.UserID)
	assert.Equal(t, session.Token, got.Token)

	// single-row semantics: a second save replaces, never duplicates
	session.Token = "rotated"
	require.NoError(t, repo.SaveSession(ctx, session))
	got, err = repo.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rotated", got.Token)

	require.NoError(t, repo.DeleteSession(ctx))
	_, err = repo.GetSession(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
