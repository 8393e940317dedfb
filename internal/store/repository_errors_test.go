package store

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crmsync/internal/logger"
	"crmsync/models"
)

// Error paths are driven through sqlmock: every low-level database failure
// must surface as ErrStorageUnavailable so callers can degrade instead of
// crashing the UI.

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return &DB{DB: conn, logger: logger.Nop()}, mock
}

func TestDraftRepository_Save_StorageUnavailable(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDraftRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO drafts").WillReturnError(errors.New("database is locked"))

	err := repo.SaveDraft(testContext(), sampleDraft("lead", "l1", 1))
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDraftRepository_GetAll_StorageUnavailable(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDraftRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT entity_type, entity_id").WillReturnError(sql.ErrConnDone)

	_, err := repo.GetAllDrafts(testContext(), 1)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestOperationRepository_Save_StorageUnavailable(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOperationRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO operations").WillReturnError(errors.New("disk I/O error"))

	err := repo.SaveOperation(testContext(), sampleOperation("op-1", time.Now()))
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestOperationRepository_RecordFailure_StorageUnavailable(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOperationRepository(db, logger.Nop())

	mock.ExpectExec("UPDATE operations").WillReturnError(errors.New("database is locked"))

	_, err := repo.RecordFailure(testContext(), "op-1", "reason", models.MaxDeliveryAttempts)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestCacheRepository_Put_StorageUnavailable(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCacheRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO cached_entities").WillReturnError(errors.New("quota exceeded"))

	err := repo.PutEntity(testContext(), models.CachedEntity{
		Collection: models.CollectionGallery,
		ID:         "img-1",
		Payload:    []byte(`{}`),
		CachedAt:   time.Now(),
	})
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}
