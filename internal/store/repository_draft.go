package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"crmsync/internal/logger"
	"crmsync/models"
)

type draftRepository struct {
	*DB
	logger *logger.Logger
}

// NewDraftRepository returns the SQLite-backed [DraftRepository].
func NewDraftRepository(db *DB, logger *logger.Logger) DraftRepository {
	return &draftRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *draftRepository) SaveDraft(ctx context.Context, draft models.Draft) error {
	_, err := r.DB.ExecContext(ctx, upsertDraft,
		draft.EntityType,
		draft.EntityID,
		draft.UserID,
		string(draft.Data),
		draft.SavedAt,
		draft.Version,
	)
	if err != nil {
		r.logger.Err(err).
			Str("func", "draftRepository.SaveDraft").
			Str("entity_type", draft.EntityType).
			Str("entity_id", draft.EntityID).
			Msg("failed to execute upsert for draft")
		return fmt.Errorf("%w: save draft (%s): %v", ErrStorageUnavailable, models.DraftKey(draft.EntityType, draft.EntityID), err)
	}

	return nil
}

func (r *draftRepository) GetDraft(ctx context.Context, entityType, entityID string) (models.Draft, error) {
	row := r.DB.QueryRowContext(ctx, getDraft, entityType, entityID)

	draft, err := scanDraft(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Draft{}, ErrDraftNotFound
		}
		r.logger.Err(err).
			Str("func", "draftRepository.GetDraft").
			Str("entity_type", entityType).
			Str("entity_id", entityID).
			Msg("failed to scan draft row")
		return models.Draft{}, fmt.Errorf("%w: get draft: %v", ErrStorageUnavailable, err)
	}

	return draft, nil
}

func (r *draftRepository) GetAllDrafts(ctx context.Context, userID int64) ([]models.Draft, error) {
	builder := sq.Select("entity_type", "entity_id", "user_id", "data", "saved_at", "version").
		From("drafts").
		OrderBy("saved_at DESC")
	if userID != 0 {
		builder = builder.Where(sq.Eq{"user_id": userID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "draftRepository.GetAllDrafts").
			Int64("user_id", userID).
			Msg("failed to execute query for getting all drafts")
		return nil, fmt.Errorf("%w: query all drafts: %v", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var drafts []models.Draft
	for rows.Next() {
		draft, scanErr := scanDraft(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: scan draft row: %v", ErrStorageUnavailable, scanErr)
		}
		drafts = append(drafts, draft)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: iterate draft rows: %v", ErrStorageUnavailable, rowsErr)
	}

	return drafts, nil
}

func (r *draftRepository) DeleteDraft(ctx context.Context, entityType, entityID string) error {
	// no error when the draft is already gone: deletes are idempotent
	_, err := r.DB.ExecContext(ctx, deleteDraft, entityType, entityID)
	if err != nil {
		r.logger.Err(err).
			Str("func", "draftRepository.DeleteDraft").
			Str("entity_type", entityType).
			Str("entity_id", entityID).
			Msg("failed to delete draft")
		return fmt.Errorf("%w: delete draft: %v", ErrStorageUnavailable, err)
	}

	return nil
}

func (r *draftRepository) DeleteDraftsOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.DB.ExecContext(ctx, deleteDraftsOlderThan, cutoff)
	if err != nil {
		r.logger.Err(err).
			Str("func", "draftRepository.DeleteDraftsOlderThan").
			Time("cutoff", cutoff).
			Msg("failed to delete expired drafts")
		return 0, fmt.Errorf("%w: delete expired drafts: %v", ErrStorageUnavailable, err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: rows affected: %v", ErrStorageUnavailable, err)
	}

	return removed, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDraft(row rowScanner) (models.Draft, error) {
	var draft models.Draft
	var data string

	if err := row.Scan(
		&draft.EntityType,
		&draft.EntityID,
		&draft.UserID,
		&data,
		&draft.SavedAt,
		&draft.Version,
	); err != nil {
		return models.Draft{}, err
	}

	draft.Data = []byte(data)
	return draft, nil
}
