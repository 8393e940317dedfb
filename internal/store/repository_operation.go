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

type operationRepository struct {
	*DB
	logger *logger.Logger
}

// NewOperationRepository returns the SQLite-backed [OperationRepository].
// Both logical databases carry an operations table, so the repository is
// instantiated once per database handle.
func NewOperationRepository(db *DB, logger *logger.Logger) OperationRepository {
	return &operationRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *operationRepository) SaveOperation(ctx context.Context, op models.QueuedOperation) error {
	_, err := r.DB.ExecContext(ctx, upsertOperation,
		op.ID,
		op.EntityType,
		op.OperationType,
		op.UserID,
		string(op.OperationData),
		op.Status,
		op.RetryCount,
		op.LastError,
		op.EnqueuedAt,
		op.SyncedAt,
	)
	if err != nil {
		r.logger.Err(err).
			Str("func", "operationRepository.SaveOperation").
			Str("operation_id", op.ID).
			Msg("failed to execute upsert for queued operation")
		return fmt.Errorf("%w: save operation %s: %v", ErrStorageUnavailable, op.ID, err)
	}

	return nil
}

func (r *operationRepository) GetOperation(ctx context.Context, id string) (models.QueuedOperation, error) {
	builder := sq.Select(operationColumns()...).
		From("operations").
		Where(sq.Eq{"id": id})

	query, args, err := builder.ToSql()
	if err != nil {
		return models.QueuedOperation{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	op, err := scanOperation(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.QueuedOperation{}, ErrOperationNotFound
		}
		r.logger.Err(err).
			Str("func", "operationRepository.GetOperation").
			Str("operation_id", id).
			Msg("failed to scan queued operation row")
		return models.QueuedOperation{}, fmt.Errorf("%w: get operation: %v", ErrStorageUnavailable, err)
	}

	return op, nil
}

// GetOperations returns queue entries matching filter in enqueue order. The
// drain routine relies on that ordering.
func (r *operationRepository) GetOperations(ctx context.Context, filter OperationFilter) ([]models.QueuedOperation, error) {
	builder := sq.Select(operationColumns()...).
		From("operations").
		OrderBy("enqueued_at ASC", "id ASC")
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}
	if filter.UserID != 0 {
		builder = builder.Where(sq.Eq{"user_id": filter.UserID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "operationRepository.GetOperations").
			Str("status", filter.Status).
			Int64("user_id", filter.UserID).
			Msg("failed to execute query for queued operations")
		return nil, fmt.Errorf("%w: query operations: %v", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var ops []models.QueuedOperation
	for rows.Next() {
		op, scanErr := scanOperation(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: scan operation row: %v", ErrStorageUnavailable, scanErr)
		}
		ops = append(ops, op)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: iterate operation rows: %v", ErrStorageUnavailable, rowsErr)
	}

	return ops, nil
}

func (r *operationRepository) MarkCompleted(ctx context.Context, id string, syncedAt time.Time) error {
	res, err := r.DB.ExecContext(ctx, markOperationCompleted, syncedAt, id)
	if err != nil {
		r.logger.Err(err).
			Str("func", "operationRepository.MarkCompleted").
			Str("operation_id", id).
			Msg("failed to mark operation completed")
		return fmt.Errorf("%w: mark completed %s: %v", ErrStorageUnavailable, id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected: %v", ErrStorageUnavailable, err)
	}
	if affected == 0 {
		return ErrOperationNotFound
	}

	return nil
}

func (r *operationRepository) RecordFailure(ctx context.Context, id, reason string, maxAttempts int) (models.QueuedOperation, error) {
	res, err := r.DB.ExecContext(ctx, recordOperationFailure, reason, maxAttempts, id)
	if err != nil {
		r.logger.Err(err).
			Str("func", "operationRepository.RecordFailure").
			Str("operation_id", id).
			Msg("failed to record delivery failure")
		return models.QueuedOperation{}, fmt.Errorf("%w: record failure %s: %v", ErrStorageUnavailable, id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.QueuedOperation{}, fmt.Errorf("%w: rows affected: %v", ErrStorageUnavailable, err)
	}
	if affected == 0 {
		return models.QueuedOperation{}, ErrOperationNotFound
	}

	return r.GetOperation(ctx, id)
}

func (r *operationRepository) DeleteOperation(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, deleteOperation, id)
	if err != nil {
		r.logger.Err(err).
			Str("func", "operationRepository.DeleteOperation").
			Str("operation_id", id).
			Msg("failed to delete queued operation")
		return fmt.Errorf("%w: delete operation %s: %v", ErrStorageUnavailable, id, err)
	}

	return nil
}

// DeleteCompletedOlderThan sweeps completed queue entries past the retention
// window. Failed entries are intentionally excluded: they stay visible until
// the operator dismisses them.
func (r *operationRepository) DeleteCompletedOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.DB.ExecContext(ctx, deleteCompletedOperationsOlderThan, cutoff)
	if err != nil {
		r.logger.Err(err).
			Str("func", "operationRepository.DeleteCompletedOlderThan").
			Time("cutoff", cutoff).
			Msg("failed to delete expired completed operations")
		return 0, fmt.Errorf("%w: delete expired operations: %v", ErrStorageUnavailable, err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: rows affected: %v", ErrStorageUnavailable, err)
	}

	return removed, nil
}

func (r *operationRepository) CountByStatus(ctx context.Context, userID int64) (models.SyncStatus, error) {
	var status models.SyncStatus

	rows, err := r.DB.QueryContext(ctx, countOperationsByStatus, userID)
	if err != nil {
		r.logger.Err(err).
			Str("func", "operationRepository.CountByStatus").
			Int64("user_id", userID).
			Msg("failed to count operations by status")
		return models.SyncStatus{}, fmt.Errorf("%w: count operations: %v", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	for rows.Next() {
		var st string
		var count int
		if scanErr := rows.Scan(&st, &count); scanErr != nil {
			return models.SyncStatus{}, fmt.Errorf("%w: scan status count: %v", ErrStorageUnavailable, scanErr)
		}

		status.Total += count
		switch st {
		case models.StatusPending:
			status.Pending = count
		case models.StatusCompleted:
			status.Completed = count
		case models.StatusFailed:
			status.Failed = count
		}
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return models.SyncStatus{}, fmt.Errorf("%w: iterate status counts: %v", ErrStorageUnavailable, rowsErr)
	}

	if status.Pending > 0 {
		var oldest time.Time
		err := r.DB.QueryRowContext(ctx, oldestPendingOperation, userID).Scan(&oldest)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			// raced with a concurrent drain; counts stay as read
		case err != nil:
			return models.SyncStatus{}, fmt.Errorf("%w: oldest pending: %v", ErrStorageUnavailable, err)
		default:
			status.OldestPending = &oldest
		}
	}

	return status, nil
}

func operationColumns() []string {
	return []string{
		"id",
		"entity_type",
		"operation_type",
		"user_id",
		"operation_data",
		"status",
		"retry_count",
		"last_error",
		"enqueued_at",
		"synced_at",
	}
}

func scanOperation(row rowScanner) (models.QueuedOperation, error) {
	var op models.QueuedOperation
	var data string
	var syncedAt sql.NullTime

	if err := row.Scan(
		&op.ID,
		&op.EntityType,
		&op.OperationType,
		&op.UserID,
		&data,
		&op.Status,
		&op.RetryCount,
		&op.LastError,
		&op.EnqueuedAt,
		&syncedAt,
	); err != nil {
		return models.QueuedOperation{}, err
	}

	op.OperationData = []byte(data)
	if syncedAt.Valid {
		t := syncedAt.Time
		op.SyncedAt = &t
	}

	return op, nil
}
