package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"crmsync/internal/adapter"
	"crmsync/internal/connectivity"
	"crmsync/internal/logger"
	"crmsync/internal/store"
	"crmsync/models"
)

// ErrNotFailed is returned by DismissFailed for operations that are not in
// the failed state.
var ErrNotFailed = errors.New("operation is not failed")

type queueService struct {
	operations store.OperationRepository
	authority  adapter.RemoteAuthority
	monitor    connectivity.Monitor

	draining atomic.Bool

	logger *logger.Logger
}

// NewQueueService builds the offline operation queue service.
func NewQueueService(
	operations store.OperationRepository,
	authority adapter.RemoteAuthority,
	monitor connectivity.Monitor,
	log *logger.Logger,
) QueueService {
	return &queueService{
		operations: operations,
		authority:  authority,
		monitor:    monitor,
		logger:     log.WithComponent("queue"),
	}
}

// Enqueue persists the intent before anything touches the network, so the
// write survives an immediate crash or connectivity loss. The operation id is
// a UUIDv7: time-ordered, and reused as the idempotency key on every delivery
// attempt.
func (s *queueService) Enqueue(ctx context.Context, entityType, operationType string, userID int64, data json.RawMessage) (models.QueuedOperation, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return models.QueuedOperation{}, fmt.Errorf("generate operation id: %w", err)
	}

	op := models.QueuedOperation{
		ID:            id.String(),
		EntityType:    entityType,
		OperationType: operationType,
		UserID:        userID,
		OperationData: data,
		Status:        models.StatusPending,
		EnqueuedAt:    time.Now().UTC(),
	}

	if err = s.operations.SaveOperation(ctx, op); err != nil {
		return models.QueuedOperation{}, fmt.Errorf("enqueue operation: %w", err)
	}

	s.logger.Info().
		Str("operation_id", op.ID).
		Str("entity_type", entityType).
		Str("operation_type", operationType).
		Msg("operation enqueued")

	if s.monitor.IsOnline() {
		go func() {
			if _, drainErr := s.Drain(context.WithoutCancel(ctx)); drainErr != nil {
				s.logger.Err(drainErr).Msg("post-enqueue drain failed")
			}
		}()
	}

	return op, nil
}

// Drain delivers pending operations oldest first. The guard admits one drain
// at a time; a concurrent caller gets Skipped instead of double delivery.
func (s *queueService) Drain(ctx context.Context) (DrainResult, error) {
	if !s.draining.CompareAndSwap(false, true) {
		return DrainResult{Skipped: true}, nil
	}
	defer s.draining.Store(false)

	pending, err := s.operations.GetOperations(ctx, store.OperationFilter{Status: models.StatusPending})
	if err != nil {
		return DrainResult{}, fmt.Errorf("list pending operations: %w", err)
	}
	if len(pending) == 0 {
		return DrainResult{}, nil
	}

	s.logger.Info().Int("pending", len(pending)).Msg("draining operation queue")

	var result DrainResult
	for _, op := range pending {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		deliverErr := s.authority.Deliver(ctx, models.DeliverRequest{
			OperationID:   op.ID,
			EntityType:    op.EntityType,
			OperationType: op.OperationType,
			OperationData: op.OperationData,
		})
		if deliverErr == nil {
			if err = s.operations.MarkCompleted(ctx, op.ID, time.Now().UTC()); err != nil {
				return result, fmt.Errorf("mark operation %s completed: %w", op.ID, err)
			}
			result.Delivered++
			continue
		}

		// no session: nothing in the queue can be delivered, stop here
		if errors.Is(deliverErr, adapter.ErrAuthMissing) {
			s.logger.Info().Msg("drain stopped, no session token")
			return result, nil
		}

		updated, recordErr := s.operations.RecordFailure(ctx, op.ID, deliverErr.Error(), models.MaxDeliveryAttempts)
		if recordErr != nil {
			return result, fmt.Errorf("record failure for %s: %w", op.ID, recordErr)
		}

		if updated.Status == models.StatusFailed {
			result.Failed++
			s.logger.Err(deliverErr).
				Str("operation_id", op.ID).
				Int("retry_count", updated.RetryCount).
				Msg("operation failed permanently, retry ceiling reached")
		} else {
			s.logger.Err(deliverErr).
				Str("operation_id", op.ID).
				Int("retry_count", updated.RetryCount).
				Msg("delivery failed, will retry on next drain")
		}
	}

	s.logger.Info().
		Int("delivered", result.Delivered).
		Int("failed", result.Failed).
		Msg("queue drain finished")
	return result, nil
}

func (s *queueService) Operations(ctx context.Context, filter store.OperationFilter) ([]models.QueuedOperation, error) {
	return s.operations.GetOperations(ctx, filter)
}

// DismissFailed deletes one permanently failed operation. Pending entries
// stay queued and completed ones are left for the retention sweep.
func (s *queueService) DismissFailed(ctx context.Context, id string) error {
	op, err := s.operations.GetOperation(ctx, id)
	if err != nil {
		return err
	}
	if op.Status != models.StatusFailed {
		return fmt.Errorf("%w: %s is %s", ErrNotFailed, id, op.Status)
	}

	if err = s.operations.DeleteOperation(ctx, id); err != nil {
		return fmt.Errorf("dismiss operation: %w", err)
	}

	s.logger.Info().Str("operation_id", id).Msg("failed operation dismissed")
	return nil
}
