package service

import (
	"context"
	"fmt"
	"time"

	"crmsync/internal/logger"
	"crmsync/internal/store"
	"crmsync/models"
)

type maintenanceService struct {
	drafts     store.DraftRepository
	operations store.OperationRepository
	cache      store.CacheRepository

	retention time.Duration

	logger *logger.Logger
}

// NewMaintenanceService builds the retention sweeper and offline cache owner.
func NewMaintenanceService(
	drafts store.DraftRepository,
	operations store.OperationRepository,
	cache store.CacheRepository,
	retention time.Duration,
	log *logger.Logger,
) MaintenanceService {
	return &maintenanceService{
		drafts:     drafts,
		operations: operations,
		cache:      cache,
		retention:  retention,
		logger:     log.WithComponent("maintenance"),
	}
}

// Cleanup removes drafts and completed queue entries past the retention
// window. Pending entries are untouched regardless of age, and failed entries
// are kept until the user dismisses them.
func (s *maintenanceService) Cleanup(ctx context.Context) (CleanupResult, error) {
	cutoff := time.Now().UTC().Add(-s.retention)

	drafts, err := s.drafts.DeleteDraftsOlderThan(ctx, cutoff)
	if err != nil {
		return CleanupResult{}, fmt.Errorf("sweep drafts: %w", err)
	}

	operations, err := s.operations.DeleteCompletedOlderThan(ctx, cutoff)
	if err != nil {
		return CleanupResult{Drafts: drafts}, fmt.Errorf("sweep completed operations: %w", err)
	}

	result := CleanupResult{Drafts: drafts, Operations: operations}
	if result.Drafts > 0 || result.Operations > 0 {
		s.logger.Info().
			Int64("drafts", result.Drafts).
			Int64("operations", result.Operations).
			Time("cutoff", cutoff).
			Msg("retention sweep removed stale rows")
	}

	return result, nil
}

func (s *maintenanceService) StoreForOffline(ctx context.Context, entity models.CachedEntity) error {
	if entity.CachedAt.IsZero() {
		entity.CachedAt = time.Now().UTC()
	}
	return s.cache.PutEntity(ctx, entity)
}

func (s *maintenanceService) OfflineEntities(ctx context.Context, collection string) ([]models.CachedEntity, error) {
	return s.cache.GetEntities(ctx, collection)
}

func (s *maintenanceService) ClearCache(ctx context.Context) error {
	if err := s.cache.ClearEntities(ctx); err != nil {
		return fmt.Errorf("clear offline cache: %w", err)
	}

	s.logger.Info().Msg("offline cache cleared")
	return nil
}
