package service

import (
	"context"
	"fmt"
	"time"

	"crmsync/internal/adapter"
	"crmsync/internal/connectivity"
	"crmsync/internal/logger"
	"crmsync/internal/store"
	"crmsync/models"
)

// conflictFetchLimit caps how many conflicts one report pulls from the
// authority.
const conflictFetchLimit = 50

type statusService struct {
	operations store.OperationRepository
	authority  adapter.RemoteAuthority
	monitor    connectivity.Monitor

	logger *logger.Logger
}

// NewStatusService builds the sync status and conflict reporter.
func NewStatusService(
	operations store.OperationRepository,
	authority adapter.RemoteAuthority,
	monitor connectivity.Monitor,
	log *logger.Logger,
) StatusService {
	return &statusService{
		operations: operations,
		authority:  authority,
		monitor:    monitor,
		logger:     log.WithComponent("status"),
	}
}

// Status computes the counters from the local queue alone, so it answers
// identically online and offline.
func (s *statusService) Status(ctx context.Context, userID int64) (models.SyncStatus, error) {
	status, err := s.operations.CountByStatus(ctx, userID)
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("count operations: %w", err)
	}

	return status, nil
}

// Report returns the local counters plus the remote conflict list. The
// counters are required; the conflict fetch is not. Offline, or when the
// fetch fails for any reason, the report carries Unknown instead of an error
// so the caller can still render local state.
func (s *statusService) Report(ctx context.Context, userID int64) (models.StatusReport, error) {
	status, err := s.Status(ctx, userID)
	if err != nil {
		return models.StatusReport{}, err
	}

	report := models.StatusReport{
		Status:    status,
		FetchedAt: time.Now().UTC(),
	}

	if !s.monitor.IsOnline() {
		report.Unknown = true
		return report, nil
	}

	conflicts, err := s.authority.Conflicts(ctx, conflictFetchLimit)
	if err != nil {
		s.logger.Err(err).Msg("conflict fetch failed, reporting unknown")
		report.Unknown = true
		return report, nil
	}

	report.Conflicts = conflicts
	return report, nil
}

// Resolve forwards the user's choice to the authority and hands back a fresh
// report. Resolution failures are real errors: the user acted on a conflict
// that may no longer exist, and silence would hide that.
func (s *statusService) Resolve(ctx context.Context, userID int64, conflictID, resolution string) (models.StatusReport, error) {
	if err := s.authority.ResolveConflict(ctx, conflictID, resolution); err != nil {
		return models.StatusReport{}, fmt.Errorf("resolve conflict %s: %w", conflictID, err)
	}

	s.logger.Info().
		Str("conflict_id", conflictID).
		Str("resolution", resolution).
		Msg("conflict resolved")

	return s.Report(ctx, userID)
}
