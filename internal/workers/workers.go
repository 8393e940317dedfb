// Package workers runs the long-lived background jobs: the drain trigger on
// reconnect, the periodic status poll and the retention sweep.
package workers

import (
	"context"

	"crmsync/internal/config"
	"crmsync/internal/connectivity"
	"crmsync/internal/logger"
	"crmsync/internal/service"
)

// Worker is one long-lived background job. Start must not block; Stop waits
// for the job to exit.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Workers aggregates every background job of the client.
type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers wires the standard job set for one logged-in user.
func NewWorkers(
	services *service.Services,
	monitor connectivity.Monitor,
	userID int64,
	workersCfg config.Workers,
	log *logger.Logger,
) *Workers {
	return &Workers{
		workers: []Worker{
			NewDrainWorker(services.Queue, monitor, log),
			NewStatusPollWorker(services.Status, userID, workersCfg.StatusPollInterval, log),
			NewCleanupWorker(services.Maintenance, workersCfg.CleanupInterval, log),
		},
		logger: log.WithComponent("workers"),
	}
}

// StartAll launches every job.
func (w *Workers) StartAll(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
	w.logger.Info().Int("count", len(w.workers)).Msg("background workers started")
}

// StopAll stops every job in reverse start order.
func (w *Workers) StopAll() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
	w.logger.Info().Msg("background workers stopped")
}
