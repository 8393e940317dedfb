package workers

import (
	"context"
	"sync"
	"time"

	"crmsync/internal/logger"
	"crmsync/internal/service"
)

// cleanupWorker runs the retention sweep on a fixed cadence, once right at
// startup and then every interval.
type cleanupWorker struct {
	maintenance service.MaintenanceService
	interval    time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

func NewCleanupWorker(maintenance service.MaintenanceService, interval time.Duration, log *logger.Logger) Worker {
	return &cleanupWorker{
		maintenance: maintenance,
		interval:    interval,
		logger:      log.WithComponent("cleanup_worker"),
	}
}

func (w *cleanupWorker) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cancel != nil {
		return
	}
	ctx, w.cancel = context.WithCancel(ctx)

	w.wg.Add(1)
	go w.run(ctx)

	w.logger.Info().Dur("interval", w.interval).Msg("cleanup worker started")
}

func (w *cleanupWorker) run(ctx context.Context) {
	defer w.wg.Done()

	w.sweep(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *cleanupWorker) sweep(ctx context.Context) {
	if _, err := w.maintenance.Cleanup(ctx); err != nil {
		w.logger.Err(err).Msg("retention sweep failed")
	}
}

func (w *cleanupWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	w.wg.Wait()
}
