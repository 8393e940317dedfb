package workers

import (
	"context"
	"sync"
	"time"

	"crmsync/internal/logger"
	"crmsync/internal/service"
	"crmsync/models"
)

// StatusPollWorker refreshes the sync status report on a fixed cadence and
// keeps the latest one for cheap reads by the UI.
type StatusPollWorker struct {
	status   service.StatusService
	userID   int64
	interval time.Duration

	mu     sync.RWMutex
	latest models.StatusReport

	runMu  sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

func NewStatusPollWorker(status service.StatusService, userID int64, interval time.Duration, log *logger.Logger) *StatusPollWorker {
	return &StatusPollWorker{
		status:   status,
		userID:   userID,
		interval: interval,
		logger:   log.WithComponent("status_worker"),
	}
}

// Latest returns the most recent report, zero before the first poll.
func (w *StatusPollWorker) Latest() models.StatusReport {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.latest
}

func (w *StatusPollWorker) Start(ctx context.Context) {
	w.runMu.Lock()
	defer w.runMu.Unlock()

	if w.cancel != nil {
		return
	}
	ctx, w.cancel = context.WithCancel(ctx)

	w.wg.Add(1)
	go w.run(ctx)

	w.logger.Info().Dur("interval", w.interval).Msg("status poll worker started")
}

func (w *StatusPollWorker) run(ctx context.Context) {
	defer w.wg.Done()

	w.poll(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

func (w *StatusPollWorker) poll(ctx context.Context) {
	report, err := w.status.Report(ctx, w.userID)
	if err != nil {
		w.logger.Err(err).Msg("status poll failed")
		return
	}

	w.mu.Lock()
	w.latest = report
	w.mu.Unlock()

	w.logger.Info().
		Int("pending", report.Status.Pending).
		Int("failed", report.Status.Failed).
		Int("conflicts", len(report.Conflicts)).
		Bool("unknown", report.Unknown).
		Msg("sync status refreshed")
}

func (w *StatusPollWorker) Stop() {
	w.runMu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.runMu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	w.wg.Wait()
}
