package workers

import (
	"context"
	"sync"

	"crmsync/internal/connectivity"
	"crmsync/internal/logger"
	"crmsync/internal/service"
)

// drainWorker listens for connectivity transitions and drains the operation
// queue whenever the authority becomes reachable again. The monitor already
// debounces flapping links, so every online event received here is worth a
// drain.
type drainWorker struct {
	queue   service.QueueService
	monitor connectivity.Monitor

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

func NewDrainWorker(queue service.QueueService, monitor connectivity.Monitor, log *logger.Logger) Worker {
	return &drainWorker{
		queue:   queue,
		monitor: monitor,
		logger:  log.WithComponent("drain_worker"),
	}
}

func (w *drainWorker) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cancel != nil {
		return
	}
	ctx, w.cancel = context.WithCancel(ctx)

	events := w.monitor.Subscribe()

	w.wg.Add(1)
	go w.run(ctx, events)

	w.logger.Info().Msg("drain worker started")
}

func (w *drainWorker) run(ctx context.Context, events <-chan connectivity.Event) {
	defer w.wg.Done()

	// catch up on anything queued while the process was down
	if w.monitor.IsOnline() {
		w.drain(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event := <-events:
			if event.Online {
				w.drain(ctx)
			}
		}
	}
}

func (w *drainWorker) drain(ctx context.Context) {
	result, err := w.queue.Drain(ctx)
	if err != nil {
		w.logger.Err(err).Msg("reconnect drain failed")
		return
	}
	if result.Skipped {
		return
	}

	w.logger.Info().
		Int("delivered", result.Delivered).
		Int("failed", result.Failed).
		Msg("reconnect drain finished")
}

func (w *drainWorker) Stop() {
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
