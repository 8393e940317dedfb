// Package connectivity tracks reachability of the remote authority and
// publishes offline/online transitions to interested components.
package connectivity

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"crmsync/internal/config"
	"crmsync/internal/logger"
)

// Pinger probes reachability of the remote authority. Satisfied by
// [crmsync/internal/adapter.RemoteAuthority].
type Pinger interface {
	Ping(ctx context.Context) error
}

// Event is one observed state transition.
type Event struct {
	Online bool
	At     time.Time
}

// Monitor exposes the current reachability state and a transition feed.
type Monitor interface {
	// IsOnline reports the last observed state. It flips to true as soon as
	// a probe succeeds, before any debounced notification goes out.
	IsOnline() bool
	// Subscribe registers a transition listener. Events are delivered best
	// effort: a subscriber that is not draining its channel loses events,
	// it never blocks the monitor.
	Subscribe() <-chan Event
	// Start launches the probe loop. Repeated calls are no-ops until Stop.
	Start(ctx context.Context)
	// Stop halts the probe loop and waits for it to exit.
	Stop()
}

type monitor struct {
	pinger Pinger

	probeInterval time.Duration
	drainDebounce time.Duration

	online atomic.Bool

	mu          sync.Mutex
	subscribers []chan Event
	cancel      context.CancelFunc
	wg          sync.WaitGroup

	logger *logger.Logger
}

// NewMonitor builds a probe-loop [Monitor]. The loop pings every
// workersCfg.ProbeInterval; an offline-to-online transition is announced only
// after workersCfg.DrainDebounce of stable reachability so that a flapping
// link does not trigger queue drains in a tight loop.
func NewMonitor(pinger Pinger, workersCfg config.Workers, log *logger.Logger) Monitor {
	return &monitor{
		pinger:        pinger,
		probeInterval: workersCfg.ProbeInterval,
		drainDebounce: workersCfg.DrainDebounce,
		logger:        log.WithComponent("connectivity"),
	}
}

func (m *monitor) IsOnline() bool {
	return m.online.Load()
}

func (m *monitor) Subscribe() <-chan Event {
	ch := make(chan Event, 4)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, ch)

	return ch
}

func (m *monitor) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancel != nil {
		m.logger.Info().Msg("connectivity monitor already started")
		return
	}

	ctx, m.cancel = context.WithCancel(ctx)

	m.wg.Add(1)
	go m.run(ctx)

	m.logger.Info().
		Dur("probe_interval", m.probeInterval).
		Dur("drain_debounce", m.drainDebounce).
		Msg("connectivity monitor started")
}

func (m *monitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	m.wg.Wait()

	m.logger.Info().Msg("connectivity monitor stopped")
}

func (m *monitor) run(ctx context.Context) {
	defer m.wg.Done()

	// first probe right away so startup state is known before the first tick
	m.probe(ctx)

	ticker := time.NewTicker(m.probeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.probe(ctx)
		}
	}
}

func (m *monitor) probe(ctx context.Context) {
	err := m.pinger.Ping(ctx)
	nowOnline := err == nil

	wasOnline := m.online.Swap(nowOnline)
	if wasOnline == nowOnline {
		return
	}

	if !nowOnline {
		m.logger.Info().Err(err).Msg("remote authority unreachable, going offline")
		m.notify(Event{Online: false, At: time.Now().UTC()})
		return
	}

	m.logger.Info().Msg("remote authority reachable again")
	m.announceOnlineAfterDebounce(ctx)
}

// announceOnlineAfterDebounce delays the online event until the link has
// stayed up for the debounce window. If the state flips back to offline in
// the meantime the event is dropped.
func (m *monitor) announceOnlineAfterDebounce(ctx context.Context) {
	if m.drainDebounce <= 0 {
		m.notify(Event{Online: true, At: time.Now().UTC()})
		return
	}

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		select {
		case <-ctx.Done():
		case <-time.After(m.drainDebounce):
			if m.online.Load() {
				m.notify(Event{Online: true, At: time.Now().UTC()})
			}
		}
	}()
}

func (m *monitor) notify(event Event) {
	m.mu.Lock()
	subscribers := make([]chan Event, len(m.subscribers))
	copy(subscribers, m.subscribers)
	m.mu.Unlock()

	for _, ch := range subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}
