package client

import (
	"context"
	"errors"
	"fmt"
	"os"

	"crmsync/internal/adapter"
	"crmsync/internal/config"
	"crmsync/internal/connectivity"
	"crmsync/internal/logger"
	"crmsync/internal/service"
	"crmsync/internal/session"
	"crmsync/internal/store"
	"crmsync/internal/tui"
	"crmsync/internal/workers"
	"crmsync/models"
)

// App is the crmsync client: local stores, remote authority adapter,
// connectivity monitor, sync services, background workers and the status
// screen.
type App struct {
	cfg       *config.StructuredConfig
	services  *service.Services
	sessions  *session.Manager
	authority adapter.RemoteAuthority
	monitor   connectivity.Monitor
	workers   *workers.Workers
	ui        *tui.TUI

	logger *logger.Logger
}

// NewApp wires the full client from configuration.
func NewApp(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	authority, err := adapter.NewHTTPRemoteAuthority(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create remote authority adapter: %w", err)
	}

	monitor := connectivity.NewMonitor(authority, cfg.Workers, log)
	services := service.NewServices(storages, authority, monitor, cfg.Workers, log)
	sessions := session.NewManager(storages.Autosave.Session, log)

	ui, err := tui.New(services, monitor, buildInfo, log)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		cfg:       cfg,
		services:  services,
		sessions:  sessions,
		authority: authority,
		monitor:   monitor,
		ui:        ui,
		logger:    log.WithComponent("app"),
	}, nil
}

// Run restores the session, starts the monitor and workers and blocks in the
// status screen. Without a session the client still runs: drafts and the
// queue keep working locally, only remote sync is skipped.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var userID int64
	persisted, err := a.sessions.Restore(ctx, a.cfg.Session)
	switch {
	case err == nil:
		userID = persisted.UserID
		a.authority.SetToken(persisted.Token)
		a.logger.Info().Int64("user_id", userID).Msg("session restored")
	case errors.Is(err, session.ErrNoSession):
		fmt.Fprintln(os.Stderr, "no session token, running in local-only mode")
		a.logger.Info().Msg("no usable session, local-only mode")
	default:
		return fmt.Errorf("restore session: %w", err)
	}

	a.monitor.Start(ctx)
	defer a.monitor.Stop()

	a.workers = workers.NewWorkers(a.services, a.monitor, userID, a.cfg.Workers, a.logger)
	a.workers.StartAll(ctx)
	defer a.workers.StopAll()
	defer a.services.Autosave.StopAll()

	return a.ui.Run(ctx, userID)
}
