// Package tui renders the sync status screen: local queue counters, failed
// operations and outstanding conflicts, with interactive conflict resolution.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"crmsync/internal/connectivity"
	"crmsync/internal/logger"
	"crmsync/internal/service"
	"crmsync/models"
)

type TUI struct {
	services  *service.Services
	monitor   connectivity.Monitor
	buildInfo models.AppBuildInfo
}

func New(services *service.Services, monitor connectivity.Monitor, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{
		services:  services,
		monitor:   monitor,
		buildInfo: buildInfo,
	}, nil
}

// Run blocks in the status screen until the user quits.
func (t *TUI) Run(ctx context.Context, userID int64) error {
	model := newStatusModel(ctx, t.services.Queue, t.services.Status, t.monitor, userID, t.buildInfo)

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	return nil
}
