package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"crmsync/internal/connectivity"
	"crmsync/internal/service"
	"crmsync/internal/store"
	"crmsync/models"
)

type pane int

const (
	paneFailed pane = iota
	paneConflicts
)

type statusModel struct {
	ctx       context.Context
	queue     service.QueueService
	status    service.StatusService
	monitor   connectivity.Monitor
	userID    int64
	buildInfo models.AppBuildInfo

	report  models.StatusReport
	failed  []models.QueuedOperation
	loaded  bool
	syncing bool
	spinner spinner.Model

	activePane  pane
	failedIdx   int
	conflictIdx int

	statusLine string
	err        error

	showBuildInfo bool
}

func newStatusModel(
	ctx context.Context,
	queue service.QueueService,
	status service.StatusService,
	monitor connectivity.Monitor,
	userID int64,
	buildInfo models.AppBuildInfo,
) statusModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return statusModel{
		ctx:       ctx,
		queue:     queue,
		status:    status,
		monitor:   monitor,
		userID:    userID,
		buildInfo: buildInfo,
		spinner:   s,
	}
}

func (m statusModel) Init() tea.Cmd {
	return m.cmdRefresh()
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case reportLoadedMsg:
		m.loaded = true
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.report = msg.report
		m.failed = msg.failed
		m.clampCursors()
		return m, nil

	case drainDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.err = msg.err
			return m, m.cmdRefresh()
		}
		m.statusLine = fmt.Sprintf("Delivered %d, failed %d", msg.delivered, msg.failed)
		return m, tea.Batch(m.cmdRefresh(), cmdClearStatus())

	case conflictResolvedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.report = msg.report
		m.clampCursors()
		m.statusLine = "Conflict resolved"
		return m, cmdClearStatus()

	case operationDismissedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m, m.cmdRefresh()

	case copiedMsg:
		m.statusLine = "Copied!"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.statusLine = ""
		return m, nil

	case spinner.TickMsg:
		if m.syncing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m, nil
	}

	return m, nil
}

func (m statusModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
			m.showBuildInfo = false
		}
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.version):
		m.showBuildInfo = true
		return m, nil

	case key.Matches(msg, keys.refresh):
		return m, m.cmdRefresh()

	case key.Matches(msg, keys.drain):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		return m, tea.Batch(m.spinner.Tick, m.cmdDrain())

	case key.Matches(msg, keys.tab):
		if m.activePane == paneFailed {
			m.activePane = paneConflicts
		} else {
			m.activePane = paneFailed
		}
		return m, nil

	case key.Matches(msg, keys.up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, keys.down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, keys.dismiss):
		if op, ok := m.currentFailed(); ok {
			return m, m.cmdDismiss(op.ID)
		}
		return m, nil

	case key.Matches(msg, keys.useOffline):
		if conflict, ok := m.currentConflict(); ok {
			return m, m.cmdResolve(conflict.ID, models.ResolutionUseOffline)
		}
		return m, nil

	case key.Matches(msg, keys.useServer):
		if conflict, ok := m.currentConflict(); ok {
			return m, m.cmdResolve(conflict.ID, models.ResolutionUseServer)
		}
		return m, nil

	case key.Matches(msg, keys.copy):
		if m.activePane == paneFailed {
			if op, ok := m.currentFailed(); ok {
				return m, cmdCopyToClipboard(op.ID)
			}
			return m, nil
		}
		if conflict, ok := m.currentConflict(); ok {
			return m, cmdCopyToClipboard(conflict.ID)
		}
		return m, nil
	}

	return m, nil
}

func (m *statusModel) moveCursor(delta int) {
	if m.activePane == paneFailed {
		m.failedIdx = clamp(m.failedIdx+delta, len(m.failed))
		return
	}
	m.conflictIdx = clamp(m.conflictIdx+delta, len(m.report.Conflicts))
}

func (m *statusModel) clampCursors() {
	m.failedIdx = clamp(m.failedIdx, len(m.failed))
	m.conflictIdx = clamp(m.conflictIdx, len(m.report.Conflicts))
}

func clamp(idx, length int) int {
	if idx >= length {
		idx = length - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func (m statusModel) currentFailed() (models.QueuedOperation, bool) {
	if len(m.failed) == 0 || m.failedIdx >= len(m.failed) {
		return models.QueuedOperation{}, false
	}
	return m.failed[m.failedIdx], true
}

func (m statusModel) currentConflict() (models.SyncConflict, bool) {
	if len(m.report.Conflicts) == 0 || m.conflictIdx >= len(m.report.Conflicts) {
		return models.SyncConflict{}, false
	}
	return m.report.Conflicts[m.conflictIdx], true
}

func (m statusModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	status := m.status
	queue := m.queue
	userID := m.userID
	return func() tea.Msg {
		report, err := status.Report(ctx, userID)
		if err != nil {
			return reportLoadedMsg{err: err}
		}
		failed, err := queue.Operations(ctx, store.OperationFilter{Status: models.StatusFailed, UserID: userID})
		if err != nil {
			return reportLoadedMsg{err: err}
		}
		return reportLoadedMsg{report: report, failed: failed}
	}
}

func (m statusModel) cmdDrain() tea.Cmd {
	ctx := m.ctx
	queue := m.queue
	return func() tea.Msg {
		result, err := queue.Drain(ctx)
		return drainDoneMsg{delivered: result.Delivered, failed: result.Failed, err: err}
	}
}

func (m statusModel) cmdResolve(conflictID, resolution string) tea.Cmd {
	ctx := m.ctx
	status := m.status
	userID := m.userID
	return func() tea.Msg {
		report, err := status.Resolve(ctx, userID, conflictID, resolution)
		return conflictResolvedMsg{report: report, err: err}
	}
}

func (m statusModel) cmdDismiss(operationID string) tea.Cmd {
	ctx := m.ctx
	queue := m.queue
	return func() tea.Msg {
		return operationDismissedMsg{err: queue.DismissFailed(ctx, operationID)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return reportLoadedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m statusModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("crmsync"))
	b.WriteString("  ")
	if m.monitor.IsOnline() {
		b.WriteString(badgeOnline.Render("online"))
	} else {
		b.WriteString(badgeOffline.Render("offline"))
	}
	if m.syncing {
		b.WriteString("  " + m.spinner.View())
	}
	b.WriteString("\n\n")

	if !m.loaded {
		b.WriteString("Loading...\n")
		return appStyle.Render(b.String())
	}

	b.WriteString(renderCounters(m.report))
	b.WriteString("\n")
	b.WriteString(m.renderFailedPane())
	b.WriteString("\n")
	b.WriteString(m.renderConflictPane())

	if m.statusLine != "" {
		b.WriteString("\n" + m.statusLine + "\n")
	}
	if m.err != nil {
		b.WriteString("\n" + failedStyle.Render("Error: "+m.err.Error()) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("r refresh  s sync now  tab pane  d dismiss  o keep offline  u keep server  c copy id  v version  q quit"))

	return appStyle.Render(b.String())
}

func renderCounters(report models.StatusReport) string {
	line := fmt.Sprintf("Pending: %d   Completed: %d   Failed: %d",
		report.Status.Pending, report.Status.Completed, report.Status.Failed)
	if report.Status.OldestPending != nil {
		line += fmt.Sprintf("   Oldest pending: %s", report.Status.OldestPending.Format("2006-01-02 15:04"))
	}
	return line + "\n"
}

func (m statusModel) renderFailedPane() string {
	header := "Failed operations"
	if m.activePane == paneFailed {
		header = "> " + header
	} else {
		header = "  " + header
	}

	out := titleStyle.Render(header) + "\n"
	if len(m.failed) == 0 {
		out += "  none\n"
		return out
	}

	for i, op := range m.failed {
		cursor := "  "
		if m.activePane == paneFailed && i == m.failedIdx {
			cursor = "> "
		}
		out += fmt.Sprintf("%s%s %s %s  %s\n",
			cursor, shortID(op.ID), op.OperationType, op.EntityType, fitText(op.LastError, 40))
	}
	return out
}

func (m statusModel) renderConflictPane() string {
	header := "Conflicts"
	if m.activePane == paneConflicts {
		header = "> " + header
	} else {
		header = "  " + header
	}

	out := titleStyle.Render(header) + "\n"
	if m.report.Unknown {
		out += "  unknown (authority unreachable)\n"
		return out
	}
	if len(m.report.Conflicts) == 0 {
		out += "  none\n"
		return out
	}

	for i, conflict := range m.report.Conflicts {
		cursor := "  "
		if m.activePane == paneConflicts && i == m.conflictIdx {
			cursor = "> "
		}
		out += fmt.Sprintf("%s%s %s %s  %s\n",
			cursor, shortID(conflict.ID), conflict.OperationType, conflict.EntityType,
			conflict.CreatedAt.Format("2006-01-02 15:04"))
	}
	return out
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: crmsync\n")
	b.WriteString("Version: " + valueOrNA(info.BuildVersion()) + "\n")
	b.WriteString("Date: " + valueOrNA(info.BuildDate()) + "\n")
	b.WriteString("Commit: " + valueOrNA(info.BuildCommit()) + "\n\n")
	b.WriteString(helpStyle.Render("esc back"))

	return b.String()
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
