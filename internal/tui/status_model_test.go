package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"crmsync/internal/connectivity"
	"crmsync/internal/mock"
	"crmsync/internal/store"
	"crmsync/models"
)

type fixedMonitor struct {
	online bool
}

func (m fixedMonitor) IsOnline() bool                       { return m.online }
func (m fixedMonitor) Subscribe() <-chan connectivity.Event { return nil }
func (m fixedMonitor) Start(context.Context)                {}
func (m fixedMonitor) Stop()                                {}

func newModelUnderTest(t *testing.T, online bool) (statusModel, *mock.MockQueueService, *mock.MockStatusService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	queue := mock.NewMockQueueService(ctrl)
	status := mock.NewMockStatusService(ctrl)

	m := newStatusModel(context.Background(), queue, status, fixedMonitor{online: online}, 1,
		models.NewAppBuildInfo("v1.2.3", "2026-08-29", "abc1234"))
	return m, queue, status
}

func loadedModel(t *testing.T, m statusModel, msg reportLoadedMsg) statusModel {
	t.Helper()
	updated, _ := m.Update(msg)
	loaded, ok := updated.(statusModel)
	require.True(t, ok)
	return loaded
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestStatusModel_InitialViewLoading(t *testing.T) {
	m, _, _ := newModelUnderTest(t, true)
	assert.Contains(t, m.View(), "Loading...")
}

func TestStatusModel_RendersCountersAndBadge(t *testing.T) {
	m, _, _ := newModelUnderTest(t, true)

	m = loadedModel(t, m, reportLoadedMsg{report: models.StatusReport{
		Status: models.SyncStatus{Total: 6, Pending: 2, Completed: 3, Failed: 1},
	}})

	view := m.View()
	assert.Contains(t, view, "Pending: 2")
	assert.Contains(t, view, "Completed: 3")
	assert.Contains(t, view, "Failed: 1")
	assert.Contains(t, view, "online")
}

func TestStatusModel_OfflineUnknownConflicts(t *testing.T) {
	m, _, _ := newModelUnderTest(t, false)

	m = loadedModel(t, m, reportLoadedMsg{report: models.StatusReport{Unknown: true}})

	view := m.View()
	assert.Contains(t, view, "offline")
	assert.Contains(t, view, "unknown (authority unreachable)")
}

func TestStatusModel_ResolveKeySendsResolution(t *testing.T) {
	m, _, status := newModelUnderTest(t, true)

	m = loadedModel(t, m, reportLoadedMsg{report: models.StatusReport{
		Conflicts: []models.SyncConflict{{ID: "cf-1", EntityType: "lead", OperationType: models.OperationUpdate}},
	}})

	// move focus to the conflicts pane, then keep the offline copy
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(statusModel)
	require.Equal(t, paneConflicts, m.activePane)

	status.EXPECT().
		Resolve(gomock.Any(), int64(1), "cf-1", models.ResolutionUseOffline).
		Return(models.StatusReport{}, nil)

	_, cmd := m.Update(keyPress('o'))
	require.NotNil(t, cmd)

	msg := cmd()
	resolved, ok := msg.(conflictResolvedMsg)
	require.True(t, ok)
	assert.NoError(t, resolved.err)
}

func TestStatusModel_DismissFailedOperation(t *testing.T) {
	m, queue, _ := newModelUnderTest(t, true)

	m = loadedModel(t, m, reportLoadedMsg{failed: []models.QueuedOperation{
		{ID: "op-1", EntityType: "lead", OperationType: models.OperationCreate, Status: models.StatusFailed, LastError: "boom"},
	}})

	queue.EXPECT().DismissFailed(gomock.Any(), "op-1").Return(nil)

	_, cmd := m.Update(keyPress('d'))
	require.NotNil(t, cmd)

	msg := cmd()
	dismissed, ok := msg.(operationDismissedMsg)
	require.True(t, ok)
	assert.NoError(t, dismissed.err)
}

func TestStatusModel_RefreshCommandFetchesReportAndFailed(t *testing.T) {
	m, queue, status := newModelUnderTest(t, true)

	status.EXPECT().
		Report(gomock.Any(), int64(1)).
		Return(models.StatusReport{Status: models.SyncStatus{Pending: 1}}, nil)
	queue.EXPECT().
		Operations(gomock.Any(), store.OperationFilter{Status: models.StatusFailed, UserID: 1}).
		Return(nil, nil)

	cmd := m.Init()
	require.NotNil(t, cmd)

	msg := cmd()
	loaded, ok := msg.(reportLoadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.err)
	assert.Equal(t, 1, loaded.report.Status.Pending)
}

func TestStatusModel_BuildInfoToggle(t *testing.T) {
	m, _, _ := newModelUnderTest(t, true)

	updated, _ := m.Update(keyPress('v'))
	m = updated.(statusModel)
	view := m.View()
	assert.Contains(t, view, "v1.2.3")
	assert.Contains(t, view, "abc1234")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(statusModel)
	assert.False(t, strings.Contains(m.View(), "v1.2.3"))
}

func TestStatusModel_StatusLineClears(t *testing.T) {
	m, _, _ := newModelUnderTest(t, true)
	m = loadedModel(t, m, reportLoadedMsg{})

	updated, cmd := m.Update(copiedMsg{})
	m = updated.(statusModel)
	assert.Contains(t, m.View(), "Copied!")
	require.NotNil(t, cmd)

	updated, _ = m.Update(clearStatusMsg{})
	m = updated.(statusModel)
	assert.NotContains(t, m.View(), "Copied!")
}
