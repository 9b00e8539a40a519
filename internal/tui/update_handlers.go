package tui

import (
	"fmt"

	"github.com/akyairhashvil/fastlog/internal/config"
	"github.com/akyairhashvil/fastlog/internal/fasting"
	"github.com/akyairhashvil/fastlog/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m DashboardModel) handleWindowSize(msg tea.WindowSizeMsg) DashboardModel {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.ProgressWidth
		if m.width < config.CompactModeThreshold {
			target = m.width / 2
		}
		m.progress.Width = target
	}
	return m
}

// handleTick refreshes the elapsed reading. Ticks from a cancelled run, or
// arriving after the fast ended, stop the loop.
func (m DashboardModel) handleTick(msg TickMsg) (DashboardModel, tea.Cmd) {
	if !m.timer.Current(msg) || !m.tracker.IsOpen() {
		return m, nil
	}
	m.timer.Elapsed = m.tracker.Elapsed(m.tracker.Now())
	return m, tickCmd(m.timer.Generation)
}

func (m DashboardModel) handleStartFast(string) (DashboardModel, tea.Cmd, bool) {
	start, ok := m.tracker.StartFast()
	if !ok {
		m.setStatusError("A fast is already in progress")
		return m, nil, true
	}
	cmd := m.timer.Restart()
	m.setStatus("Fast started at " + fasting.FormatTimestamp(start))
	return m, cmd, true
}

func (m DashboardModel) handleEndFast(string) (DashboardModel, tea.Cmd, bool) {
	session, ok, err := m.tracker.EndFast(m.ctx)
	if err != nil {
		util.LogError("end fast", err)
		m.setStatusError(fmt.Sprintf("Error ending fast: %v", err))
		return m, nil, true
	}
	if !ok {
		m.setStatusError("No fast in progress")
		return m, nil, true
	}
	m.timer.Stop()
	m.view.cursor = 0
	m.setStatus("Fast ended after " + fasting.FormatElapsed(session.Duration()))
	return m, nil, true
}

func (m DashboardModel) handleCursorUp(string) (DashboardModel, tea.Cmd, bool) {
	if m.view.cursor > 0 {
		m.view.cursor--
	}
	return m, nil, true
}

func (m DashboardModel) handleCursorDown(string) (DashboardModel, tea.Cmd, bool) {
	count, err := m.sessionCount()
	if err != nil {
		m.setStatusError(fmt.Sprintf("Error loading fasts: %v", err))
		return m, nil, true
	}
	if m.view.cursor < count-1 {
		m.view.cursor++
	}
	return m, nil, true
}

func (m DashboardModel) handleEditOpen(string) (DashboardModel, tea.Cmd, bool) {
	count, err := m.sessionCount()
	if err != nil {
		m.setStatusError(fmt.Sprintf("Error loading fasts: %v", err))
		return m, nil, true
	}
	if count == 0 {
		m.setStatusError("Nothing to edit yet")
		return m, nil, true
	}
	m.view.cursor = util.Clamp(m.view.cursor, 0, count-1)
	// Cursor 0 is the newest entry, which is the last in log order.
	cmd, err := m.openEditModal(count - 1 - m.view.cursor)
	if err != nil {
		m.setStatusError(fmt.Sprintf("Error loading fast: %v", err))
		return m, nil, true
	}
	return m, cmd, true
}

func (m DashboardModel) handleReport(string) (DashboardModel, tea.Cmd, bool) {
	dir := m.reportsDir
	if dir == "" {
		dir = util.ReportsDir(config.AppName)
	}
	path, err := GeneratePDFReport(m.ctx, m.tracker, dir, m.tracker.Now())
	if err != nil {
		util.LogError("generate report", err)
		m.setStatusError(fmt.Sprintf("Report failed: %v", err))
		return m, nil, true
	}
	m.setStatus("Report saved to " + path)
	return m, nil, true
}

func (m DashboardModel) handleThemeCycle(string) (DashboardModel, tea.Cmd, bool) {
	names := ThemeNames()
	next := names[0]
	for i, name := range names {
		if name == m.themeName {
			next = names[(i+1)%len(names)]
			break
		}
	}
	m.theme, m.themeName = LookupTheme(next)
	m.setStatus("Theme: " + m.theme.Name)
	return m, nil, true
}

func (m DashboardModel) handleQuit(string) (DashboardModel, tea.Cmd, bool) {
	return m, tea.Quit, true
}

func (m DashboardModel) sessionCount() (int, error) {
	sessions, err := m.tracker.Sessions(m.ctx)
	if err != nil {
		return 0, err
	}
	return len(sessions), nil
}
