package tui

import (
	"fmt"

	"github.com/akyairhashvil/fastlog/internal/config"
	"github.com/akyairhashvil/fastlog/internal/fasting"
	"github.com/charmbracelet/lipgloss"
)

func (m DashboardModel) View() string {
	d, err := fasting.Project(m.ctx, m.tracker, m.timer.Elapsed, m.target)
	if err != nil {
		return fmt.Sprintf("\n  Error: %v\n\n  Press q to quit.\n", err)
	}

	sections := []string{
		m.renderHeader(),
		m.renderBanner(d),
		m.renderControls(d),
		m.renderTotal(d),
		m.renderLog(d),
	}
	if m.modal.ActiveModal() == ModalEditSession {
		sections = append(sections, m.renderEditModal())
	}
	sections = append(sections, m.renderFooter())
	return m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// contentWidth is the usable width before the first WindowSizeMsg arrives too.
func (m DashboardModel) contentWidth() int {
	const fallback = 80
	w := m.width
	if w <= 0 {
		w = fallback
	}
	w -= m.theme.Base.GetHorizontalFrameSize()
	if w < config.MinContentWidth {
		w = config.MinContentWidth
	}
	return w
}
