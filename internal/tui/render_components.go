package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/fastlog/internal/config"
	"github.com/akyairhashvil/fastlog/internal/fasting"
	"github.com/akyairhashvil/fastlog/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m DashboardModel) renderHeader() string {
	title := m.theme.Header.Render("Fasting Tracker")
	version := m.theme.Dim.Render(" " + VersionLabel())
	return lipgloss.JoinHorizontal(lipgloss.Bottom, title, version) + "\n"
}

func (m DashboardModel) renderBanner(d fasting.Dashboard) string {
	if !d.Open {
		return m.theme.Dim.Render("Not fasting. Press [s] to start a fast.") + "\n"
	}
	var b strings.Builder
	b.WriteString(m.theme.Banner.Render("Fasting in progress since: " + d.Since))
	b.WriteString("\n")
	b.WriteString("Elapsed: " + d.Elapsed)
	if m.target > 0 {
		b.WriteString("\n")
		b.WriteString(m.progress.ViewAs(d.Progress))
		b.WriteString(m.theme.Dim.Render(" of " + fasting.FormatElapsed(m.target)))
	}
	b.WriteString("\n")
	return b.String()
}

func (m DashboardModel) renderControls(d fasting.Dashboard) string {
	start := m.theme.ButtonDisabled.Render("[s] Start Fast")
	if d.CanStart {
		start = m.theme.Button.Render("[s] Start Fast")
	}
	end := m.theme.ButtonDisabled.Render("[x] End Fast")
	if d.CanEnd {
		end = m.theme.Button.Render("[x] End Fast")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, start, "  ", end) + "\n"
}

func (m DashboardModel) renderTotal(d fasting.Dashboard) string {
	return m.theme.Highlight.Render("Total fasting time: "+d.Total) + "\n"
}

func (m DashboardModel) renderLog(d fasting.Dashboard) string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Fasting Logs"))
	b.WriteString("\n")
	if d.Empty {
		b.WriteString(m.theme.Dim.Render("No fasting logged yet."))
		b.WriteString("\n")
		return b.String()
	}
	if len(d.Rows) == 0 {
		return b.String()
	}

	width := m.contentWidth() - 2
	cursor := util.Clamp(m.view.cursor, 0, len(d.Rows)-1)
	visible := m.visibleRows()
	first, last := logWindow(cursor, len(d.Rows), visible)
	for i := first; i < last; i++ {
		row := d.Rows[i]
		line := fmt.Sprintf("Start: %s - End: %s  %s", row.Start, row.End, row.Duration)
		line = ansi.Truncate(line, width, config.TruncationSuffix)
		style := m.theme.Row
		if row.Open {
			style = m.theme.OpenRow
		}
		prefix := "  "
		if i == cursor {
			prefix = "> "
			style = m.theme.Focused
		}
		b.WriteString(prefix + style.Render(line))
		b.WriteString("\n")
	}
	if len(d.Rows) > visible {
		b.WriteString(m.theme.Dim.Render(fmt.Sprintf("(%d-%d of %d)", first+1, last, len(d.Rows))))
		b.WriteString("\n")
	}
	return b.String()
}

func (m DashboardModel) renderFooter() string {
	if m.statusMessage != "" {
		if m.statusIsError {
			return m.theme.Error.Render(m.statusMessage)
		}
		return m.theme.Status.Render(m.statusMessage)
	}
	return m.theme.Dim.Render(m.keys.HelpFor(m.tracker.State()))
}

func (m DashboardModel) visibleRows() int {
	if m.height <= 0 {
		return config.MaxVisibleRows
	}
	return util.Clamp(m.height-config.ReservedRows, config.MinVisibleRows, config.MaxVisibleRows)
}

// logWindow returns the [first, last) slice of rows to draw so cursor stays visible.
func logWindow(cursor, total, visible int) (int, int) {
	if total <= visible {
		return 0, total
	}
	first := cursor - visible/2
	if first < 0 {
		first = 0
	}
	if first+visible > total {
		first = total - visible
	}
	return first, first + visible
}
