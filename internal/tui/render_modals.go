package tui

import (
	"strings"

	"github.com/akyairhashvil/fastlog/internal/fasting"
	"github.com/charmbracelet/lipgloss"
)

func (m DashboardModel) renderEditModal() string {
	state, ok := m.modal.EditSessionState()
	if !ok {
		return ""
	}
	layout := "DD/MM/YYYY hh:mm"

	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Edit Fast"))
	b.WriteString("\n\n")
	b.WriteString(m.fieldLabel(state, fasting.FieldStart, "Start ("+layout+")"))
	b.WriteString("\n")
	b.WriteString(m.fieldBox(state, fasting.FieldStart, m.inputs.editStart.View()))
	b.WriteString("\n")
	b.WriteString(m.fieldLabel(state, fasting.FieldEnd, "End ("+layout+", blank = in progress)"))
	b.WriteString("\n")
	b.WriteString(m.fieldBox(state, fasting.FieldEnd, m.inputs.editEnd.View()))
	b.WriteString("\n")
	if state.Err != nil {
		b.WriteString(m.theme.Error.Render(state.Err.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Dim.Render("[tab] Switch  [enter] Save  [esc] Cancel"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 2).
		Render(b.String())
	return lipgloss.Place(m.contentWidth(), lipgloss.Height(box), lipgloss.Center, lipgloss.Top, box)
}

func (m DashboardModel) fieldLabel(state *EditSessionState, field fasting.EditField, label string) string {
	switch {
	case state.Invalid(field):
		return m.theme.Error.Render(label)
	case state.Focus == field:
		return m.theme.Focused.Render(label)
	default:
		return label
	}
}

func (m DashboardModel) fieldBox(state *EditSessionState, field fasting.EditField, input string) string {
	if state.Invalid(field) {
		return m.theme.InputError.Render(input)
	}
	return m.theme.Input.Render(input)
}
