package tui

import (
	"errors"
	"fmt"

	"github.com/akyairhashvil/fastlog/internal/fasting"
	"github.com/akyairhashvil/fastlog/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// openEditModal loads the entry at index into the edit inputs.
func (m *DashboardModel) openEditModal(index int) (tea.Cmd, error) {
	sessions, err := m.tracker.Sessions(m.ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(sessions) {
		return nil, fmt.Errorf("%w: %d", fasting.ErrSessionNotFound, index)
	}
	s := sessions[index]
	m.inputs.editStart.SetValue(fasting.FormatTimestamp(s.Start))
	m.inputs.editStart.CursorEnd()
	m.inputs.editEnd.SetValue(fasting.FormatOptionalTimestamp(s.End))
	m.inputs.editEnd.CursorEnd()
	m.inputs.editEnd.Blur()
	m.modal.Open(&EditSessionState{Index: index, Focus: fasting.FieldStart})
	return tea.Batch(m.inputs.editStart.Focus(), textinput.Blink), nil
}

func (m *DashboardModel) closeEditModal() {
	m.modal.Close()
	m.inputs.editStart.Blur()
	m.inputs.editEnd.Blur()
	m.inputs.editStart.Reset()
	m.inputs.editEnd.Reset()
}

func (m *DashboardModel) focusEditField(state *EditSessionState, field fasting.EditField) tea.Cmd {
	state.Focus = field
	if field == fasting.FieldEnd {
		m.inputs.editStart.Blur()
		return m.inputs.editEnd.Focus()
	}
	m.inputs.editEnd.Blur()
	return m.inputs.editStart.Focus()
}

func (m DashboardModel) handleModalInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state, ok := m.modal.EditSessionState()
	if !ok {
		m.modal.Close()
		return m, nil
	}
	switch msg.String() {
	case "esc":
		m.closeEditModal()
		m.setStatus("Edit cancelled")
		return m, nil
	case "tab", "shift+tab", "up", "down":
		next := fasting.FieldEnd
		if state.Focus == fasting.FieldEnd {
			next = fasting.FieldStart
		}
		return m, m.focusEditField(state, next)
	case "enter":
		return m.confirmEditModal(state)
	}

	var cmd tea.Cmd
	if state.Focus == fasting.FieldEnd {
		m.inputs.editEnd, cmd = m.inputs.editEnd.Update(msg)
	} else {
		m.inputs.editStart, cmd = m.inputs.editStart.Update(msg)
	}
	return m, cmd
}

// confirmEditModal saves the dialog. Rejected input keeps the dialog open
// with the offending field focused; a vanished entry closes it.
func (m DashboardModel) confirmEditModal(state *EditSessionState) (tea.Model, tea.Cmd) {
	err := m.tracker.EditSession(m.ctx, state.Index, m.inputs.editStart.Value(), m.inputs.editEnd.Value())
	if err == nil {
		m.closeEditModal()
		m.setStatus("Fast updated")
		return m, nil
	}

	var editErr *fasting.EditError
	if !errors.As(err, &editErr) {
		util.LogError("edit fast", err)
		m.closeEditModal()
		m.setStatusError(fmt.Sprintf("Error saving fast: %v", err))
		return m, nil
	}
	if editErr.Field == fasting.FieldIndex {
		m.closeEditModal()
		m.setStatusError(editErr.Error())
		return m, nil
	}
	state.Err = editErr
	return m, m.focusEditField(state, editErr.Field)
}
