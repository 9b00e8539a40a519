package tui

import (
	"github.com/akyairhashvil/fastlog/internal/config"
	"github.com/charmbracelet/bubbles/textinput"
)

// ViewState tracks the log cursor. Cursor 0 is the most recent fast.
type ViewState struct {
	cursor int
}

func newViewState() *ViewState {
	return &ViewState{}
}

// ModalManager tracks the open dialog, if any.
type ModalManager struct {
	current ModalState
}

func newModalManager() *ModalManager {
	return &ModalManager{}
}

func (m *ModalManager) ActiveModal() ModalType {
	if m.current == nil {
		return ModalNone
	}
	return m.current.Type()
}

func (m *ModalManager) IsOpen() bool {
	return m.current != nil
}

func (m *ModalManager) Open(state ModalState) {
	m.current = state
}

func (m *ModalManager) Close() {
	m.current = nil
}

func (m *ModalManager) EditSessionState() (*EditSessionState, bool) {
	state, ok := m.current.(*EditSessionState)
	return state, ok
}

// InputState stores the edit dialog text inputs.
type InputState struct {
	editStart textinput.Model
	editEnd   textinput.Model
}

func newInputState() *InputState {
	start := textinput.New()
	start.Placeholder = "31/12/2023 08:00"
	start.CharLimit = config.MaxTimestampLength
	start.Width = config.TimestampInputWidth

	end := textinput.New()
	end.Placeholder = "blank = in progress"
	end.CharLimit = config.MaxTimestampLength
	end.Width = config.TimestampInputWidth

	return &InputState{
		editStart: start,
		editEnd:   end,
	}
}
