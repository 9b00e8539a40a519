package tui

import "github.com/akyairhashvil/fastlog/internal/fasting"

type ModalType int

const (
	ModalNone ModalType = iota
	ModalEditSession
)

type ModalState interface {
	Type() ModalType
}

// EditSessionState is the edit dialog for the log entry at Index.
type EditSessionState struct {
	Index int
	Focus fasting.EditField
	Err   *fasting.EditError
}

func (s *EditSessionState) Type() ModalType { return ModalEditSession }

// Invalid reports whether field was rejected by the last save attempt.
func (s *EditSessionState) Invalid(field fasting.EditField) bool {
	return s.Err != nil && s.Err.Field == field
}
