package fasting

import (
	"context"
	"fmt"

	"github.com/akyairhashvil/fastlog/internal/models"
)

// SessionLog is the ordered record of logged fasts. Position is insertion order.
//
//go:generate mockgen -source=session_log.go -destination=mock_session_log_test.go -package=fasting
type SessionLog interface {
	AppendSession(ctx context.Context, s models.FastingSession) error
	ReplaceSession(ctx context.Context, index int, s models.FastingSession) error
	ListSessions(ctx context.Context) ([]models.FastingSession, error)
	CountSessions(ctx context.Context) (int, error)
}

// MemoryLog keeps sessions in a slice.
type MemoryLog struct {
	sessions []models.FastingSession
}

func NewMemoryLog() *MemoryLog {
	return &MemoryLog{}
}

var _ SessionLog = (*MemoryLog)(nil)

func (l *MemoryLog) AppendSession(_ context.Context, s models.FastingSession) error {
	l.sessions = append(l.sessions, s.Clone())
	return nil
}

func (l *MemoryLog) ReplaceSession(_ context.Context, index int, s models.FastingSession) error {
	if index < 0 || index >= len(l.sessions) {
		return fmt.Errorf("replace session %d: %w", index, ErrSessionNotFound)
	}
	l.sessions[index] = s.Clone()
	return nil
}

func (l *MemoryLog) ListSessions(context.Context) ([]models.FastingSession, error) {
	out := make([]models.FastingSession, 0, len(l.sessions))
	for _, s := range l.sessions {
		out = append(out, s.Clone())
	}
	return out, nil
}

func (l *MemoryLog) CountSessions(context.Context) (int, error) {
	return len(l.sessions), nil
}
