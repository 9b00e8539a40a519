package tui

import (
	"time"

	"github.com/akyairhashvil/fastlog/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---
type TickMsg struct {
	Time       time.Time
	Generation int
}

func tickCmd(generation int) tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Generation: generation}
	})
}
