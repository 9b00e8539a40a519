package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TimerManager holds the elapsed-time reading of the open fast. Each ticker
// run is tagged with Generation; bumping it orphans the previous run.
type TimerManager struct {
	Elapsed    time.Duration
	Generation int
}

func NewTimerManager() TimerManager {
	return TimerManager{}
}

// Restart cancels any running ticker and schedules a fresh one.
func (t *TimerManager) Restart() tea.Cmd {
	t.Generation++
	t.Elapsed = 0
	return tickCmd(t.Generation)
}

// Stop cancels the running ticker and resets the reading.
func (t *TimerManager) Stop() {
	t.Generation++
	t.Elapsed = 0
}

func (t TimerManager) Current(msg TickMsg) bool {
	return msg.Generation == t.Generation
}
