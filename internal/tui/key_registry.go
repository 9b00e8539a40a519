package tui

import (
	"sort"
	"strings"

	"github.com/akyairhashvil/fastlog/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m DashboardModel, key string) (DashboardModel, tea.Cmd, bool)

// KeyBinding maps a key to a handler. An empty States list applies in every state.
type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	States      []models.FastState
	Priority    int
}

func (b KeyBinding) AppliesTo(state models.FastState) bool {
	if len(b.States) == 0 {
		return true
	}
	for _, s := range b.States {
		if s == state {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m DashboardModel, key string) (DashboardModel, tea.Cmd, bool) {
	state := m.tracker.State()
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesTo(state) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(state models.FastState) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(state) {
			out = append(out, b)
		}
	}
	return out
}

// HelpFor renders "[key]Description" pairs for the bindings active in state.
func (r *HandlerRegistry) HelpFor(state models.FastState) string {
	bindings := r.BindingsFor(state)
	seen := make(map[string]bool)
	var parts []string
	for _, b := range bindings {
		if b.Description == "" {
			continue
		}
		if seen[b.Key] {
			continue
		}
		seen[b.Key] = true
		parts = append(parts, "["+b.Key+"]"+b.Description)
	}
	return strings.Join(parts, "|")
}
