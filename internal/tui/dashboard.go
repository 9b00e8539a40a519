package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/fastlog/internal/config"
	"github.com/akyairhashvil/fastlog/internal/fasting"
	"github.com/akyairhashvil/fastlog/internal/models"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures a dashboard. Zero values fall back to defaults.
type Options struct {
	Theme      string
	Target     time.Duration
	ReportsDir string
}

// DashboardModel is the single fasting screen.
type DashboardModel struct {
	ctx     context.Context
	tracker *fasting.Tracker

	target     time.Duration
	reportsDir string
	themeName  string

	timer  TimerManager
	view   *ViewState
	modal  *ModalManager
	inputs *InputState
	keys   *HandlerRegistry

	progress progress.Model
	theme    Theme

	statusMessage string
	statusIsError bool

	width, height int
}

func NewDashboardModel(ctx context.Context, tracker *fasting.Tracker, opts Options) DashboardModel {
	if ctx == nil {
		ctx = context.Background()
	}
	theme, themeName := LookupTheme(opts.Theme)
	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = config.ProgressWidth

	m := DashboardModel{
		ctx:        ctx,
		tracker:    tracker,
		target:     opts.Target,
		reportsDir: opts.ReportsDir,
		themeName:  themeName,
		timer:      NewTimerManager(),
		view:       newViewState(),
		modal:      newModalManager(),
		inputs:     newInputState(),
		keys:       NewHandlerRegistry(),
		progress:   prog,
		theme:      theme,
	}
	m.registerKeyHandlers()
	return m
}

func (m *DashboardModel) registerKeyHandlers() {
	open := []models.FastState{models.StateOpen}
	idle := []models.FastState{models.StateIdle}

	m.keys.Register(KeyBinding{Key: "s", Handler: DashboardModel.handleStartFast, Description: "Start", States: idle})
	m.keys.Register(KeyBinding{Key: "x", Handler: DashboardModel.handleEndFast, Description: "End", States: open})
	m.keys.Register(KeyBinding{Key: "up", Handler: DashboardModel.handleCursorUp})
	m.keys.Register(KeyBinding{Key: "k", Handler: DashboardModel.handleCursorUp, Description: "Up"})
	m.keys.Register(KeyBinding{Key: "down", Handler: DashboardModel.handleCursorDown})
	m.keys.Register(KeyBinding{Key: "j", Handler: DashboardModel.handleCursorDown, Description: "Down"})
	m.keys.Register(KeyBinding{Key: "e", Handler: DashboardModel.handleEditOpen, Description: "Edit"})
	m.keys.Register(KeyBinding{Key: "enter", Handler: DashboardModel.handleEditOpen})
	m.keys.Register(KeyBinding{Key: "r", Handler: DashboardModel.handleReport, Description: "Report"})
	m.keys.Register(KeyBinding{Key: "t", Handler: DashboardModel.handleThemeCycle, Description: "Theme"})
	m.keys.Register(KeyBinding{Key: "q", Handler: DashboardModel.handleQuit, Description: "Quit", Priority: -1})
}

// Init resumes the ticker when the tracker already holds an open fast.
func (m DashboardModel) Init() tea.Cmd {
	if !m.tracker.IsOpen() {
		return nil
	}
	return tickCmd(m.timer.Generation)
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil
	case TickMsg:
		return m.handleTick(msg)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.modal.IsOpen() {
			return m.handleModalInput(msg)
		}
		m.clearStatus()
		next, cmd, _ := m.keys.Handle(m, msg.String())
		return next, cmd
	}
	return m, nil
}

func (m *DashboardModel) setStatus(msg string) {
	m.statusMessage = msg
	m.statusIsError = false
}

func (m *DashboardModel) setStatusError(msg string) {
	m.statusMessage = msg
	m.statusIsError = true
}

func (m *DashboardModel) clearStatus() {
	m.statusMessage = ""
	m.statusIsError = false
}
