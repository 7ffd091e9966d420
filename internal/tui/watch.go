package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/noodlebox/currenttime"
	"github.com/noodlebox/currenttime/snapshot"
)

// WatchConfig holds configuration for watch mode.
type WatchConfig struct {
	// Format is the template the clock is rendered with.
	Format string
	// Color enables styled output.
	Color bool
}

// UpdateMsg carries a fresh snapshot from the engine.
type UpdateMsg struct {
	Snapshot snapshot.Snapshot
	At       time.Time
}

// startedMsg reports the schedule started by the model's Init command.
type startedMsg struct {
	schedule *currenttime.Schedule
}

// WatchModel is the Bubble Tea model for watch mode.
// It implements tea.Model interface (Init, Update, View).
type WatchModel struct {
	engine   *currenttime.Engine
	config   WatchConfig
	styles   Styles
	line     string
	schedule *currenttime.Schedule

	// Terminal dimensions
	width, height int
	quitting      bool
}

// NewWatchModel creates a WatchModel rendering e's snapshots.
func NewWatchModel(e *currenttime.Engine, cfg WatchConfig) *WatchModel {
	return &WatchModel{
		engine: e,
		config: cfg,
		styles: NewStyles(cfg.Color),
		line:   e.MkString(cfg.Format),
		width:  80, // Default width
		height: 24, // Default height
	}
}

// Init starts the engine's schedule. It runs as a command so that the
// initial update can already be delivered to the running program.
func (m *WatchModel) Init() tea.Cmd {
	e := m.engine
	return func() tea.Msg {
		return startedMsg{schedule: e.Init(currenttime.Config{})}
	}
}

// Update handles messages and returns the updated model and any commands.
func (m *WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case startedMsg:
		m.schedule = msg.schedule

	case UpdateMsg:
		m.line = m.engine.Render(m.config.Format, msg.Snapshot)
	}

	return m, nil
}

// View renders the current state to a string.
func (m *WatchModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Clock.Render(m.line))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Hint.Render("Press 'q' to quit"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// Line returns the most recently rendered clock text.
func (m *WatchModel) Line() string {
	return m.line
}

// RunWatch shows a live clock driven by e until the user quits or ctx is
// done. The engine's update callback is replaced, and its schedule is
// stopped on return.
func RunWatch(ctx context.Context, e *currenttime.Engine, cfg WatchConfig, opts ...tea.ProgramOption) error {
	model := NewWatchModel(e, cfg)
	p := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)...)

	e.OnUpdate(func(_ *currenttime.Engine, s snapshot.Snapshot, at time.Time) {
		p.Send(UpdateMsg{Snapshot: s, At: at})
	})
	defer func() {
		if s := e.Schedule(); s != nil {
			s.Stop()
		}
	}()

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
