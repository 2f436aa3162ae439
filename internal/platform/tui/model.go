package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-runner/internal/clock"
	"github.com/vovakirdan/pixel-runner/internal/core"
	"github.com/vovakirdan/pixel-runner/internal/games/runner"
)

// MusicControl pauses and resumes background music.
type MusicControl interface {
	StartMusic()
	PauseMusic()
}

// Options configures the terminal front end.
type Options struct {
	Session  *runner.Session
	Clock    *clock.Clock
	Keys     KeyMap
	DuckHold time.Duration
	Music    MusicControl // Optional
	Logger   *log.Logger  // Optional
	Width    int
	Height   int
}

// Model is the Bubble Tea model driving one runner session.
type Model struct {
	session *runner.Session
	clock   *clock.Clock
	screen  *core.Screen
	input   *Input
	keys    KeyMap
	help    help.Model
	music   MusicControl
	logger  *log.Logger
	now     func() time.Time

	width    int
	height   int
	musicOn  bool
	quitting bool
}

// NewModel creates the model. The session is expected to be in the menu.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := opts.Clock
	if c == nil {
		c = clock.New(opts.Session.Rate())
	}

	h := help.New()
	h.Width = opts.Width

	m := Model{
		session: opts.Session,
		clock:   c,
		input:   NewInput(opts.Keys, opts.DuckHold),
		keys:    opts.Keys,
		help:    h,
		music:   opts.Music,
		logger:  logger,
		now:     time.Now,
		width:   opts.Width,
		height:  opts.Height,
		musicOn: opts.Music != nil,
	}
	m.screen = core.NewScreen(m.width, m.screenHeight())
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return clockCmd(m.clock)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(m.width, m.screenHeight())
		return m, nil

	case TickMsg:
		m.session.Step(msg.Delta, m.input.Frame(m.now()))
		return m, clockCmd(m.clock)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.width, m.screenHeight())
		return m, nil

	case key.Matches(msg, m.keys.Mute):
		m.toggleMusic()
		return m, nil
	}

	if m.input.Press(msg, m.now()) == core.ActionQuit {
		m.quitting = true
		m.logger.Info("quit", "runs", m.session.Runs(), "last_score", m.session.Score(), "wall", m.clock.Wall().Round(time.Second))
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) toggleMusic() {
	if m.music == nil {
		return
	}
	m.musicOn = !m.musicOn
	if m.musicOn {
		m.music.StartMusic()
	} else {
		m.music.PauseMusic()
	}
	m.logger.Debug("music toggled", "on", m.musicOn)
}

// footer renders the help line and the music indicator.
func (m Model) footer() string {
	f := m.help.View(m.keys)
	if m.music != nil && !m.musicOn {
		f = lipgloss.JoinHorizontal(lipgloss.Bottom, f, mutedStyle.Render("  music off"))
	}
	return helpStyle.Render(f)
}

// screenHeight is the terminal height minus the footer.
func (m Model) screenHeight() int {
	return max(m.height-lipgloss.Height(m.footer()), 0)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.footer()
}

// Run starts the Bubble Tea program and blocks until the player quits or
// ctx is canceled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
