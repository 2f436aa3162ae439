package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixel-runner/internal/core"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Jump    key.Binding
	Duck    key.Binding
	Confirm key.Binding
	Mute    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Duck, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Duck, k.Confirm},
		{k.Mute, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/up", "jump"),
		),
		Duck: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down", "duck"),
		),
		Confirm: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space/enter", "start"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "music"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Input turns key presses into per-tick input frames.
//
// Terminals report presses but not releases, and auto-repeat starts only
// after a delay. A duck press therefore keeps Duck set for a hold window;
// repeats arriving within the window extend it.
type Input struct {
	keys      KeyMap
	hold      time.Duration
	pending   core.InputFrame
	duckUntil time.Time
}

// NewInput creates an input gateway with the given duck hold window.
func NewInput(keys KeyMap, hold time.Duration) *Input {
	return &Input{
		keys:    keys,
		hold:    hold,
		pending: core.NewInputFrame(),
	}
}

// Press records a key press at now and returns the matched action.
// Keys that only affect the front end (help, mute, quit) are returned
// without being queued for the simulation.
func (in *Input) Press(msg tea.KeyMsg, now time.Time) core.Action {
	switch {
	case key.Matches(msg, in.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, in.keys.Duck):
		in.pending.Set(core.ActionDuck)
		in.duckUntil = now.Add(in.hold)
		return core.ActionDuck
	}

	action := core.ActionNone
	if key.Matches(msg, in.keys.Confirm) {
		in.pending.Set(core.ActionConfirm)
		action = core.ActionConfirm
	}
	if key.Matches(msg, in.keys.Jump) {
		in.pending.Set(core.ActionJump)
		action = core.ActionJump
	}
	return action
}

// Frame returns the input for the tick at now and clears queued presses.
func (in *Input) Frame(now time.Time) core.InputFrame {
	f := in.pending.Clone()
	if now.Before(in.duckUntil) {
		f.Set(core.ActionDuck)
	}
	in.pending.Clear()
	return f
}
