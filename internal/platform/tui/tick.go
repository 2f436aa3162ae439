// Package tui runs the runner in the terminal with Bubble Tea. It maps keys
// to actions, paces the simulation and draws the session with lipgloss.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixel-runner/internal/clock"
)

// TickMsg carries the simulated time that passed since the previous tick.
type TickMsg struct {
	Delta clock.Ticks
}

// clockCmd waits on the clock for the next tick. Only one is in flight at a
// time, so the simulation never runs ahead of the clock.
func clockCmd(c *clock.Clock) tea.Cmd {
	return func() tea.Msg {
		return TickMsg{Delta: c.Advance()}
	}
}
