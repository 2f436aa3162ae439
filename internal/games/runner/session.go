// Package runner implements the Pixel Runner simulation: a side-scrolling
// endless runner where the player jumps over and ducks under obstacles that
// speed up the longer the run lasts.
package runner

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-runner/internal/clock"
	"github.com/vovakirdan/pixel-runner/internal/core"
)

// Phase is the top-level session state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseActive
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseActive {
		return "active"
	}
	return "menu"
}

// Event reports a phase transition that happened during a step.
type Event int

const (
	EventNone     Event = iota
	EventStarted        // Menu -> Active
	EventGameOver       // Active -> Menu
)

// StepResult is returned by Session.Step after each simulation tick.
type StepResult struct {
	Phase Phase
	Score int
	Event Event
}

// Audio receives fire-and-forget sound cues from the simulation.
type Audio interface {
	PlayJump()
}

type nopAudio struct{}

func (nopAudio) PlayJump() {}

// Session owns the player, the obstacles and the spawner, and drives them
// through the menu and active phases.
type Session struct {
	rate      int
	phase     Phase
	now       clock.Ticks
	start     clock.Ticks
	final     int // Score frozen at the last game over
	runs      int
	lastTicks clock.Ticks // Length of the last finished run
	lastSpeed int

	player    *Player
	obstacles *ObstacleRegistry
	spawner   *Spawner

	audio  Audio
	logger *log.Logger
	theme  Theme
}

// Option configures a Session.
type Option func(*Session)

// WithAudio routes sound cues to a.
func WithAudio(a Audio) Option {
	return func(s *Session) {
		if a != nil {
			s.audio = a
		}
	}
}

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRandom replaces the seeded random source used for spawning.
func WithRandom(rng RandomSource) Option {
	return func(s *Session) {
		s.spawner = NewSpawner(rng, s.rate)
	}
}

// WithTheme sets the colors used by Render.
func WithTheme(t Theme) Option {
	return func(s *Session) { s.theme = t }
}

// NewSession creates a session in the menu phase. The seed drives obstacle
// spawning so identical seeds and inputs replay identically.
func NewSession(seed int64, opts ...Option) *Session {
	s := &Session{
		rate:      TickRate,
		player:    NewPlayer(),
		obstacles: NewObstacleRegistry(),
		audio:     nopAudio{},
		logger:    log.New(io.Discard),
		theme:     DefaultTheme(),
	}
	s.spawner = NewSpawner(rand.New(rand.NewSource(seed)), s.rate)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Step advances the session by delta ticks using this tick's input.
func (s *Session) Step(delta clock.Ticks, in core.InputFrame) StepResult {
	s.now += delta

	event := EventNone
	switch s.phase {
	case PhaseMenu:
		if in.Has(core.ActionConfirm) {
			s.begin()
			event = EventStarted
		}
	case PhaseActive:
		event = s.advance(delta, in)
	}

	return StepResult{Phase: s.phase, Score: s.Score(), Event: event}
}

// begin starts a new run.
func (s *Session) begin() {
	s.phase = PhaseActive
	s.start = s.now
	s.player.Reset()
	s.obstacles.Clear()
	s.spawner.Reset()
	s.lastSpeed = Speed(0)
	s.runs++
	s.logger.Debug("run started", "run", s.runs, "tick", s.now)
}

// advance runs one active tick in order: player, spawn, obstacles, collision.
func (s *Session) advance(delta clock.Ticks, in core.InputFrame) Event {
	if s.player.Tick(in.Has(core.ActionJump), in.Has(core.ActionDuck)) {
		s.audio.PlayJump()
	}

	elapsed := s.Elapsed().Seconds(s.rate)
	if spec, ok := s.spawner.Tick(delta, elapsed); ok {
		s.obstacles.Spawn(spec)
		if spec.Speed != s.lastSpeed {
			s.logger.Debug("difficulty increased", "speed", spec.Speed, "seconds", elapsed)
			s.lastSpeed = spec.Speed
		}
	}

	s.obstacles.TickAll(delta)
	s.obstacles.Reap()

	if Collides(s.player.Box(), s.obstacles.All()) {
		s.end()
		return EventGameOver
	}
	return EventNone
}

// end freezes the score and returns to the menu.
func (s *Session) end() {
	s.final = s.Score()
	s.lastTicks = s.Elapsed()
	s.phase = PhaseMenu
	s.obstacles.Clear()
	s.logger.Info("game over", "run", s.runs, "score", s.final, "ticks", s.lastTicks)
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Score returns whole seconds survived in the current run while active,
// or the final score of the last run while in the menu.
func (s *Session) Score() int {
	if s.phase == PhaseActive {
		return s.Elapsed().Seconds(s.rate)
	}
	return s.final
}

// Elapsed returns the simulated time of the current run.
func (s *Session) Elapsed() clock.Ticks {
	if s.phase != PhaseActive {
		return 0
	}
	return s.now - s.start
}

// Now returns the simulated time since the session was created.
func (s *Session) Now() clock.Ticks {
	return s.now
}

// Runs returns how many runs have been started.
func (s *Session) Runs() int {
	return s.runs
}

// LastRunTicks returns the length of the most recently finished run.
func (s *Session) LastRunTicks() clock.Ticks {
	return s.lastTicks
}

// Player returns the player entity.
func (s *Session) Player() *Player {
	return s.player
}

// Obstacles returns the obstacle registry.
func (s *Session) Obstacles() *ObstacleRegistry {
	return s.obstacles
}

// Rate returns the simulation tick rate.
func (s *Session) Rate() int {
	return s.rate
}
