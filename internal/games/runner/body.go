package runner

import "github.com/vovakirdan/pixel-runner/internal/core"

// Frame identifies the sprite image a body shows on a given tick.
type Frame int

const (
	FrameWalk1 Frame = iota
	FrameWalk2
	FrameJump
	FrameSit
	FrameStand
	FrameFly1
	FrameFly2
	FrameSnail1
	FrameSnail2
)

// Body is an entity that is advanced once per tick and drawn from its box.
type Body interface {
	Box() core.Rect
	Frame() Frame
	Advance()
}

var (
	_ Body = (*Player)(nil)
	_ Body = (*Obstacle)(nil)
)

// animation is a looping frame cycle driven by an integer tick counter.
type animation struct {
	ticks  int
	frames int
}

func newAnimation(frames int) animation {
	return animation{frames: frames}
}

func (a *animation) advance() {
	a.ticks++
	if a.ticks >= a.frames*TicksPerFrame {
		a.ticks = 0
	}
}

func (a *animation) reset() {
	a.ticks = 0
}

// index returns the current frame within the cycle.
func (a animation) index() int {
	return a.ticks / TicksPerFrame
}
