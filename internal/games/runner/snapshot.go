package runner

import (
	"github.com/vovakirdan/pixel-runner/internal/clock"
	"github.com/vovakirdan/pixel-runner/internal/core"
)

// Sprite is what the renderer needs to draw one body.
type Sprite struct {
	Frame Frame
	Box   core.Rect
}

// ObstacleView is a read-only view of a live obstacle.
type ObstacleView struct {
	Sprite
	Kind  Kind
	Speed int
}

// Snapshot captures the visible session state for rendering, the autopilot
// and determinism testing.
type Snapshot struct {
	Tick      clock.Ticks
	Phase     Phase
	Score     int
	Runs      int
	Posture   Posture
	Velocity  int
	Player    Sprite
	Obstacles []ObstacleView
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	obstacles := make([]ObstacleView, 0, s.obstacles.Len())
	for _, o := range s.obstacles.All() {
		obstacles = append(obstacles, ObstacleView{
			Sprite: spriteOf(o),
			Kind:   o.Kind(),
			Speed:  o.Speed(),
		})
	}

	return Snapshot{
		Tick:      s.now,
		Phase:     s.phase,
		Score:     s.Score(),
		Runs:      s.runs,
		Posture:   s.player.Posture(),
		Velocity:  s.player.Velocity(),
		Player:    spriteOf(s.player),
		Obstacles: obstacles,
	}
}

func spriteOf(b Body) Sprite {
	return Sprite{Frame: b.Frame(), Box: b.Box()}
}
