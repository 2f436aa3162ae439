package runner

import (
	"github.com/vovakirdan/pixel-runner/internal/clock"
	"github.com/vovakirdan/pixel-runner/internal/core"
)

// Kind is the closed set of obstacle variants.
type Kind int

const (
	Flying Kind = iota
	Crawling
)

// String returns the kind name.
func (k Kind) String() string {
	return traitsOf(k).name
}

// kindTraits holds the per-kind spawn and sprite parameters.
type kindTraits struct {
	name       string
	w, h       int
	elevations []int // Candidate bottom y values at spawn
	frames     [2]Frame
}

var kinds = map[Kind]kindTraits{
	Flying: {
		name:       "flying",
		w:          84,
		h:          40,
		elevations: []int{210, 260},
		frames:     [2]Frame{FrameFly1, FrameFly2},
	},
	Crawling: {
		name:       "crawling",
		w:          72,
		h:          36,
		elevations: []int{GroundY},
		frames:     [2]Frame{FrameSnail1, FrameSnail2},
	},
}

// resolveKind maps unknown values to Crawling.
func resolveKind(k Kind) Kind {
	if _, ok := kinds[k]; ok {
		return k
	}
	return Crawling
}

func traitsOf(k Kind) kindTraits {
	return kinds[resolveKind(k)]
}

// ObstacleSpec describes an obstacle to be created.
type ObstacleSpec struct {
	Kind  Kind
	X     int // Midbottom x
	Y     int // Bottom edge
	Speed int // Pixels per tick
}

// Obstacle is a hazard scrolling toward the player.
type Obstacle struct {
	kind  Kind
	box   core.Rect
	speed int
	anim  animation
}

// NewObstacle builds an obstacle from a spec.
func NewObstacle(spec ObstacleSpec) *Obstacle {
	kind := resolveKind(spec.Kind)
	t := kinds[kind]
	return &Obstacle{
		kind:  kind,
		box:   core.NewRectMidBottom(spec.X, spec.Y, t.w, t.h),
		speed: spec.Speed,
		anim:  newAnimation(len(t.frames)),
	}
}

// Advance steps the animation and scrolls the obstacle left by its speed.
func (o *Obstacle) Advance() {
	o.anim.advance()
	o.box.X -= o.speed
}

// Box returns the obstacle's bounding box.
func (o *Obstacle) Box() core.Rect {
	return o.box
}

// Frame returns the sprite frame to display.
func (o *Obstacle) Frame() Frame {
	return kinds[o.kind].frames[o.anim.index()]
}

// Kind returns the obstacle variant.
func (o *Obstacle) Kind() Kind {
	return o.kind
}

// Speed returns the scroll speed fixed at spawn.
func (o *Obstacle) Speed() int {
	return o.speed
}

// Gone reports whether the obstacle has scrolled past the despawn threshold.
func (o *Obstacle) Gone() bool {
	return o.box.X <= DespawnX
}

// ObstacleRegistry is the live set of obstacles, kept in spawn order.
type ObstacleRegistry struct {
	live []*Obstacle
}

// NewObstacleRegistry creates an empty registry.
func NewObstacleRegistry() *ObstacleRegistry {
	return &ObstacleRegistry{live: make([]*Obstacle, 0, 8)}
}

// Spawn creates an obstacle from spec and appends it to the live set.
func (r *ObstacleRegistry) Spawn(spec ObstacleSpec) *Obstacle {
	o := NewObstacle(spec)
	r.live = append(r.live, o)
	return o
}

// TickAll advances every live obstacle by delta ticks.
func (r *ObstacleRegistry) TickAll(delta clock.Ticks) {
	for ; delta > 0; delta-- {
		for _, o := range r.live {
			o.Advance()
		}
	}
}

// Reap removes every obstacle that has scrolled off-screen.
func (r *ObstacleRegistry) Reap() {
	kept := r.live[:0]
	for _, o := range r.live {
		if !o.Gone() {
			kept = append(kept, o)
		}
	}
	clear(r.live[len(kept):])
	r.live = kept
}

// Clear removes all obstacles.
func (r *ObstacleRegistry) Clear() {
	clear(r.live)
	r.live = r.live[:0]
}

// All returns the live obstacles in spawn order. The slice is only valid
// until the registry is next modified.
func (r *ObstacleRegistry) All() []*Obstacle {
	return r.live
}

// Len returns the number of live obstacles.
func (r *ObstacleRegistry) Len() int {
	return len(r.live)
}
