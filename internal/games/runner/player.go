package runner

import "github.com/vovakirdan/pixel-runner/internal/core"

// Posture is the player's discrete physical mode.
type Posture int

const (
	Standing Posture = iota
	Jumping
	Sitting
)

// String returns the posture name.
func (p Posture) String() string {
	switch p {
	case Standing:
		return "standing"
	case Jumping:
		return "jumping"
	case Sitting:
		return "sitting"
	default:
		return "unknown"
	}
}

// Player is the runner controlled by the user.
type Player struct {
	box            core.Rect
	velocity       int // Vertical velocity, negative = up
	posture        Posture
	walk           animation
	frame          Frame
	groundedHeight int
}

// NewPlayer creates a player standing on the ground line.
func NewPlayer() *Player {
	p := &Player{groundedHeight: PlayerH}
	p.Reset()
	return p
}

// Reset puts the player back at its start position and posture.
func (p *Player) Reset() {
	p.box = core.NewRectMidBottom(PlayerX, GroundY, PlayerW, p.groundedHeight)
	p.velocity = 0
	p.posture = Standing
	p.walk = newAnimation(WalkFrames)
	p.frame = FrameWalk1
}

// Tick runs one simulation step: input, then gravity, then animation.
// It reports whether a jump started this tick.
func (p *Player) Tick(jump, duck bool) bool {
	jumped := p.HandleInput(jump, duck)
	p.Advance()
	return jumped
}

// Advance applies gravity and steps the animation.
func (p *Player) Advance() {
	p.ApplyGravity()
	p.AdvanceAnimation()
}

// HandleInput applies the jump and duck signals for this tick and reports
// whether a jump started.
func (p *Player) HandleInput(jump, duck bool) bool {
	wasSitting := p.posture == Sitting
	jumped := false

	if jump && p.box.Bottom() >= GroundY && p.posture != Jumping {
		p.posture = Jumping
		p.velocity = JumpImpulse
		jumped = true
	}

	switch {
	case duck && !wasSitting:
		p.sit()
	case duck && wasSitting:
		// Still crouched, possibly with a jump just started
		p.posture = Sitting
	case !duck && wasSitting:
		p.standUp()
	}

	return jumped
}

func (p *Player) sit() {
	p.posture = Sitting
	p.walk.reset()
	p.box = p.box.WithHeight(PlayerSitH)
}

func (p *Player) standUp() {
	p.box = p.box.WithHeight(p.groundedHeight)
	if p.Airborne() || p.velocity < 0 {
		p.posture = Jumping
	} else {
		p.posture = Standing
	}
}

// ApplyGravity integrates vertical velocity and clamps the player to the ground.
func (p *Player) ApplyGravity() {
	p.velocity += Gravity
	p.box.Y += p.velocity
	if p.box.Bottom() >= GroundY {
		p.box = p.box.WithBottom(GroundY)
		p.velocity = 0
		if p.posture == Jumping {
			p.posture = Standing
		}
	}
}

// AdvanceAnimation picks the frame to show. Sitting freezes the cycle,
// airborne shows the jump frame, otherwise the walk cycle advances.
func (p *Player) AdvanceAnimation() {
	switch {
	case p.posture == Sitting:
		// frozen
	case p.Airborne():
		p.frame = FrameJump
	default:
		p.walk.advance()
		p.frame = FrameWalk1 + Frame(p.walk.index())
	}
}

// Airborne reports whether the player's feet are above the ground line.
func (p *Player) Airborne() bool {
	return p.box.Bottom() < GroundY
}

// Box returns the player's current bounding box.
func (p *Player) Box() core.Rect {
	return p.box
}

// Frame returns the sprite frame to display.
func (p *Player) Frame() Frame {
	if p.posture == Sitting {
		return FrameSit
	}
	return p.frame
}

// Posture returns the current posture.
func (p *Player) Posture() Posture {
	return p.posture
}

// Velocity returns the vertical velocity.
func (p *Player) Velocity() int {
	return p.velocity
}

// GroundedHeight returns the box height while not sitting.
func (p *Player) GroundedHeight() int {
	return p.groundedHeight
}
