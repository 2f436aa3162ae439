package runner

import "time"

// World layout and timing. These are fixed by the game design and are not
// configurable at runtime.
const (
	WorldW  = 800
	WorldH  = 400
	GroundY = 300 // Ground line; bodies rest with their bottom edge here

	TickRate = 60 // Simulation ticks per second

	Gravity     = 1   // Added to vertical velocity every tick
	JumpImpulse = -20 // Vertical velocity at jump start

	BaseSpeed        = 6  // Obstacle speed at the start of a run, pixels per tick
	SpeedStepSeconds = 10 // Survival seconds per +1 obstacle speed

	SpawnInterval = 1500 * time.Millisecond
	SpawnMinX     = 900 // Spawn band, obstacle midbottom x
	SpawnMaxX     = 1100
	DespawnX      = -100 // Obstacles with box x at or left of this are removed

	TicksPerFrame = 10 // Animation cadence
	WalkFrames    = 2

	PlayerX    = 80 // Player midbottom x
	PlayerW    = 68
	PlayerH    = 84
	PlayerSitH = 40
)
