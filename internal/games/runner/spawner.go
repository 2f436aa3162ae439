package runner

import "github.com/vovakirdan/pixel-runner/internal/clock"

// RandomSource is the subset of *rand.Rand the spawner draws from.
type RandomSource interface {
	Intn(n int) int
}

// kindPool is the weighted draw for obstacle kinds: half flying, half crawling.
var kindPool = []Kind{Flying, Crawling, Crawling, Flying, Crawling, Flying}

// Spawner emits one obstacle spec every spawn interval of simulated time.
type Spawner struct {
	rng      RandomSource
	interval clock.Ticks
	elapsed  clock.Ticks
}

// NewSpawner creates a spawner drawing from rng at the given tick rate.
func NewSpawner(rng RandomSource, rate int) *Spawner {
	return &Spawner{
		rng:      rng,
		interval: clock.TicksFor(SpawnInterval, rate),
	}
}

// Reset restarts the spawn interval.
func (s *Spawner) Reset() {
	s.elapsed = 0
}

// Tick accumulates delta and, when the interval expires, returns the spec
// for the next obstacle. elapsedSeconds is the survival time of the run.
func (s *Spawner) Tick(delta clock.Ticks, elapsedSeconds int) (ObstacleSpec, bool) {
	s.elapsed += delta
	if s.elapsed < s.interval {
		return ObstacleSpec{}, false
	}
	s.elapsed = 0

	kind := kindPool[s.rng.Intn(len(kindPool))]
	x := SpawnMinX + s.rng.Intn(SpawnMaxX-SpawnMinX+1)
	elevations := traitsOf(kind).elevations
	y := elevations[s.rng.Intn(len(elevations))]

	return ObstacleSpec{
		Kind:  kind,
		X:     x,
		Y:     y,
		Speed: Speed(elapsedSeconds),
	}, true
}

// Speed returns the obstacle speed after the given survival time.
func Speed(elapsedSeconds int) int {
	if elapsedSeconds < 0 {
		elapsedSeconds = 0
	}
	return BaseSpeed + elapsedSeconds/SpeedStepSeconds
}
