package runner

import "github.com/vovakirdan/pixel-runner/internal/core"

// Collides reports whether the player box overlaps any obstacle.
func Collides(player core.Rect, obstacles []*Obstacle) bool {
	for _, o := range obstacles {
		if player.Intersects(o.Box()) {
			return true
		}
	}
	return false
}
