package runner

import "github.com/vovakirdan/pixel-runner/internal/core"

// Autopilot is a simple scripted player used by headless runs. It starts a
// run from the menu, jumps over obstacles that would hit a standing player
// from below and ducks under low flyers.
func Autopilot(snap Snapshot) core.InputFrame {
	in := core.NewInputFrame()
	if snap.Phase == PhaseMenu {
		in.Set(core.ActionConfirm)
		return in
	}

	p := snap.Player.Box
	standing := core.NewRectMidBottom(PlayerX, GroundY, PlayerW, PlayerH)
	sitting := standing.WithHeight(PlayerSitH)

	next, ok := nearestAhead(snap.Obstacles, p.X)
	if !ok {
		return in
	}
	box := next.Box
	if !overlapsVertically(box, standing) {
		return in
	}

	gap := box.X - p.Right()
	if !overlapsVertically(box, sitting) {
		// Low enough to duck under; stay down until it has passed
		if gap <= 3*next.Speed {
			in.Set(core.ActionDuck)
		}
		return in
	}

	// Jump so the player is clear for the whole horizontal overlap
	if gap >= next.Speed && gap <= 2*next.Speed+20 {
		in.Set(core.ActionJump)
	}
	return in
}

// nearestAhead returns the obstacle with the smallest x whose right edge is
// still past the player's left edge.
func nearestAhead(obstacles []ObstacleView, playerX int) (ObstacleView, bool) {
	var best ObstacleView
	found := false
	for _, o := range obstacles {
		if o.Box.Right() <= playerX {
			continue
		}
		if !found || o.Box.X < best.Box.X {
			best = o
			found = true
		}
	}
	return best, found
}

func overlapsVertically(a, b core.Rect) bool {
	return a.Y < b.Bottom() && b.Y < a.Bottom()
}
