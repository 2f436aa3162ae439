package runner

import "testing"

func TestObstacleSpawnGeometry(t *testing.T) {
	tests := []struct {
		name string
		spec ObstacleSpec
		kind Kind
		w, h int
	}{
		{"flying high", ObstacleSpec{Kind: Flying, X: 1000, Y: 210, Speed: 6}, Flying, 84, 40},
		{"flying low", ObstacleSpec{Kind: Flying, X: 950, Y: 260, Speed: 6}, Flying, 84, 40},
		{"crawling", ObstacleSpec{Kind: Crawling, X: 900, Y: GroundY, Speed: 6}, Crawling, 72, 36},
		{"unknown kind falls back to crawling", ObstacleSpec{Kind: Kind(42), X: 900, Y: GroundY, Speed: 6}, Crawling, 72, 36},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := NewObstacle(tc.spec)
			box := o.Box()

			if o.Kind() != tc.kind {
				t.Errorf("Kind() = %v, expected %v", o.Kind(), tc.kind)
			}
			if box.W != tc.w || box.H != tc.h {
				t.Errorf("size = %dx%d, expected %dx%d", box.W, box.H, tc.w, tc.h)
			}
			mx, by := box.MidBottom()
			if mx != tc.spec.X || by != tc.spec.Y {
				t.Errorf("midbottom = (%d, %d), expected (%d, %d)", mx, by, tc.spec.X, tc.spec.Y)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if Flying.String() != "flying" || Crawling.String() != "crawling" {
		t.Errorf("kind names: %q %q", Flying, Crawling)
	}
	if Kind(-3).String() != "crawling" {
		t.Errorf("unknown kind name = %q", Kind(-3))
	}
}

func TestObstacleScrollsBySpeed(t *testing.T) {
	r := NewObstacleRegistry()
	o := r.Spawn(ObstacleSpec{Kind: Flying, X: 1100, Y: 210, Speed: 9})

	prev := o.Box().X
	for isLive(r, o) {
		r.TickAll(1)
		x := o.Box().X
		if prev-x != o.Speed() {
			t.Fatalf("x moved from %d to %d, expected step %d", prev, x, o.Speed())
		}
		prev = x
		r.Reap()
	}
}

func TestObstacleReapedPastThreshold(t *testing.T) {
	r := NewObstacleRegistry()
	o := r.Spawn(ObstacleSpec{Kind: Crawling, X: 1000, Y: GroundY, Speed: 7})

	removedAt := -1
	for tick := 1; tick <= 200; tick++ {
		r.TickAll(1)
		r.Reap()

		present := isLive(r, o)
		if o.Box().X > DespawnX && !present {
			t.Fatalf("tick %d: removed at x=%d", tick, o.Box().X)
		}
		if o.Box().X <= DespawnX {
			if present {
				t.Fatalf("tick %d: still live at x=%d", tick, o.Box().X)
			}
			if removedAt < 0 {
				removedAt = tick
			}
			break
		}
	}

	// Box x starts at 1000-36 and needs 1064 pixels at 7 per tick
	if removedAt != 152 {
		t.Errorf("removed at tick %d, expected 152", removedAt)
	}

	// Never resurrected
	for i := 0; i < 10; i++ {
		r.TickAll(1)
		r.Reap()
		if isLive(r, o) || r.Len() != 0 {
			t.Fatal("reaped obstacle came back")
		}
	}
}

func TestObstacleAnimation(t *testing.T) {
	o := NewObstacle(ObstacleSpec{Kind: Flying, X: 1000, Y: 210, Speed: 6})
	if o.Frame() != FrameFly1 {
		t.Errorf("initial frame = %v, expected %v", o.Frame(), FrameFly1)
	}

	for tick := 1; tick <= 40; tick++ {
		o.Advance()
		want := FrameFly1
		if tick%20 >= 10 {
			want = FrameFly2
		}
		if o.Frame() != want {
			t.Fatalf("tick %d: frame %v, expected %v", tick, o.Frame(), want)
		}
	}

	snail := NewObstacle(ObstacleSpec{Kind: Crawling, X: 1000, Y: GroundY, Speed: 6})
	for i := 0; i < 10; i++ {
		snail.Advance()
	}
	if snail.Frame() != FrameSnail2 {
		t.Errorf("snail frame after 10 ticks = %v, expected %v", snail.Frame(), FrameSnail2)
	}
}

func TestRegistryKeepsSpawnOrder(t *testing.T) {
	r := NewObstacleRegistry()
	slow := r.Spawn(ObstacleSpec{Kind: Crawling, X: 0, Y: GroundY, Speed: 1})
	fast := r.Spawn(ObstacleSpec{Kind: Flying, X: 0, Y: 210, Speed: 100})
	last := r.Spawn(ObstacleSpec{Kind: Crawling, X: 500, Y: GroundY, Speed: 1})

	all := r.All()
	if len(all) != 3 || all[0] != slow || all[1] != fast || all[2] != last {
		t.Fatal("registry should keep insertion order")
	}

	r.TickAll(1)
	r.Reap()

	all = r.All()
	if len(all) != 2 || all[0] != slow || all[1] != last {
		t.Errorf("after reap: expected [slow last], got %d obstacles", len(all))
	}

	r.Clear()
	if r.Len() != 0 {
		t.Errorf("Len() after Clear = %d", r.Len())
	}
}

func TestRegistryTickAllDelta(t *testing.T) {
	r := NewObstacleRegistry()
	o := r.Spawn(ObstacleSpec{Kind: Crawling, X: 1000, Y: GroundY, Speed: 6})
	start := o.Box().X

	r.TickAll(3)
	if got := start - o.Box().X; got != 18 {
		t.Errorf("moved %d after 3 ticks, expected 18", got)
	}
}

func TestCollides(t *testing.T) {
	p := NewPlayer()
	standing := p.Box()
	sitting := standing.WithHeight(PlayerSitH)

	crawler := NewObstacle(ObstacleSpec{Kind: Crawling, X: PlayerX, Y: GroundY, Speed: 6})
	lowFly := NewObstacle(ObstacleSpec{Kind: Flying, X: PlayerX, Y: 260, Speed: 6})
	highFly := NewObstacle(ObstacleSpec{Kind: Flying, X: PlayerX, Y: 210, Speed: 6})
	farAway := NewObstacle(ObstacleSpec{Kind: Crawling, X: 1000, Y: GroundY, Speed: 6})

	tests := []struct {
		name      string
		standing  bool
		obstacles []*Obstacle
		expected  bool
	}{
		{"empty", true, nil, false},
		{"crawler hits standing", true, []*Obstacle{crawler}, true},
		{"crawler hits sitting", false, []*Obstacle{crawler}, true},
		{"low flyer hits standing", true, []*Obstacle{lowFly}, true},
		{"low flyer misses sitting", false, []*Obstacle{lowFly}, false},
		{"high flyer misses standing", true, []*Obstacle{highFly}, false},
		{"any of several", true, []*Obstacle{farAway, highFly, crawler}, true},
		{"none of several", true, []*Obstacle{farAway, highFly}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			box := sitting
			if tc.standing {
				box = standing
			}
			if got := Collides(box, tc.obstacles); got != tc.expected {
				t.Errorf("Collides() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func isLive(r *ObstacleRegistry, o *Obstacle) bool {
	for _, l := range r.All() {
		if l == o {
			return true
		}
	}
	return false
}
