package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/pixel-runner/internal/clock"
	"github.com/vovakirdan/pixel-runner/internal/core"
)

func TestLoopRunsTicks(t *testing.T) {
	frames := 0
	l := &Loop{
		Clock:   clock.New(TickRate, clock.WithoutThrottle()),
		Session: NewSession(8),
		Input:   Autopilot,
		Frame:   func(Snapshot) { frames++ },
	}

	st, err := l.Run(context.Background(), 2000)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if st.Ticks != 2000 || frames != 2000 {
		t.Errorf("ticks %d frames %d, expected 2000", st.Ticks, frames)
	}
	if l.Clock.Now() != 2000 || l.Session.Now() != 2000 {
		t.Errorf("clock %d session %d", l.Clock.Now(), l.Session.Now())
	}

	for _, r := range st.Runs {
		if r.Score != r.Ticks.Seconds(TickRate) {
			t.Errorf("run %d: score %d for %d ticks", r.Run, r.Score, r.Ticks)
		}
		if r.Score > st.Best() {
			t.Errorf("Best() = %d below run score %d", st.Best(), r.Score)
		}
	}
}

func TestLoopRecordsGameOver(t *testing.T) {
	s := NewSession(1)
	ticks := 0
	l := &Loop{
		Clock:   clock.New(TickRate, clock.WithoutThrottle()),
		Session: s,
		Input: func(snap Snapshot) core.InputFrame {
			ticks++
			if snap.Phase == PhaseMenu {
				return core.InputOf(core.ActionConfirm)
			}
			if ticks == 130 {
				s.Obstacles().Spawn(ObstacleSpec{Kind: Crawling, X: PlayerX + 6, Y: GroundY, Speed: 6})
			}
			return core.NewInputFrame()
		},
		Frame: func(Snapshot) {
			if ticks < 130 {
				s.Obstacles().Clear()
			}
		},
	}

	st, err := l.Run(context.Background(), 131)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(st.Runs) != 1 {
		t.Fatalf("runs = %d, expected 1", len(st.Runs))
	}
	r := st.Runs[0]
	if r.Run != 1 || r.Ticks != 129 || r.Score != 2 {
		t.Errorf("run = %+v", r)
	}
	if st.Best() != 2 {
		t.Errorf("Best() = %d, expected 2", st.Best())
	}
}

func TestLoopCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	l := &Loop{
		Clock:   clock.New(TickRate, clock.WithoutThrottle()),
		Session: NewSession(1),
	}
	l.Frame = func(snap Snapshot) {
		if snap.Tick == 10 {
			cancel()
		}
	}

	st, err := l.Run(ctx, 1000)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, expected context.Canceled", err)
	}
	if st.Ticks != 10 {
		t.Errorf("ticks before cancel = %d, expected 10", st.Ticks)
	}
}

func TestStatsBestEmpty(t *testing.T) {
	if (Stats{}).Best() != 0 {
		t.Error("Best() of no runs should be 0")
	}
}
