package runner

import (
	"context"

	"github.com/vovakirdan/pixel-runner/internal/clock"
	"github.com/vovakirdan/pixel-runner/internal/core"
)

// RunResult describes one finished run.
type RunResult struct {
	Run   int
	Score int
	Ticks clock.Ticks
}

// Stats summarizes a Loop execution.
type Stats struct {
	Ticks clock.Ticks
	Runs  []RunResult
}

// Best returns the highest score among finished runs.
func (st Stats) Best() int {
	best := 0
	for _, r := range st.Runs {
		best = max(best, r.Score)
	}
	return best
}

// Loop drives a session without a terminal: each iteration advances the
// clock, polls input, steps the session and hands the snapshot to the
// optional frame sink.
type Loop struct {
	Clock   *clock.Clock
	Session *Session
	Input   func(Snapshot) core.InputFrame
	Frame   func(Snapshot)
}

// Run executes up to maxTicks ticks. Cancellation is checked between ticks,
// so a tick is never interrupted.
func (l *Loop) Run(ctx context.Context, maxTicks clock.Ticks) (Stats, error) {
	var st Stats
	snap := l.Session.Snapshot()

	for st.Ticks < maxTicks {
		if err := ctx.Err(); err != nil {
			return st, err
		}

		delta := l.Clock.Advance()
		in := core.NewInputFrame()
		if l.Input != nil {
			in = l.Input(snap)
		}
		res := l.Session.Step(delta, in)
		st.Ticks += delta

		if res.Event == EventGameOver {
			st.Runs = append(st.Runs, RunResult{
				Run:   l.Session.Runs(),
				Score: res.Score,
				Ticks: l.Session.LastRunTicks(),
			})
		}

		snap = l.Session.Snapshot()
		if l.Frame != nil {
			l.Frame(snap)
		}
	}
	return st, nil
}
