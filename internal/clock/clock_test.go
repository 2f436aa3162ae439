package clock

import (
	"testing"
	"time"
)

// fakeTime is a manual wall clock whose sleep advances time instantly.
type fakeTime struct {
	t      time.Time
	sleeps []time.Duration
}

func (f *fakeTime) now() time.Time { return f.t }

func (f *fakeTime) sleep(d time.Duration) {
	f.sleeps = append(f.sleeps, d)
	f.t = f.t.Add(d)
}

func TestClockAdvanceThrottles(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := New(60, WithTimeSource(ft.now, ft.sleep))

	// First call never waits
	if d := c.Advance(); d != 1 {
		t.Errorf("Advance() = %d, expected 1", d)
	}
	if len(ft.sleeps) != 0 {
		t.Fatalf("first Advance should not sleep, slept %v", ft.sleeps)
	}

	// Caller did 5ms of work; clock should wait out the rest of the tick
	ft.t = ft.t.Add(5 * time.Millisecond)
	c.Advance()
	if len(ft.sleeps) != 1 {
		t.Fatalf("expected one sleep, got %v", ft.sleeps)
	}
	if want := c.step - 5*time.Millisecond; ft.sleeps[0] != want {
		t.Errorf("slept %v, expected %v", ft.sleeps[0], want)
	}

	// Caller overran the tick; no sleep
	ft.t = ft.t.Add(40 * time.Millisecond)
	c.Advance()
	if len(ft.sleeps) != 1 {
		t.Errorf("overrun tick should not sleep, got %v", ft.sleeps)
	}

	if c.Now() != 3 {
		t.Errorf("Now() = %d, expected 3", c.Now())
	}
}

func TestClockSpacingNeverBelowStep(t *testing.T) {
	ft := &fakeTime{t: time.Unix(0, 0)}
	c := New(60, WithTimeSource(ft.now, ft.sleep))

	prev := ft.t
	c.Advance()
	for i := 0; i < 100; i++ {
		c.Advance()
		if gap := ft.t.Sub(prev); i > 0 && gap < c.step {
			t.Fatalf("tick %d: gap %v below step %v", i, gap, c.step)
		}
		prev = ft.t
	}
}

func TestClockWithoutThrottle(t *testing.T) {
	ft := &fakeTime{t: time.Unix(0, 0)}
	c := New(60, WithTimeSource(ft.now, ft.sleep), WithoutThrottle())

	for i := 0; i < 120; i++ {
		c.Advance()
	}
	if len(ft.sleeps) != 0 {
		t.Errorf("unthrottled clock slept %d times", len(ft.sleeps))
	}
	if c.Elapsed() != 2*time.Second {
		t.Errorf("Elapsed() = %v, expected 2s", c.Elapsed())
	}
}

func TestNewDefaultsRate(t *testing.T) {
	c := New(0)
	if c.Rate() != DefaultRate {
		t.Errorf("Rate() = %d, expected %d", c.Rate(), DefaultRate)
	}
}

func TestTicksConversions(t *testing.T) {
	tests := []struct {
		d    time.Duration
		rate int
		want Ticks
	}{
		{1500 * time.Millisecond, 60, 90},
		{time.Second, 60, 60},
		{1500 * time.Millisecond, 30, 45},
		{10 * time.Millisecond, 60, 1},
	}
	for _, tc := range tests {
		if got := TicksFor(tc.d, tc.rate); got != tc.want {
			t.Errorf("TicksFor(%v, %d) = %d, expected %d", tc.d, tc.rate, got, tc.want)
		}
	}

	if s := Ticks(719).Seconds(60); s != 11 {
		t.Errorf("Ticks(719).Seconds = %d, expected 11", s)
	}
	if s := Ticks(720).Seconds(60); s != 12 {
		t.Errorf("Ticks(720).Seconds = %d, expected 12", s)
	}
	if d := Ticks(90).Duration(60); d != 1500*time.Millisecond {
		t.Errorf("Ticks(90).Duration = %v, expected 1.5s", d)
	}
}
