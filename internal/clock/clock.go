// Package clock provides the fixed-rate simulation clock that paces the
// update loop.
package clock

import "time"

// DefaultRate is the simulation rate in ticks per second.
const DefaultRate = 60

// Ticks counts simulation steps. All simulated time is kept in whole ticks so
// that long runs never accumulate rounding error.
type Ticks int64

// Duration converts a tick count to simulated time at the given rate.
func (t Ticks) Duration(rate int) time.Duration {
	return time.Duration(t) * time.Second / time.Duration(rate)
}

// Seconds returns the whole simulated seconds covered by t, rounded down.
func (t Ticks) Seconds(rate int) int {
	return int(t / Ticks(rate))
}

// TicksFor converts a simulated duration to the nearest whole tick count.
func TicksFor(d time.Duration, rate int) Ticks {
	return Ticks((d*time.Duration(rate) + time.Second/2) / time.Second)
}

// Clock advances simulated time one tick per call and, unless throttling is
// disabled, keeps successive calls at least one tick of wall time apart.
type Clock struct {
	rate     int
	step     time.Duration
	throttle bool
	now      func() time.Time
	sleep    func(time.Duration)

	started time.Time
	last    time.Time
	ticks   Ticks
}

// Option configures a Clock.
type Option func(*Clock)

// WithoutThrottle makes Advance return immediately. Used by headless runs.
func WithoutThrottle() Option {
	return func(c *Clock) { c.throttle = false }
}

// WithTimeSource replaces the wall clock and sleep function.
func WithTimeSource(now func() time.Time, sleep func(time.Duration)) Option {
	return func(c *Clock) {
		c.now = now
		c.sleep = sleep
	}
}

// New creates a clock running at rate ticks per second. A non-positive rate
// falls back to DefaultRate.
func New(rate int, opts ...Option) *Clock {
	if rate <= 0 {
		rate = DefaultRate
	}
	c := &Clock{
		rate:     rate,
		step:     time.Second / time.Duration(rate),
		throttle: true,
		now:      time.Now,
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.started = c.now()
	return c
}

// Advance blocks until at least one tick of wall time has passed since the
// previous call, then moves simulated time forward and returns the delta.
func (c *Clock) Advance() Ticks {
	if c.throttle {
		if !c.last.IsZero() {
			if wait := c.last.Add(c.step).Sub(c.now()); wait > 0 {
				c.sleep(wait)
			}
		}
		c.last = c.now()
	}
	c.ticks++
	return 1
}

// Now returns the simulated time in ticks since the clock was created.
func (c *Clock) Now() Ticks {
	return c.ticks
}

// Elapsed returns the simulated time since the clock was created.
func (c *Clock) Elapsed() time.Duration {
	return c.ticks.Duration(c.rate)
}

// Wall returns the wall time since the clock was created.
func (c *Clock) Wall() time.Duration {
	return c.now().Sub(c.started)
}

// Rate returns the tick rate in ticks per second.
func (c *Clock) Rate() int {
	return c.rate
}
