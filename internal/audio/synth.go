package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects an oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// sample returns the wave value at phase in [0, 1).
func (w WaveType) sample(phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 4*math.Abs(phase-0.5) - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// sweep is an oscillator whose frequency slides linearly from one value to
// another over a fixed number of samples.
type sweep struct {
	from, to float64
	wave     WaveType
	rate     beep.SampleRate
	total    int
	pos      int
	phase    float64
}

// NewSweep creates a finite oscillator gliding from one frequency to another.
// Equal frequencies give a plain tone.
func NewSweep(from, to float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{from: from, to: to, wave: wave, rate: rate, total: rate.N(d)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		v := s.wave.sample(s.phase)
		samples[i][0] = v
		samples[i][1] = v

		freq := s.from + (s.to-s.from)*float64(s.pos)/float64(s.total)
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// gain returns the attack/release envelope level at sample pos of a note
// lasting total samples.
func gain(pos, total, attack, release int) float64 {
	switch {
	case pos < 0 || pos >= total:
		return 0
	case attack > 0 && pos < attack:
		return float64(pos) / float64(attack)
	case release > 0 && pos >= total-release:
		return float64(total-pos) / float64(release)
	default:
		return 1
	}
}

// envelope shapes a finite stream with a linear attack and release.
type envelope struct {
	streamer beep.Streamer
	pos      int
	total    int
	attack   int
	release  int
}

// NewEnvelope wraps s with attack and release ramps over d.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		total:    rate.N(d),
		attack:   rate.N(attack),
		release:  rate.N(release),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if rest := e.total - e.pos; len(samples) > rest {
		samples = samples[:rest]
	}
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := gain(e.pos, e.total, e.attack, e.release)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s by a linear gain. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// noteFreq returns the equal-tempered frequency of a MIDI note.
func noteFreq(midi int) float64 {
	return 440 * math.Pow(2, float64(midi-69)/12)
}
