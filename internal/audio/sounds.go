package audio

import (
	"time"

	"github.com/gopxl/beep"
)

const (
	jumpDuration = 120 * time.Millisecond
	jumpAttack   = 5 * time.Millisecond
	jumpRelease  = 60 * time.Millisecond

	musicStep    = 150 * time.Millisecond // One sixteenth note at 100 BPM
	musicAttack  = 8 * time.Millisecond
	musicRelease = 40 * time.Millisecond
	musicLevel   = 0.25
)

// JumpSound returns a short rising chirp.
func JumpSound(vol float64, rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(330, 880, jumpDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, jumpDuration, jumpAttack, jumpRelease, rate)
	return newVolume(shaped, vol*0.4)
}

// note is one step of the background tune. Midi 0 is a rest.
type note struct {
	midi  int
	steps int
}

// tune is a short chiptune phrase in A minor.
var tune = []note{
	{69, 2}, {72, 1}, {76, 1}, {74, 2}, {72, 2},
	{71, 2}, {67, 1}, {71, 1}, {74, 2}, {0, 2},
	{69, 2}, {72, 1}, {76, 1}, {79, 2}, {76, 2},
	{74, 1}, {72, 1}, {71, 1}, {67, 1}, {69, 4},
}

// melody plays tune forever. Each note gets its own envelope so repeated
// pitches stay distinct.
type melody struct {
	rate    beep.SampleRate
	notes   []note
	step    int
	attack  int
	release int

	idx   int // Current note
	pos   int // Sample within the current note
	total int // Samples in the current note
	phase float64
}

func newMelody(notes []note, rate beep.SampleRate) *melody {
	m := &melody{
		rate:    rate,
		notes:   notes,
		step:    rate.N(musicStep),
		attack:  rate.N(musicAttack),
		release: rate.N(musicRelease),
	}
	m.total = m.step * notes[0].steps
	return m
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if m.pos >= m.total {
			m.idx = (m.idx + 1) % len(m.notes)
			m.pos = 0
			m.total = m.step * m.notes[m.idx].steps
		}

		v := 0.0
		if cur := m.notes[m.idx]; cur.midi > 0 {
			v = musicLevel * WaveTriangle.sample(m.phase) * gain(m.pos, m.total, m.attack, m.release)
			m.phase += noteFreq(cur.midi) / float64(m.rate)
			m.phase -= float64(int(m.phase))
		}
		samples[i][0] = v
		samples[i][1] = v
		m.pos++
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }

// Music returns the endless background tune.
func Music(vol float64, rate beep.SampleRate) beep.Streamer {
	return newVolume(newMelody(tune, rate), vol)
}
