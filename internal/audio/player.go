// Package audio plays the runner's synthesized sound effects and background
// music through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/pixel-runner/internal/config"
)

const bufferDuration = 100 * time.Millisecond

// Player mixes one-shot effects and the music loop onto the speaker.
// A Player that was never opened, or was opened with audio disabled,
// accepts every call and stays silent.
type Player struct {
	mu    sync.Mutex
	cfg   config.AudioConfig
	rate  beep.SampleRate
	mixer *beep.Mixer
	music *beep.Ctrl
	open  bool

	// Speaker hooks, replaced in tests
	init   func(beep.SampleRate, int) error
	play   func(...beep.Streamer)
	lock   func()
	unlock func()
	close  func()
}

// NewPlayer creates a player for cfg. Call Open before playing.
func NewPlayer(cfg config.AudioConfig) *Player {
	return &Player{
		cfg:    cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		mixer:  &beep.Mixer{},
		init:   speaker.Init,
		play:   speaker.Play,
		lock:   speaker.Lock,
		unlock: speaker.Unlock,
		close:  speaker.Close,
	}
}

// Open initializes the speaker and starts the mixer. It does nothing when
// audio is disabled.
func (p *Player) Open() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.open || !p.cfg.Enabled {
		return nil
	}
	if err := p.init(p.rate, p.rate.N(bufferDuration)); err != nil {
		return fmt.Errorf("init speaker at %d Hz: %w", p.rate, err)
	}
	p.play(p.mixer)
	p.open = true
	return nil
}

// Enabled reports whether sound is actually being produced.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.open
}

// PlayJump plays the jump cue. It never blocks on playback.
func (p *Player) PlayJump() {
	p.add(JumpSound(p.cfg.JumpVolume*p.cfg.MasterVolume, p.rate))
}

// StartMusic starts the background loop, or resumes it if paused.
func (p *Player) StartMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open {
		return
	}

	p.lock()
	defer p.unlock()
	if p.music != nil {
		p.music.Paused = false
		return
	}
	p.music = &beep.Ctrl{Streamer: Music(p.cfg.MusicVolume*p.cfg.MasterVolume, p.rate)}
	p.mixer.Add(p.music)
}

// PauseMusic silences the background loop without losing its position.
func (p *Player) PauseMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open || p.music == nil {
		return
	}

	p.lock()
	p.music.Paused = true
	p.unlock()
}

// Close stops all sound and releases the audio device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open {
		return
	}

	p.lock()
	p.mixer.Clear()
	p.unlock()
	p.close()
	p.music = nil
	p.open = false
}

func (p *Player) add(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open {
		return
	}

	p.lock()
	p.mixer.Add(s)
	p.unlock()
}
