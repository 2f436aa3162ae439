// Package config provides YAML-based configuration loading for the runner:
// audio, input, logging and colors.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-runner/internal/core"
	"github.com/vovakirdan/pixel-runner/internal/games/runner"
)

// RunnerConfig contains all user-tunable settings.
type RunnerConfig struct {
	Audio AudioConfig `yaml:"audio"`
	Input InputConfig `yaml:"input"`
	Log   LogConfig   `yaml:"log"`
	Theme ThemeConfig `yaml:"theme"`
}

// AudioConfig controls sound output. Volumes are linear gains in [0, 1].
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"`
	JumpVolume   float64 `yaml:"jump_volume"`
	MusicVolume  float64 `yaml:"music_volume"`
	SampleRate   int     `yaml:"sample_rate"`
}

// InputConfig controls keyboard handling.
type InputConfig struct {
	DuckHoldMs int `yaml:"duck_hold_ms"`
}

// DuckHold returns the duck hold window as a duration.
func (c InputConfig) DuckHold() time.Duration {
	return time.Duration(c.DuckHoldMs) * time.Millisecond
}

// LogConfig controls the log destination and verbosity.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Empty disables file logging
}

// ParsedLevel returns the configured log level.
func (c LogConfig) ParsedLevel() (log.Level, error) {
	return log.ParseLevel(c.Level)
}

// ThemeConfig names the colors used to draw the game.
type ThemeConfig struct {
	Player   string `yaml:"player"`
	Flying   string `yaml:"flying"`
	Crawling string `yaml:"crawling"`
	Ground   string `yaml:"ground"`
	Title    string `yaml:"title"`
}

// RunnerTheme resolves the color names into a renderer theme.
func (t ThemeConfig) RunnerTheme() (runner.Theme, error) {
	theme := runner.DefaultTheme()
	fields := []struct {
		key  string
		name string
		dst  *core.Color
	}{
		{"player", t.Player, &theme.Player},
		{"flying", t.Flying, &theme.Flying},
		{"crawling", t.Crawling, &theme.Crawling},
		{"ground", t.Ground, &theme.Ground},
		{"title", t.Title, &theme.Title},
	}
	for _, f := range fields {
		if f.name == "" {
			continue
		}
		c, ok := core.ParseColor(f.name)
		if !ok {
			return theme, fmt.Errorf("theme.%s: unknown color %q", f.key, f.name)
		}
		*f.dst = c
	}
	return theme, nil
}

// Validate checks every value is in range.
func (c RunnerConfig) Validate() error {
	var errs []error

	volumes := []struct {
		key string
		v   float64
	}{
		{"audio.master_volume", c.Audio.MasterVolume},
		{"audio.jump_volume", c.Audio.JumpVolume},
		{"audio.music_volume", c.Audio.MusicVolume},
	}
	for _, vol := range volumes {
		if vol.v < 0 || vol.v > 1 {
			errs = append(errs, fmt.Errorf("%s must be between 0 and 1, got %g", vol.key, vol.v))
		}
	}
	if c.Audio.SampleRate < 8000 || c.Audio.SampleRate > 192000 {
		errs = append(errs, fmt.Errorf("audio.sample_rate must be between 8000 and 192000, got %d", c.Audio.SampleRate))
	}
	if c.Input.DuckHoldMs < 0 || c.Input.DuckHoldMs > 2000 {
		errs = append(errs, fmt.Errorf("input.duck_hold_ms must be between 0 and 2000, got %d", c.Input.DuckHoldMs))
	}
	if _, err := c.Log.ParsedLevel(); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if _, err := c.Theme.RunnerTheme(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
