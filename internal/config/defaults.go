package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in configuration. It matches the
// embedded defaults/runner.yaml.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 1.0,
			JumpVolume:   0.5,
			MusicVolume:  0.4,
			SampleRate:   44100,
		},
		Input: InputConfig{
			DuckHoldMs: 700,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.runner/runner.log",
		},
		Theme: ThemeConfig{
			Player:   "bright_white",
			Flying:   "magenta",
			Crawling: "orange",
			Ground:   "green",
			Title:    "cyan",
		},
	}
}
