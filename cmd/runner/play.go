package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pixel-runner/internal/audio"
	"github.com/vovakirdan/pixel-runner/internal/clock"
	"github.com/vovakirdan/pixel-runner/internal/config"
	"github.com/vovakirdan/pixel-runner/internal/core"
	"github.com/vovakirdan/pixel-runner/internal/games/runner"
	"github.com/vovakirdan/pixel-runner/internal/platform/tui"
)

var (
	flagConfig string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Pixel Runner in the terminal.

Controls:
  Space/Enter  - Start a run from the title screen
  Space/Up     - Jump
  Down         - Duck (hold or repeat)
  M            - Toggle music
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Examples:
  runner play
  runner play --seed 42
  runner play --mute
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound and music")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}

	logFile, err := openLogFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, pickLevel(cfg.Log.Level))
	if err != nil {
		return err
	}

	theme, err := cfg.Theme.RunnerTheme()
	if err != nil {
		return err
	}

	rc := core.DefaultConfig()
	rc.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	player := audio.NewPlayer(cfg.Audio)
	if err := player.Open(); err != nil {
		return fmt.Errorf("audio: %w (use --mute to play without sound)", err)
	}
	defer player.Close()

	var music tui.MusicControl
	if player.Enabled() {
		player.StartMusic()
		music = player
	}

	session := runner.NewSession(rc.Seed,
		runner.WithAudio(player),
		runner.WithLogger(logger),
		runner.WithTheme(theme),
	)
	logger.Info("starting", "seed", rc.Seed, "size", fmt.Sprintf("%dx%d", rc.ScreenW, rc.ScreenH), "audio", player.Enabled())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return tui.Run(ctx, tui.Options{
		Session:  session,
		Clock:    clock.New(rc.TickRate),
		Keys:     tui.DefaultKeyMap(),
		DuckHold: cfg.Input.DuckHold(),
		Music:    music,
		Logger:   logger,
		Width:    rc.ScreenW,
		Height:   rc.ScreenH,
	})
}
