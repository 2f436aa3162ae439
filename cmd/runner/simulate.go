package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-runner/internal/clock"
	"github.com/vovakirdan/pixel-runner/internal/games/runner"
)

var (
	flagTicks    int64
	flagThrottle bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless with an autopilot",
	Long: `Run the simulation without a terminal UI. A scripted autopilot starts
runs, jumps over snails and ducks under low flies. Each finished run is
listed with its score, followed by a summary.

The same --seed always produces the same runs.

Examples:
  runner simulate
  runner simulate --ticks 36000 --seed 7
  runner simulate --throttle --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Int64Var(&flagTicks, "ticks", 5*60*runner.TickRate, "Number of ticks to simulate")
	simulateCmd.Flags().BoolVar(&flagThrottle, "throttle", false, "Pace the simulation at real time")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}

	level := pickLevel("info")
	logger, err := newLogger(os.Stderr, level)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var opts []clock.Option
	if !flagThrottle {
		opts = append(opts, clock.WithoutThrottle())
	}
	loop := &runner.Loop{
		Clock:   clock.New(runner.TickRate, opts...),
		Session: runner.NewSession(seed, runner.WithLogger(logger)),
		Input:   runner.Autopilot,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logger.Info("simulating", "seed", seed, "ticks", flagTicks, "throttle", flagThrottle)
	stats, err := loop.Run(ctx, clock.Ticks(flagTicks))
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	printStats(cmd.OutOrStdout(), stats, loop.Clock)
	return nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// printStats writes one row per finished run and a summary line.
func printStats(w io.Writer, st runner.Stats, c *clock.Clock) {
	if len(st.Runs) > 0 {
		t := table.New().
			Border(lipgloss.NormalBorder()).
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle.Align(lipgloss.Right)
			}).
			Headers("RUN", "SCORE", "TICKS")

		for _, r := range st.Runs {
			t.Row(strconv.Itoa(r.Run), strconv.Itoa(r.Score), strconv.FormatInt(int64(r.Ticks), 10))
		}
		fmt.Fprintln(w, t.Render())
	}

	fmt.Fprintf(w, "ticks=%d simulated=%s wall=%s runs=%d best=%d\n",
		st.Ticks,
		st.Ticks.Duration(c.Rate()).Round(time.Millisecond),
		c.Wall().Round(time.Millisecond),
		len(st.Runs),
		st.Best(),
	)
}
