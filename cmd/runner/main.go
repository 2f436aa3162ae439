// runner is Pixel Runner, an endless side-scrolling runner for the terminal.
//
// Usage:
//
//	runner                   - Play (same as runner play)
//	runner play              - Play in the terminal
//	runner simulate          - Run headless with an autopilot
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible obstacles
//	--log-level <level>  - Override the configured log level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Pixel Runner - jump and duck through an endless run",
	Long: `Pixel Runner is an endless side-scrolling runner for the terminal.
Jump over snails, duck under flies, and see how long you last.
Obstacles get faster every ten seconds.

Available commands:
  play      - Play in the terminal (default)
  simulate  - Run headless with an autopilot

Examples:
  runner
  runner play --seed 42
  runner play --mute --config ./my-runner.yaml
  runner simulate --ticks 36000 --seed 7`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	// Bare "runner" plays, so it takes the play flags too
	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
}
