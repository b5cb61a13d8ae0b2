package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dcoder4/backpack/core"
	"github.com/dcoder4/backpack/internal/contract"
)

// demoCmd runs the instrumented frame pipeline demo.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a simulated pipeline instrumented with scope timers.",
	Long: `Run a simulated frame pipeline with nested scope timers and a
frame-rate ticker, then print the rendered timer tree and per-scope
statistics.

Examples:
  # Run with defaults (8 iterations, 25ms base delay)
  backpack demo

  # Longer run with a bigger history window
  backpack demo --iterations 30 --capacity 50

  # Faster simulated work
  backpack demo --work-delay 5ms`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDemo(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run demo", err)
		}
	},
}
