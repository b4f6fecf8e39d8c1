package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/gfx"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play with real key presses and releases.

Controls:
  Left/A     - Move paddle left
  Right/D    - Move paddle right
  R          - Restart (any time)
  Q/Esc      - Quit

Score and lives are shown in the window title.

Examples:
  breakout window
  breakout window --scale 1.5
  breakout window --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Initial window scale")
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := runtimeConfig(0, 0)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("breakout", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	return gfx.Run(cfg, flagScale, logger)
}
