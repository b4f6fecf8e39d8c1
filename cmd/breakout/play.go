package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/A     - Move paddle left
  Right/D    - Move paddle right
  R          - Restart (any time)
  Ctrl+S     - Save a text screenshot to ~/.breakout/screenshots
  ?          - Toggle full help
  Q/Ctrl+C   - Quit

Terminals report key presses but not releases, so a direction key counts
as held while the terminal keeps repeating it.

Difficulty options:
  easy   - Slower ball, wider paddle
  normal - Configuration as loaded
  hard   - Faster ball, narrower paddle

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --fps 30 --log-file breakout.log
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg, err := runtimeConfig(width, height)
	if err != nil {
		return err
	}

	// The alternate screen owns stdout, so logs only go to --log-file
	logger, closeLog, err := newLogger("breakout", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("starting terminal game", "width", width, "height", height, "fps", cfg.TickRate)
	return tui.Run(cfg, logger)
}
