// breakout is a ball-and-paddle game for the terminal, a desktop window,
// or remote play over SSH.
//
// Usage:
//
//	breakout play            - Play in this terminal
//	breakout window          - Play in a desktop window
//	breakout serve           - Start SSH server for remote play
//	breakout list            - List available games
//	breakout config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>             - Set frame rate (default: 60)
//	--config <path>          - Load a custom YAML config
//	--difficulty <preset>    - easy, normal or hard
//	--log-file <path>        - Append logs to a file
//	--debug                  - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - Bounce a ball, break every block",
	Long: `Breakout is a single-screen ball-and-paddle game.

Move the paddle to keep the ball in play and destroy all 40 blocks.
You have three lives. Press R at any time to start over.

Available commands:
  play     - Play in this terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  list     - Show all available games
  config   - Print the effective configuration

Examples:
  breakout play
  breakout play --difficulty hard
  breakout window --scale 1.5
  breakout serve --ssh :2222
  breakout config > ~/.breakout/configs/breakout.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
