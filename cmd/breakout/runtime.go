package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// runtimeConfig builds the runtime config from global flags.
func runtimeConfig(width, height int) (core.RuntimeConfig, error) {
	if flagFPS <= 0 {
		return core.RuntimeConfig{}, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
		return core.RuntimeConfig{}, err
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW = width
	cfg.ScreenH = height
	cfg.TickRate = flagFPS
	cfg.ConfigPath = flagConfig
	cfg.Difficulty = flagDifficulty
	return cfg, nil
}

// newLogger creates a logger writing to --log-file, or to fallback when the
// flag is empty. The returned func closes the log file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
