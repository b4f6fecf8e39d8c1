package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, as YAML.

Config search order:
  1. --config path
  2. ~/.breakout/configs/breakout.yaml
  3. ./configs/breakout.yaml
  4. Built-in defaults

The --difficulty preset is applied on top.

Examples:
  breakout config
  breakout config --difficulty easy
  breakout config --defaults > ~/.breakout/configs/breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file instead")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		fmt.Print(string(config.GetDefaultYAML()))
		return nil
	}

	rt, err := runtimeConfig(80, 24)
	if err != nil {
		return err
	}

	cfg, err := breakout.ResolveConfig(rt)
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
