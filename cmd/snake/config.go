package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the same way 'play' does, applies --difficulty
and --tick, and prints the result as YAML. The output is a valid config
file.

Search order:
  --config path
  ~/.snake/configs/snake.yaml
  ./configs/snake.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	addGameFlags(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if err := applyOverrides(&cfg, preset, flagTick); err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
	return err
}
