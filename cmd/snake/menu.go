package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick boards with an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a board.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select board
  Esc          - Back
  Q            - Quit

Examples:
  snake menu
  snake menu --difficulty hard
  snake menu --renderer cell`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
	menuCmd.Flags().StringVar(&flagRenderer, "renderer", rendererTea, "Renderer: tea or cell")
	menuCmd.Flags().BoolVar(&flagSound, "sound", false, "Chime on food (cell renderer only)")
}

func runMenu(cmd *cobra.Command, _ []string) error {
	if err := checkRenderer(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	rt := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(rt)
		if err != nil {
			return err
		}
		rt = menuResult.Config

		if menuResult.Quit || menuResult.GameID == "" {
			return nil
		}

		settings, ok, err := resolveSettings(rt)
		if err != nil {
			return err
		}
		// Back to the board list
		if !ok {
			continue
		}

		if err := startGame(cmd.Context(), menuResult.GameID, settings, rt, logger); err != nil {
			return err
		}
	}
}
