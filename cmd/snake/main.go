// snake is a terminal snake game on a wrapping grid.
//
// Usage:
//
//	snake list              - List available boards
//	snake play <game>       - Play a board
//	snake menu              - Pick boards interactively
//	snake config            - Print the effective configuration
//
// Global flags:
//
//	--tick <ms>        - Override the step interval
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--log-file <path>  - Append structured logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagTick    int
	flagSeed    int64
	flagLogFile string
	flagDebug   bool

	// Game flags shared by play, menu and config
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a wrapping grid snake for your terminal",
	Long: `Snake is a terminal snake game. The board wraps around at every edge,
so the only way to lose is to run into yourself. Fill the board to win.

Available commands:
  list     - Show all available boards
  play     - Play a specific board directly
  menu     - Interactive board picker menu
  config   - Print the effective configuration as YAML

Examples:
  snake list
  snake play snake
  snake play snake_mini --difficulty hard
  snake play snake --renderer cell --sound
  snake config --config ./my-snake.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagTick, "tick", 0, "Step interval in milliseconds (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file (default: discard)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}
