package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/cell"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

const (
	rendererTea  = "tea"
	rendererCell = "cell"
)

var (
	flagRenderer string
	flagSound    bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a board",
	Long: `Start playing the specified board.

Controls:
  Arrows/WASD/HJKL  - Steer
  P                 - Pause
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit (Esc also quits with --renderer cell)

Difficulty options (only the speed changes):
  easy   - 200 ms per step
  normal - 150 ms per step
  hard   - 90 ms per step
Without --difficulty or --tick a selector is shown before the game.

Renderers:
  tea   - Bubble Tea, redraws the full frame every tick (default)
  cell  - tcell, draws only the cells that changed; supports --sound

Examples:
  snake play snake
  snake play snake_mini --difficulty easy
  snake play snake --tick 60 --seed 42
  snake play snake --renderer cell --sound
  snake play snake --config ./my-snake.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().StringVar(&flagRenderer, "renderer", rendererTea, "Renderer: tea or cell")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Chime on food (cell renderer only)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'snake list' to see available games", gameID)
	}
	if err := checkRenderer(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	rt := runtimeConfig()
	settings, ok, err := resolveSettings(rt)
	if err != nil {
		return err
	}
	// User left the difficulty selector
	if !ok {
		return nil
	}

	return startGame(cmd.Context(), gameID, settings, rt, logger)
}

func checkRenderer() error {
	if flagRenderer != rendererTea && flagRenderer != rendererCell {
		return fmt.Errorf("unknown renderer %q (want %s or %s)", flagRenderer, rendererTea, rendererCell)
	}
	return nil
}

// resolveSettings loads the config and applies the difficulty, asking for
// one when neither --difficulty nor --tick was given. ok is false when the
// user backed out of the selector.
func resolveSettings(rt core.RuntimeConfig) (cfg config.SnakeConfig, ok bool, err error) {
	cfg, err = config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, false, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, false, err
	}

	if preset == "" && flagTick == 0 {
		preset, ok, err = tui.RunDifficultySelector(rt)
		if err != nil || !ok {
			return cfg, false, err
		}
	}

	if err := applyOverrides(&cfg, preset, flagTick); err != nil {
		return cfg, false, err
	}
	return cfg, true, nil
}

// startGame creates the board with settings and runs it on the selected renderer.
func startGame(ctx context.Context, gameID string, settings config.SnakeConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	snake.SetConfig(settings)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if flagRenderer == rendererCell {
		return runCell(ctx, game, rt, logger)
	}
	if flagSound {
		logger.Warn("--sound needs --renderer cell, ignoring")
	}
	return tui.Run(game, rt, logger)
}

func runCell(ctx context.Context, game registry.Game, rt core.RuntimeConfig, logger *log.Logger) error {
	screen, err := cell.Open()
	if err != nil {
		return err
	}
	defer screen.Fini()

	var opts []cell.Option
	if flagSound {
		chime, chimeErr := cell.NewBeepChime()
		if chimeErr != nil {
			// Non-fatal, game can run without sound
			logger.Warn("audio unavailable", "err", chimeErr)
		} else {
			defer chime.Close()
			opts = append(opts, cell.WithChime(chime))
		}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	runner := cell.NewRunner(screen, game, rt, logger, opts...)
	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("renderer stopped", "err", err)
		return err
	}
	return nil
}
