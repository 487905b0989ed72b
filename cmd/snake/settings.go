package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// newLogger builds the session logger. Both renderers own the terminal, so
// logs go to a file or nowhere. The returned close func is never nil.
func newLogger(path string, debug bool) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, closeFn, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger.With("session", uuid.NewString()), closeFn, nil
}

// applyOverrides layers the difficulty preset and then the --tick flag over
// the loaded config and validates the result.
func applyOverrides(cfg *config.SnakeConfig, preset config.DifficultyPreset, tickMs int) error {
	config.ApplySnakePreset(cfg, preset)
	if tickMs < 0 {
		return fmt.Errorf("%w: --tick must not be negative, got %d", config.ErrInvalid, tickMs)
	}
	if tickMs > 0 {
		cfg.TickIntervalMs = tickMs
	}
	return cfg.Validate()
}

// runtimeConfig reads the terminal size, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}
