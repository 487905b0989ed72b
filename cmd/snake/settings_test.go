package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func TestApplyOverrides(t *testing.T) {
	tests := []struct {
		name   string
		preset config.DifficultyPreset
		tick   int
		want   int
	}{
		{"config only", "", 0, 150},
		{"preset", config.DifficultyEasy, 0, 200},
		{"tick flag", "", 40, 40},
		{"tick wins over preset", config.DifficultyHard, 55, 55},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultSnakeConfig()
			if err := applyOverrides(&cfg, tc.preset, tc.tick); err != nil {
				t.Fatalf("applyOverrides: %v", err)
			}
			if cfg.TickIntervalMs != tc.want {
				t.Errorf("tick = %d, want %d", cfg.TickIntervalMs, tc.want)
			}
		})
	}
}

func TestApplyOverridesRejectsNegativeTick(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	err := applyOverrides(&cfg, "", -1)
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestNewLoggerWritesSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.log")

	logger, closeLog, err := newLogger(path, false)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Info("game started", "game", "snake")
	logger.Debug("hidden")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	for _, want := range []string{"snake", "game started", "session="} {
		if !strings.Contains(out, want) {
			t.Errorf("log should contain %q, got %q", want, out)
		}
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug lines should be filtered without --debug")
	}
}

func TestNewLoggerDiscardsByDefault(t *testing.T) {
	logger, closeLog, err := newLogger("", true)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	defer closeLog()
	logger.Debug("nowhere")
}

func TestNewLoggerBadPath(t *testing.T) {
	_, closeLog, err := newLogger(filepath.Join(t.TempDir(), "missing", "snake.log"), false)
	defer closeLog()
	if err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestListCommand(t *testing.T) {
	var out bytes.Buffer
	listCmd.SetOut(&out)
	runList(listCmd, nil)

	for _, want := range []string{"snake", "snake_mini", "Snake (Mini)"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("list output should contain %q", want)
		}
	}
}

func TestConfigCommandPrintsEffectiveYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("grid: {width: 12, height: 7}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	prevConfig, prevDifficulty, prevTick := flagConfig, flagDifficulty, flagTick
	t.Cleanup(func() { flagConfig, flagDifficulty, flagTick = prevConfig, prevDifficulty, prevTick })
	flagConfig, flagDifficulty, flagTick = path, "hard", 0

	var out bytes.Buffer
	configCmd.SetOut(&out)
	if err := runConfig(configCmd, nil); err != nil {
		t.Fatalf("runConfig: %v", err)
	}

	for _, want := range []string{"width: 12", "height: 7", "tick_interval_ms: 90"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("config output should contain %q, got:\n%s", want, out.String())
		}
	}
}
