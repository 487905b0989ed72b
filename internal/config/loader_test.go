package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseSnake(GetDefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultSnakeConfig(), cfg)
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := writeConfig(t, `
grid:
  width: 12
  height: 8
tick_interval_ms: 80
start: {x: 2, y: 3}
food: {x: 5, y: 3}
`)

	cfg, err := LoadSnake(path)
	require.NoError(t, err)

	grid := cfg.GridConfig()
	assert.Equal(t, 12, grid.Width)
	assert.Equal(t, 8, grid.Height)
	assert.Equal(t, 80*time.Millisecond, grid.TickInterval)
	assert.Equal(t, core.Vec(2, 3), cfg.Start.Vector())
	assert.Equal(t, core.Vec(5, 3), cfg.Food.Vector())
}

func TestLoadSnakePartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "tick_interval_ms: 60\n")

	cfg, err := LoadSnake(path)
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.TickIntervalMs)
	assert.Equal(t, DefaultSnakeConfig().Grid, cfg.Grid)
	assert.Equal(t, DefaultSnakeConfig().Food, cfg.Food)
}

func TestLoadSnakeErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{"malformed yaml", "grid: [1, 2", false},
		{"zero width", "grid: {width: 0, height: 5}\n", true},
		{"negative tick", "tick_interval_ms: -5\n", true},
		{"start off board", "start: {x: 20, y: 0}\n", true},
		{"food off board", "food: {x: 0, y: 25}\n", true},
		{"food on start", "food: {x: 0, y: 0}\n", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadSnake(writeConfig(t, tc.body))
			require.Error(t, err)
			assert.Equal(t, tc.invalid, errors.Is(err, ErrInvalid), "err = %v", err)
		})
	}
}

func TestLoadSnakeMissingCustomPath(t *testing.T) {
	_, err := LoadSnake(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadSnakeLocalConfigsDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	chdir(t, dir)
	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "snake.yaml"), []byte("grid: {width: 30, height: 10}\n"), 0o600))

	cfg, err := LoadSnake("")
	require.NoError(t, err)
	assert.Equal(t, GridSize{Width: 30, Height: 10}, cfg.Grid)
}

func TestLoadSnakeFallsBackToEmbedded(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	chdir(t, dir)

	cfg, err := LoadSnake("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSnakeConfig(), cfg)
}

func TestApplySnakePreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		tick   int
	}{
		{DifficultyEasy, 200},
		{DifficultyNormal, 150},
		{DifficultyHard, 90},
		{"", 123},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			cfg.TickIntervalMs = 123
			ApplySnakePreset(&cfg, tc.preset)
			assert.Equal(t, tc.tick, cfg.TickIntervalMs)
			assert.Equal(t, DefaultSnakeConfig().Grid, cfg.Grid, "presets never touch the board")
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard"} {
		p, err := ParsePreset(name)
		require.NoError(t, err)
		assert.Equal(t, DifficultyPreset(name), p)
	}

	_, err := ParsePreset("nightmare")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := MiniSnakeConfig(DefaultSnakeConfig())
	data, err := Marshal(cfg)
	require.NoError(t, err)

	parsed, err := parseSnake(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}

func TestMiniConfig(t *testing.T) {
	base := DefaultSnakeConfig()
	base.TickIntervalMs = 70

	mini := MiniSnakeConfig(base)
	require.NoError(t, mini.Validate())
	assert.NotEqual(t, mini.Grid.Width, mini.Grid.Height)
	assert.Equal(t, 70, mini.TickIntervalMs, "the mini board keeps the configured speed")
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
