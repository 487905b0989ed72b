package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridSize{
			Width:  20,
			Height: 20,
		},
		TickIntervalMs: 150,
		Start:          Point{X: 0, Y: 0},
		Food:           Point{X: 1, Y: 0},
	}
}

// MiniSnakeConfig swaps the board of base for the small non-square board
// used by snake_mini. The tick interval of base is kept.
func MiniSnakeConfig(base SnakeConfig) SnakeConfig {
	base.Grid = GridSize{Width: 10, Height: 6}
	base.Start = Point{X: 4, Y: 3}
	base.Food = Point{X: 7, Y: 3}
	return base
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
