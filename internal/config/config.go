// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake platform.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid           GridSize `yaml:"grid"`
	TickIntervalMs int      `yaml:"tick_interval_ms"`
	Start          Point    `yaml:"start"`
	Food           Point    `yaml:"food"`
}

// GridSize defines the board dimensions in cells.
type GridSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Point is a board cell in YAML form.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Vector converts the point to a core vector.
func (p Point) Vector() core.Vector2 {
	return core.Vec(p.X, p.Y)
}

// GridConfig converts the YAML form to the engine's grid configuration.
func (c SnakeConfig) GridConfig() core.GridConfig {
	return core.GridConfig{
		Width:        c.Grid.Width,
		Height:       c.Grid.Height,
		TickInterval: time.Duration(c.TickIntervalMs) * time.Millisecond,
	}
}

// Validate checks that the board is usable and that the start and food
// cells lie on it and differ.
func (c SnakeConfig) Validate() error {
	grid := c.GridConfig()
	if err := grid.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if !grid.Contains(c.Start.Vector()) {
		return fmt.Errorf("%w: start %v outside %dx%d grid", ErrInvalid, c.Start.Vector(), grid.Width, grid.Height)
	}
	if !grid.Contains(c.Food.Vector()) {
		return fmt.Errorf("%w: food %v outside %dx%d grid", ErrInvalid, c.Food.Vector(), grid.Width, grid.Height)
	}
	if c.Start == c.Food && grid.TotalCells() > 1 {
		return fmt.Errorf("%w: food must not start on the snake", ErrInvalid)
	}
	return nil
}
