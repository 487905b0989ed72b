package core

import (
	"errors"
	"fmt"
	"time"
)

// GridConfig describes the playing field and the simulation speed.
// It is fixed for the lifetime of a game.
type GridConfig struct {
	Width        int           // Columns on the board
	Height       int           // Rows on the board
	TickInterval time.Duration // Time between two simulation steps
}

// TotalCells returns the number of cells on the board, which is also the
// longest possible snake.
func (g GridConfig) TotalCells() int {
	return g.Width * g.Height
}

// Contains reports whether p lies on the board.
func (g GridConfig) Contains(p Vector2) bool {
	return p.X >= 0 && int(p.X) < g.Width && p.Y >= 0 && int(p.Y) < g.Height
}

// Validate checks the grid invariants.
func (g GridConfig) Validate() error {
	var errs []error
	if g.Width < 1 {
		errs = append(errs, fmt.Errorf("width must be >= 1, got %d", g.Width))
	}
	if g.Height < 1 {
		errs = append(errs, fmt.Errorf("height must be >= 1, got %d", g.Height))
	}
	if g.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("tick interval must be positive, got %s", g.TickInterval))
	}
	return errors.Join(errs...)
}

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended (crash or win)
	Won      bool // Whether the game ended because the board is full
	Paused   bool // Whether the game is paused
}

// Event is the notable thing that happened during one tick.
type Event uint8

const (
	EventNone Event = iota
	EventMoved
	EventAte
	EventCrashed
	EventWon
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventMoved:
		return "moved"
	case EventAte:
		return "ate"
	case EventCrashed:
		return "crashed"
	case EventWon:
		return "won"
	default:
		return "unknown"
	}
}

// Patch is a run of text to draw at a screen position.
// Patches let a renderer update only the cells that changed.
type Patch struct {
	X, Y  int
	Text  string
	Color Color
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Event Event

	// Repaint asks the renderer to redraw the whole frame; Patches are
	// then redundant.
	Repaint bool

	// Patches are only valid until the next Step call.
	Patches []Patch
}
