package engine

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// StepKind tags the outcome of one tick.
type StepKind uint8

const (
	// Advanced means the snake moved without growing.
	Advanced StepKind = iota
	// FoodEaten means the snake grew onto the food cell.
	FoodEaten
	// Collided means the head hit the body. It is terminal.
	Collided
)

// String returns a human-readable name for the step kind.
func (k StepKind) String() string {
	switch k {
	case Advanced:
		return "advanced"
	case FoodEaten:
		return "food_eaten"
	case Collided:
		return "collided"
	default:
		return "unknown"
	}
}

// SnakeChange is the diff produced by one tick.
type SnakeChange struct {
	Added      core.Vector2 // New head cell
	Removed    core.Vector2 // Vacated tail cell, valid only if HasRemoved
	HasRemoved bool
}

// RemovedCell returns the vacated cell, if any.
func (c SnakeChange) RemovedCell() (core.Vector2, bool) {
	return c.Removed, c.HasRemoved
}

// StepResult is the outcome of Snake.Step. Change is zero for Collided.
type StepResult struct {
	Kind   StepKind
	Change SnakeChange
}

// Snake owns the body queue and the occupancy grid and keeps them in sync:
// the set bits of the grid are exactly the cells held by the queue.
type Snake struct {
	body      *BodyQueue
	mask      *OccupancyGrid
	width     int32
	height    int32
	direction core.Vector2
	collided  bool
}

// NewSnake creates a snake of length 1 at start, heading right.
func NewSnake(start core.Vector2, cfg core.GridConfig) *Snake {
	s := &Snake{
		body:      NewBodyQueue(cfg.TotalCells(), start),
		mask:      NewOccupancyGrid(cfg),
		width:     int32(cfg.Width),
		height:    int32(cfg.Height),
		direction: core.Right,
	}
	s.mask.Set(start, true)
	return s
}

// Step advances the simulation by one cell given the current food position.
// Once Collided has been returned the snake is frozen and every later call
// returns Collided again.
func (s *Snake) Step(food core.Vector2) StepResult {
	if s.collided {
		return StepResult{Kind: Collided}
	}

	next := s.wrap(s.body.Head().Add(s.direction))

	// The tail is still on the board here, so running into it is a crash.
	if s.mask.Get(next) {
		s.collided = true
		return StepResult{Kind: Collided}
	}

	if next == food {
		s.body.Grow(next)
		s.mask.Set(next, true)
		return StepResult{
			Kind:   FoodEaten,
			Change: SnakeChange{Added: next},
		}
	}

	vacated := s.body.Advance(next)
	s.mask.Set(vacated, false)
	s.mask.Set(next, true)
	return StepResult{
		Kind:   Advanced,
		Change: SnakeChange{Added: next, Removed: vacated, HasRemoved: true},
	}
}

// wrap folds p back onto the torus, each axis by its own extent.
func (s *Snake) wrap(p core.Vector2) core.Vector2 {
	return core.Vector2{
		X: (p.X%s.width + s.width) % s.width,
		Y: (p.Y%s.height + s.height) % s.height,
	}
}

// SetDirection changes the heading unless d would reverse the snake into
// its own neck. Non-cardinal vectors are ignored. Reports whether d was
// accepted.
func (s *Snake) SetDirection(d core.Vector2) bool {
	if !d.IsCardinal() || d == s.direction.Neg() {
		return false
	}
	s.direction = d
	return true
}

// Direction returns the current heading.
func (s *Snake) Direction() core.Vector2 {
	return s.direction
}

// Overlaps reports whether any body segment occupies p.
func (s *Snake) Overlaps(p core.Vector2) bool {
	return s.mask.Get(p)
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return s.body.Len()
}

// Head returns the head position.
func (s *Snake) Head() core.Vector2 {
	return s.body.Head()
}

// Tail returns the tail position.
func (s *Snake) Tail() core.Vector2 {
	return s.body.Tail()
}

// Collided reports whether the snake has crashed.
func (s *Snake) Collided() bool {
	return s.collided
}
