// Package core provides fundamental types and utilities for the snake platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Vector2 is an integer 2D point or direction on the grid.
type Vector2 struct {
	X, Y int32
}

// Cardinal unit directions. Y grows downwards, matching screen rows.
var (
	Right = Vector2{X: 1, Y: 0}
	Left  = Vector2{X: -1, Y: 0}
	Down  = Vector2{X: 0, Y: 1}
	Up    = Vector2{X: 0, Y: -1}
)

// Vec creates a vector from int coordinates.
func Vec(x, y int) Vector2 {
	return Vector2{X: int32(x), Y: int32(y)}
}

// Add returns the component-wise sum of v and o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Neg returns the vector pointing the opposite way.
func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Eq reports whether both vectors have the same components.
func (v Vector2) Eq(o Vector2) bool {
	return v == o
}

// IsCardinal returns true for the four unit directions.
func (v Vector2) IsCardinal() bool {
	return Abs(int(v.X))+Abs(int(v.Y)) == 1
}

// String formats the vector as "(x,y)".
func (v Vector2) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Rect represents an axis-aligned box on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
