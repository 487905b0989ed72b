// Package engine is the allocation-free snake simulation: a bit-packed
// occupancy grid, an index-linked body queue and the per-tick step that
// reports which cells changed.
package engine

import (
	"fmt"
	"math/bits"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// OccupancyGrid stores one bit per board cell, indexed by y*width + x.
// A bit is set iff a live body segment sits on that cell.
type OccupancyGrid struct {
	mask   []byte
	width  int
	height int
}

// NewOccupancyGrid allocates a cleared grid for the given board.
func NewOccupancyGrid(cfg core.GridConfig) *OccupancyGrid {
	cells := cfg.TotalCells()
	return &OccupancyGrid{
		mask:   make([]byte, (cells+7)/8),
		width:  cfg.Width,
		height: cfg.Height,
	}
}

// Set marks or clears the cell at p.
// p must already be normalized into the board.
func (g *OccupancyGrid) Set(p core.Vector2, occupied bool) {
	idx := g.index(p)
	if occupied {
		g.mask[idx>>3] |= 1 << (idx & 7)
	} else {
		g.mask[idx>>3] &^= 1 << (idx & 7)
	}
}

// Get reports whether the cell at p is occupied.
func (g *OccupancyGrid) Get(p core.Vector2) bool {
	idx := g.index(p)
	return g.mask[idx>>3]&(1<<(idx&7)) != 0
}

// Count returns the number of occupied cells.
func (g *OccupancyGrid) Count() int {
	n := 0
	for _, b := range g.mask {
		n += bits.OnesCount8(b)
	}
	return n
}

func (g *OccupancyGrid) index(p core.Vector2) int {
	if p.X < 0 || int(p.X) >= g.width || p.Y < 0 || int(p.Y) >= g.height {
		panic(fmt.Sprintf("engine: cell %v outside %dx%d grid", p, g.width, g.height))
	}
	return int(p.Y)*g.width + int(p.X)
}
