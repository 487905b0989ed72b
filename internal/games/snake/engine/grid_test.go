package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func grid(w, h int) core.GridConfig {
	return core.GridConfig{Width: w, Height: h, TickInterval: 100 * time.Millisecond}
}

func TestOccupancyGridSize(t *testing.T) {
	tests := []struct {
		w, h  int
		bytes int
	}{
		{1, 1, 1},
		{2, 4, 1},
		{3, 3, 2},
		{20, 20, 50},
		{10, 6, 8},
	}

	for _, tc := range tests {
		g := NewOccupancyGrid(grid(tc.w, tc.h))
		assert.Len(t, g.mask, tc.bytes, "%dx%d grid", tc.w, tc.h)
		assert.Zero(t, g.Count())
	}
}

func TestOccupancyGridSetGet(t *testing.T) {
	g := NewOccupancyGrid(grid(3, 3))

	g.Set(core.Vec(1, 0), true)
	assert.True(t, g.Get(core.Vec(1, 0)))
	assert.False(t, g.Get(core.Vec(0, 1)), "row-major index must keep (1,0) and (0,1) apart")

	g.Set(core.Vec(2, 2), true)
	assert.True(t, g.Get(core.Vec(2, 2)))
	assert.Equal(t, 2, g.Count())

	// Setting twice is idempotent
	g.Set(core.Vec(2, 2), true)
	assert.Equal(t, 2, g.Count())

	g.Set(core.Vec(1, 0), false)
	assert.False(t, g.Get(core.Vec(1, 0)))
	assert.True(t, g.Get(core.Vec(2, 2)), "clearing one bit must not touch its neighbours")
	assert.Equal(t, 1, g.Count())

	// Clearing a clear bit is a no-op
	g.Set(core.Vec(0, 0), false)
	assert.Equal(t, 1, g.Count())
}

func TestOccupancyGridEveryCell(t *testing.T) {
	cfg := grid(7, 5)
	g := NewOccupancyGrid(cfg)

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			g.Set(core.Vec(x, y), true)
		}
	}
	require.Equal(t, cfg.TotalCells(), g.Count())

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			g.Set(core.Vec(x, y), false)
			assert.False(t, g.Get(core.Vec(x, y)))
		}
	}
	assert.Zero(t, g.Count())
}

func TestOccupancyGridOutOfBounds(t *testing.T) {
	g := NewOccupancyGrid(grid(4, 3))

	assert.Panics(t, func() { g.Get(core.Vec(4, 0)) })
	assert.Panics(t, func() { g.Get(core.Vec(0, 3)) })
	assert.Panics(t, func() { g.Set(core.Vec(-1, 0), true) })
	assert.Panics(t, func() { g.Set(core.Vec(0, -1), true) })
}
