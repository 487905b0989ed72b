package engine

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Source yields uniformly distributed integers in [0, n).
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// PlaceFood picks a random free cell for the next food item.
// The caller must check for a full board first; a snake covering every cell
// leaves nowhere to go and PlaceFood panics instead of spinning forever.
func PlaceFood(s *Snake, cfg core.GridConfig, rng Source) core.Vector2 {
	if s.Len() >= cfg.TotalCells() {
		panic(fmt.Sprintf("engine: no free cell for food, snake length %d", s.Len()))
	}
	for {
		p := core.Vec(rng.Intn(cfg.Width), rng.Intn(cfg.Height))
		if !s.Overlaps(p) {
			return p
		}
	}
}
