package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StateWin         GameStateType = "win"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Variant  string
	Score    int
	SnakeLen int
	Head     core.Vector2
	Tail     core.Vector2
	Dir      core.Vector2
	Food     core.Vector2
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:     g.tick,
		Variant:  string(g.variant),
		Score:    g.score,
		SnakeLen: g.snake.Len(),
		Head:     g.snake.Head(),
		Tail:     g.snake.Tail(),
		Dir:      g.snake.Direction(),
		Food:     g.food,
		State:    state,
	}
}
