package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake/engine"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Variant selects the board a Game plays on.
type Variant string

const (
	VariantClassic Variant = "snake"
	VariantMini    Variant = "snake_mini"
)

const (
	hudHeight = 2 // Score line plus separator
	cellWidth = 2 // Each board cell is two terminal columns wide
)

// Glyphs for the two-column board cells.
const (
	glyphBody  = "[]"
	glyphFood  = "()"
	glyphEmpty = "  "
)

// Game wraps the engine with scoring, pause/restart handling and rendering.
type Game struct {
	variant  Variant
	settings config.SnakeConfig
	grid     core.GridConfig
	rng      *rand.Rand
	snake    *engine.Snake
	food     core.Vector2
	tick     uint64
	score    int

	// Screen layout
	screenW int
	screenH int
	boxX    int
	boxY    int

	// Game state flags
	gameOver bool
	won      bool
	paused   bool
	tooSmall bool

	// Reused across ticks, handed out through StepResult.Patches.
	patches []core.Patch
}

// active is the configuration new games start from. The play command sets
// it before creating a game.
var active = config.DefaultSnakeConfig()

// SetConfig sets the configuration used by games reset after this call.
func SetConfig(cfg config.SnakeConfig) {
	active = cfg
}

// ActiveConfig returns the configuration set by SetConfig.
func ActiveConfig() config.SnakeConfig {
	return active
}

// New creates a Snake game on the configured board.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewMini creates a Snake game on the small non-square board.
func NewMini() *Game {
	return &Game{variant: VariantMini}
}

func init() {
	registry.Register(string(VariantClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(VariantMini), func() registry.Game {
		return NewMini()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantMini {
		return "Snake (Mini)"
	}
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.settings = active
	if g.variant == VariantMini {
		g.settings = config.MiniSnakeConfig(active)
	}
	g.grid = g.settings.GridConfig()

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.won = false
	g.paused = false

	g.snake = engine.NewSnake(g.settings.Start.Vector(), g.grid)
	g.food = g.settings.Food.Vector()

	switch {
	case g.snake.Len() >= g.grid.TotalCells():
		// A single-cell board is full before the first move.
		g.won = true
		g.gameOver = true
	case g.snake.Overlaps(g.food):
		g.food = engine.PlaceFood(g.snake, g.grid, g.rng)
	}

	if g.patches == nil {
		g.patches = make([]core.Patch, 0, 4)
	}
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes the board placement for a new terminal size without
// touching the simulation.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h

	boxW := g.grid.Width*cellWidth + 2
	boxH := g.grid.Height + 2
	if w < boxW || h < boxH+hudHeight {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.boxX = (w - boxW) / 2
	g.boxY = hudHeight
}

// TickInterval returns the configured time between two steps.
func (g *Game) TickInterval() time.Duration {
	return g.grid.TickInterval
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State(), Repaint: true}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
		return core.StepResult{State: g.State(), Repaint: true}
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.processInput(input)

	prevHead := g.snake.Head()
	res := g.snake.Step(g.food)
	g.patches = g.patches[:0]

	switch res.Kind {
	case engine.Collided:
		g.gameOver = true
		return core.StepResult{State: g.State(), Event: core.EventCrashed, Repaint: true}

	case engine.FoodEaten:
		g.score++
		if g.snake.Len() >= g.grid.TotalCells() {
			g.won = true
			g.gameOver = true
			return core.StepResult{State: g.State(), Event: core.EventWon, Repaint: true}
		}
		g.food = engine.PlaceFood(g.snake, g.grid, g.rng)
		g.patchCell(prevHead, glyphBody, core.ColorGreen)
		g.patchCell(res.Change.Added, glyphBody, core.ColorBrightGreen)
		g.patchCell(g.food, glyphFood, core.ColorRed)
		g.patches = append(g.patches, core.Patch{X: 0, Y: 0, Text: g.hudLine()})
		return core.StepResult{State: g.State(), Event: core.EventAte, Patches: g.patches}

	default:
		g.patchCell(prevHead, glyphBody, core.ColorGreen)
		if removed, ok := res.Change.RemovedCell(); ok {
			g.patchCell(removed, glyphEmpty, core.ColorDefault)
		}
		g.patchCell(res.Change.Added, glyphBody, core.ColorBrightGreen)
		return core.StepResult{State: g.State(), Event: core.EventMoved, Patches: g.patches}
	}
}

// processInput applies at most one direction change per tick.
func (g *Game) processInput(input core.InputFrame) {
	var action core.Action
	switch {
	case input.Has(core.ActionUp):
		action = core.ActionUp
	case input.Has(core.ActionDown):
		action = core.ActionDown
	case input.Has(core.ActionLeft):
		action = core.ActionLeft
	case input.Has(core.ActionRight):
		action = core.ActionRight
	default:
		return
	}

	if dir, ok := action.Direction(); ok {
		g.snake.SetDirection(dir)
	}
}

// patchCell queues a redraw of one board cell.
// A length-1 snake vacates its previous head, so patches must apply in order.
func (g *Game) patchCell(p core.Vector2, text string, c core.Color) {
	x, y := g.cellOrigin(p)
	g.patches = append(g.patches, core.Patch{X: x, Y: y, Text: text, Color: c})
}

// cellOrigin maps a board cell to its top-left screen position.
func (g *Game) cellOrigin(p core.Vector2) (int, int) {
	return g.boxX + 1 + int(p.X)*cellWidth, g.boxY + 1 + int(p.Y)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	dst.DrawBox(core.NewRect(g.boxX, g.boxY, g.grid.Width*cellWidth+2, g.grid.Height+2), core.ColorGray)

	head := g.snake.Head()
	for y := 0; y < g.grid.Height; y++ {
		for x := 0; x < g.grid.Width; x++ {
			p := core.Vec(x, y)
			if !g.snake.Overlaps(p) {
				continue
			}
			sx, sy := g.cellOrigin(p)
			color := core.ColorGreen
			if p == head {
				color = core.ColorBrightGreen
			}
			dst.DrawTextColored(sx, sy, glyphBody, color)
		}
	}

	if !g.won {
		fx, fy := g.cellOrigin(g.food)
		dst.DrawTextColored(fx, fy, glyphFood, core.ColorRed)
	}

	switch {
	case g.won:
		g.renderOverlay(dst, "You win!", fmt.Sprintf("Final Score: %d", g.score))
	case g.gameOver:
		g.renderOverlay(dst, "Game Over!", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// hudLine is the status text drawn on the first row.
func (g *Game) hudLine() string {
	return fmt.Sprintf(" %s  Score: %-4d Length: %-4d Board: %dx%d",
		g.Title(), g.score, g.snake.Len(), g.grid.Width, g.grid.Height)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(0, 0, g.hudLine())
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	r := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		for x := r.X + 1; x < r.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(r, core.ColorYellow)
	dst.DrawTextCentered(r.Y+1, line1)
	dst.DrawTextCentered(r.Y+3, line2)
}

// DebugState returns a one-line description of the simulation.
func (g *Game) DebugState() string {
	return fmt.Sprintf("tick=%d score=%d len=%d head=%v dir=%v food=%v",
		g.tick, g.score, g.snake.Len(), g.snake.Head(), g.snake.Direction(), g.food)
}
