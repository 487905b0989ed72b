// Package cell runs a game directly on a tcell screen. Unlike the Bubble Tea
// platform, which rebuilds the whole frame on every view, it paints a full
// frame only when the game asks for one and otherwise applies the per-tick
// patches the game returns.
package cell

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Chime is played when the snake eats.
type Chime interface {
	Play()
}

type silentChime struct{}

func (silentChime) Play() {}

// Runner drives a game on a tcell screen.
type Runner struct {
	screen tcell.Screen
	game   registry.Game
	cfg    core.RuntimeConfig
	logger *log.Logger
	chime  Chime

	buf   *core.Screen
	input core.InputFrame
	state core.GameState
}

// Option configures a Runner.
type Option func(*Runner)

// WithChime plays c on every EventAte.
func WithChime(c Chime) Option {
	return func(r *Runner) {
		if c != nil {
			r.chime = c
		}
	}
}

// NewRunner creates a runner on an initialized screen. The game is reset to
// the screen size and painted once.
func NewRunner(screen tcell.Screen, game registry.Game, cfg core.RuntimeConfig, logger *log.Logger, opts ...Option) *Runner {
	r := &Runner{
		screen: screen,
		game:   game,
		cfg:    cfg,
		logger: logger,
		chime:  silentChime{},
		input:  core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.cfg.Seed == 0 {
		r.cfg.Seed = time.Now().UnixNano()
	}
	r.cfg.ScreenW, r.cfg.ScreenH = screen.Size()
	r.buf = core.NewScreen(r.cfg.ScreenW, r.cfg.ScreenH)

	game.Reset(r.cfg)
	r.state = game.State()
	r.paint()
	logger.Info("game started", "game", game.ID(), "seed", r.cfg.Seed, "tick", game.TickInterval(), "renderer", "cell")
	return r
}

// Open creates and initializes the terminal screen.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("cell: failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("cell: failed to init screen: %w", err)
	}
	return screen, nil
}

// Run polls input and steps the game until a quit key or ctx cancellation.
// The caller owns the screen and must Fini it afterwards.
func (r *Runner) Run(ctx context.Context) error {
	interval := r.game.TickInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if !r.HandleEvent(ev) {
				r.logger.Info("quit", "game", r.game.ID(), "score", r.state.Score)
				return nil
			}

		case <-ticker.C:
			r.Tick()
			if next := r.game.TickInterval(); next != interval {
				interval = next
				ticker.Reset(interval)
			}
		}
	}
}

// HandleEvent applies one terminal event. Returns false on a quit request.
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action, quit := mapKey(ev)
		if quit {
			return false
		}
		if action != core.ActionNone {
			r.input.Set(action)
		}

	case *tcell.EventResize:
		r.resize()
	}
	return true
}

// Tick steps the game once with the input gathered since the last tick and
// brings the screen up to date.
func (r *Runner) Tick() core.StepResult {
	wasOver := r.state.GameOver

	res := r.game.Step(r.input)
	r.input.Clear()
	r.state = res.State

	if res.Repaint {
		r.paint()
	} else if len(res.Patches) > 0 {
		for _, p := range res.Patches {
			r.drawText(p.X, p.Y, p.Text, p.Color)
		}
		r.screen.Show()
	}

	id := r.game.ID()
	switch res.Event {
	case core.EventAte:
		r.chime.Play()
		r.logger.Debug("food eaten", "game", id, "score", res.State.Score)
	case core.EventCrashed:
		r.logger.Info("crashed", "game", id, "score", res.State.Score)
	case core.EventWon:
		r.logger.Info("board filled", "game", id, "score", res.State.Score)
	case core.EventNone:
		if wasOver && !res.State.GameOver {
			r.logger.Info("game restarted", "game", id)
		}
	}
	return res
}

// resize follows the terminal size and repaints everything.
func (r *Runner) resize() {
	w, h := r.screen.Size()
	r.cfg.ScreenW, r.cfg.ScreenH = w, h
	r.buf.Resize(w, h)

	if rg, ok := r.game.(registry.Resizable); ok {
		rg.Resize(w, h)
	} else if !r.state.GameOver {
		r.game.Reset(r.cfg)
	}

	r.paint()
	r.screen.Sync()
}

// paint renders the full frame and copies it to the terminal.
func (r *Runner) paint() {
	r.game.Render(r.buf)
	for y := 0; y < r.buf.Height(); y++ {
		for x := 0; x < r.buf.Width(); x++ {
			c := r.buf.GetCell(x, y)
			r.screen.SetContent(x, y, c.Rune, nil, styleFor(c.Color))
		}
	}
	r.screen.Show()
}

func (r *Runner) drawText(x, y int, text string, c core.Color) {
	style := styleFor(c)
	i := 0
	for _, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
		i++
	}
}
