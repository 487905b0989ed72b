package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// footerHeight is the number of rows reserved for the key help line.
const footerHeight = 1

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg holds the full terminal size; the game gets everything above the footer.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH = max(cfg.ScreenH-footerHeight, 0)

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
		logger:     logger,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "tick", m.game.TickInterval())

	return tickCmd(m.game.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("quit", "game", m.game.ID(), "score", m.gameState.Score)
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.help.Width = msg.Width
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-footerHeight, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	// Games that can re-layout keep their state; others start over.
	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logEvent(result, wasOver)

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking; a restart may have picked up a new interval.
	return m, tickCmd(m.game.TickInterval())
}

// logEvent records the notable outcome of a tick.
func (m Model) logEvent(result core.StepResult, wasOver bool) {
	id := m.game.ID()
	switch result.Event {
	case core.EventAte:
		m.logger.Debug("food eaten", "game", id, "score", result.State.Score)
	case core.EventCrashed:
		m.logger.Info("crashed", "game", id, "score", result.State.Score)
	case core.EventWon:
		m.logger.Info("board filled", "game", id, "score", result.State.Score)
	case core.EventNone:
		if wasOver && !result.State.GameOver {
			m.logger.Info("game restarted", "game", id)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Error("screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Keys())
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
