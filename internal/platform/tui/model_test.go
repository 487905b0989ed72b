package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, Seed: 7}
	m := NewModel(snake.New(), cfg, log.New(io.Discard))
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should start the tick loop")
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm, cmd
}

func TestModelReservesFooter(t *testing.T) {
	m := newTestModel(t)

	if m.screen.Height() != 24 {
		t.Errorf("game screen should leave one row for help, got height %d", m.screen.Height())
	}

	view := m.View()
	if lines := strings.Count(view, "\n") + 1; lines != 25 {
		t.Errorf("view should fill 25 rows, got %d", lines)
	}
	if !strings.Contains(view, "up") {
		t.Error("help footer missing")
	}
}

func TestModelTickAppliesInput(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, runeKey('p'))
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if !m.gameState.Paused {
		t.Error("p should pause the game on the next tick")
	}
	if m.inputFrame.Has(core.ActionPause) {
		t.Error("input frame should be cleared after a tick")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := newTestModel(t)

	// The first tick eats the food next to the start.
	m, _ = update(t, m, TickMsg{})
	if m.gameState.Score != 1 {
		t.Fatalf("expected score 1, got %d", m.gameState.Score)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen should be 100x39, got %dx%d", m.screen.Width(), m.screen.Height())
	}
	if m.game.State().Score != 1 {
		t.Error("resize should not restart the game")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "[]", core.ColorGreen)
	s.DrawText(3, 0, "hi")
	s.DrawTextColored(0, 1, "()", core.ColorRed)

	out := RenderScreen(s)
	for _, want := range []string{"[]", "hi", "()"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen output missing %q", want)
		}
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
}

func TestDifficultyMenu(t *testing.T) {
	var m tea.Model = NewDifficultyModel(80, 24)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("selecting should quit the menu program")
	}

	dm := m.(DifficultyModel)
	if got := dm.Selected(); got != "hard" {
		t.Errorf("expected hard, got %q", got)
	}
}

func TestMenuListsBoards(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	view := m.View()
	for _, want := range []string{"Snake", "Snake (Mini)"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu should list %q", want)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if sel := next.(MenuModel).Selected(); sel == nil || sel.GameID != "snake_mini" {
		t.Errorf("expected snake_mini, got %+v", sel)
	}
}
