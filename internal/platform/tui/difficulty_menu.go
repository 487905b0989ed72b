package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// DifficultyModel lets users pick a speed preset before a game starts.
type DifficultyModel struct {
	presets   []config.DifficultyPreset
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection config.DifficultyPreset
	choosing  bool
	quitting  bool
	back      bool
}

// NewDifficultyModel creates a new difficulty selection model.
// The cursor starts on the normal preset.
func NewDifficultyModel(width, height int) DifficultyModel {
	m := DifficultyModel{
		presets:   config.Presets,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
	for i, p := range m.presets {
		if p == config.DifficultyNormal {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = m.presets[m.cursor]
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the preset list.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, p.Description()), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen preset, or "" if still choosing.
func (m DifficultyModel) Selected() config.DifficultyPreset {
	if m.choosing {
		return ""
	}
	return m.selection
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// RunDifficultySelector asks for a preset. ok is false when the user left
// without choosing.
func RunDifficultySelector(cfg core.RuntimeConfig) (preset config.DifficultyPreset, ok bool, err error) {
	p := tea.NewProgram(NewDifficultyModel(cfg.ScreenW, cfg.ScreenH), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("tui: difficulty menu: %w", err)
	}

	m, isModel := finalModel.(DifficultyModel)
	if !isModel || m.IsQuitting() || m.WantsBack() {
		return "", false, nil
	}

	preset = m.Selected()
	return preset, preset != "", nil
}
