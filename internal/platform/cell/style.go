package cell

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
)

var palette = map[core.Color]tcell.Color{
	core.ColorRed:         tcell.ColorMaroon,
	core.ColorGreen:       tcell.ColorGreen,
	core.ColorYellow:      tcell.ColorOlive,
	core.ColorBlue:        tcell.ColorNavy,
	core.ColorCyan:        tcell.ColorTeal,
	core.ColorWhite:       tcell.ColorSilver,
	core.ColorBrightRed:   tcell.ColorRed,
	core.ColorBrightGreen: tcell.ColorLime,
	core.ColorGray:        tcell.ColorGray,
}

// styleFor maps a core color to a tcell style. Unknown colors and
// ColorDefault use the terminal default.
func styleFor(c core.Color) tcell.Style {
	fg, ok := palette[c]
	if !ok {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(fg)
}

// mapKey translates a key event to a game action. Esc quits here; the
// Bubble Tea platform uses it for pause.
func mapKey(ev *tcell.EventKey) (action core.Action, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit, true
	case tcell.KeyUp:
		return core.ActionUp, false
	case tcell.KeyDown:
		return core.ActionDown, false
	case tcell.KeyLeft:
		return core.ActionLeft, false
	case tcell.KeyRight:
		return core.ActionRight, false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return core.ActionQuit, true
		case 'w', 'k':
			return core.ActionUp, false
		case 's', 'j':
			return core.ActionDown, false
		case 'a', 'h':
			return core.ActionLeft, false
		case 'd', 'l':
			return core.ActionRight, false
		case 'p', ' ':
			return core.ActionPause, false
		case 'r':
			return core.ActionRestart, false
		}
	}
	return core.ActionNone, false
}
