package core

// Color represents a foreground color for a screen cell.
// Renderers map it to ANSI colors for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorGray
)
