package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// Presets only change the tick interval; the board stays as configured.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset validates a preset name. An empty name is allowed and means
// "keep the configured tick interval".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalid, name)
	}
}

// TickForPreset returns the tick interval in milliseconds for a preset.
// Returns 0 for unknown presets.
func TickForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 200
	case DifficultyNormal:
		return 150
	case DifficultyHard:
		return 90
	default:
		return 0
	}
}

// Description returns a short label for menus.
func (p DifficultyPreset) Description() string {
	return fmt.Sprintf("%-6s (%d ms per step)", p, TickForPreset(p))
}
