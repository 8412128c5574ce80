package config

import "strings"

// DifficultyPreset represents a named board size.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyExpert DifficultyPreset = "expert"
)

// SizeForPreset returns the lattice size for a difficulty preset.
// Larger boards also use more colors, which makes them harder to clear.
func SizeForPreset(preset DifficultyPreset) (int, bool) {
	switch DifficultyPreset(strings.ToLower(string(preset))) {
	case DifficultyEasy:
		return 3, true
	case DifficultyNormal:
		return 4, true
	case DifficultyHard:
		return 5, true
	case DifficultyExpert:
		return 6, true
	default:
		return 0, false
	}
}
