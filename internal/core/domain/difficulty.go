package domain

import "strings"

// Difficulty is a categorical label mapped to an entropy sub-range.
type Difficulty string

const (
	// DifficultyEasy uses the lower third of the entropy range.
	DifficultyEasy Difficulty = "easy"
	// DifficultyMedium uses the middle third of the entropy range.
	DifficultyMedium Difficulty = "medium"
	// DifficultyHard uses the upper third of the entropy range.
	DifficultyHard Difficulty = "hard"
	// DifficultyMixed uses the full entropy range.
	DifficultyMixed Difficulty = "mixed"
)

// DifficultyLevels is the number of graded difficulties (easy, medium, hard).
const DifficultyLevels = 3

// AllDifficulties returns every difficulty in ascending order, mixed last.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyMixed}
}

// ParseDifficulty converts a string to a Difficulty.
// Matching is case-insensitive and the empty string means easy.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if d == "" {
		return DifficultyEasy, nil
	}
	if !d.IsValid() {
		return "", &ConfigError{
			Field:  "difficulty",
			Value:  s,
			Reason: "must be one of easy, medium, hard, mixed",
		}
	}
	return d, nil
}

// IsValid returns true if d is a known difficulty.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyMixed:
		return true
	default:
		return false
	}
}

// Level returns the level index and the number of levels it is drawn from.
// Mixed is level 0 of 1, which selects the whole range.
func (d Difficulty) Level() (level, numLevels int) {
	switch d {
	case DifficultyMedium:
		return 1, DifficultyLevels
	case DifficultyHard:
		return 2, DifficultyLevels
	case DifficultyMixed:
		return 0, 1
	default:
		return 0, DifficultyLevels
	}
}

// Description returns a human-readable description of the difficulty.
func (d Difficulty) Description() string {
	switch d {
	case DifficultyEasy:
		return "lower 1/3 of complexity (simpler parameters)"
	case DifficultyMedium:
		return "middle 1/3 of complexity (moderate parameters)"
	case DifficultyHard:
		return "upper 1/3 of complexity (complex parameters)"
	case DifficultyMixed:
		return "the full complexity range"
	default:
		return "unknown"
	}
}
