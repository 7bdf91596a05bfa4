package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/mathgen/internal/core/domain"
)

// LevelTransform returns the transform for level out of numLevels equal slices.
// The slice [level/numLevels, (level+1)/numLevels) of any base range is selected.
func LevelTransform(level, numLevels int) domain.EntropyTransform {
	lower := float64(level) / float64(numLevels)
	upper := float64(level+1) / float64(numLevels)
	return fractionTransform(lower, upper)
}

// CustomTransform returns the transform for an explicit range on the 0-10 scale.
// Fractions are r.Min/10 and r.Max/10 of any base range, independent of
// LevelTransform's slicing.
func CustomTransform(r domain.EntropyRange) domain.EntropyTransform {
	lower := r.Min / domain.MaxEntropy
	upper := r.Max / domain.MaxEntropy
	return fractionTransform(lower, upper)
}

func fractionTransform(lower, upper float64) domain.EntropyTransform {
	return func(base domain.EntropyRange) domain.EntropyRange {
		length := base.Length()
		return domain.EntropyRange{
			Min: base.Min + lower*length,
			Max: base.Min + upper*length,
		}
	}
}

// ParseEntropyRange parses a "min,max" string.
func ParseEntropyRange(s string) (domain.EntropyRange, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return domain.EntropyRange{}, &domain.ConfigError{
			Field:  "entropy_range",
			Value:  s,
			Reason: `must be "min,max" format (e.g., "5.0,7.5")`,
		}
	}

	var bounds [2]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return domain.EntropyRange{}, &domain.ConfigError{
				Field:  "entropy_range",
				Value:  s,
				Reason: fmt.Sprintf("invalid number %q", strings.TrimSpace(part)),
			}
		}
		bounds[i] = v
	}

	r := domain.EntropyRange{Min: bounds[0], Max: bounds[1]}
	if err := r.Validate(); err != nil {
		return domain.EntropyRange{}, &domain.ConfigError{
			Field:  "entropy_range",
			Value:  s,
			Reason: "entropy values must be between 0 and 10, with min < max",
		}
	}
	return r, nil
}

// ResolveTransform picks the transform for a request and returns it with a
// human-readable label. A non-empty entropyRange overrides the difficulty.
func ResolveTransform(difficulty domain.Difficulty, entropyRange string) (domain.EntropyTransform, string, error) {
	if strings.TrimSpace(entropyRange) != "" {
		r, err := ParseEntropyRange(entropyRange)
		if err != nil {
			return nil, "", err
		}
		return CustomTransform(r), fmt.Sprintf("custom (%.1f-%.1f)", r.Min, r.Max), nil
	}

	if !difficulty.IsValid() {
		return nil, "", &domain.ConfigError{
			Field:  "difficulty",
			Value:  string(difficulty),
			Reason: "must be one of easy, medium, hard, mixed",
		}
	}
	level, numLevels := difficulty.Level()
	return LevelTransform(level, numLevels), string(difficulty), nil
}

// LevelTable returns easy, medium and hard applied to the canonical range.
func LevelTable() []domain.LevelRange {
	levels := []domain.Difficulty{domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard}
	table := make([]domain.LevelRange, 0, len(levels))
	for _, d := range levels {
		level, numLevels := d.Level()
		table = append(table, domain.LevelRange{
			Difficulty: d,
			Range:      LevelTransform(level, numLevels)(domain.CanonicalRange),
		})
	}
	return table
}
