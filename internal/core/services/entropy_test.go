package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/mathgen/internal/core/domain"
)

const epsilon = 1e-9

func TestLevelTransform_PartitionsCanonicalRange(t *testing.T) {
	ranges := make([]domain.EntropyRange, 3)
	for level := 0; level < 3; level++ {
		ranges[level] = LevelTransform(level, 3)(domain.CanonicalRange)
	}

	assert.InDelta(t, 0.0, ranges[0].Min, epsilon)
	assert.InDelta(t, 10.0/3, ranges[0].Max, epsilon)
	assert.InDelta(t, 10.0/3, ranges[1].Min, epsilon)
	assert.InDelta(t, 20.0/3, ranges[1].Max, epsilon)
	assert.InDelta(t, 20.0/3, ranges[2].Min, epsilon)
	assert.InDelta(t, 10.0, ranges[2].Max, epsilon)

	// Contiguous and non-overlapping.
	for i := 1; i < len(ranges); i++ {
		assert.InDelta(t, ranges[i-1].Max, ranges[i].Min, epsilon)
		assert.Less(t, ranges[i].Min, ranges[i].Max)
	}
	assert.Equal(t, "0.00 to 3.33", ranges[0].String())
	assert.Equal(t, "3.33 to 6.67", ranges[1].String())
	assert.Equal(t, "6.67 to 10.00", ranges[2].String())
}

func TestLevelTransform_ScalesArbitraryBase(t *testing.T) {
	got := LevelTransform(1, 3)(domain.EntropyRange{Min: 3, Max: 9})

	assert.InDelta(t, 5.0, got.Min, epsilon)
	assert.InDelta(t, 7.0, got.Max, epsilon)
}

func TestMixedTransform_IsIdentity(t *testing.T) {
	mixed := LevelTransform(0, 1)
	bases := []domain.EntropyRange{
		domain.CanonicalRange,
		{Min: 3, Max: 10},
		{Min: 0.5, Max: 1.5},
	}

	for _, base := range bases {
		assert.Equal(t, base, mixed(base))
	}
}

func TestCustomTransform(t *testing.T) {
	r, err := ParseEntropyRange("2.5,5.0")
	require.NoError(t, err)

	got := CustomTransform(r)(domain.CanonicalRange)
	assert.InDelta(t, 2.5, got.Min, epsilon)
	assert.InDelta(t, 5.0, got.Max, epsilon)

	// Fractions of ten, not of levels.
	got = CustomTransform(r)(domain.EntropyRange{Min: 2, Max: 6})
	assert.InDelta(t, 3.0, got.Min, epsilon)
	assert.InDelta(t, 4.0, got.Max, epsilon)
}

func TestParseEntropyRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.EntropyRange
		wantErr bool
	}{
		{"decimal", "2.5,5.0", domain.EntropyRange{Min: 2.5, Max: 5}, false},
		{"integers", "0,10", domain.EntropyRange{Min: 0, Max: 10}, false},
		{"spaces", " 8.0 , 10.0 ", domain.EntropyRange{Min: 8, Max: 10}, false},
		{"min above max", "5,3", domain.EntropyRange{}, true},
		{"min equals max", "4,4", domain.EntropyRange{}, true},
		{"one part", "5", domain.EntropyRange{}, true},
		{"three parts", "1,2,3", domain.EntropyRange{}, true},
		{"non-numeric", "a,b", domain.EntropyRange{}, true},
		{"negative", "-1,5", domain.EntropyRange{}, true},
		{"above ten", "5,11", domain.EntropyRange{}, true},
		{"NaN", "NaN,5", domain.EntropyRange{}, true},
		{"empty", "", domain.EntropyRange{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEntropyRange(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
				var cfgErr *domain.ConfigError
				require.True(t, errors.As(err, &cfgErr))
				assert.Equal(t, "entropy_range", cfgErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveTransform(t *testing.T) {
	t.Run("level based", func(t *testing.T) {
		transform, label, err := ResolveTransform(domain.DifficultyHard, "")
		require.NoError(t, err)
		assert.Equal(t, "hard", label)
		got := transform(domain.CanonicalRange)
		assert.InDelta(t, 20.0/3, got.Min, epsilon)
		assert.InDelta(t, 10.0, got.Max, epsilon)
	})

	t.Run("mixed is full range", func(t *testing.T) {
		transform, label, err := ResolveTransform(domain.DifficultyMixed, "")
		require.NoError(t, err)
		assert.Equal(t, "mixed", label)
		assert.Equal(t, domain.CanonicalRange, transform(domain.CanonicalRange))
	})

	t.Run("custom overrides difficulty", func(t *testing.T) {
		transform, label, err := ResolveTransform(domain.DifficultyHard, "2.5,5.0")
		require.NoError(t, err)
		assert.Equal(t, "custom (2.5-5.0)", label)
		got := transform(domain.CanonicalRange)
		assert.InDelta(t, 2.5, got.Min, epsilon)
		assert.InDelta(t, 5.0, got.Max, epsilon)
	})

	t.Run("invalid custom range", func(t *testing.T) {
		_, _, err := ResolveTransform(domain.DifficultyEasy, "5,3")
		assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
	})

	t.Run("invalid difficulty", func(t *testing.T) {
		_, _, err := ResolveTransform(domain.Difficulty("extreme"), "")
		assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
	})
}

func TestLevelTable(t *testing.T) {
	table := LevelTable()

	require.Len(t, table, 3)
	assert.Equal(t, domain.DifficultyEasy, table[0].Difficulty)
	assert.Equal(t, domain.DifficultyMedium, table[1].Difficulty)
	assert.Equal(t, domain.DifficultyHard, table[2].Difficulty)
	assert.InDelta(t, 10.0, table[2].Range.Max, epsilon)
}
