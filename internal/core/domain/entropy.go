package domain

import (
	"fmt"
	"math"
)

// MaxEntropy is the upper bound of the entropy scale.
const MaxEntropy = 10.0

// CanonicalRange is the full entropy scale. Transforms are reported
// against it for diagnostics.
var CanonicalRange = EntropyRange{Min: 0, Max: MaxEntropy}

// EntropyRange is a half-open interval on the entropy scale.
// Entropy controls generated-problem complexity: coefficient magnitude,
// operation count, polynomial degree and so on.
type EntropyRange struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Validate checks 0 <= Min < Max <= MaxEntropy.
func (r EntropyRange) Validate() error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
		return &ConfigError{Field: "entropy_range", Value: r.String(), Reason: "values must be finite numbers"}
	}
	if !CanonicalRange.Contains(r.Min) || !CanonicalRange.Contains(r.Max) || r.Min >= r.Max {
		return &ConfigError{
			Field:  "entropy_range",
			Value:  r.String(),
			Reason: "entropy values must be between 0 and 10, with min < max",
		}
	}
	return nil
}

// Length returns Max - Min.
func (r EntropyRange) Length() float64 {
	return r.Max - r.Min
}

// Contains reports whether Min <= v <= Max.
func (r EntropyRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// String formats the range as "min to max" with two decimals.
func (r EntropyRange) String() string {
	return fmt.Sprintf("%.2f to %.2f", r.Min, r.Max)
}

// EntropyTransform derives a sub-interval of a base range.
// Generator libraries call it with their own base range.
type EntropyTransform func(base EntropyRange) EntropyRange

// LevelRange pairs a difficulty with its range on the canonical scale.
type LevelRange struct {
	Difficulty Difficulty   `json:"difficulty" yaml:"difficulty"`
	Range      EntropyRange `json:"range" yaml:"range"`
}
