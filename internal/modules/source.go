package modules

import (
	"math"
	"math/rand"

	"github.com/custodia-labs/mathgen/internal/core/domain"
)

// maxRetries bounds how often a generator redraws before giving up.
const maxRetries = 3

// source is the per-tree random state shared by all generators of a tree.
type source struct {
	rng     *rand.Rand
	entropy domain.EntropyRange
}

func newSource(rng *rand.Rand, entropy domain.EntropyRange) *source {
	return &source{rng: rng, entropy: entropy}
}

// generator binds fn to s.
func (s *source) generator(fn func(*source) (domain.Problem, error)) domain.Generator {
	return func() (domain.Problem, error) {
		return fn(s)
	}
}

// sampleEntropy draws an entropy uniformly from the source's range.
func (s *source) sampleEntropy() float64 {
	return s.entropy.Min + s.rng.Float64()*s.entropy.Length()
}

// split divides e into n positive shares summing to e.
func (s *source) split(e float64, n int) []float64 {
	weights := make([]float64, n)
	total := 0.0
	for i := range weights {
		weights[i] = 0.5 + s.rng.Float64()
		total += weights[i]
	}
	for i := range weights {
		weights[i] = e * weights[i] / total
	}
	return weights
}

// bound returns the magnitude limit for an integer carrying entropy e.
func bound(e float64) int {
	b := int(math.Round(math.Pow(10, e/2)))
	if b < 1 {
		return 1
	}
	return b
}

// natural returns an integer in [1, bound(e)].
func (s *source) natural(e float64) int {
	return 1 + s.rng.Intn(bound(e))
}

// integer returns an integer in [-bound(e), bound(e)].
func (s *source) integer(e float64) int {
	b := bound(e)
	return s.rng.Intn(2*b+1) - b
}

// nonZero returns a non-zero integer in [-bound(e), bound(e)].
func (s *source) nonZero(e float64) int {
	n := s.natural(e)
	if s.coin() {
		return -n
	}
	return n
}

func (s *source) coin() bool {
	return s.rng.Intn(2) == 0
}

// pick returns one of options.
func (s *source) pick(options ...string) string {
	return options[s.rng.Intn(len(options))]
}
