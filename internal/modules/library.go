package modules

import (
	"math/rand"

	"github.com/custodia-labs/mathgen/internal/core/domain"
	"github.com/custodia-labs/mathgen/internal/core/ports/driven"
)

// TrainEntropy is the entropy range difficulty transforms are applied to.
var TrainEntropy = domain.EntropyRange{Min: 3, Max: 10}

// Ensure Library implements the interface.
var _ driven.ModuleLibrary = (*Library)(nil)

// Library is the built-in generator library.
type Library struct{}

// New creates the built-in library.
func New() *Library {
	return &Library{}
}

// Modules returns the category tree for transform. A nil transform leaves
// TrainEntropy unchanged.
func (l *Library) Modules(transform domain.EntropyTransform, rng *rand.Rand) domain.ModuleTree {
	entropy := TrainEntropy
	if transform != nil {
		entropy = transform(TrainEntropy)
	}
	s := newSource(rng, entropy)

	return domain.ModuleTree{
		"arithmetic":  arithmeticModules(s),
		"algebra":     algebraModules(s),
		"numbers":     numberModules(s),
		"comparison":  comparisonModules(s),
		"polynomials": polynomialModules(s),
		"calculus":    calculusModules(s),
	}
}
