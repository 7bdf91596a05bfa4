package driven

import (
	"math/rand"

	"github.com/custodia-labs/mathgen/internal/core/domain"
)

// ModuleLibrary supplies problem generators.
// The returned tree is built fresh for every call; generators close over
// the transform and random source they were built with.
type ModuleLibrary interface {
	// Modules returns the category -> generator tree for a difficulty transform.
	// rng must only be used from the calling goroutine.
	Modules(transform domain.EntropyTransform, rng *rand.Rand) domain.ModuleTree
}
