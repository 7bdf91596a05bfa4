package driving

import (
	"context"

	"github.com/custodia-labs/mathgen/internal/core/domain"
)

// GenerationService produces difficulty-controlled problem sets.
type GenerationService interface {
	// Generate samples problems for a single request.
	// Configuration and empty-registry errors are returned; under-generation is not an error.
	// Observers receive per-attempt diagnostics.
	Generate(
		ctx context.Context, req domain.GenerateRequest, observers ...domain.SampleObserver,
	) (*domain.Generation, error)

	// ListModules returns every fully-qualified module name, sorted.
	ListModules(ctx context.Context) ([]string, error)

	// EntropyLevels returns the easy/medium/hard ranges on the canonical scale.
	EntropyLevels() []domain.LevelRange

	// History lists stored generations, newest first.
	// Returns domain.ErrStorageUnavailable when no store is configured.
	History(ctx context.Context, limit int) ([]domain.GenerationSummary, error)

	// GetGeneration retrieves a stored generation with its items.
	GetGeneration(ctx context.Context, id string) (*domain.Generation, error)

	// DeleteGeneration removes a stored generation.
	// Returns domain.ErrNotFound when no generation has the ID.
	DeleteGeneration(ctx context.Context, id string) error
}
