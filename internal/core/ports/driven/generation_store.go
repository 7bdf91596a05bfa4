package driven

import (
	"context"

	"github.com/custodia-labs/mathgen/internal/core/domain"
)

// GenerationStore persists finished generations.
type GenerationStore interface {
	// Save stores a generation and its items.
	Save(ctx context.Context, gen *domain.Generation) error

	// Get retrieves a generation by ID with its items.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.Generation, error)

	// List returns summaries, newest first. limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]domain.GenerationSummary, error)

	// Delete removes a generation and its items.
	Delete(ctx context.Context, id string) error
}
