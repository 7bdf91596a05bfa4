package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/mathgen/internal/core/domain"
	"github.com/custodia-labs/mathgen/internal/core/ports/driven"
)

// Ensure GenerationStore implements the interface.
var _ driven.GenerationStore = (*GenerationStore)(nil)

// GenerationStore is an in-memory implementation of driven.GenerationStore.
type GenerationStore struct {
	mu          sync.RWMutex
	generations map[string]domain.Generation
}

// NewGenerationStore creates a new in-memory generation store.
func NewGenerationStore() *GenerationStore {
	return &GenerationStore{
		generations: make(map[string]domain.Generation),
	}
}

// Save stores or replaces a generation.
func (s *GenerationStore) Save(_ context.Context, gen *domain.Generation) error {
	if gen == nil || gen.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *gen
	stored.Result.Items = append([]domain.Problem(nil), gen.Result.Items...)
	s.generations[gen.ID] = stored
	return nil
}

// Get retrieves a generation by ID.
func (s *GenerationStore) Get(_ context.Context, id string) (*domain.Generation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	gen, ok := s.generations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	gen.Result.Items = append([]domain.Problem(nil), gen.Result.Items...)
	return &gen, nil
}

// List returns generation summaries, newest first.
func (s *GenerationStore) List(_ context.Context, limit int) ([]domain.GenerationSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.GenerationSummary, 0, len(s.generations))
	for id := range s.generations {
		gen := s.generations[id]
		result = append(result, gen.Summary())
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Delete removes a generation.
func (s *GenerationStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.generations, id)
	return nil
}
