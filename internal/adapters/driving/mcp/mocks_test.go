package mcp

import (
	"context"

	"github.com/custodia-labs/mathgen/internal/core/domain"
)

// mockGenerationService is a mock implementation of driving.GenerationService.
type mockGenerationService struct {
	generation  *domain.Generation
	err         error
	lastRequest domain.GenerateRequest
	modules     []string
	stored      map[string]*domain.Generation
}

func (m *mockGenerationService) Generate(
	_ context.Context,
	req domain.GenerateRequest,
	_ ...domain.SampleObserver,
) (*domain.Generation, error) {
	m.lastRequest = req
	return m.generation, m.err
}

func (m *mockGenerationService) ListModules(_ context.Context) ([]string, error) {
	return m.modules, m.err
}

func (m *mockGenerationService) EntropyLevels() []domain.LevelRange {
	return []domain.LevelRange{
		{Difficulty: domain.DifficultyEasy, Range: domain.EntropyRange{Min: 0, Max: 10.0 / 3}},
	}
}

func (m *mockGenerationService) History(_ context.Context, _ int) ([]domain.GenerationSummary, error) {
	return nil, m.err
}

func (m *mockGenerationService) GetGeneration(_ context.Context, id string) (*domain.Generation, error) {
	if m.stored == nil {
		return nil, domain.ErrStorageUnavailable
	}
	gen, ok := m.stored[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return gen, nil
}

func (m *mockGenerationService) DeleteGeneration(_ context.Context, id string) error {
	if m.stored == nil {
		return domain.ErrStorageUnavailable
	}
	if _, ok := m.stored[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.stored, id)
	return nil
}
