package httpapi

import (
	"context"

	"github.com/custodia-labs/mathgen/internal/core/domain"
	"github.com/custodia-labs/mathgen/internal/core/ports/driving"
)

// mockGenerationService is a mock implementation of driving.GenerationService.
type mockGenerationService struct {
	generation  *domain.Generation
	generateErr error
	lastRequest domain.GenerateRequest
	calls       int

	modules    []string
	modulesErr error
}

var _ driving.GenerationService = (*mockGenerationService)(nil)

func (m *mockGenerationService) Generate(
	_ context.Context, req domain.GenerateRequest, _ ...domain.SampleObserver,
) (*domain.Generation, error) {
	m.calls++
	m.lastRequest = req
	return m.generation, m.generateErr
}

func (m *mockGenerationService) ListModules(_ context.Context) ([]string, error) {
	return m.modules, m.modulesErr
}

func (m *mockGenerationService) EntropyLevels() []domain.LevelRange {
	return []domain.LevelRange{
		{Difficulty: domain.DifficultyEasy, Range: domain.EntropyRange{Min: 0, Max: 10.0 / 3}},
		{Difficulty: domain.DifficultyMedium, Range: domain.EntropyRange{Min: 10.0 / 3, Max: 20.0 / 3}},
		{Difficulty: domain.DifficultyHard, Range: domain.EntropyRange{Min: 20.0 / 3, Max: 10}},
	}
}

func (m *mockGenerationService) History(_ context.Context, _ int) ([]domain.GenerationSummary, error) {
	return nil, domain.ErrStorageUnavailable
}

func (m *mockGenerationService) GetGeneration(_ context.Context, _ string) (*domain.Generation, error) {
	return nil, domain.ErrStorageUnavailable
}

func (m *mockGenerationService) DeleteGeneration(_ context.Context, _ string) error {
	return domain.ErrStorageUnavailable
}

func sampleGeneration() *domain.Generation {
	return &domain.Generation{
		ID:    "gen-1",
		Label: "easy",
		Range: domain.EntropyRange{Min: 0, Max: 10.0 / 3},
		Seed:  42,
		Result: domain.SamplingResult{
			Items: []domain.Problem{
				{Question: "What is 2 + 3?", Answer: "5"},
			},
			Requested: 1,
			Generated: 1,
			Attempts:  1,
		},
	}
}
