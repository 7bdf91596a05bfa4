package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/mathgen/internal/core/domain"
	"github.com/custodia-labs/mathgen/internal/core/ports/driven"
	"github.com/custodia-labs/mathgen/internal/core/ports/driving"
	"github.com/custodia-labs/mathgen/internal/logger"
	"github.com/custodia-labs/mathgen/internal/random"
)

// Ensure GenerationService implements the interface.
var _ driving.GenerationService = (*GenerationService)(nil)

// GenerationService resolves difficulty, builds the module registry and runs
// the sampler. It owns no state between calls and is safe for concurrent use
// as long as its optional dependencies are set before the first call.
type GenerationService struct {
	library driven.ModuleLibrary
	store   driven.GenerationStore
	newSeed func() (int64, error)
	now     func() time.Time
}

// NewGenerationService creates a generation service backed by library.
func NewGenerationService(library driven.ModuleLibrary) *GenerationService {
	return &GenerationService{
		library: library,
		newSeed: random.NewSeed,
		now:     time.Now,
	}
}

// SetGenerationStore enables persistence of finished generations.
func (s *GenerationService) SetGenerationStore(store driven.GenerationStore) {
	s.store = store
}

// SetSeedSource replaces the source of fresh seeds used when a request has none.
func (s *GenerationService) SetSeedSource(fn func() (int64, error)) {
	s.newSeed = fn
}

// Generate produces items for req.
func (s *GenerationService) Generate(
	ctx context.Context, req domain.GenerateRequest, observers ...domain.SampleObserver,
) (*domain.Generation, error) {
	logger.Section("Generation")

	if err := domain.ValidateCount(req.Count); err != nil {
		return nil, err
	}

	difficulty, err := domain.ParseDifficulty(string(req.Difficulty))
	if err != nil {
		return nil, err
	}
	req.Difficulty = difficulty

	transform, label, err := ResolveTransform(difficulty, req.EntropyRange)
	if err != nil {
		return nil, err
	}
	entropy := transform(domain.CanonicalRange)
	logger.Debug("Difficulty: %s, entropy range: %s", label, entropy)

	seed := req.Seed
	if seed == 0 {
		if seed, err = s.newSeed(); err != nil {
			return nil, fmt.Errorf("seeding random source: %w", err)
		}
	}
	logger.Debug("Seed: %d", seed)

	rng := random.New(seed)
	tree := s.library.Modules(transform, rng)

	registry, err := BuildRegistry(tree, req.Filter)
	if err != nil {
		return nil, err
	}
	if logger.IsVerbose() {
		logger.Debug("Filter %q matched %d modules: %s",
			req.Filter, registry.Len(), strings.Join(registry.Names(), ", "))
	}

	opts := make([]SamplerOption, 0, len(observers))
	for _, o := range observers {
		opts = append(opts, WithObserver(o))
	}

	result, err := NewSampler(rng, opts...).Sample(ctx, registry, req.Count, transform)
	if err != nil {
		return nil, fmt.Errorf("sampling: %w", err)
	}

	gen := &domain.Generation{
		ID:        uuid.NewString(),
		Request:   req,
		Label:     label,
		Range:     entropy,
		Seed:      seed,
		Result:    result,
		CreatedAt: s.now().UTC(),
	}
	logger.Info("Generation %s: %d/%d items, %d dropped",
		gen.ID, result.Generated, result.Requested, result.Dropped)

	if s.store != nil {
		if err := s.store.Save(ctx, gen); err != nil {
			return gen, fmt.Errorf("saving generation: %w", err)
		}
		logger.Debug("Saved generation %s", gen.ID)
	}

	return gen, nil
}

// ListModules returns every module name the library offers, sorted.
// The identity transform is used since only names are needed.
func (s *GenerationService) ListModules(_ context.Context) ([]string, error) {
	seed, err := s.newSeed()
	if err != nil {
		return nil, fmt.Errorf("seeding random source: %w", err)
	}

	entries := FlattenModules(s.library.Modules(LevelTransform(0, 1), random.New(seed)))
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names, nil
}

// EntropyLevels returns the easy/medium/hard ranges on the canonical scale.
func (s *GenerationService) EntropyLevels() []domain.LevelRange {
	return LevelTable()
}

// History lists stored generations, newest first.
func (s *GenerationService) History(ctx context.Context, limit int) ([]domain.GenerationSummary, error) {
	if s.store == nil {
		return nil, domain.ErrStorageUnavailable
	}
	return s.store.List(ctx, limit)
}

// GetGeneration retrieves a stored generation by ID.
func (s *GenerationService) GetGeneration(ctx context.Context, id string) (*domain.Generation, error) {
	if s.store == nil {
		return nil, domain.ErrStorageUnavailable
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.store.Get(ctx, id)
}

// DeleteGeneration removes a stored generation by ID.
func (s *GenerationService) DeleteGeneration(ctx context.Context, id string) error {
	if _, err := s.GetGeneration(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, strings.TrimSpace(id)); err != nil {
		return fmt.Errorf("deleting generation: %w", err)
	}
	logger.Debug("Deleted generation %s", id)
	return nil
}
