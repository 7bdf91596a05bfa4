package cli

import (
	"bytes"
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/mathgen/internal/adapters/driven/config/file"
	"github.com/custodia-labs/mathgen/internal/core/domain"
)

// mockGenerationService is a mock implementation of driving.GenerationService.
type mockGenerationService struct {
	generation  *domain.Generation
	generateErr error
	lastRequest domain.GenerateRequest
	drops       []error

	modules    []string
	modulesErr error

	history    []domain.GenerationSummary
	historyErr error
	lastLimit  int
	stored     map[string]*domain.Generation
}

func (m *mockGenerationService) Generate(
	_ context.Context, req domain.GenerateRequest, observers ...domain.SampleObserver,
) (*domain.Generation, error) {
	m.lastRequest = req
	for _, o := range observers {
		for _, err := range m.drops {
			var genErr *domain.GenerationError
			module := ""
			if errors.As(err, &genErr) {
				module = genErr.Module
			}
			o.OnDrop(module, err)
		}
	}
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

func (m *mockGenerationService) History(_ context.Context, limit int) ([]domain.GenerationSummary, error) {
	m.lastLimit = limit
	return m.history, m.historyErr
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

// stubConfigStore is an in-memory ConfigStore.
type stubConfigStore struct {
	cfg    file.Config
	exists bool
	saved  []file.Config
}

func (s *stubConfigStore) Config() file.Config { return s.cfg }

func (s *stubConfigStore) Save(cfg file.Config) error {
	s.saved = append(s.saved, cfg)
	s.cfg = cfg
	s.exists = true
	return nil
}

func (s *stubConfigStore) Exists() bool { return s.exists }

func (s *stubConfigStore) Path() string { return "/tmp/mathgen/config.toml" }

func sampleGeneration() *domain.Generation {
	return &domain.Generation{
		ID:    "gen-1",
		Label: "easy",
		Range: domain.EntropyRange{Min: 0, Max: 10.0 / 3},
		Seed:  42,
		Result: domain.SamplingResult{
			Items: []domain.Problem{
				{Question: "What is 2 + 3?", Answer: "5"},
				{Question: "Solve 2*x = 4 for x.", Answer: "2"},
			},
			Requested: 2,
			Generated: 2,
			Attempts:  2,
		},
	}
}

// setupTestServices installs a mock service and resets command state.
// The returned function restores the previous state.
func setupTestServices() (*mockGenerationService, func()) {
	origGeneration, origConfig, origBootstrap := generationService, configStore, bootstrap

	mock := &mockGenerationService{generation: sampleGeneration()}
	generationService = mock
	configStore = nil
	bootstrap = nil
	resetFlags(rootCmd)

	return mock, func() {
		generationService = origGeneration
		configStore = origConfig
		bootstrap = origBootstrap
		resetFlags(rootCmd)
	}
}

// resetFlags restores every flag in the command tree to its default so
// values do not leak between tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// execute runs the root command with args, capturing stdout and stderr.
func execute(args ...string) (stdout, stderr string, err error) {
	outBuf, errBuf := new(bytes.Buffer), new(bytes.Buffer)
	rootCmd.SetOut(outBuf)
	rootCmd.SetErr(errBuf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err = Execute(context.Background())
	return outBuf.String(), errBuf.String(), err
}
