package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/mathgen/internal/adapters/driven/config/file"
	"github.com/custodia-labs/mathgen/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/mathgen/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/mathgen/internal/adapters/driving/cli"
	"github.com/custodia-labs/mathgen/internal/core/services"
	"github.com/custodia-labs/mathgen/internal/logger"
	"github.com/custodia-labs/mathgen/internal/modules"
)

func main() {
	// A missing .env is fine; the environment and config.toml still apply.
	_ = godotenv.Load(".env")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	cli.SetBootstrap(bootstrap)
	err := cli.Execute(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap wires the adapters for one invocation.
func bootstrap(configDir string) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	cfg := configStore.Config()

	generation := services.NewGenerationService(modules.New())
	deps := &cli.Services{
		Generation: generation,
		Config:     configStore,
	}

	if !cfg.Storage.Enabled {
		// Generations are kept for the life of the process only,
		// which lets a long-running server serve them back.
		generation.SetGenerationStore(memory.NewGenerationStore())
		return deps, nil
	}

	store, err := sqlite.NewStore(cfg.Storage.DataDir)
	if err != nil {
		return nil, fmt.Errorf("opening dataset store: %w", err)
	}
	generation.SetGenerationStore(store.GenerationStore())
	deps.Close = store.Close
	logger.Debug("Saving generations to %s", store.Path())

	return deps, nil
}
