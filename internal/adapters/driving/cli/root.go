// Package cli provides the cobra command tree for mathgen.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mathgen/internal/adapters/driven/config/file"
	"github.com/custodia-labs/mathgen/internal/core/ports/driving"
	"github.com/custodia-labs/mathgen/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// Services injected by main, or built per invocation by the bootstrap.
var (
	generationService driving.GenerationService
	configStore       ConfigStore
	bootstrap         Bootstrap
	closeServices     func() error
)

// ConfigStore provides the effective configuration.
type ConfigStore interface {
	Config() file.Config
	Save(cfg file.Config) error
	Exists() bool
	Path() string
}

// Services are the dependencies commands run against.
type Services struct {
	Generation driving.GenerationService
	Config     ConfigStore

	// Close releases resources such as the dataset store. May be nil.
	Close func() error
}

// Bootstrap builds Services once flags are parsed, so that --config-dir
// is honoured.
type Bootstrap func(configDir string) (*Services, error)

var rootCmd = &cobra.Command{
	Use:   "mathgen",
	Short: "Generate math problem datasets at a controlled difficulty",
	Long: `mathgen samples question/answer pairs from a library of problem
generators. Difficulty maps to a sub-range of the generators' entropy
scale: easy, medium and hard use the lower, middle and upper third,
mixed uses all of it, and --entropy-range picks any custom range.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initialise,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.mathgen)")
}

// SetBootstrap registers the function that builds services for a run.
func SetBootstrap(fn Bootstrap) {
	bootstrap = fn
}

// SetGenerationService injects the generation service directly.
func SetGenerationService(svc driving.GenerationService) {
	generationService = svc
}

// SetConfigStore injects the configuration store directly.
func SetConfigStore(store ConfigStore) {
	configStore = store
}

// Execute runs the root command and releases services afterwards.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if closeServices != nil {
		err = errors.Join(err, closeServices())
		closeServices = nil
	}
	return err
}

func initialise(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if bootstrap == nil {
		return nil
	}

	svc, err := bootstrap(configDir)
	if err != nil {
		return err
	}
	generationService = svc.Generation
	configStore = svc.Config
	closeServices = svc.Close
	return nil
}

// currentConfig returns the loaded configuration, or built-in defaults
// when no store is configured.
func currentConfig() file.Config {
	if configStore == nil {
		return file.DefaultConfig()
	}
	return configStore.Config()
}
