package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mathgen/internal/adapters/driven/config/file"
	"github.com/custodia-labs/mathgen/internal/core/domain"
	"github.com/custodia-labs/mathgen/internal/logger"
)

var (
	generateFilter       string
	generateCount        int
	generateDifficulty   string
	generateEntropyRange string
	generateSeed         int64
	generateShowEntropy  bool
	generateShowDropped  bool
	generateFormat       string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate problems at a difficulty level",
	Long: `Generates question/answer pairs from the module library.

Each problem is written to stdout as two lines: the question, then the
answer. Diagnostics go to stderr. If fewer problems than requested could
be generated, a warning is printed and the command still succeeds.

Examples:
  mathgen generate --difficulty medium --count 20
  mathgen generate --filter algebra --difficulty hard
  mathgen generate --filter "calculus__.*|algebra__.*" --entropy-range 2.5,5.0
  mathgen generate --seed 42 --format json`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	flags := generateCmd.Flags()
	flags.StringVarP(&generateFilter, "filter", "f", "", "regex matched against the start of module names")
	flags.IntVarP(&generateCount, "count", "n", file.DefaultCount, "number of problems to generate")
	flags.StringVarP(&generateDifficulty, "difficulty", "d", file.DefaultDifficulty,
		"difficulty level: easy, medium, hard or mixed")
	flags.StringVar(&generateEntropyRange, "entropy-range", "",
		`custom entropy range "min,max" within 0-10 (overrides --difficulty)`)
	flags.Int64Var(&generateSeed, "seed", 0, "random seed for reproducible output (0 = random)")
	flags.BoolVar(&generateShowEntropy, "show-entropy", false, "print each problem's difficulty and entropy range to stderr")
	flags.BoolVar(&generateShowDropped, "show-dropped", false, "print failed generator attempts to stderr")
	flags.StringVar(&generateFormat, "format", formatText, "output format: text, json or yaml")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if generationService == nil {
		return errors.New("generation service not configured")
	}
	if err := validateFormat(generateFormat); err != nil {
		return err
	}

	var observers []domain.SampleObserver
	if generateShowDropped {
		observers = append(observers, &dropReporter{w: cmd.ErrOrStderr()})
	}

	gen, err := generationService.Generate(cmd.Context(), generateRequest(cmd), observers...)
	if gen == nil {
		return err
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	if generateFormat == formatText {
		writeItems(out, errOut, gen, generateShowEntropy)
	} else if encErr := encode(out, generateFormat, gen); encErr != nil {
		return encErr
	}

	if gen.Result.UnderGenerated() {
		fmt.Fprintf(errOut, "WARNING: Only generated %d out of %d requested\n",
			gen.Result.Generated, gen.Result.Requested)
	}
	logger.Info("Replay with --seed %d", gen.Seed)

	// A failed save still produced output; report it.
	return err
}

// generateRequest layers flags over the configured defaults.
func generateRequest(cmd *cobra.Command) domain.GenerateRequest {
	cfg := currentConfig().Generate
	req := domain.GenerateRequest{
		Filter:       cfg.Filter,
		Count:        cfg.Count,
		Difficulty:   domain.Difficulty(cfg.Difficulty),
		EntropyRange: generateEntropyRange,
		Seed:         cfg.Seed,
	}

	flags := cmd.Flags()
	if flags.Changed("filter") {
		req.Filter = generateFilter
	}
	if flags.Changed("count") {
		req.Count = generateCount
	}
	if flags.Changed("difficulty") {
		req.Difficulty = domain.Difficulty(generateDifficulty)
	}
	if flags.Changed("seed") {
		req.Seed = generateSeed
	}
	return req
}

// dropReporter prints every dropped attempt.
type dropReporter struct {
	w io.Writer
}

func (d *dropReporter) OnSample(int, string, domain.EntropyRange) {}

func (d *dropReporter) OnDrop(_ string, err error) {
	fmt.Fprintf(d.w, "[DROPPED] %v\n", err)
}
