package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mathgen/internal/core/domain"
)

var entropyCmd = &cobra.Command{
	Use:   "entropy",
	Short: "Show the entropy range of each difficulty level",
	Args:  cobra.NoArgs,
	RunE:  runEntropy,
}

func init() {
	rootCmd.AddCommand(entropyCmd)
}

func runEntropy(cmd *cobra.Command, _ []string) error {
	if generationService == nil {
		return errors.New("generation service not configured")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Entropy ranges on the scale (%g, %g):\n", domain.CanonicalRange.Min, domain.CanonicalRange.Max)
	fmt.Fprintln(out, strings.Repeat("=", 50))
	for _, level := range generationService.EntropyLevels() {
		fmt.Fprintf(out, "%-8s: %.2f to %.2f\n",
			strings.ToUpper(string(level.Difficulty)), level.Range.Min, level.Range.Max)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "This means:")
	for _, d := range domain.AllDifficulties() {
		name := string(d)
		fmt.Fprintf(out, "  %-7s uses %s\n", strings.ToUpper(name[:1])+name[1:]+":", d.Description())
	}

	fmt.Fprint(out, `
Entropy controls things like:
  - Coefficient sizes
  - Polynomial degrees
  - Number of operations/steps
  - Complexity of intermediate calculations

You can also use custom entropy ranges:
  --entropy-range 2.5,5.0   (slightly easier than medium)
  --entropy-range 8.0,10.0  (very hard)
  --entropy-range 0.0,10.0  (full range)
`)
	return nil
}
