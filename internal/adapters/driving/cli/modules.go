package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mathgen/internal/core/domain"
)

var modulesFormat string

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List available modules",
	Long: `Lists every problem generator module, grouped by category.
Module names can be passed to generate --filter, which matches a regular
expression against the start of each name.`,
	Args: cobra.NoArgs,
	RunE: runModules,
}

func init() {
	modulesCmd.Flags().StringVar(&modulesFormat, "format", formatText, "output format: text, json or yaml")
	rootCmd.AddCommand(modulesCmd)
}

// moduleGroup is a category heading with its module names.
type moduleGroup struct {
	category string
	names    []string
}

func runModules(cmd *cobra.Command, _ []string) error {
	if generationService == nil {
		return errors.New("generation service not configured")
	}
	if err := validateFormat(modulesFormat); err != nil {
		return err
	}

	names, err := generationService.ListModules(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing modules: %w", err)
	}

	out := cmd.OutOrStdout()
	if modulesFormat != formatText {
		return encode(out, modulesFormat, map[string]any{
			"modules": names,
			"count":   len(names),
		})
	}

	rule := strings.Repeat("=", 60)
	fmt.Fprintf(out, "Available modules (%d total):\n", len(names))
	fmt.Fprintln(out, rule)

	for _, group := range groupModules(names) {
		fmt.Fprintf(out, "\n%s (%d modules):\n", strings.ToUpper(group.category), len(group.names))
		for _, name := range group.names {
			fmt.Fprintf(out, "  - %s\n", name)
		}
	}

	if isTerminal(out) {
		fmt.Fprintln(out)
		fmt.Fprintln(out, rule)
		fmt.Fprintln(out, "Usage examples:")
		fmt.Fprintln(out, `  --filter=algebra__linear_1d           (exact match)`)
		fmt.Fprintln(out, `  --filter=algebra                      (all algebra)`)
		fmt.Fprintln(out, `  --filter="algebra__.*"                (regex: all algebra)`)
		fmt.Fprintln(out, `  --filter=".*linear.*"                 (regex: all with linear)`)
		fmt.Fprintln(out, `  --filter="calculus__.*|algebra__.*"   (regex: calculus OR algebra)`)
	}
	return nil
}

// groupModules groups sorted names by category, preserving order.
func groupModules(names []string) []moduleGroup {
	var groups []moduleGroup
	for _, name := range names {
		category := domain.ModuleCategory(name)
		if len(groups) == 0 || groups[len(groups)-1].category != category {
			groups = append(groups, moduleGroup{category: category})
		}
		last := &groups[len(groups)-1]
		last.names = append(last.names, name)
	}
	return groups
}
