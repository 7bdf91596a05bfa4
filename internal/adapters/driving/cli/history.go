package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mathgen/internal/core/domain"
)

var (
	historyLimit       int
	historyShowFormat  string
	historyShowEntropy bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved generations",
	Long: `Lists generations saved to the dataset store, newest first.
Saving is enabled with [storage] enabled = true in config.toml or
MATHGEN_STORAGE_ENABLED=true.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [generation-id]",
	Short: "Print the items of a saved generation",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete [generation-id]",
	Short: "Remove a saved generation",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of generations to list (0 = all)")
	historyShowCmd.Flags().StringVar(&historyShowFormat, "format", formatText, "output format: text, json or yaml")
	historyShowCmd.Flags().BoolVar(&historyShowEntropy, "show-entropy", false,
		"print each problem's difficulty and entropy range to stderr")
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if generationService == nil {
		return errors.New("generation service not configured")
	}

	summaries, err := generationService.History(cmd.Context(), historyLimit)
	if err != nil {
		return historyError(err)
	}

	out := cmd.OutOrStdout()
	if len(summaries) == 0 {
		fmt.Fprintln(out, "No saved generations.")
		fmt.Fprintln(out, "Set [storage] enabled = true in config.toml to keep generations between runs.")
		return nil
	}

	fmt.Fprintln(out, "Saved generations:")
	fmt.Fprintln(out)
	for _, s := range summaries {
		fmt.Fprintf(out, "  %s  %s\n", s.ID, s.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(out, "      %s, %d/%d items, %d dropped, seed %d\n",
			s.Label, s.Generated, s.Requested, s.Dropped, s.Seed)
		if s.Filter != "" {
			fmt.Fprintf(out, "      filter: %s\n", s.Filter)
		}
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if generationService == nil {
		return errors.New("generation service not configured")
	}
	if err := validateFormat(historyShowFormat); err != nil {
		return err
	}

	gen, err := generationService.GetGeneration(cmd.Context(), args[0])
	if err != nil {
		return historyError(err)
	}

	if historyShowFormat != formatText {
		return encode(cmd.OutOrStdout(), historyShowFormat, gen)
	}
	writeItems(cmd.OutOrStdout(), cmd.ErrOrStderr(), gen, historyShowEntropy)
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	if generationService == nil {
		return errors.New("generation service not configured")
	}

	if err := generationService.DeleteGeneration(cmd.Context(), args[0]); err != nil {
		return historyError(err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted generation %s\n", args[0])
	return nil
}

func historyError(err error) error {
	switch {
	case errors.Is(err, domain.ErrStorageUnavailable):
		return fmt.Errorf("%w: enable [storage] in config.toml or set MATHGEN_STORAGE_ENABLED=true", err)
	case errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("generation %w", err)
	default:
		return fmt.Errorf("reading history: %w", err)
	}
}
