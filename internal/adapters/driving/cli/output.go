package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/mathgen/internal/core/domain"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return &domain.ConfigError{Field: "format", Value: format, Reason: "must be text, json or yaml"}
}

// encode writes v to w as JSON or YAML.
func encode(w io.Writer, format string, v any) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// writeItems prints each item as a question line followed by an answer
// line. With showEntropy, a difficulty line precedes each item on errOut.
func writeItems(out, errOut io.Writer, gen *domain.Generation, showEntropy bool) {
	for _, item := range gen.Result.Items {
		if showEntropy {
			fmt.Fprintf(errOut, "[DIFFICULTY: %s | ENTROPY RANGE: %.2f to %.2f]\n",
				gen.Label, gen.Range.Min, gen.Range.Max)
		}
		fmt.Fprintln(out, item.Question)
		fmt.Fprintln(out, item.Answer)
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
