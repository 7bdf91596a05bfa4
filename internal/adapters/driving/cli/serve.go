package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mathgen/internal/adapters/driven/config/file"
	"github.com/custodia-labs/mathgen/internal/adapters/driving/httpapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Starts a JSON HTTP API backed by the same generator library.

Endpoints:
  GET /generate?filter=&difficulty=&count=&entropy_range=&seed=
  GET /modules
  GET /entropy

Requests are rate limited per client IP; set --rate-limit 0 to disable.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntP("port", "p", file.DefaultServerPort, "HTTP port")
	serveCmd.Flags().Float64("rate-limit", file.DefaultRateLimit, "requests per second per client (0 = unlimited)")
	serveCmd.Flags().Int("burst", file.DefaultRateBurst, "requests a client may make at once")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if generationService == nil {
		return errors.New("generation service not configured")
	}

	cfg := currentConfig().Server
	flags := cmd.Flags()
	var err error
	if flags.Changed("port") {
		if cfg.Port, err = flags.GetInt("port"); err != nil {
			return fmt.Errorf("getting port flag: %w", err)
		}
	}
	if flags.Changed("rate-limit") {
		if cfg.RateLimit, err = flags.GetFloat64("rate-limit"); err != nil {
			return fmt.Errorf("getting rate-limit flag: %w", err)
		}
	}
	if flags.Changed("burst") {
		if cfg.Burst, err = flags.GetInt("burst"); err != nil {
			return fmt.Errorf("getting burst flag: %w", err)
		}
	}

	server, err := httpapi.NewServer(generationService, httpapi.Options{
		RateLimit: cfg.RateLimit,
		Burst:     cfg.Burst,
	})
	if err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	fmt.Fprintf(cmd.OutOrStdout(), "HTTP API listening on http://localhost%s\n", addr)
	return server.Run(cmd.Context(), addr)
}
