package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mathgen/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can
generate problem sets.

By default, the server communicates over stdio using JSON-RPC.
Use --port to serve streamable HTTP instead.

Tools:
  generate      generate problems with answers
  list_modules  list generator modules

Resources:
  mathgen://modules                 modules grouped by category
  mathgen://entropy                 difficulty level ranges
  mathgen://generations/{id}        a saved generation

Examples:
  # Stdio mode (default)
  mathgen mcp serve

  # HTTP mode
  mathgen mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port := currentConfig().MCP.Port
	if cmd.Flags().Changed("port") {
		var err error
		if port, err = cmd.Flags().GetInt("port"); err != nil {
			return fmt.Errorf("getting port flag: %w", err)
		}
	}

	ports := &mcp.Ports{
		Generation: generationService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
