package cli

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/mathgen/internal/adapters/driven/config/file"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Configuration is read from config.toml in the config directory
(~/.mathgen by default) and MATHGEN_* environment variables, which take
precedence over the file. Command flags take precedence over both.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default values",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	data, err := toml.Marshal(configStore.Config())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	out := cmd.OutOrStdout()
	if configStore.Exists() {
		fmt.Fprintf(out, "# %s\n", configStore.Path())
	} else {
		fmt.Fprintf(out, "# %s (not created; showing defaults and environment)\n", configStore.Path())
	}
	fmt.Fprint(out, string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}
	if configStore.Exists() && !configInitForce {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", configStore.Path())
	}

	if err := configStore.Save(file.DefaultConfig()); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", configStore.Path())
	return nil
}
