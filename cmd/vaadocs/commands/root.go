// Package commands implements the CLI commands for vaadocs.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vaadocs/internal/config"
	"vaadocs/internal/logging"
)

// version is set at build time via ldflags.
const version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "vaadocs",
	Short: "Vaadin documentation and skills server for AI assistants",
	Long: `vaadocs serves Vaadin documentation, component Java APIs and styling
guides to AI assistants over MCP, and bundles a catalog of skill
documents with task-specific guidance.

The documentation corpus lives on disk and can be kept current with
'vaadocs sync'. Run 'vaadocs serve' to start the MCP server, or use the
search, docs and view commands to browse the corpus from the terminal.`,
	Example: `  # First-time setup
  vaadocs init

  # Start the MCP server on stdio
  vaadocs serve

  # Search and read documentation from the terminal
  vaadocs search "grid lazy loading"
  vaadocs view components/grid/overview`,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("vaadocs version {{.Version}}\n")
}

// Execute runs the root command. Errors are printed here so main stays
// minimal.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// loadConfig loads the user configuration, with a pointer to 'vaadocs
// init' when none exists yet.
func loadConfig() (*config.Config, error) {
	if config.IsFirstRun() {
		return nil, fmt.Errorf("no configuration found, run 'vaadocs init' first")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// newLogger builds the application logger shared by all commands.
func newLogger() *logging.AppLogger {
	return logging.GetDefault()
}
