package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"vaadocs/internal/docs"
	"vaadocs/internal/mcp"
	"vaadocs/internal/skills"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server on stdio",
	Long: `Start the MCP server. The server speaks JSON-RPC over stdin and
stdout, so this command is meant to be launched by an MCP client rather
than interactively. Logs go to stderr.`,
	RunE: runServe,
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger()

	store, err := docs.NewStore(cfg.DocsDir, logger)
	if err != nil {
		return fmt.Errorf("failed to open documentation corpus: %w", err)
	}

	loaded, err := skills.Load(cfg.SkillsDir, logger)
	if err != nil {
		logger.Warn("Failed to load skills, serving documentation only", "error", err)
	}

	registry, problems := skills.NewRegistry(loaded)
	for _, problem := range problems {
		logger.Warn("Skill not registered", "error", problem)
	}

	return mcp.NewServer(store, registry, cfg, logger).Serve()
}
