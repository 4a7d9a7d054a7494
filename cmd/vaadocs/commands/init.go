package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"vaadocs/internal/config"
)

var (
	initDocsDir   string
	initSkillsDir string
	initForce     bool
)

func init() {
	initCmd.Flags().StringVar(&initDocsDir, "docs-dir", "", "directory for the documentation corpus (default: platform data dir)")
	initCmd.Flags().StringVar(&initSkillsDir, "skills-dir", "", "directory for skill documents (default: platform data dir)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing configuration")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the initial configuration",
	Long: `Create the vaadocs configuration file and the docs and skills
directories. Safe to re-run with --force to reset the configuration.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, _ []string) error {
	if !config.IsFirstRun() && !initForce {
		path, _ := config.ConfigPath()
		return fmt.Errorf("configuration already exists at %s (use --force to overwrite)", path)
	}

	cfg, err := config.CreateNewConfig(initDocsDir, initSkillsDir)
	if err != nil {
		return err
	}

	path, _ := config.ConfigPath()
	cmd.Printf("Configuration written to %s\n", path)
	cmd.Printf("  docs:   %s\n", cfg.DocsDir)
	cmd.Printf("  skills: %s\n", cfg.SkillsDir)
	cmd.Println("\nAdd documentation repositories to the config and run 'vaadocs sync'.")
	return nil
}
