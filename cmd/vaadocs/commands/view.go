package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"vaadocs/internal/docs"
	"vaadocs/internal/tui"
)

var viewVersion string

func init() {
	viewCmd.Flags().StringVar(&viewVersion, "version", "", "Vaadin major version (default: configured version)")
	rootCmd.AddCommand(viewCmd)
}

var viewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Read a documentation page in the terminal",
	Long: `Open a documentation page in a scrollable terminal viewer with
rendered Markdown. Press g to toggle between rendered and raw views,
q to quit.`,
	Example: `  vaadocs view components/grid/overview`,
	Args:    cobra.ExactArgs(1),
	RunE:    runView,
}

func runView(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := docs.NewStore(cfg.DocsDir, newLogger())
	if err != nil {
		return fmt.Errorf("failed to open documentation corpus: %w", err)
	}

	version := viewVersion
	if version == "" {
		version = cfg.DefaultVersion
	}

	page, err := store.Get(args[0], version)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s (Vaadin %s)", page.Title, page.Version)
	return tui.Show(title, page.Body)
}
