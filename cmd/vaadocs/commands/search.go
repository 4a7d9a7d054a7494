package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vaadocs/internal/docs"
	"vaadocs/internal/search"
)

var (
	searchVersion    string
	searchLanguage   string
	searchMaxResults int
)

func init() {
	searchCmd.Flags().StringVar(&searchVersion, "version", "", "Vaadin major version (default: configured version)")
	searchCmd.Flags().StringVar(&searchLanguage, "language", "", "framework language, java or react (default: configured language)")
	searchCmd.Flags().IntVarP(&searchMaxResults, "max-results", "n", 5, "maximum number of results")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the documentation corpus",
	Example: `  vaadocs search "grid lazy loading"
  vaadocs search "combo box filtering" --version 24 -n 10`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger()

	store, err := docs.NewStore(cfg.DocsDir, logger)
	if err != nil {
		return fmt.Errorf("failed to open documentation corpus: %w", err)
	}

	version := searchVersion
	if version == "" {
		version = cfg.DefaultVersion
	}
	language := strings.ToLower(searchLanguage)
	if language == "" {
		language = cfg.DefaultLanguage
	}

	pages, err := store.Pages(version)
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	matches := search.NewIndex(pages).Search(query, searchMaxResults*2)

	var shown int
	for _, m := range matches {
		if language != "" && m.Page.Language != "" && m.Page.Language != language {
			continue
		}
		if shown >= searchMaxResults {
			break
		}
		shown++

		cmd.Printf("%d. %s\n", shown, m.Page.Title)
		cmd.Printf("   %s\n", m.Page.ID)
		if m.Snippet != "" {
			cmd.Printf("   %s\n", m.Snippet)
		}
		cmd.Println()
	}

	if shown == 0 {
		cmd.Printf("No results for %q.\n", query)
		return nil
	}

	cmd.Println("Read a page with: vaadocs view <id>")
	return nil
}
