package commands

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"vaadocs/internal/docs"
)

var (
	docsListVersion   string
	docsListComponent string
	docsListJSON      bool
	docsShowVersion   string
)

func init() {
	docsListCmd.Flags().StringVar(&docsListVersion, "version", "", "Vaadin major version (default: configured version)")
	docsListCmd.Flags().StringVar(&docsListComponent, "component", "", "only pages of this component")
	docsListCmd.Flags().BoolVar(&docsListJSON, "json", false, "output in JSON format")
	docsShowCmd.Flags().StringVar(&docsShowVersion, "version", "", "Vaadin major version (default: configured version)")

	docsCmd.AddCommand(docsListCmd)
	docsCmd.AddCommand(docsShowCmd)
	rootCmd.AddCommand(docsCmd)
}

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Inspect the documentation corpus",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documentation pages",
	RunE:  runDocsList,
}

var docsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a documentation page as plain Markdown",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsShow,
}

func runDocsList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := docs.NewStore(cfg.DocsDir, newLogger())
	if err != nil {
		return fmt.Errorf("failed to open documentation corpus: %w", err)
	}

	version := docsListVersion
	if version == "" {
		version = cfg.DefaultVersion
	}

	pages, err := store.Pages(version)
	if err != nil {
		return err
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].ID < pages[j].ID })

	component := docs.NormalizeComponent(docsListComponent)

	var filtered []*docs.Page
	for _, page := range pages {
		if component != "" && page.Component != component {
			continue
		}
		filtered = append(filtered, page)
	}

	if docsListJSON {
		type pageJSON struct {
			ID        string `json:"id"`
			Title     string `json:"title"`
			Kind      string `json:"kind"`
			Component string `json:"component,omitempty"`
			Version   string `json:"version"`
		}
		out := make([]pageJSON, 0, len(filtered))
		for _, page := range filtered {
			out = append(out, pageJSON{
				ID: page.ID, Title: page.Title, Kind: page.Kind,
				Component: page.Component, Version: page.Version,
			})
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tKIND\tCOMPONENT")
	for _, page := range filtered {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", page.ID, page.Title, page.Kind, page.Component)
	}
	return w.Flush()
}

func runDocsShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := docs.NewStore(cfg.DocsDir, newLogger())
	if err != nil {
		return fmt.Errorf("failed to open documentation corpus: %w", err)
	}

	version := docsShowVersion
	if version == "" {
		version = cfg.DefaultVersion
	}

	page, err := store.Get(args[0], version)
	if err != nil {
		return err
	}

	cmd.Println(page.Body)
	return nil
}
