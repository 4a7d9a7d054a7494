package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"vaadocs/internal/docs"
)

func init() {
	rootCmd.AddCommand(versionsCmd)
}

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "Show the Vaadin versions covered by the corpus",
	RunE:  runVersions,
}

func runVersions(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := docs.NewStore(cfg.DocsDir, newLogger())
	if err != nil {
		return fmt.Errorf("failed to open documentation corpus: %w", err)
	}

	manifest := store.Manifest()
	cmd.Printf("Latest: %s\n\n", manifest.Release(manifest.Latest))

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MAJOR\tRELEASE")
	for _, major := range manifest.Majors() {
		fmt.Fprintf(w, "%s\t%s\n", major, manifest.Release(major))
	}
	return w.Flush()
}
