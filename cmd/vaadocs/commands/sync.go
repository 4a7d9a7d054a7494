package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"vaadocs/internal/corpus"
)

var (
	syncSetToken    string
	syncDeleteToken bool
)

func init() {
	syncCmd.Flags().StringVar(&syncSetToken, "set-token", "", "store a GitHub token for private repositories and exit")
	syncCmd.Flags().BoolVar(&syncDeleteToken, "delete-token", false, "delete the stored GitHub token and exit")
	rootCmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize documentation repositories",
	Long: `Clone or update the git repositories listed in the configuration.
Public repositories need no credentials. For private repositories, store
a GitHub personal access token in the system keychain first:

  vaadocs sync --set-token ghp_...

Repositories with uncommitted local changes are skipped, never
overwritten.`,
	RunE: runSync,
}

func runSync(cmd *cobra.Command, _ []string) error {
	if syncSetToken != "" {
		cm := corpus.NewCredentialManager()
		if err := cm.StoreGitHubToken(syncSetToken); err != nil {
			return err
		}
		cmd.Println("GitHub token stored in the system keychain.")
		return nil
	}

	if syncDeleteToken {
		cm := corpus.NewCredentialManager()
		if err := cm.DeleteGitHubToken(); err != nil {
			return err
		}
		cmd.Println("GitHub token deleted.")
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if len(cfg.Repositories) == 0 {
		cmd.Println("No repositories configured. Add entries under 'repositories' in the config file.")
		return nil
	}

	results := corpus.SyncAll(cfg.Repositories, newLogger())

	var failed int
	for _, result := range results {
		cmd.Printf("%-8s %s: %s\n", result.Status, result.EntryName, result.Message())
		if result.Status == corpus.SyncStatusFailed {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d repositories failed to sync", failed, len(results))
	}
	return nil
}
