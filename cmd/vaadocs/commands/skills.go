package commands

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"vaadocs/internal/skills"
	"vaadocs/pkg/fileops"
)

var skillsListJSON bool

func init() {
	skillsListCmd.Flags().BoolVar(&skillsListJSON, "json", false, "output in JSON format")
	skillsCmd.AddCommand(skillsListCmd)
	skillsCmd.AddCommand(skillsValidateCmd)
	rootCmd.AddCommand(skillsCmd)
}

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Inspect the skill catalog",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered skills and their MCP tool names",
	RunE:  runSkillsList,
}

var skillsValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every skill file and report problems",
	Long: `Parse every Markdown file in the skills directory and report files
that would be skipped by the server, with the reason.`,
	RunE: runSkillsValidate,
}

func runSkillsList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	loaded, err := skills.Load(cfg.SkillsDir, newLogger())
	if err != nil {
		return err
	}

	registry, problems := skills.NewRegistry(loaded)
	for _, problem := range problems {
		cmd.PrintErrln("Warning:", problem)
	}

	if skillsListJSON {
		type skillJSON struct {
			Tool        string `json:"tool"`
			File        string `json:"file"`
			Description string `json:"description"`
			Version     string `json:"version,omitempty"`
			Language    string `json:"language,omitempty"`
		}
		out := make([]skillJSON, 0, len(registry.All()))
		for _, registered := range registry.All() {
			out = append(out, skillJSON{
				Tool:        registered.ToolName,
				File:        registered.Skill.FilePath,
				Description: registered.Skill.Description,
				Version:     registered.Skill.Version,
				Language:    registered.Skill.Language,
			})
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if len(registry.All()) == 0 {
		cmd.Println("No skills found in", cfg.SkillsDir)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TOOL\tFILE\tDESCRIPTION")
	for _, registered := range registry.All() {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			registered.ToolName, registered.Skill.FilePath, registered.Skill.Description)
	}
	return w.Flush()
}

func runSkillsValidate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	files, err := fileops.ScanMarkdown(cfg.SkillsDir)
	if err != nil {
		return fmt.Errorf("failed to scan skills directory: %w", err)
	}

	var invalid int
	for _, file := range files {
		absolutePath := filepath.Join(fileops.ExpandPath(cfg.SkillsDir), file.Path)
		if _, err := skills.ParseFile(absolutePath, file.Path); err != nil {
			invalid++
			cmd.Printf("INVALID  %s\n         %v\n", file.Path, err)
			continue
		}
		cmd.Printf("ok       %s\n", file.Path)
	}

	cmd.Printf("\n%d file(s) checked, %d invalid\n", len(files), invalid)
	if invalid > 0 {
		return fmt.Errorf("%d invalid skill file(s)", invalid)
	}
	return nil
}
