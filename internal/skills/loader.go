package skills

import (
	"fmt"
	"path/filepath"

	"vaadocs/internal/logging"
	"vaadocs/pkg/fileops"
)

// Load scans dir for Markdown files and parses them as skills. Files
// without valid front-matter are skipped with a debug log entry.
func Load(dir string, logger *logging.AppLogger) ([]Skill, error) {
	files, err := fileops.ScanMarkdown(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan skills directory: %w", err)
	}

	var loaded []Skill
	var skipped int

	for _, file := range files {
		absolutePath := filepath.Join(fileops.ExpandPath(dir), file.Path)

		skill, err := ParseFile(absolutePath, file.Path)
		if err != nil {
			if logger != nil {
				logger.Debug("Skipping file", "name", file.Name, "reason", err)
			}
			skipped++
			continue
		}

		loaded = append(loaded, *skill)
	}

	if logger != nil {
		logger.Info("Skill loading completed",
			"totalFiles", len(files),
			"validSkills", len(loaded),
			"skipped", skipped)
	}

	return loaded, nil
}
