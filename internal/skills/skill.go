// Package skills loads and validates the Markdown instruction documents
// ("skills") exposed to AI assistants over MCP.
//
// A skill is a Markdown file with YAML front-matter carrying at least a
// description; the description tells the consuming assistant when the skill
// applies. Files without valid front-matter are skipped, never fatal: one
// malformed skill must not take the whole catalog down.
package skills

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"vaadocs/pkg/fileops"

	"github.com/adrg/frontmatter"
)

// maxSkillFileSize caps how large a single skill file may be (10MB).
const maxSkillFileSize = 10 * 1024 * 1024

// Frontmatter is the YAML front-matter structure expected in skill files.
type Frontmatter struct {
	Description string `yaml:"description"`
	Name        string `yaml:"name,omitempty"`
	Version     string `yaml:"version,omitempty"`
	Language    string `yaml:"language,omitempty"`
}

// Skill is a parsed skill document.
type Skill struct {
	// File information
	FileName string
	FilePath string

	// Front-matter fields
	Name        string
	Description string
	Version     string
	Language    string

	// Body is the document content without front-matter
	Body string
}

// ParseFile reads and parses a single skill file. The returned error
// explains why the file is not a valid skill; callers typically log it at
// debug level and move on.
func ParseFile(absolutePath, relativePath string) (*Skill, error) {
	if err := fileops.ValidatePathSecurity(relativePath); err != nil {
		return nil, fmt.Errorf("path security check failed: %w", err)
	}
	if err := fileops.ValidateFileSizeLimit(absolutePath, maxSkillFileSize); err != nil {
		return nil, fmt.Errorf("file size check failed: %w", err)
	}
	if err := fileops.ValidateFileAccess(absolutePath, false); err != nil {
		return nil, fmt.Errorf("file access check failed: %w", err)
	}

	content, err := os.ReadFile(absolutePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var matter Frontmatter
	body, err := frontmatter.Parse(bytes.NewReader(content), &matter)
	if err != nil {
		return nil, fmt.Errorf("no valid frontmatter found: %w", err)
	}

	if err := validateFrontmatter(&matter); err != nil {
		return nil, fmt.Errorf("invalid frontmatter: %w", err)
	}

	return &Skill{
		FileName:    baseName(relativePath),
		FilePath:    relativePath,
		Name:        matter.Name,
		Description: matter.Description,
		Version:     matter.Version,
		Language:    strings.ToLower(strings.TrimSpace(matter.Language)),
		Body:        string(body),
	}, nil
}

// validateFrontmatter checks front-matter fields for presence, length and
// content before they reach tool descriptions.
func validateFrontmatter(matter *Frontmatter) error {
	if strings.TrimSpace(matter.Description) == "" {
		return fmt.Errorf("missing required 'description' field")
	}
	if len(matter.Description) > 500 {
		return fmt.Errorf("description too long (max 500 characters)")
	}
	if err := fileops.ValidateContentSecurity(matter.Description); err != nil {
		return fmt.Errorf("description contains potentially malicious content: %w", err)
	}

	if matter.Name != "" {
		if len(matter.Name) > 100 {
			return fmt.Errorf("name too long (max 100 characters)")
		}
		if err := fileops.ValidateContentSecurity(matter.Name); err != nil {
			return fmt.Errorf("name contains invalid characters: %w", err)
		}
	}

	if matter.Language != "" {
		lang := strings.ToLower(strings.TrimSpace(matter.Language))
		if lang != "java" && lang != "react" {
			return fmt.Errorf("unsupported language %q (expected java or react)", matter.Language)
		}
	}

	return nil
}

func baseName(path string) string {
	if idx := strings.LastIndexByte(path, '/'); idx != -1 {
		return path[idx+1:]
	}
	return path
}
