package docs

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"vaadocs/pkg/fileops"

	"github.com/adrg/frontmatter"
)

// Page kinds. Styling pages document theming and CSS hooks, everything
// else is a guide.
const (
	KindGuide   = "guide"
	KindStyling = "styling"
)

// maxPageFileSize caps single documentation pages (10MB).
const maxPageFileSize = 10 * 1024 * 1024

// Page is a single documentation page loaded from disk.
type Page struct {
	// ID is the relative path without the .md extension, e.g.
	// "components/grid/columns". Stable across versions.
	ID        string
	Title     string
	Component string
	Kind      string
	Version   string
	Language  string
	Path      string
	Body      string
}

// pageFrontmatter is the YAML front-matter accepted in documentation pages.
// All fields are optional; sensible values are derived when absent.
type pageFrontmatter struct {
	Title     string `yaml:"title,omitempty"`
	Component string `yaml:"component,omitempty"`
	Kind      string `yaml:"kind,omitempty"`
	Language  string `yaml:"language,omitempty"`
}

// ParsePage reads a documentation page from absolutePath. relativePath is
// the path inside the version directory and determines the page ID.
func ParsePage(absolutePath, relativePath, version string) (*Page, error) {
	if err := fileops.ValidatePathSecurity(relativePath); err != nil {
		return nil, fmt.Errorf("path security check failed: %w", err)
	}
	if err := fileops.ValidateFileSizeLimit(absolutePath, maxPageFileSize); err != nil {
		return nil, fmt.Errorf("file size check failed: %w", err)
	}

	content, err := os.ReadFile(absolutePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read page: %w", err)
	}

	var matter pageFrontmatter
	body, err := frontmatter.Parse(bytes.NewReader(content), &matter)
	if err != nil {
		// Pages without front-matter are still documentation.
		matter = pageFrontmatter{}
		body = content
	}

	id := pageID(relativePath)

	page := &Page{
		ID:        id,
		Title:     matter.Title,
		Component: strings.ToLower(strings.TrimSpace(matter.Component)),
		Kind:      normalizeKind(matter.Kind, relativePath),
		Version:   version,
		Language:  strings.ToLower(strings.TrimSpace(matter.Language)),
		Path:      relativePath,
		Body:      string(body),
	}

	if page.Title == "" {
		page.Title = titleFromBody(page.Body, id)
	}
	if page.Component == "" {
		page.Component = componentFromID(id)
	}

	return page, nil
}

// pageID strips the .md extension and normalizes separators.
func pageID(relativePath string) string {
	id := strings.TrimSuffix(relativePath, ".md")
	id = strings.TrimSuffix(id, ".markdown")
	return strings.ReplaceAll(id, "\\", "/")
}

// normalizeKind resolves the page kind from front-matter, falling back to
// the path: anything under a styling/ or styles/ segment is a styling page.
func normalizeKind(declared, relativePath string) string {
	switch strings.ToLower(strings.TrimSpace(declared)) {
	case KindStyling:
		return KindStyling
	case KindGuide:
		return KindGuide
	}

	lower := strings.ToLower(relativePath)
	for _, segment := range strings.Split(lower, "/") {
		name := strings.TrimSuffix(segment, ".md")
		if name == "styling" || name == "styles" || name == "theming" {
			return KindStyling
		}
	}
	return KindGuide
}

// titleFromBody takes the first Markdown heading, or the last ID segment
// when the page has no heading.
func titleFromBody(body, id string) string {
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			return strings.TrimSpace(strings.TrimLeft(trimmed, "# "))
		}
	}

	if idx := strings.LastIndexByte(id, '/'); idx != -1 {
		return id[idx+1:]
	}
	return id
}

// componentFromID infers the component from paths like
// "components/grid/columns".
func componentFromID(id string) string {
	parts := strings.Split(id, "/")
	if len(parts) >= 2 && parts[0] == "components" {
		return parts[1]
	}
	return ""
}
