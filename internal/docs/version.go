package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// manifestFileName is the version manifest at the docs directory root.
const manifestFileName = "versions.yaml"

// Manifest describes which Vaadin versions the corpus covers. Supported
// maps a major version ("25") to its exact release ("25.0.4").
type Manifest struct {
	Latest    string            `yaml:"latest"`
	Supported map[string]string `yaml:"supported"`
}

// LoadManifest reads versions.yaml from docsDir.
func LoadManifest(docsDir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(docsDir, manifestFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to read version manifest: %w", err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse version manifest: %w", err)
	}

	if err := manifest.Validate(); err != nil {
		return nil, fmt.Errorf("invalid version manifest: %w", err)
	}

	return &manifest, nil
}

// Validate checks internal consistency of the manifest.
func (m *Manifest) Validate() error {
	if strings.TrimSpace(m.Latest) == "" {
		return fmt.Errorf("missing 'latest' version")
	}
	if len(m.Supported) == 0 {
		return fmt.Errorf("no supported versions declared")
	}
	if _, ok := m.Supported[m.Latest]; !ok {
		return fmt.Errorf("latest version %q is not in the supported set", m.Latest)
	}
	return nil
}

// Resolve maps a requested version to a supported major version. The input
// may be a major ("25"), a full release ("25.0.4") or empty. Unknown or
// empty versions resolve to the latest major; fellBack reports whether
// that fallback happened for a non-empty request.
func (m *Manifest) Resolve(requested string) (major string, fellBack bool) {
	requested = strings.TrimSpace(requested)
	if requested == "" {
		return m.Latest, false
	}

	candidate := requested
	if idx := strings.IndexByte(candidate, '.'); idx != -1 {
		candidate = candidate[:idx]
	}

	if _, ok := m.Supported[candidate]; ok {
		return candidate, false
	}

	return m.Latest, true
}

// Release returns the exact release string for a supported major version.
func (m *Manifest) Release(major string) string {
	return m.Supported[major]
}

// Majors returns the supported major versions in descending numeric order
// where possible, otherwise lexicographic.
func (m *Manifest) Majors() []string {
	majors := make([]string, 0, len(m.Supported))
	for major := range m.Supported {
		majors = append(majors, major)
	}
	sort.Slice(majors, func(i, j int) bool {
		if len(majors[i]) != len(majors[j]) {
			return len(majors[i]) > len(majors[j])
		}
		return majors[i] > majors[j]
	})
	return majors
}
