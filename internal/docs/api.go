package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ComponentAPI describes the Java API surface of a single component, as
// stored in <docs_dir>/<major>/api/<component>.yaml.
type ComponentAPI struct {
	Component string     `yaml:"component"`
	Version   string     `yaml:"version,omitempty"`
	Classes   []APIClass `yaml:"classes"`
}

// APIClass is one Java class in a component's API.
type APIClass struct {
	Name        string      `yaml:"name"`
	Package     string      `yaml:"package,omitempty"`
	Extends     string      `yaml:"extends,omitempty"`
	Description string      `yaml:"description,omitempty"`
	Methods     []APIMethod `yaml:"methods,omitempty"`
}

// APIMethod is one method signature with its description.
type APIMethod struct {
	Signature   string `yaml:"signature"`
	Description string `yaml:"description,omitempty"`
}

// loadComponentAPI reads and parses one API file.
func loadComponentAPI(path, component, version string) (*ComponentAPI, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read API file: %w", err)
	}

	var api ComponentAPI
	if err := yaml.Unmarshal(data, &api); err != nil {
		return nil, fmt.Errorf("failed to parse API file: %w", err)
	}

	if api.Component == "" {
		api.Component = component
	}
	if api.Version == "" {
		api.Version = version
	}
	if len(api.Classes) == 0 {
		return nil, fmt.Errorf("API file declares no classes")
	}

	return &api, nil
}

// apiFilePath builds the path for a component API file. The component name
// is normalized so "Combo Box" and "combo-box" hit the same file.
func apiFilePath(docsDir, major, component string) string {
	return filepath.Join(docsDir, major, "api", NormalizeComponent(component)+".yaml")
}

// NormalizeComponent lowercases a component name and joins words with
// hyphens, matching the file naming in the corpus.
func NormalizeComponent(component string) string {
	normalized := strings.ToLower(strings.TrimSpace(component))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")
	return normalized
}
