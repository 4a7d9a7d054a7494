package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"vaadocs/internal/corpus"
	"vaadocs/internal/logging"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const AppName = "vaadocs" // application name used for config and data directories

// DefaultVersion is the framework major targeted when a caller does not
// pass one to the documentation tools.
const DefaultVersion = "25"

// DefaultLanguage is the UI language discriminator used when a caller does
// not pass one ("java" or "react").
const DefaultLanguage = "java"

// Config holds user configuration for vaadocs.
type Config struct {
	// DocsDir is the directory holding the documentation corpus.
	DocsDir string `yaml:"docs_dir"`

	// SkillsDir is the directory holding skill documents.
	SkillsDir string `yaml:"skills_dir"`

	// DefaultVersion is the framework major used when tools omit a version.
	DefaultVersion string `yaml:"default_version"`

	// DefaultLanguage is the UI language used when tools omit one.
	DefaultLanguage string `yaml:"default_language"`

	// Repositories lists remote sources the corpus is synchronized from.
	Repositories []corpus.Entry `yaml:"repositories,omitempty"`

	Version  string `yaml:"version"`   // Track config version
	InitTime int64  `yaml:"init_time"` // Unix timestamp of first setup
}

// ConfigPath returns the standard config file path for the current platform
func ConfigPath() (string, error) {
	configDir := filepath.Join(xdg.ConfigHome, AppName)
	configPath := filepath.Join(configDir, "config.yaml")

	logging.Debug("Determined config path", "path", configPath)
	return configPath, nil
}

// Load loads the config from the standard location.
// If no config exists, it returns an error indicating first run is needed.
func Load() (*Config, error) {
	configPath, exists := FindConfigFile()
	logging.Debug("Loading config from", "path", configPath)
	if !exists {
		return nil, fmt.Errorf("no configuration found, run 'vaadocs init' first")
	}

	return LoadFrom(configPath)
}

// LoadFrom loads config from a specific path
func LoadFrom(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// FindConfigFile returns the path to an existing config file, and whether it exists.
func FindConfigFile() (string, bool) {
	primary, err := ConfigPath()
	if err != nil {
		logging.Error("Failed to get config path", "error", err)
		return "", false
	}

	if _, err := os.Stat(primary); err == nil {
		return primary, true
	}

	// Return primary path for new config
	return primary, false
}

// IsFirstRun checks if this is the first time the application is run
func IsFirstRun() bool {
	_, exists := FindConfigFile()
	return !exists
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	dataDir := filepath.Join(xdg.DataHome, AppName)

	return Config{
		DocsDir:         filepath.Join(dataDir, "docs"),
		SkillsDir:       filepath.Join(dataDir, "skills"),
		DefaultVersion:  DefaultVersion,
		DefaultLanguage: DefaultLanguage,
		Version:         "1.0",
		InitTime:        0, // Will be set during first save
	}
}

// applyDefaults fills fields that older config files may not carry.
func (c *Config) applyDefaults() {
	if c.DefaultVersion == "" {
		c.DefaultVersion = DefaultVersion
	}
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = DefaultLanguage
	}
}

// Save writes the config to the standard location
func (c *Config) Save() error {
	configPath, _ := FindConfigFile()
	return c.SaveTo(configPath)
}

// SaveTo writes the config to a specific path
func (c *Config) SaveTo(path string) error {
	// Set init time if this is the first save
	if c.InitTime == 0 {
		c.InitTime = time.Now().Unix()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Restrictive permissions: the config may name private repositories
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	defer enc.Close()

	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// EnsureDirs creates the docs and skills directories if they do not exist.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.DocsDir, c.SkillsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// CreateNewConfig initializes a new configuration. Empty docsDir or
// skillsDir keep the platform defaults.
func CreateNewConfig(docsDir, skillsDir string) (*Config, error) {
	cfg := DefaultConfig()
	if docsDir != "" {
		cfg.DocsDir = docsDir
	}
	if skillsDir != "" {
		cfg.SkillsDir = skillsDir
	}

	if err := cfg.EnsureDirs(); err != nil {
		return nil, err
	}

	if err := cfg.Save(); err != nil {
		return nil, fmt.Errorf("failed to save configuration: %w", err)
	}

	logging.Info("Configuration created successfully",
		"docs_dir", cfg.DocsDir,
		"skills_dir", cfg.SkillsDir,
	)
	return &cfg, nil
}
