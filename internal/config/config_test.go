package config

import (
	"os"
	"path/filepath"
	"testing"

	"vaadocs/internal/corpus"
)

func strPtr(s string) *string { return &s }

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.DocsDir = "/data/docs"
	cfg.SkillsDir = "/data/skills"
	cfg.Repositories = []corpus.Entry{
		{
			ID:        "vaadin-docs",
			Name:      "Vaadin Docs",
			RemoteURL: strPtr("https://github.com/vaadin/docs"),
			Branch:    strPtr("main"),
			Path:      "/data/docs",
		},
	}

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if loaded.DocsDir != cfg.DocsDir {
		t.Errorf("DocsDir = %q, want %q", loaded.DocsDir, cfg.DocsDir)
	}
	if loaded.DefaultVersion != DefaultVersion {
		t.Errorf("DefaultVersion = %q, want %q", loaded.DefaultVersion, DefaultVersion)
	}
	if len(loaded.Repositories) != 1 {
		t.Fatalf("Expected 1 repository, got %d", len(loaded.Repositories))
	}
	if loaded.Repositories[0].RemoteURL == nil || *loaded.Repositories[0].RemoteURL != "https://github.com/vaadin/docs" {
		t.Error("Repository remote URL did not survive the round trip")
	}
	if loaded.InitTime == 0 {
		t.Error("InitTime should be set on first save")
	}
}

func TestSaveToUsesRestrictivePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Config file permissions = %o, want 0600", perm)
	}
}

func TestLoadFromAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	minimal := "docs_dir: /data/docs\nskills_dir: /data/skills\n"
	if err := os.WriteFile(path, []byte(minimal), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if loaded.DefaultVersion != DefaultVersion {
		t.Errorf("DefaultVersion = %q, want %q", loaded.DefaultVersion, DefaultVersion)
	}
	if loaded.DefaultLanguage != DefaultLanguage {
		t.Errorf("DefaultLanguage = %q, want %q", loaded.DefaultLanguage, DefaultLanguage)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	if _, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoadFromMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("docs_dir: [unclosed"), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DocsDir == "" || cfg.SkillsDir == "" {
		t.Error("DefaultConfig should set docs and skills directories")
	}
	if cfg.DefaultVersion != DefaultVersion {
		t.Errorf("DefaultVersion = %q, want %q", cfg.DefaultVersion, DefaultVersion)
	}
	if cfg.InitTime != 0 {
		t.Error("InitTime should be zero before the first save")
	}
}

func TestEnsureDirs(t *testing.T) {
	base := t.TempDir()
	cfg := Config{
		DocsDir:   filepath.Join(base, "docs"),
		SkillsDir: filepath.Join(base, "skills"),
	}

	if err := cfg.EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs failed: %v", err)
	}

	for _, dir := range []string{cfg.DocsDir, cfg.SkillsDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("Expected directory %s to exist", dir)
		}
	}
}
