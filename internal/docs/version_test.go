package docs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, manifestFileName), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}
}

const testManifest = `latest: "25"
supported:
  "25": "25.0.4"
  "24": "24.9.1"
`

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, testManifest)

	manifest, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}

	if manifest.Latest != "25" {
		t.Errorf("Latest = %q, want %q", manifest.Latest, "25")
	}
	if manifest.Release("24") != "24.9.1" {
		t.Errorf("Release(24) = %q, want %q", manifest.Release("24"), "24.9.1")
	}
}

func TestLoadManifestInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing latest", "supported:\n  \"25\": \"25.0.4\"\n"},
		{"no supported versions", "latest: \"25\"\n"},
		{"latest not supported", "latest: \"26\"\nsupported:\n  \"25\": \"25.0.4\"\n"},
		{"malformed yaml", "latest: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeManifest(t, dir, tt.content)
			if _, err := LoadManifest(dir); err == nil {
				t.Errorf("Expected error for %s", tt.name)
			}
		})
	}
}

func TestLoadManifestMissingFile(t *testing.T) {
	if _, err := LoadManifest(t.TempDir()); err == nil {
		t.Error("Expected error when versions.yaml is missing")
	}
}

func TestManifestResolve(t *testing.T) {
	manifest := &Manifest{
		Latest:    "25",
		Supported: map[string]string{"25": "25.0.4", "24": "24.9.1"},
	}

	tests := []struct {
		name         string
		requested    string
		wantMajor    string
		wantFellBack bool
	}{
		{"empty defaults to latest", "", "25", false},
		{"major version", "24", "24", false},
		{"full release", "24.9.1", "24", false},
		{"patch of supported major", "25.1.0", "25", false},
		{"unknown major falls back", "14", "25", true},
		{"garbage falls back", "banana", "25", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			major, fellBack := manifest.Resolve(tt.requested)
			if major != tt.wantMajor || fellBack != tt.wantFellBack {
				t.Errorf("Resolve(%q) = (%q, %v), want (%q, %v)",
					tt.requested, major, fellBack, tt.wantMajor, tt.wantFellBack)
			}
		})
	}
}

func TestManifestMajors(t *testing.T) {
	manifest := &Manifest{
		Latest:    "25",
		Supported: map[string]string{"25": "25.0.4", "24": "24.9.1", "9": "9.0.0"},
	}

	majors := manifest.Majors()
	want := []string{"25", "24", "9"}
	if len(majors) != len(want) {
		t.Fatalf("Majors() returned %d entries, want %d", len(majors), len(want))
	}
	for i := range want {
		if majors[i] != want[i] {
			t.Errorf("Majors()[%d] = %q, want %q", i, majors[i], want[i])
		}
	}
}
