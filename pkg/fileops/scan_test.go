package fileops

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", name, err)
	}
}

func TestScanMarkdown(t *testing.T) {
	tempDir := t.TempDir()

	writeTestFile(t, tempDir, "button.md", "# Button")
	writeTestFile(t, tempDir, "components/grid.md", "# Grid")
	writeTestFile(t, tempDir, "components/grid.markdown", "# Grid long ext")
	writeTestFile(t, tempDir, "api/button.yaml", "component: button")
	writeTestFile(t, tempDir, "notes.txt", "not markdown")
	writeTestFile(t, tempDir, ".hidden.md", "hidden")
	writeTestFile(t, tempDir, "node_modules/dep.md", "skipped dir")

	files, err := ScanMarkdown(tempDir)
	if err != nil {
		t.Fatalf("ScanMarkdown failed: %v", err)
	}

	found := make(map[string]bool)
	for _, f := range files {
		found[f.Path] = true
	}

	for _, want := range []string{"button.md", filepath.Join("components", "grid.md"), filepath.Join("components", "grid.markdown")} {
		if !found[want] {
			t.Errorf("Expected %s in scan results, got %v", want, found)
		}
	}
	for _, unwanted := range []string{"notes.txt", ".hidden.md", filepath.Join("api", "button.yaml"), filepath.Join("node_modules", "dep.md")} {
		if found[unwanted] {
			t.Errorf("Did not expect %s in scan results", unwanted)
		}
	}
}

func TestScannerCustomFilter(t *testing.T) {
	tempDir := t.TempDir()

	writeTestFile(t, tempDir, "api/button.yaml", "component: button")
	writeTestFile(t, tempDir, "api/grid.yaml", "component: grid")
	writeTestFile(t, tempDir, "api/readme.md", "# API manifests")

	opts := DefaultScanOptions()
	opts.FileFilter = func(name string) bool {
		return filepath.Ext(name) == ".yaml"
	}

	scanner, err := NewScanner(tempDir, opts)
	if err != nil {
		t.Fatalf("NewScanner failed: %v", err)
	}
	defer scanner.Close()

	files, err := scanner.Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(files) != 2 {
		t.Errorf("Expected 2 yaml files, got %d", len(files))
	}
	for _, f := range files {
		if filepath.Ext(f.Name) != ".yaml" {
			t.Errorf("Filter leaked non-yaml file: %s", f.Name)
		}
	}
}

func TestScannerMaxDepth(t *testing.T) {
	tempDir := t.TempDir()

	writeTestFile(t, tempDir, "top.md", "top")
	writeTestFile(t, tempDir, "a/b/c/deep.md", "deep")

	opts := DefaultScanOptions()
	opts.MaxDepth = 2

	scanner, err := NewScanner(tempDir, opts)
	if err != nil {
		t.Fatalf("NewScanner failed: %v", err)
	}
	defer scanner.Close()

	files, err := scanner.Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	for _, f := range files {
		if f.Name == "deep.md" {
			t.Error("File beyond MaxDepth should not be returned")
		}
	}
}

func TestScannerErrors(t *testing.T) {
	if _, err := NewScanner("", DefaultScanOptions()); err == nil {
		t.Error("Expected error for empty scan path")
	}

	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "file.md")
	writeTestFile(t, tempDir, "file.md", "content")
	if _, err := NewScanner(file, DefaultScanOptions()); err == nil {
		t.Error("Expected error when scan path is a file")
	}

	scanner, err := NewScanner(tempDir, DefaultScanOptions())
	if err != nil {
		t.Fatalf("NewScanner failed: %v", err)
	}
	scanner.Close()
	if _, err := scanner.Scan(); err == nil {
		t.Error("Expected error scanning after Close")
	}
}

func TestIsMarkdownFile(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"button.md", true},
		{"grid.markdown", true},
		{"notes.MKD", true},
		{"api.yaml", false},
		{"README", false},
	}

	for _, tt := range tests {
		if got := IsMarkdownFile(tt.filename); got != tt.want {
			t.Errorf("IsMarkdownFile(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}
