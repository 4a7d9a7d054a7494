package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// markdownExtensions contains the file extensions treated as Markdown.
var markdownExtensions = []string{
	".md", ".mdown", ".mkdn", ".mkd", ".markdown",
}

// IsMarkdownFile reports whether a filename has a Markdown extension.
func IsMarkdownFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return slices.Contains(markdownExtensions, ext)
}

// ScanOptions configures directory scanning behavior.
type ScanOptions struct {
	// MaxDepth limits recursion depth to guard against pathological trees.
	MaxDepth int

	// IncludeHidden includes entries whose name starts with '.'.
	IncludeHidden bool

	// SkipDirs contains directory names skipped during scanning
	// (exact matches against directory names, not full paths).
	SkipDirs []string

	// FileFilter decides whether a file is included. Nil includes all files.
	FileFilter func(filename string) bool
}

// FileInfo describes a file discovered during a scan. Path is relative to
// the scan root.
type FileInfo struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
}

// Scanner walks a directory tree inside an os.Root security boundary, so
// symlinks cannot escape the scan root.
type Scanner struct {
	root     *os.Root
	opts     ScanOptions
	scanRoot string
	visited  map[string]bool
}

// defaultSkipDirs are directory names that never contain corpus content.
var defaultSkipDirs = []string{
	"node_modules", ".git", "vendor", "target", "build",
	".next", "dist", ".cache", "__pycache__", ".vscode", ".idea",
}

// DefaultScanOptions returns the options used by the corpus and skills
// loaders: Markdown files only, bounded depth, hidden entries skipped.
func DefaultScanOptions() ScanOptions {
	return ScanOptions{
		MaxDepth:      20,
		IncludeHidden: false,
		SkipDirs:      defaultSkipDirs,
		FileFilter:    IsMarkdownFile,
	}
}

// NewScanner creates a scanner rooted at scanPath.
func NewScanner(scanPath string, opts ScanOptions) (*Scanner, error) {
	if strings.TrimSpace(scanPath) == "" {
		return nil, fmt.Errorf("scan path cannot be empty")
	}

	expanded := ExpandPath(scanPath)
	absPath, err := filepath.Abs(expanded)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve scan path: %w", err)
	}

	if err := ValidatePathSecurity(absPath); err != nil {
		return nil, fmt.Errorf("scan path security validation failed: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("cannot access scan path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan path is not a directory: %s", absPath)
	}

	root, err := os.OpenRoot(absPath)
	if err != nil {
		return nil, fmt.Errorf("cannot create secure scan root: %w", err)
	}

	if opts.MaxDepth <= 0 {
		opts.MaxDepth = 20
	}

	return &Scanner{
		root:     root,
		opts:     opts,
		scanRoot: absPath,
		visited:  make(map[string]bool),
	}, nil
}

// Close releases the scanner's root handle.
func (s *Scanner) Close() error {
	if s.root != nil {
		err := s.root.Close()
		s.root = nil
		return err
	}
	return nil
}

// Scan walks the tree and returns the matching files, ordered by path as
// encountered. Unreadable directories are skipped rather than failing the
// whole scan.
func (s *Scanner) Scan() ([]FileInfo, error) {
	if s.root == nil {
		return nil, fmt.Errorf("scanner has been closed")
	}

	s.visited = make(map[string]bool)

	var results []FileInfo
	if err := s.walk(".", 1, &results); err != nil {
		return nil, fmt.Errorf("directory scan failed: %w", err)
	}
	return results, nil
}

func (s *Scanner) walk(relativePath string, depth int, results *[]FileInfo) error {
	if depth > s.opts.MaxDepth {
		return nil
	}

	// Loop guard for symlinked directory cycles
	cleanPath := filepath.Clean(relativePath)
	if s.visited[cleanPath] {
		return nil
	}
	s.visited[cleanPath] = true

	if s.skipDir(filepath.Base(relativePath)) {
		return nil
	}

	dir, err := s.root.Open(relativePath)
	if err != nil {
		return nil // skip unreadable directories
	}
	defer dir.Close()

	entries, err := dir.ReadDir(-1)
	if err != nil {
		return nil
	}

	for _, entry := range entries {
		entryPath := filepath.Join(relativePath, entry.Name())

		if entry.IsDir() {
			if err := s.walk(entryPath, depth+1, results); err != nil {
				return err
			}
			continue
		}

		if !s.includeFile(entry.Name()) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		*results = append(*results, FileInfo{
			Name:    entry.Name(),
			Path:    entryPath,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	return nil
}

func (s *Scanner) skipDir(dirName string) bool {
	if dirName == "." || dirName == ".." {
		return false
	}
	if !s.opts.IncludeHidden && strings.HasPrefix(dirName, ".") {
		return true
	}
	return slices.Contains(s.opts.SkipDirs, dirName)
}

func (s *Scanner) includeFile(fileName string) bool {
	if !s.opts.IncludeHidden && strings.HasPrefix(fileName, ".") {
		return false
	}
	if s.opts.FileFilter != nil {
		return s.opts.FileFilter(fileName)
	}
	return true
}

// ScanMarkdown is a convenience wrapper that scans dir for Markdown files
// with the default options.
func ScanMarkdown(dir string) ([]FileInfo, error) {
	scanner, err := NewScanner(dir, DefaultScanOptions())
	if err != nil {
		return nil, err
	}
	defer scanner.Close()

	return scanner.Scan()
}
