package docs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"vaadocs/internal/logging"
	"vaadocs/pkg/fileops"
)

// ErrNotFound is returned when a page, component API or styling document
// does not exist in the requested version.
var ErrNotFound = errors.New("not found")

// Store gives read access to the documentation corpus. Versions are loaded
// on first use and cached; the Store is safe for concurrent use.
type Store struct {
	docsDir  string
	manifest *Manifest
	logger   *logging.AppLogger

	mu       sync.RWMutex
	pages    map[string]map[string]*Page // major -> page ID -> page
	apiCache map[string]*ComponentAPI    // "<major>/<component>" -> API
}

// NewStore opens the corpus at docsDir and reads its version manifest.
func NewStore(docsDir string, logger *logging.AppLogger) (*Store, error) {
	docsDir = fileops.ExpandPath(docsDir)

	info, err := os.Stat(docsDir)
	if err != nil {
		return nil, fmt.Errorf("docs directory not accessible: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("docs path is not a directory: %s", docsDir)
	}

	manifest, err := LoadManifest(docsDir)
	if err != nil {
		return nil, err
	}

	return &Store{
		docsDir:  docsDir,
		manifest: manifest,
		logger:   logger,
		pages:    make(map[string]map[string]*Page),
		apiCache: make(map[string]*ComponentAPI),
	}, nil
}

// Manifest returns the loaded version manifest.
func (s *Store) Manifest() *Manifest {
	return s.manifest
}

// ResolveVersion maps a requested version to a supported major, logging a
// warning when an unknown version falls back to the latest.
func (s *Store) ResolveVersion(requested string) string {
	major, fellBack := s.manifest.Resolve(requested)
	if fellBack && s.logger != nil {
		s.logger.Warn("Unknown version requested, using latest",
			"requested", requested, "using", major)
	}
	return major
}

// Pages returns all pages of a version, loading them on first access.
func (s *Store) Pages(version string) ([]*Page, error) {
	major := s.ResolveVersion(version)

	byID, err := s.loadVersion(major)
	if err != nil {
		return nil, err
	}

	pages := make([]*Page, 0, len(byID))
	for _, page := range byID {
		pages = append(pages, page)
	}
	return pages, nil
}

// Get returns a single page by ID. The ID may include the .md extension.
func (s *Store) Get(id, version string) (*Page, error) {
	major := s.ResolveVersion(version)

	byID, err := s.loadVersion(major)
	if err != nil {
		return nil, err
	}

	if page, ok := byID[pageID(id)]; ok {
		return page, nil
	}
	return nil, fmt.Errorf("document %q in version %s: %w", id, major, ErrNotFound)
}

// ComponentAPI returns the Java API description for a component.
func (s *Store) ComponentAPI(component, version string) (*ComponentAPI, error) {
	major := s.ResolveVersion(version)
	key := major + "/" + NormalizeComponent(component)

	s.mu.RLock()
	cached, ok := s.apiCache[key]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	path := apiFilePath(s.docsDir, major, component)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no Java API for component %q in version %s: %w",
				component, major, ErrNotFound)
		}
		return nil, fmt.Errorf("cannot access API file: %w", err)
	}

	api, err := loadComponentAPI(path, NormalizeComponent(component), s.manifest.Release(major))
	if err != nil {
		return nil, fmt.Errorf("component %q in version %s: %w", component, major, err)
	}

	s.mu.Lock()
	s.apiCache[key] = api
	s.mu.Unlock()

	return api, nil
}

// StylingDoc returns the styling page for a component. A non-empty
// language restricts the lookup to pages declaring that language; pages
// without a language match any.
func (s *Store) StylingDoc(component, version, language string) (*Page, error) {
	major := s.ResolveVersion(version)

	byID, err := s.loadVersion(major)
	if err != nil {
		return nil, err
	}

	target := NormalizeComponent(component)
	language = strings.ToLower(strings.TrimSpace(language))

	var fallback *Page
	for _, page := range byID {
		if page.Kind != KindStyling || page.Component != target {
			continue
		}
		if language == "" || page.Language == language {
			return page, nil
		}
		if page.Language == "" {
			fallback = page
		}
	}
	if fallback != nil {
		return fallback, nil
	}
	return nil, fmt.Errorf("no styling documentation for component %q in version %s: %w",
		component, major, ErrNotFound)
}

// loadVersion scans and parses all pages of a major version once.
func (s *Store) loadVersion(major string) (map[string]*Page, error) {
	s.mu.RLock()
	byID, ok := s.pages[major]
	s.mu.RUnlock()
	if ok {
		return byID, nil
	}

	versionDir := filepath.Join(s.docsDir, major)
	files, err := fileops.ScanMarkdown(versionDir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan version %s: %w", major, err)
	}

	byID = make(map[string]*Page, len(files))
	for _, file := range files {
		page, err := ParsePage(filepath.Join(versionDir, file.Path), file.Path, s.manifest.Release(major))
		if err != nil {
			if s.logger != nil {
				s.logger.Debug("Skipping page", "path", file.Path, "reason", err)
			}
			continue
		}

		if _, exists := byID[page.ID]; exists && s.logger != nil {
			s.logger.Warn("Duplicate page ID, keeping the last one seen",
				"id", page.ID, "version", major)
		}
		byID[page.ID] = page
	}

	if s.logger != nil {
		s.logger.Info("Loaded documentation version",
			"version", major, "pages", len(byID))
	}

	s.mu.Lock()
	s.pages[major] = byID
	s.mu.Unlock()

	return byID, nil
}
