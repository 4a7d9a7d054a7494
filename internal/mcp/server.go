// Package mcp exposes the documentation corpus and the skill catalog as an
// MCP server speaking JSON-RPC over stdio.
package mcp

import (
	"fmt"
	"sync"

	"vaadocs/internal/config"
	"vaadocs/internal/docs"
	"vaadocs/internal/logging"
	"vaadocs/internal/search"
	"vaadocs/internal/skills"

	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "vaadocs"
	serverVersion = "1.0.0"
)

const serverInstructions = `Vaadin documentation server. Use search_vaadin_docs to find relevant
documentation pages, get_full_document to read a page in full,
get_component_java_api for Java class and method signatures,
get_component_styling for theming guidance, and get_vaadin_version to see
which Vaadin versions are available. Additional skill tools return
task-specific guidance documents.`

// Server wires the documentation store, search indexes and skill registry
// into MCP tools.
type Server struct {
	store     *docs.Store
	registry  *skills.Registry
	cfg       *config.Config
	logger    *logging.AppLogger
	mcpServer *server.MCPServer

	mu      sync.Mutex
	indexes map[string]*search.Index // major version -> index
}

// NewServer builds the MCP server and registers all tools.
func NewServer(store *docs.Store, registry *skills.Registry, cfg *config.Config, logger *logging.AppLogger) *Server {
	s := &Server{
		store:    store,
		registry: registry,
		cfg:      cfg,
		logger:   logger,
		indexes:  make(map[string]*search.Index),
	}

	s.mcpServer = server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions),
	)

	s.registerDocTools()
	s.registerSkillTools()

	return s
}

// Serve runs the server on stdio until the client disconnects.
func (s *Server) Serve() error {
	s.logger.Info("Starting MCP server on stdio",
		"tools", 5+len(s.registry.All()))

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("MCP server terminated: %w", err)
	}
	return nil
}

// indexFor returns the search index for a version, building it on first
// use.
func (s *Server) indexFor(version string) (*search.Index, error) {
	major := s.store.ResolveVersion(version)

	s.mu.Lock()
	defer s.mu.Unlock()

	if idx, ok := s.indexes[major]; ok {
		return idx, nil
	}

	pages, err := s.store.Pages(major)
	if err != nil {
		return nil, fmt.Errorf("failed to load pages for version %s: %w", major, err)
	}

	idx := search.NewIndex(pages)
	s.indexes[major] = idx

	s.logger.Debug("Built search index", "version", major, "pages", idx.Len())
	return idx, nil
}

// defaultVersion returns the configured default Vaadin version.
func (s *Server) defaultVersion() string {
	if s.cfg != nil && s.cfg.DefaultVersion != "" {
		return s.cfg.DefaultVersion
	}
	return config.DefaultVersion
}

// defaultLanguage returns the configured default framework language.
func (s *Server) defaultLanguage() string {
	if s.cfg != nil && s.cfg.DefaultLanguage != "" {
		return s.cfg.DefaultLanguage
	}
	return config.DefaultLanguage
}
