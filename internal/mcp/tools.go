package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vaadocs/internal/docs"
	"vaadocs/internal/search"

	"github.com/mark3labs/mcp-go/mcp"
)

// defaultMaxResults bounds search output when the caller does not ask for
// a specific number.
const defaultMaxResults = 5

// registerDocTools adds the five fixed documentation tools.
func (s *Server) registerDocTools() {
	searchTool := mcp.NewTool("search_vaadin_docs",
		mcp.WithDescription("Search the Vaadin documentation. Returns ranked matches with document IDs and snippets; pass an ID to get_full_document to read the whole page."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search terms, e.g. 'grid lazy loading'"),
		),
		mcp.WithString("version",
			mcp.Description("Vaadin major version such as '25'. Defaults to the configured version; unknown versions fall back to the latest."),
		),
		mcp.WithString("language",
			mcp.Description("Framework language, 'java' or 'react'. Defaults to the configured language."),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum number of matches to return (default 5)"),
		),
	)
	s.mcpServer.AddTool(searchTool, s.handleSearch)

	apiTool := mcp.NewTool("get_component_java_api",
		mcp.WithDescription("Get the Java API of a Vaadin component: classes, inheritance and method signatures with descriptions."),
		mcp.WithString("component",
			mcp.Required(),
			mcp.Description("Component name, e.g. 'grid' or 'combo-box'"),
		),
		mcp.WithString("version",
			mcp.Description("Vaadin major version. Defaults to the configured version."),
		),
	)
	s.mcpServer.AddTool(apiTool, s.handleComponentAPI)

	stylingTool := mcp.NewTool("get_component_styling",
		mcp.WithDescription("Get the styling and theming documentation of a Vaadin component."),
		mcp.WithString("component",
			mcp.Required(),
			mcp.Description("Component name, e.g. 'grid' or 'combo-box'"),
		),
		mcp.WithString("version",
			mcp.Description("Vaadin major version. Defaults to the configured version."),
		),
		mcp.WithString("language",
			mcp.Description("Framework language, 'java' or 'react'. Defaults to the configured language."),
		),
	)
	s.mcpServer.AddTool(stylingTool, s.handleComponentStyling)

	documentTool := mcp.NewTool("get_full_document",
		mcp.WithDescription("Read a full documentation page by its ID, as returned by search_vaadin_docs."),
		mcp.WithString("document_id",
			mcp.Required(),
			mcp.Description("Document ID, e.g. 'components/grid/columns'"),
		),
		mcp.WithString("version",
			mcp.Description("Vaadin major version. Defaults to the configured version."),
		),
	)
	s.mcpServer.AddTool(documentTool, s.handleFullDocument)

	versionTool := mcp.NewTool("get_vaadin_version",
		mcp.WithDescription("Get the latest Vaadin version covered by this documentation server and the list of supported versions."),
	)
	s.mcpServer.AddTool(versionTool, s.handleVaadinVersion)
}

// registerSkillTools adds one tool per registered skill. Skill tools take
// no arguments and return the skill document.
func (s *Server) registerSkillTools() {
	for _, registered := range s.registry.All() {
		skill := registered.Skill

		tool := mcp.NewTool(registered.ToolName,
			mcp.WithDescription(skill.Description),
		)

		body := skill.Body
		s.mcpServer.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText(body), nil
		})

		s.logger.Debug("Registered skill tool",
			"tool", registered.ToolName, "file", skill.FilePath)
	}
}

func (s *Server) handleSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	version := request.GetString("version", s.defaultVersion())
	language := strings.ToLower(request.GetString("language", s.defaultLanguage()))
	maxResults := request.GetInt("max_results", defaultMaxResults)
	if maxResults < 1 {
		maxResults = defaultMaxResults
	}

	idx, err := s.indexFor(version)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	matches := filterByLanguage(idx.Search(query, maxResults*2), language)
	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}

	s.logger.LogPerformance("search_vaadin_docs", start)

	if len(matches) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No documentation found for %q. Try broader search terms.", query)), nil
	}

	return mcp.NewToolResultText(formatMatches(query, matches)), nil
}

func (s *Server) handleComponentAPI(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	component, err := request.RequireString("component")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	version := request.GetString("version", s.defaultVersion())

	api, err := s.store.ComponentAPI(component, version)
	if err != nil {
		if errors.Is(err, docs.ErrNotFound) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to load component API: %v", err)), nil
	}

	return mcp.NewToolResultText(formatComponentAPI(api)), nil
}

func (s *Server) handleComponentStyling(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	component, err := request.RequireString("component")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	version := request.GetString("version", s.defaultVersion())
	language := request.GetString("language", s.defaultLanguage())

	page, err := s.store.StylingDoc(component, version, language)
	if err != nil {
		if errors.Is(err, docs.ErrNotFound) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to load styling documentation: %v", err)), nil
	}

	return mcp.NewToolResultText(formatPage(page)), nil
}

func (s *Server) handleFullDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("document_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	version := request.GetString("version", s.defaultVersion())

	page, err := s.store.Get(id, version)
	if err != nil {
		if errors.Is(err, docs.ErrNotFound) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to load document: %v", err)), nil
	}

	return mcp.NewToolResultText(formatPage(page)), nil
}

func (s *Server) handleVaadinVersion(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	manifest := s.store.Manifest()

	var b strings.Builder
	fmt.Fprintf(&b, "Latest Vaadin version: %s\n\nSupported versions:\n", manifest.Release(manifest.Latest))
	for _, major := range manifest.Majors() {
		fmt.Fprintf(&b, "  %s (%s)\n", major, manifest.Release(major))
	}

	return mcp.NewToolResultText(b.String()), nil
}

// filterByLanguage drops matches whose page declares a different language.
// Pages without a language apply to every language.
func filterByLanguage(matches []search.Match, language string) []search.Match {
	if language == "" {
		return matches
	}

	filtered := matches[:0:0]
	for _, m := range matches {
		if m.Page.Language == "" || m.Page.Language == language {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// formatMatches renders search results for the client.
func formatMatches(query string, matches []search.Match) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d result(s) for %q:\n\n", len(matches), query)

	for i, m := range matches {
		fmt.Fprintf(&b, "%d. %s\n", i+1, m.Page.Title)
		fmt.Fprintf(&b, "   ID: %s\n", m.Page.ID)
		if m.Snippet != "" {
			fmt.Fprintf(&b, "   %s\n", m.Snippet)
		}
		b.WriteString("\n")
	}

	b.WriteString("Use get_full_document with an ID to read a page in full.")
	return b.String()
}

// formatPage renders one documentation page with a metadata header.
func formatPage(page *docs.Page) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", page.Title)
	fmt.Fprintf(&b, "Document: %s (Vaadin %s)\n\n", page.ID, page.Version)
	b.WriteString(strings.TrimSpace(page.Body))
	b.WriteString("\n")
	return b.String()
}

// formatComponentAPI renders a component's Java API as readable text.
func formatComponentAPI(api *docs.ComponentAPI) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Java API for %s (Vaadin %s)\n", api.Component, api.Version)

	for _, class := range api.Classes {
		b.WriteString("\n")
		if class.Package != "" {
			fmt.Fprintf(&b, "%s.%s", class.Package, class.Name)
		} else {
			b.WriteString(class.Name)
		}
		if class.Extends != "" {
			fmt.Fprintf(&b, " extends %s", class.Extends)
		}
		b.WriteString("\n")

		if class.Description != "" {
			fmt.Fprintf(&b, "  %s\n", class.Description)
		}

		for _, method := range class.Methods {
			fmt.Fprintf(&b, "  - %s\n", method.Signature)
			if method.Description != "" {
				fmt.Fprintf(&b, "      %s\n", method.Description)
			}
		}
	}

	return b.String()
}
