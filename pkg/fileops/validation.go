package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands a leading "~/" to the user's home directory.
func ExpandPath(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[2:])
}

// ValidatePathSecurity rejects paths with traversal components, null bytes
// or control characters. It operates on the raw string and performs no
// filesystem access.
func ValidatePathSecurity(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if strings.Contains(path, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	if strings.Contains(path, "\x00") {
		return fmt.Errorf("path contains null bytes")
	}

	for _, r := range path {
		if r < 32 {
			return fmt.Errorf("path contains control characters")
		}
	}

	return nil
}

// ValidateFileAccess checks that a file exists, is a regular file and is
// readable. With requireWrite it additionally checks the write bit.
func ValidateFileAccess(filePath string, requireWrite bool) error {
	info, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", filepath.Base(filePath))
		}
		return fmt.Errorf("cannot access file: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("file is not readable: %w", err)
	}
	f.Close()

	if requireWrite && info.Mode().Perm()&0200 == 0 {
		return fmt.Errorf("file is not writable: %s", filePath)
	}

	return nil
}

// ValidateFileSizeLimit rejects files larger than maxSize bytes. Large
// documents would otherwise be read whole into the corpus index.
func ValidateFileSizeLimit(filePath string, maxSize int64) error {
	if maxSize <= 0 {
		return fmt.Errorf("invalid size limit: %d", maxSize)
	}

	info, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", filepath.Base(filePath))
		}
		return fmt.Errorf("cannot access file: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	if info.Size() > maxSize {
		return fmt.Errorf("file size %d bytes exceeds limit %d bytes", info.Size(), maxSize)
	}

	return nil
}

// ValidateContentSecurity checks metadata strings (descriptions, titles,
// identifiers) for control characters and script-injection patterns before
// they are surfaced in tool descriptions.
func ValidateContentSecurity(content string) error {
	for _, r := range content {
		if r < 32 && r != '\n' && r != '\r' && r != '\t' {
			return fmt.Errorf("content contains control characters")
		}
	}

	if strings.Contains(content, "\x00") {
		return fmt.Errorf("content contains null bytes")
	}

	suspiciousPatterns := []string{
		"<script",
		"javascript:",
		"vbscript:",
		"data:text/html",
		"eval(",
		"exec(",
		"onload=",
		"onerror=",
		"onclick=",
	}

	lowerContent := strings.ToLower(content)
	for _, pattern := range suspiciousPatterns {
		if strings.Contains(lowerContent, pattern) {
			return fmt.Errorf("content contains potentially malicious pattern: %s", pattern)
		}
	}

	return nil
}

// SanitizeIdentifier reduces a string to a safe identifier for MCP tool
// names: lowercase alphanumerics and underscores, separators collapsed,
// optionally capped at maxLength runes.
func SanitizeIdentifier(identifier string, maxLength int) (string, error) {
	if strings.TrimSpace(identifier) == "" {
		return "", fmt.Errorf("identifier cannot be empty")
	}

	var clean strings.Builder
	for _, r := range strings.ToLower(identifier) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			clean.WriteRune(r)
		case r == ' ', r == '-', r == '_', r == '.':
			clean.WriteRune('_')
		}
	}

	result := clean.String()
	for strings.Contains(result, "__") {
		result = strings.ReplaceAll(result, "__", "_")
	}

	if maxLength > 0 && len(result) > maxLength {
		result = result[:maxLength]
	}

	result = strings.Trim(result, "_")

	if result == "" {
		return "", fmt.Errorf("identifier becomes empty after sanitization")
	}

	return result, nil
}
