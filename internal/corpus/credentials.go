package corpus

import (
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// Service name for the OS credential store
	credentialService = "vaadocs"
	// Key for the GitHub Personal Access Token
	githubTokenKey = "github_pat"
)

// CredentialManager handles secure storage and retrieval of the GitHub
// token used for private corpus repositories.
type CredentialManager struct {
	service string
}

// NewCredentialManager creates a new credential manager instance
func NewCredentialManager() *CredentialManager {
	return &CredentialManager{
		service: credentialService,
	}
}

// StoreGitHubToken validates and stores a GitHub Personal Access Token in
// the OS credential store.
func (cm *CredentialManager) StoreGitHubToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("token cannot be empty")
	}

	if err := validateTokenFormat(token); err != nil {
		return fmt.Errorf("invalid token format: %w", err)
	}

	if err := keyring.Set(cm.service, githubTokenKey, token); err != nil {
		return fmt.Errorf("failed to store token in credential store: %w", err)
	}

	return nil
}

// GetGitHubToken retrieves the stored GitHub Personal Access Token.
func (cm *CredentialManager) GetGitHubToken() (string, error) {
	token, err := keyring.Get(cm.service, githubTokenKey)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", fmt.Errorf("no GitHub token found - store one with 'vaadocs sync --set-token'")
		}
		return "", fmt.Errorf("failed to retrieve token from credential store: %w", err)
	}

	if strings.TrimSpace(token) == "" {
		return "", fmt.Errorf("stored token is empty - store a new one with 'vaadocs sync --set-token'")
	}

	return token, nil
}

// DeleteGitHubToken removes the stored token. Deleting a token that does
// not exist is not an error.
func (cm *CredentialManager) DeleteGitHubToken() error {
	err := keyring.Delete(cm.service, githubTokenKey)
	if err != nil && err != keyring.ErrNotFound {
		return fmt.Errorf("failed to delete token from credential store: %w", err)
	}
	return nil
}

// HasGitHubToken checks if a token is stored without retrieving it.
func (cm *CredentialManager) HasGitHubToken() bool {
	_, err := keyring.Get(cm.service, githubTokenKey)
	return err == nil
}

// validateTokenFormat checks the token against GitHub PAT prefixes:
// classic (ghp_), fine-grained (github_pat_), OAuth (gho_) and
// user-to-server (ghu_) tokens.
func validateTokenFormat(token string) error {
	token = strings.TrimSpace(token)

	validPrefixes := []string{"ghp_", "github_pat_", "gho_", "ghu_"}
	for _, prefix := range validPrefixes {
		if strings.HasPrefix(token, prefix) {
			if len(token) < len(prefix)+10 {
				return fmt.Errorf("token appears truncated")
			}
			return nil
		}
	}

	return fmt.Errorf("token does not match any known GitHub token format (ghp_, github_pat_, gho_, ghu_)")
}
