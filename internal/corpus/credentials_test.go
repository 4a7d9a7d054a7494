package corpus

import (
	"strings"
	"testing"

	"github.com/zalando/go-keyring"
)

func TestCredentialManagerRoundTrip(t *testing.T) {
	keyring.MockInit()
	cm := NewCredentialManager()

	token := "ghp_0123456789abcdefghij"
	if err := cm.StoreGitHubToken(token); err != nil {
		t.Fatalf("StoreGitHubToken failed: %v", err)
	}

	if !cm.HasGitHubToken() {
		t.Error("HasGitHubToken should report true after store")
	}

	got, err := cm.GetGitHubToken()
	if err != nil {
		t.Fatalf("GetGitHubToken failed: %v", err)
	}
	if got != token {
		t.Errorf("GetGitHubToken = %q, want %q", got, token)
	}

	if err := cm.DeleteGitHubToken(); err != nil {
		t.Fatalf("DeleteGitHubToken failed: %v", err)
	}
	if cm.HasGitHubToken() {
		t.Error("HasGitHubToken should report false after delete")
	}

	// Deleting again should not fail
	if err := cm.DeleteGitHubToken(); err != nil {
		t.Errorf("Deleting a missing token should not fail: %v", err)
	}
}

func TestGetGitHubTokenMissing(t *testing.T) {
	keyring.MockInit()
	cm := NewCredentialManager()

	_, err := cm.GetGitHubToken()
	if err == nil {
		t.Fatal("Expected error when no token is stored")
	}
	if !strings.Contains(err.Error(), "no GitHub token found") {
		t.Errorf("Expected actionable missing-token message, got: %v", err)
	}
}

func TestValidateTokenFormat(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{"classic PAT", "ghp_0123456789abcdefghij", false},
		{"fine-grained PAT", "github_pat_0123456789abcdefghij", false},
		{"oauth token", "gho_0123456789abcdefghij", false},
		{"user-to-server token", "ghu_0123456789abcdefghij", false},
		{"unknown prefix", "tok_0123456789abcdefghij", true},
		{"truncated token", "ghp_123", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTokenFormat(tt.token)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateTokenFormat(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
			}
		})
	}
}

func TestStoreGitHubTokenRejectsInvalid(t *testing.T) {
	keyring.MockInit()
	cm := NewCredentialManager()

	if err := cm.StoreGitHubToken(""); err == nil {
		t.Error("Expected error storing empty token")
	}
	if err := cm.StoreGitHubToken("not-a-github-token"); err == nil {
		t.Error("Expected error storing token with unknown format")
	}
}
