package corpus

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestEntryIsRemote(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  bool
	}{
		{"remote entry", Entry{ID: "a", Path: "/p", RemoteURL: strPtr("https://github.com/vaadin/docs")}, true},
		{"local entry", Entry{ID: "b", Path: "/p"}, false},
		{"blank remote", Entry{ID: "c", Path: "/p", RemoteURL: strPtr("  ")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.IsRemote(); got != tt.want {
				t.Errorf("IsRemote() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEntryValidate(t *testing.T) {
	tests := []struct {
		name    string
		entry   Entry
		wantErr bool
	}{
		{"valid local", Entry{ID: "docs", Name: "Docs", Path: "/data/docs"}, false},
		{"valid remote", Entry{ID: "docs", Path: "/data/docs", RemoteURL: strPtr("https://github.com/vaadin/docs"), Branch: strPtr("main")}, false},
		{"missing id", Entry{Path: "/data/docs"}, true},
		{"missing path", Entry{ID: "docs"}, true},
		{"blank remote url", Entry{ID: "docs", Path: "/p", RemoteURL: strPtr("")}, true},
		{"blank branch", Entry{ID: "docs", Path: "/p", Branch: strPtr(" ")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSyncStatusString(t *testing.T) {
	tests := []struct {
		status SyncStatus
		want   string
	}{
		{SyncStatusSuccess, "Success"},
		{SyncStatusFailed, "Failed"},
		{SyncStatusSkipped, "Skipped"},
		{SyncStatus(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("SyncStatus(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestSyncResultMessage(t *testing.T) {
	success := SyncResult{Status: SyncStatusSuccess, Duration: 1200 * time.Millisecond}
	if msg := success.Message(); !strings.Contains(msg, "Synced successfully") {
		t.Errorf("Expected success message, got %q", msg)
	}

	failed := SyncResult{Status: SyncStatusFailed, Error: errors.New("network timeout")}
	if msg := failed.Message(); !strings.Contains(msg, "network timeout") {
		t.Errorf("Expected failure message to include error, got %q", msg)
	}

	skipped := SyncResult{Status: SyncStatusSkipped, SkipReason: "uncommitted changes"}
	if msg := skipped.Message(); !strings.Contains(msg, "uncommitted changes") {
		t.Errorf("Expected skip message to include reason, got %q", msg)
	}
}

func TestNormalizeRemoteURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"https url gets git suffix", "https://github.com/vaadin/docs", "https://github.com/vaadin/docs.git", false},
		{"https url with suffix unchanged", "https://github.com/vaadin/docs.git", "https://github.com/vaadin/docs.git", false},
		{"ssh url converted", "git@github.com:vaadin/docs.git", "https://github.com/vaadin/docs.git", false},
		{"unsupported scheme", "ftp://example.com/docs", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGitSource(tt.url, nil, "/tmp/docs")
			got, err := gs.normalizeRemoteURL()
			if (err != nil) != tt.wantErr {
				t.Fatalf("normalizeRemoteURL() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("normalizeRemoteURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsAuthenticationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"auth required", errors.New("authentication required"), true},
		{"http 401", errors.New("unexpected client error: 401 Unauthorized"), true},
		{"repo not found", errors.New("repository not found"), true},
		{"plain network error", errors.New("dial tcp: connection reset"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isAuthenticationError(tt.err); got != tt.want {
				t.Errorf("isAuthenticationError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
