package corpus

import (
	"testing"

	"vaadocs/internal/logging"
)

func TestSyncAllSkipsLocalEntries(t *testing.T) {
	logger, _ := logging.NewTestLogger()

	entries := []Entry{
		{ID: "local-docs", Name: "Local Docs", Path: t.TempDir()},
	}

	results := SyncAll(entries, logger)
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].Status != SyncStatusSkipped {
		t.Errorf("Expected local entry to be skipped, got %s", results[0].Status)
	}
	if results[0].SkipReason == "" {
		t.Error("Expected a skip reason for local entries")
	}
}

func TestSyncAllReportsInvalidEntries(t *testing.T) {
	logger, _ := logging.NewTestLogger()

	entries := []Entry{
		{ID: "", Path: ""}, // invalid
		{ID: "local", Name: "Local", Path: t.TempDir()},
	}

	results := SyncAll(entries, logger)
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Status != SyncStatusFailed {
		t.Errorf("Expected invalid entry to fail, got %s", results[0].Status)
	}
	if results[1].Status != SyncStatusSkipped {
		t.Errorf("Expected batch to continue after a failure, got %s", results[1].Status)
	}
}

func TestSyncAllEmptyList(t *testing.T) {
	logger, _ := logging.NewTestLogger()

	results := SyncAll(nil, logger)
	if len(results) != 0 {
		t.Errorf("Expected no results for empty entry list, got %d", len(results))
	}
}

func TestFetchUpdatesRequiresExistingRepo(t *testing.T) {
	logger, _ := logging.NewTestLogger()

	gs := NewGitSource("https://github.com/vaadin/docs", nil, t.TempDir())
	if err := gs.FetchUpdates(logger); err == nil {
		t.Error("Expected FetchUpdates to fail when no clone exists")
	}
}

func TestGitSourceValidateInputs(t *testing.T) {
	tests := []struct {
		name    string
		source  GitSource
		wantErr bool
	}{
		{"valid", GitSource{RemoteURL: "https://github.com/vaadin/docs", Path: "/tmp/docs"}, false},
		{"empty url", GitSource{Path: "/tmp/docs"}, true},
		{"empty path", GitSource{RemoteURL: "https://github.com/vaadin/docs"}, true},
		{"blank branch", GitSource{RemoteURL: "https://github.com/vaadin/docs", Path: "/tmp/docs", Branch: strPtr(" ")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.source.validateInputs()
			if (err != nil) != tt.wantErr {
				t.Errorf("validateInputs() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
