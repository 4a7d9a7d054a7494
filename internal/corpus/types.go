package corpus

import (
	"fmt"
	"strings"
	"time"
)

// Entry describes one corpus source in the user configuration.
type Entry struct {
	// ID is the unique identifier of the entry (e.g. "vaadin-docs-1728756432")
	ID string `yaml:"id"`

	// Name is the user-friendly display name (e.g. "Vaadin Docs")
	Name string `yaml:"name"`

	// RemoteURL is the Git remote the entry is synchronized from.
	// Nil for plain local directories.
	RemoteURL *string `yaml:"remote_url,omitempty"`

	// Branch optionally pins a branch; nil uses the remote's default.
	Branch *string `yaml:"branch,omitempty"`

	// Path is the local directory holding the entry's content.
	Path string `yaml:"path"`
}

// IsRemote reports whether the entry is backed by a Git remote.
func (e Entry) IsRemote() bool {
	return e.RemoteURL != nil && strings.TrimSpace(*e.RemoteURL) != ""
}

// Validate checks the entry for structural problems before it is used.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return fmt.Errorf("entry ID cannot be empty")
	}
	if strings.TrimSpace(e.Path) == "" {
		return fmt.Errorf("entry %s: path cannot be empty", e.ID)
	}
	if e.RemoteURL != nil && strings.TrimSpace(*e.RemoteURL) == "" {
		return fmt.Errorf("entry %s: remote URL cannot be blank", e.ID)
	}
	if e.Branch != nil && strings.TrimSpace(*e.Branch) == "" {
		return fmt.Errorf("entry %s: branch cannot be blank", e.ID)
	}
	return nil
}

// SyncStatus categorizes the outcome of synchronizing one entry.
type SyncStatus int

const (
	// SyncStatusSuccess indicates the entry was synchronized
	SyncStatusSuccess SyncStatus = iota

	// SyncStatusFailed indicates the synchronization failed
	// (network issues, authentication failures, etc.)
	SyncStatusFailed

	// SyncStatusSkipped indicates the synchronization was intentionally
	// skipped (dirty working tree, local-only entry)
	SyncStatusSkipped
)

// String returns a human-readable representation of the sync status.
func (s SyncStatus) String() string {
	switch s {
	case SyncStatusSuccess:
		return "Success"
	case SyncStatusFailed:
		return "Failed"
	case SyncStatusSkipped:
		return "Skipped"
	default:
		return "Unknown"
	}
}

// SyncResult contains the outcome of synchronizing a single entry.
type SyncResult struct {
	EntryID   string
	EntryName string
	Status    SyncStatus

	// Error is set when Status is SyncStatusFailed
	Error error

	// SkipReason is set when Status is SyncStatusSkipped
	SkipReason string

	Duration time.Duration
}

// Message returns a display-friendly description of the sync result.
func (r *SyncResult) Message() string {
	switch r.Status {
	case SyncStatusSuccess:
		return fmt.Sprintf("Synced successfully in %s", r.Duration.Round(100*time.Millisecond))
	case SyncStatusFailed:
		if r.Error != nil {
			return fmt.Sprintf("Sync failed: %v", r.Error)
		}
		return "Sync failed: unknown error"
	case SyncStatusSkipped:
		if r.SkipReason != "" {
			return fmt.Sprintf("Skipped: %s", r.SkipReason)
		}
		return "Skipped"
	default:
		return "Unknown status"
	}
}
