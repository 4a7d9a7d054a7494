package corpus

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"vaadocs/internal/logging"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing/object"
)

// commitFile writes content to name inside the repository and commits it.
func commitFile(t *testing.T, repo *git.Repository, repoPath, name, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(repoPath, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatalf("failed to get worktree: %v", err)
	}
	if _, err := worktree.Add(name); err != nil {
		t.Fatalf("failed to add %s: %v", name, err)
	}
	if _, err := worktree.Commit("update "+name, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@example.com",
			When:  time.Now(),
		},
	}); err != nil {
		t.Fatalf("failed to commit %s: %v", name, err)
	}
}

// TestFetchUpdatesAdvancesWorktree verifies that a sync after the initial
// clone actually changes the files on disk, not just the remote-tracking
// refs.
func TestFetchUpdatesAdvancesWorktree(t *testing.T) {
	logger, _ := logging.NewTestLogger()
	tempDir := t.TempDir()

	originPath := filepath.Join(tempDir, "origin")
	origin, err := git.PlainInit(originPath, false)
	if err != nil {
		t.Fatalf("failed to initialize origin repo: %v", err)
	}
	commitFile(t, origin, originPath, "versions.yaml", "latest: \"24\"\n")

	clonePath := filepath.Join(tempDir, "clone")
	if _, err := git.PlainClone(clonePath, &git.CloneOptions{URL: originPath}); err != nil {
		t.Fatalf("failed to clone origin: %v", err)
	}

	// Advance the origin after the clone
	commitFile(t, origin, originPath, "versions.yaml", "latest: \"25\"\n")

	gs := NewGitSource(originPath, nil, clonePath)
	if err := gs.FetchUpdates(logger); err != nil {
		t.Fatalf("FetchUpdates failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(clonePath, "versions.yaml"))
	if err != nil {
		t.Fatalf("failed to read synced file: %v", err)
	}
	if string(content) != "latest: \"25\"\n" {
		t.Errorf("worktree not updated after sync, got %q", string(content))
	}
}

// TestFetchUpdatesNoChanges verifies syncing an up-to-date clone is a
// no-op that succeeds.
func TestFetchUpdatesNoChanges(t *testing.T) {
	logger, _ := logging.NewTestLogger()
	tempDir := t.TempDir()

	originPath := filepath.Join(tempDir, "origin")
	origin, err := git.PlainInit(originPath, false)
	if err != nil {
		t.Fatalf("failed to initialize origin repo: %v", err)
	}
	commitFile(t, origin, originPath, "versions.yaml", "latest: \"25\"\n")

	clonePath := filepath.Join(tempDir, "clone")
	if _, err := git.PlainClone(clonePath, &git.CloneOptions{URL: originPath}); err != nil {
		t.Fatalf("failed to clone origin: %v", err)
	}

	gs := NewGitSource(originPath, nil, clonePath)
	if err := gs.FetchUpdates(logger); err != nil {
		t.Fatalf("FetchUpdates on an up-to-date clone failed: %v", err)
	}
}

// TestFetchUpdatesSkipsDirtyWorktree verifies local edits survive a sync.
func TestFetchUpdatesSkipsDirtyWorktree(t *testing.T) {
	logger, _ := logging.NewTestLogger()
	tempDir := t.TempDir()

	originPath := filepath.Join(tempDir, "origin")
	origin, err := git.PlainInit(originPath, false)
	if err != nil {
		t.Fatalf("failed to initialize origin repo: %v", err)
	}
	commitFile(t, origin, originPath, "versions.yaml", "latest: \"24\"\n")

	clonePath := filepath.Join(tempDir, "clone")
	if _, err := git.PlainClone(clonePath, &git.CloneOptions{URL: originPath}); err != nil {
		t.Fatalf("failed to clone origin: %v", err)
	}

	// Local uncommitted edit, then a new upstream commit
	localEdit := "latest: \"24\"\n# local note\n"
	if err := os.WriteFile(filepath.Join(clonePath, "versions.yaml"), []byte(localEdit), 0644); err != nil {
		t.Fatalf("failed to write local edit: %v", err)
	}
	commitFile(t, origin, originPath, "versions.yaml", "latest: \"25\"\n")

	gs := NewGitSource(originPath, nil, clonePath)
	if err := gs.FetchUpdates(logger); err != nil {
		t.Fatalf("FetchUpdates failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(clonePath, "versions.yaml"))
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	if string(content) != localEdit {
		t.Errorf("dirty worktree was overwritten by sync, got %q", string(content))
	}
}
