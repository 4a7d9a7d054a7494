package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vaadocs/internal/logging"
	"vaadocs/pkg/fileops"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/transport/http"
)

// GitSource is a Git-backed corpus source. It clones the remote on first
// use and fetches updates afterwards, trying anonymous access first and
// falling back to PAT authentication for private repositories.
type GitSource struct {
	RemoteURL string  // Git repository URL (HTTPS format, SSH URLs auto-converted)
	Branch    *string // Optional branch name (nil defaults to remote's HEAD branch)
	Path      string  // Local path where the repository is cloned

	credentials *CredentialManager
}

// NewGitSource creates a GitSource for the given remote and local path.
func NewGitSource(remoteURL string, branch *string, localPath string) GitSource {
	return GitSource{
		RemoteURL:   remoteURL,
		Branch:      branch,
		Path:        localPath,
		credentials: NewCredentialManager(),
	}
}

// Prepare ensures the repository exists locally, cloning it if the target
// directory is empty. It returns the local path ready for corpus loading.
func (gs GitSource) Prepare(logger *logging.AppLogger) (string, error) {
	if err := gs.validateInputs(); err != nil {
		return "", err
	}

	remoteURL, err := gs.normalizeRemoteURL()
	if err != nil {
		return "", err
	}

	localPath := fileops.ExpandPath(gs.Path)

	if isExistingRepo(localPath) {
		// Already cloned: fetch updates instead
		if err := gs.FetchUpdates(logger); err != nil {
			return "", err
		}
		return localPath, nil
	}

	if err := gs.performCloneWithAuth(localPath, remoteURL, logger); err != nil {
		return "", err
	}

	return localPath, nil
}

// FetchUpdates fetches remote updates into an existing clone. A dirty
// working tree skips the fetch rather than discarding local edits.
func (gs GitSource) FetchUpdates(logger *logging.AppLogger) error {
	localPath := fileops.ExpandPath(gs.Path)

	if !isExistingRepo(localPath) {
		return fmt.Errorf("no repository at %s - run sync to clone it first", localPath)
	}

	return gs.performFetchWithAuth(localPath, logger)
}

// IsDirty reports whether the working tree at the entry's path has
// uncommitted changes.
func IsDirty(repoPath string) (bool, error) {
	repo, err := git.PlainOpen(fileops.ExpandPath(repoPath))
	if err != nil {
		return false, fmt.Errorf("failed to open repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("failed to get working tree: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return false, fmt.Errorf("failed to get working tree status: %w", err)
	}

	return !status.IsClean(), nil
}

func (gs GitSource) validateInputs() error {
	if strings.TrimSpace(gs.RemoteURL) == "" {
		return fmt.Errorf("remote URL cannot be empty")
	}
	if strings.TrimSpace(gs.Path) == "" {
		return fmt.Errorf("local path cannot be empty")
	}
	if gs.Branch != nil && strings.TrimSpace(*gs.Branch) == "" {
		return fmt.Errorf("branch cannot be blank when specified")
	}
	return nil
}

// normalizeRemoteURL converts SSH GitHub URLs to HTTPS and ensures a .git
// suffix so clone targets compare consistently.
func (gs GitSource) normalizeRemoteURL() (string, error) {
	remoteURL := strings.TrimSpace(gs.RemoteURL)

	// git@github.com:user/repo.git -> https://github.com/user/repo.git
	if strings.HasPrefix(remoteURL, "git@github.com:") {
		path := strings.TrimPrefix(remoteURL, "git@github.com:")
		remoteURL = "https://github.com/" + path
	}

	if !strings.HasPrefix(remoteURL, "https://") && !strings.HasPrefix(remoteURL, "http://") {
		return "", fmt.Errorf("unsupported remote URL scheme: %s", remoteURL)
	}

	if !strings.HasSuffix(remoteURL, ".git") {
		remoteURL += ".git"
	}

	return remoteURL, nil
}

// getAuthentication builds BasicAuth from the stored PAT. Returns nil auth
// when no token is stored.
func (gs GitSource) getAuthentication(logger *logging.AppLogger) (*http.BasicAuth, error) {
	creds := gs.credentials
	if creds == nil {
		creds = NewCredentialManager()
	}

	if !creds.HasGitHubToken() {
		return nil, nil
	}

	token, err := creds.GetGitHubToken()
	if err != nil {
		return nil, err
	}

	if logger != nil {
		logger.Debug("Using stored GitHub token for authentication")
	}

	// GitHub accepts any non-empty username with a PAT password
	return &http.BasicAuth{
		Username: "vaadocs",
		Password: token,
	}, nil
}

// performCloneWithAuth tries an anonymous clone first and retries with PAT
// authentication only when the remote rejects the anonymous attempt.
func (gs GitSource) performCloneWithAuth(localPath, remoteURL string, logger *logging.AppLogger) error {
	err := gs.performClone(localPath, remoteURL, nil, logger)
	if err == nil {
		return nil
	}

	if isAuthenticationError(err) {
		if logger != nil {
			logger.Debug("Public access failed, trying with authentication")
		}

		auth, authErr := gs.getAuthentication(logger)
		if authErr != nil {
			return fmt.Errorf("GitHub authentication failed: %w", authErr)
		}
		if auth == nil {
			return fmt.Errorf("GitHub authentication required - store a Personal Access Token with 'vaadocs sync --set-token'")
		}

		return gs.performClone(localPath, remoteURL, auth, logger)
	}

	return err
}

func (gs GitSource) performClone(localPath, remoteURL string, auth *http.BasicAuth, logger *logging.AppLogger) error {
	if logger != nil {
		logger.Info("Cloning corpus repository", "remoteURL", remoteURL, "localPath", localPath)
	}

	parentDir := filepath.Dir(localPath)
	if err := fileops.ValidatePathSecurity(parentDir); err != nil {
		return fmt.Errorf("parent directory failed security validation: %w", err)
	}
	if err := os.MkdirAll(parentDir, 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	cloneOpts := &git.CloneOptions{
		URL:   remoteURL,
		Depth: 1, // corpus is a cache, history is not needed
	}
	if auth != nil {
		cloneOpts.Auth = auth
	}
	if gs.Branch != nil && *gs.Branch != "" {
		cloneOpts.ReferenceName = plumbing.NewBranchReferenceName(*gs.Branch)
		cloneOpts.SingleBranch = true
	}

	if _, err := git.PlainClone(localPath, cloneOpts); err != nil {
		return translateGitError("clone", err)
	}

	if logger != nil {
		logger.Info("Corpus repository cloned successfully", "localPath", localPath)
	}
	return nil
}

func (gs GitSource) performFetchWithAuth(localPath string, logger *logging.AppLogger) error {
	err := gs.performFetch(localPath, nil, logger)
	if err == nil {
		return nil
	}

	if isAuthenticationError(err) {
		if logger != nil {
			logger.Debug("Public fetch failed, trying with authentication")
		}

		auth, authErr := gs.getAuthentication(logger)
		if authErr != nil {
			return fmt.Errorf("GitHub authentication failed: %w", authErr)
		}
		if auth == nil {
			return fmt.Errorf("GitHub authentication required - store a Personal Access Token with 'vaadocs sync --set-token'")
		}

		return gs.performFetch(localPath, auth, logger)
	}

	return err
}

func (gs GitSource) performFetch(localPath string, auth *http.BasicAuth, logger *logging.AppLogger) error {
	if logger != nil {
		logger.Info("Fetching corpus updates", "localPath", localPath)
	}

	repo, err := git.PlainOpen(localPath)
	if err != nil {
		return fmt.Errorf("failed to open existing repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get working tree: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return fmt.Errorf("failed to get working tree status: %w", err)
	}

	if !status.IsClean() {
		if logger != nil {
			logger.Warn("Working tree has uncommitted changes, skipping sync", "localPath", localPath)
		}
		return nil
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return fmt.Errorf("failed to get origin remote: %w", err)
	}

	fetchOpts := &git.FetchOptions{
		Auth:  auth,
		Force: true, // handle force-pushed corpus branches
	}

	err = remote.Fetch(fetchOpts)
	if err != nil && err != git.NoErrAlreadyUpToDate {
		return translateGitError("fetch", err)
	}

	if logger != nil && err == git.NoErrAlreadyUpToDate {
		logger.Debug("Corpus repository already up to date")
	}

	// Fetch only updates the remote-tracking refs; the corpus on disk is
	// what the docs store reads, so the worktree must follow. Run this
	// even when the fetch was a no-op: a previously interrupted sync may
	// have left the local branch behind the remote ref.
	return gs.fastForward(repo, worktree, logger)
}

// fastForward moves the local branch and working tree to the fetched
// remote head. Hard reset is safe here: the tree was verified clean
// before the fetch, and the corpus is a cache of the remote.
func (gs GitSource) fastForward(repo *git.Repository, worktree *git.Worktree, logger *logging.AppLogger) error {
	remoteRef, err := gs.remoteHead(repo)
	if err != nil {
		return err
	}

	head, err := repo.Head()
	if err != nil {
		return fmt.Errorf("failed to get HEAD: %w", err)
	}

	if head.Hash() == remoteRef.Hash() {
		return nil
	}

	if err := worktree.Reset(&git.ResetOptions{
		Commit: remoteRef.Hash(),
		Mode:   git.HardReset,
	}); err != nil {
		return fmt.Errorf("failed to update working tree: %w", err)
	}

	if logger != nil {
		logger.Info("Corpus repository updated successfully",
			"from", head.Hash().String()[:8],
			"to", remoteRef.Hash().String()[:8],
		)
	}
	return nil
}

// remoteHead resolves the remote-tracking reference the worktree should
// follow: the pinned branch when one is configured, otherwise the branch
// HEAD currently points at.
func (gs GitSource) remoteHead(repo *git.Repository) (*plumbing.Reference, error) {
	branch := ""
	if gs.Branch != nil && *gs.Branch != "" {
		branch = *gs.Branch
	} else {
		head, err := repo.Head()
		if err != nil {
			return nil, fmt.Errorf("failed to get HEAD: %w", err)
		}
		if !head.Name().IsBranch() {
			return nil, fmt.Errorf("repository HEAD is not on a branch, cannot determine sync target")
		}
		branch = head.Name().Short()
	}

	ref, err := repo.Reference(plumbing.NewRemoteReferenceName("origin", branch), true)
	if err != nil {
		return nil, fmt.Errorf("branch %q does not exist on remote 'origin': %w", branch, err)
	}
	return ref, nil
}

func isExistingRepo(localPath string) bool {
	info, err := os.Stat(filepath.Join(localPath, ".git"))
	return err == nil && info.IsDir()
}

// isAuthenticationError recognizes the error shapes go-git produces when a
// remote requires credentials.
func isAuthenticationError(err error) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())
	patterns := []string{
		"authentication required",
		"authorization failed",
		"invalid credentials",
		"401",
		"403",
		"repository not found",
	}
	for _, pattern := range patterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// translateGitError maps raw go-git errors to actionable messages.
func translateGitError(operation string, err error) error {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "authentication required"), strings.Contains(msg, "401"), strings.Contains(msg, "403"):
		return fmt.Errorf("%s failed: authentication required - store a Personal Access Token with 'vaadocs sync --set-token': %w", operation, err)
	case strings.Contains(msg, "repository not found"):
		return fmt.Errorf("%s failed: repository not found - check the remote URL and your access rights: %w", operation, err)
	case strings.Contains(msg, "no such host"), strings.Contains(msg, "connection refused"), strings.Contains(msg, "timeout"):
		return fmt.Errorf("%s failed: network error - check your connectivity: %w", operation, err)
	default:
		return fmt.Errorf("%s failed: %w", operation, err)
	}
}
