package corpus

import (
	"fmt"
	"time"

	"vaadocs/internal/logging"
)

// SyncAll synchronizes every Git-backed entry in the list. Entries are
// handled independently so one failure never aborts the batch; local-only
// entries are skipped. Results come back in input order.
func SyncAll(entries []Entry, logger *logging.AppLogger) []SyncResult {
	if logger != nil {
		logger.Info("Starting corpus sync", "entry_count", len(entries))
	}

	results := make([]SyncResult, 0, len(entries))

	for _, entry := range entries {
		result := syncEntry(entry, logger)
		results = append(results, result)

		if logger != nil {
			logger.Info("Corpus entry sync completed",
				"entry_id", result.EntryID,
				"entry_name", result.EntryName,
				"status", result.Status.String(),
				"duration", result.Duration,
			)
		}
	}

	if logger != nil {
		var success, failed, skipped int
		for _, r := range results {
			switch r.Status {
			case SyncStatusSuccess:
				success++
			case SyncStatusFailed:
				failed++
			case SyncStatusSkipped:
				skipped++
			}
		}
		logger.Info("Corpus sync completed",
			"total", len(results),
			"success", success,
			"failed", failed,
			"skipped", skipped,
		)
	}

	return results
}

func syncEntry(entry Entry, logger *logging.AppLogger) SyncResult {
	startTime := time.Now()

	result := SyncResult{
		EntryID:   entry.ID,
		EntryName: entry.Name,
	}

	if err := entry.Validate(); err != nil {
		result.Status = SyncStatusFailed
		result.Error = err
		result.Duration = time.Since(startTime)
		return result
	}

	if !entry.IsRemote() {
		result.Status = SyncStatusSkipped
		result.SkipReason = "local directory, nothing to sync"
		result.Duration = time.Since(startTime)
		return result
	}

	source := NewGitSource(*entry.RemoteURL, entry.Branch, entry.Path)

	if isExistingRepo(entry.Path) {
		dirty, err := IsDirty(entry.Path)
		if err != nil {
			result.Status = SyncStatusFailed
			result.Error = fmt.Errorf("failed to check repository status: %w", err)
			result.Duration = time.Since(startTime)
			return result
		}
		if dirty {
			result.Status = SyncStatusSkipped
			result.SkipReason = "uncommitted changes"
			result.Duration = time.Since(startTime)
			return result
		}
	}

	if _, err := source.Prepare(logger); err != nil {
		result.Status = SyncStatusFailed
		result.Error = fmt.Errorf("sync failed: %w", err)
		result.Duration = time.Since(startTime)
		return result
	}

	result.Status = SyncStatusSuccess
	result.Duration = time.Since(startTime)
	return result
}
