// Package corpus keeps the local documentation corpus in sync with its
// remote sources.
//
// A corpus entry is either a plain local directory or a Git repository
// cloned into the data directory. Git entries are fetched with a
// public-first strategy: anonymous access is tried first and a GitHub
// Personal Access Token from the OS credential store is used only when the
// remote rejects the anonymous attempt. Entries with uncommitted local
// changes are skipped instead of reset, so hand edits to the corpus are
// never lost by a sync.
package corpus
