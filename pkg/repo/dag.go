package repo

import (
	"fmt"

	"gitlet/pkg/object"
)

// LogEntry pairs a commit with its resolved hash for display, since
// object.Commit itself does not carry its own hash.
type LogEntry struct {
	Hash   object.Hash
	Commit *object.Commit
}

// Log walks the first-parent chain from head, per §4.3. Merge commits
// appear once, at the point they were created; their second parent's
// ancestry is not traversed.
func Log(r *Repo, head object.Hash) ([]LogEntry, error) {
	var entries []LogEntry
	cur := head
	for cur != "" {
		c, err := r.Store.GetCommit(cur)
		if err != nil {
			return nil, fmt.Errorf("log: %w", err)
		}
		entries = append(entries, LogEntry{Hash: cur, Commit: c})
		if len(c.Parents) == 0 {
			break
		}
		cur = c.Parents[0]
	}
	return entries, nil
}

// GlobalLog returns every commit ever stored, in arbitrary order (§4.3).
func GlobalLog(r *Repo) ([]LogEntry, error) {
	hashes, err := r.Store.AllCommitHashes()
	if err != nil {
		return nil, fmt.Errorf("global-log: %w", err)
	}
	entries := make([]LogEntry, 0, len(hashes))
	for _, h := range hashes {
		c, err := r.Store.GetCommit(h)
		if err != nil {
			return nil, fmt.Errorf("global-log: %w", err)
		}
		entries = append(entries, LogEntry{Hash: h, Commit: c})
	}
	return entries, nil
}

// Find returns the hashes of every commit whose message exactly equals
// message. Fails with ErrNoCommitsFound if none match.
func Find(r *Repo, message string) ([]object.Hash, error) {
	all, err := GlobalLog(r)
	if err != nil {
		return nil, err
	}
	var hits []object.Hash
	for _, e := range all {
		if e.Commit.Message == message {
			hits = append(hits, e.Hash)
		}
	}
	if len(hits) == 0 {
		return nil, ErrNoCommitsFound
	}
	return hits, nil
}
