package repo

import (
	"fmt"
	"os"
	"time"

	"gitlet/pkg/object"
)

// CommitOpts carries the inputs for a standard commit beyond the
// message: ExtraParents are appended after head in the new commit's
// parent list; with nil opts or no ExtraParents, head is the only
// parent. The merge engine does not use it; it attaches its second
// parent through finalizeMergeCommit.
type CommitOpts struct {
	ExtraParents []object.Hash
}

// Commit implements §4.7. message must be non-empty (ErrEmptyMessage).
// Fails with ErrNoChanges if there is nothing staged and nothing
// pending removal.
func Commit(r *Repo, m *Management, message string, opts *CommitOpts) (object.Hash, error) {
	var extraParents []object.Hash
	if opts != nil {
		extraParents = opts.ExtraParents
	}
	return commitInternal(r, m, message, extraParents, true)
}

// finalizeMergeCommit creates the merge-commit record described by
// §4.11's finalization step. Unlike Commit, it does not fail when
// nothing is staged and nothing is pending removal: per §9's preserved
// behavior, a merge that produced no working-tree delta still creates
// the merge commit (its tracked set is then identical to head's).
func finalizeMergeCommit(r *Repo, m *Management, message string, givenHead object.Hash) (object.Hash, error) {
	return commitInternal(r, m, message, []object.Hash{givenHead}, false)
}

func commitInternal(r *Repo, m *Management, message string, extraParents []object.Hash, requireChanges bool) (object.Hash, error) {
	if message == "" {
		return "", ErrEmptyMessage
	}

	staged, err := r.StagedPaths()
	if err != nil {
		return "", err
	}
	if requireChanges && len(staged) == 0 && len(m.Removal) == 0 {
		return "", ErrNoChanges
	}

	head, err := r.Store.GetCommit(m.Head)
	if err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}

	tracked := make(map[string]object.Hash, len(head.Tracked))
	for path, h := range head.Tracked {
		tracked[path] = h
	}

	for _, path := range staged {
		data, err := os.ReadFile(r.StagedPath(path))
		if err != nil {
			return "", fmt.Errorf("commit: read staged %s: %w", path, err)
		}
		h, err := r.Store.PutBlob(data)
		if err != nil {
			return "", fmt.Errorf("commit: store blob %s: %w", path, err)
		}
		tracked[path] = h
		if err := os.Remove(r.StagedPath(path)); err != nil {
			return "", fmt.Errorf("commit: clear staged %s: %w", path, err)
		}
	}

	for _, path := range m.Removal {
		delete(tracked, path)
	}

	parents := append([]object.Hash{m.Head}, extraParents...)

	c := &object.Commit{
		Message:     message,
		TimestampMS: time.Now().UnixMilli(),
		Parents:     parents,
		Tracked:     tracked,
	}

	h, err := r.Store.PutCommit(c)
	if err != nil {
		return "", fmt.Errorf("commit: store: %w", err)
	}

	m.SetCurrentBranchHead(h)
	m.Head = h
	m.ClearRemoval()

	return h, nil
}
