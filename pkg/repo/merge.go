package repo

import (
	"fmt"
	"os"

	"gitlet/pkg/object"
)

// mergeAction is the outcome of classifying a single path against the
// split/current/given tracked mappings (§4.11's table).
type mergeAction int

const (
	actionRemain mergeAction = iota
	actionCheckout
	actionRemove
	actionConflict
)

// MergeResult reports what the merge engine actually did, for the CLI
// layer to decide what to print (AncestorMerge and FastForward are
// success outcomes carried as sentinel errors so callers use one
// channel for both).
type MergeResult struct {
	CommitHash object.Hash
	HadConflict bool
	NoChanges   bool
}

// Merge implements §4.11 end to end: pre-flight checks, the two
// degenerate cases, the full classification table, action application,
// and merge-commit finalization.
func Merge(r *Repo, m *Management, givenBranch string) (*MergeResult, error) {
	givenHash, ok := m.Branches[givenBranch]
	if !ok {
		return nil, ErrNoSuchBranch
	}
	if givenBranch == m.CurrentBranch {
		return nil, ErrSameBranch
	}
	if len(m.Removal) > 0 {
		return nil, ErrUncommittedChanges
	}
	staged, err := r.StagedPaths()
	if err != nil {
		return nil, err
	}
	if len(staged) > 0 {
		return nil, ErrUncommittedChanges
	}

	currHash := m.Head
	curr, err := r.Store.GetCommit(currHash)
	if err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}
	given, err := r.Store.GetCommit(givenHash)
	if err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}

	if err := CheckWorkingTreeSafety(r, curr, given); err != nil {
		return nil, err
	}

	splitHash, err := SplitPoint(r, currHash, givenHash)
	if err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}

	if splitHash == givenHash {
		return nil, ErrAncestorMerge
	}
	if splitHash == currHash {
		// Form-3 checkout of given, but preserving the current branch's
		// name: only its tip moves forward.
		if err := switchWorkingTree(r, curr, given); err != nil {
			return nil, fmt.Errorf("merge: fast forward: %w", err)
		}
		if err := clearStagingArea(r); err != nil {
			return nil, fmt.Errorf("merge: fast forward: %w", err)
		}
		m.ClearRemoval()
		m.Head = givenHash
		m.SetCurrentBranchHead(givenHash)
		return nil, ErrFastForward
	}

	split, err := r.Store.GetCommit(splitHash)
	if err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}

	paths := unionPaths(split.Tracked, curr.Tracked, given.Tracked)

	hadConflict := false
	for _, p := range paths {
		s, sOK := split.Tracked[p]
		c, cOK := curr.Tracked[p]
		g, gOK := given.Tracked[p]

		action := classifyMergeAction(sOK, s, cOK, c, gOK, g)
		switch action {
		case actionRemain:
			// no change
		case actionCheckout:
			if err := checkoutMergePath(r, m, p, g); err != nil {
				return nil, fmt.Errorf("merge: %w", err)
			}
		case actionRemove:
			m.AddRemoval(p)
			if err := os.Remove(r.WorkingPath(p)); err != nil && !os.IsNotExist(err) {
				return nil, fmt.Errorf("merge: remove %s: %w", p, err)
			}
		case actionConflict:
			hadConflict = true
			if err := writeConflictFile(r, m, p, c, g); err != nil {
				return nil, fmt.Errorf("merge: conflict %s: %w", p, err)
			}
		}
	}

	staged, err = r.StagedPaths()
	if err != nil {
		return nil, err
	}
	noChanges := len(staged) == 0 && len(m.Removal) == 0 && !hadConflict

	// Unlike the ordinary commit path, a merge finalizes even when
	// nothing changed: per the source tool's behavior, the "No changes
	// added to the commit." message is reported but a merge commit is
	// created regardless.
	message := fmt.Sprintf("Merged %s into %s.", givenBranch, m.CurrentBranch)
	h, err := finalizeMergeCommit(r, m, message, givenHash)
	if err != nil {
		return nil, fmt.Errorf("merge: finalize: %w", err)
	}

	result := &MergeResult{CommitHash: h, HadConflict: hadConflict, NoChanges: noChanges}
	if noChanges {
		return result, ErrNoChanges
	}
	return result, nil
}

// classifyMergeAction implements the §4.11 table.
func classifyMergeAction(sOK bool, s object.Hash, cOK bool, c object.Hash, gOK bool, g object.Hash) mergeAction {
	switch {
	case sOK && cOK && gOK:
		if c == s && g == s {
			return actionRemain
		}
		if c == s && g != s {
			return actionCheckout
		}
		if c != s && g == s {
			return actionRemain
		}
		if c != s && g != s {
			if c == g {
				return actionRemain
			}
			return actionConflict
		}
	case sOK && cOK && !gOK:
		if c == s {
			return actionRemove
		}
		return actionConflict
	case sOK && !cOK && gOK:
		if g == s {
			return actionRemain
		}
		return actionConflict
	case sOK && !cOK && !gOK:
		return actionRemain
	case !sOK && cOK && gOK:
		if c == g {
			return actionRemain
		}
		return actionConflict
	case !sOK && cOK && !gOK:
		return actionRemain
	case !sOK && !cOK && gOK:
		return actionCheckout
	}
	// !sOK && !cOK && !gOK is unreachable: p is only in the union when
	// present in at least one of split/curr/given.
	return actionRemain
}

func unionPaths(maps ...map[string]object.Hash) []string {
	seen := map[string]struct{}{}
	for _, mp := range maps {
		for p := range mp {
			seen[p] = struct{}{}
		}
	}
	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	return paths
}

func checkoutMergePath(r *Repo, m *Management, path string, blobHash object.Hash) error {
	data, err := r.Store.GetBlob(blobHash)
	if err != nil {
		return fmt.Errorf("checkout %s: %w", path, err)
	}
	if err := writeWorkingFile(r.WorkingPath(path), data); err != nil {
		return fmt.Errorf("checkout %s: %w", path, err)
	}
	if err := writeStagedFile(r.StagedPath(path), data); err != nil {
		return fmt.Errorf("stage %s: %w", path, err)
	}
	m.DeleteFromRemoval(path)
	return nil
}

// writeConflictFile renders and stages the conflict-marker content for
// path, per §4.11's exact byte format.
func writeConflictFile(r *Repo, m *Management, path string, currBlob, givenBlob object.Hash) error {
	var currContent, givenContent []byte
	if currBlob != "" {
		data, err := r.Store.GetBlob(currBlob)
		if err != nil {
			return err
		}
		currContent = data
	}
	if givenBlob != "" {
		data, err := r.Store.GetBlob(givenBlob)
		if err != nil {
			return err
		}
		givenContent = data
	}

	rendered := renderConflict(currContent, givenContent)

	if err := writeWorkingFile(r.WorkingPath(path), rendered); err != nil {
		return err
	}
	if err := writeStagedFile(r.StagedPath(path), rendered); err != nil {
		return err
	}
	m.DeleteFromRemoval(path)
	return nil
}

func renderConflict(currContent, givenContent []byte) []byte {
	var out []byte
	out = append(out, "<<<<<<< HEAD\n"...)
	out = append(out, currContent...)
	out = append(out, "=======\n"...)
	out = append(out, givenContent...)
	out = append(out, ">>>>>>>"...)
	return out
}
