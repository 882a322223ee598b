package repo

import "fmt"

// Reset implements §4.9. This is branch-relative, not git's index-only
// reset: the current branch's tip is moved to targetHash (not just
// head), matching the source tool's semantics rather than git's.
func Reset(r *Repo, m *Management, targetHash string) error {
	resolved, err := r.Store.ResolvePrefix(targetHash)
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	if resolved == "" {
		return ErrNoSuchCommit
	}

	head, err := r.Store.GetCommit(m.Head)
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	target, err := r.Store.GetCommit(resolved)
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	if err := CheckWorkingTreeSafety(r, head, target); err != nil {
		return err
	}

	if err := switchWorkingTree(r, head, target); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	if err := clearStagingArea(r); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	m.ClearRemoval()

	m.Head = resolved
	m.SetCurrentBranchHead(resolved)
	return nil
}
