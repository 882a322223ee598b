package repo

// Branch creates a new branch named name pointing at the current head.
// Fails with ErrBranchExists if name is already in use. Unlike the
// source tool, branch creation is purely a Management-record update —
// there are no separate ref files to write.
func Branch(m *Management, name string) error {
	if m.BranchExists(name) {
		return ErrBranchExists
	}
	m.UpdateBranch(name, m.Head)
	return nil
}

// RmBranch deletes branch name. Fails with ErrNoSuchBranch if absent,
// or ErrCannotRemoveCurrent if name is the current branch. Deleting a
// branch only removes the pointer; its commits remain reachable from
// global-log and from any other branch.
func RmBranch(m *Management, name string) error {
	if !m.BranchExists(name) {
		return ErrNoSuchBranch
	}
	if name == m.CurrentBranch {
		return ErrCannotRemoveCurrent
	}
	delete(m.Branches, name)
	return nil
}
