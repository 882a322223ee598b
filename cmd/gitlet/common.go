package main

import (
	"gitlet/pkg/repo"
)

// openRepo opens the repository rooted at the working directory. Every
// command but init calls this first, before looking at args at all:
// the source tool's checkForGitlet always precedes its operand-count
// check, so cobra's own Args validator (which runs before RunE) can't
// be used for arity here — it would fire before the existence check,
// and with cobra's own message instead of ErrBadArgs.
func openRepo() (*repo.Repo, error) {
	return repo.Open(".")
}

// requireArgs returns ErrBadArgs unless args has exactly want elements.
func requireArgs(args []string, want int) error {
	if len(args) != want {
		return repo.ErrBadArgs
	}
	return nil
}

// finish persists m, the write-once-at-end half of spec §5's ordering
// rule. Callers invoke this only after every object-store write for the
// command has already happened.
func finish(r *repo.Repo, m *repo.Management) error {
	return r.SaveManagement(m)
}
