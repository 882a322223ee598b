package repo

import (
	"fmt"
	"os"

	"gitlet/pkg/object"
)

// CheckWorkingTreeSafety implements §4.10: before a destructive
// operation overwrites the working tree with target's tracked files,
// every path tracked by target that already exists on disk but is not
// tracked by the current head would be silently clobbered. Refuse with
// ErrUntrackedOverwrite instead. Must run before any mutation.
func CheckWorkingTreeSafety(r *Repo, head *object.Commit, target *object.Commit) error {
	for path := range target.Tracked {
		if _, trackedByHead := head.Tracked[path]; trackedByHead {
			continue
		}
		if _, err := os.Stat(r.WorkingPath(path)); err == nil {
			return ErrUntrackedOverwrite
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("working tree safety check: stat %s: %w", path, err)
		}
	}
	return nil
}
