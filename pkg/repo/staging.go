package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"gitlet/pkg/object"
)

// Add implements §4.5: stage relPath for the next commit. path must
// exist in the working directory (ErrFileDoesNotExist otherwise). If
// the current head already tracks this exact content, add is a no-op
// on staging beyond clearing any stale staged copy and removal entry —
// this is how "add" of an unchanged file un-stages it, mirroring the
// original tool's behavior.
func Add(r *Repo, m *Management, relPath string) error {
	data, err := os.ReadFile(r.WorkingPath(relPath))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrFileDoesNotExist
		}
		return fmt.Errorf("add %s: %w", relPath, err)
	}

	h := object.HashBytes(data)

	head, err := r.Store.GetCommit(m.Head)
	if err != nil {
		return fmt.Errorf("add %s: %w", relPath, err)
	}

	if tracked, ok := head.Tracked[relPath]; ok && tracked == h {
		if err := os.Remove(r.StagedPath(relPath)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("add %s: clear stale staging: %w", relPath, err)
		}
		m.DeleteFromRemoval(relPath)
		return nil
	}

	if err := writeStagedFile(r.StagedPath(relPath), data); err != nil {
		return fmt.Errorf("add %s: %w", relPath, err)
	}
	m.DeleteFromRemoval(relPath)
	return nil
}

// Rm implements §4.6. Fails with ErrNothingToRemove if relPath is
// neither staged nor tracked by head.
func Rm(r *Repo, m *Management, relPath string) error {
	head, err := r.Store.GetCommit(m.Head)
	if err != nil {
		return fmt.Errorf("rm %s: %w", relPath, err)
	}
	_, trackedByHead := head.Tracked[relPath]
	staged := r.IsStaged(relPath)

	if !staged && !trackedByHead {
		return ErrNothingToRemove
	}

	if staged {
		if err := os.Remove(r.StagedPath(relPath)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("rm %s: %w", relPath, err)
		}
	}

	if trackedByHead {
		m.AddRemoval(relPath)
		if err := os.Remove(r.WorkingPath(relPath)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("rm %s: delete working file: %w", relPath, err)
		}
	}

	return nil
}

func writeStagedFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".staged-tmp-*")
	if err != nil {
		return fmt.Errorf("tmpfile: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
