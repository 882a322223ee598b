package repo

import (
	"fmt"
	"os"
	"sort"

	"gitlet/pkg/object"
)

// Status is the parsed content of the five status sections (§6),
// ready for a CLI layer to format and colorize.
type Status struct {
	Branches     []string // sorted; current branch identified separately
	CurrentBranch string
	Staged       []string
	Removed      []string
	ModifiedNotStaged []ModifiedEntry
	Untracked    []string
}

// ModifiedEntry is one line of the "Modifications Not Staged For
// Commit" section.
type ModifiedEntry struct {
	Path string
	Kind string // "modified" or "deleted"
}

// BuildStatus computes the five-section report described in §6.
func BuildStatus(r *Repo, m *Management) (*Status, error) {
	head, err := r.Store.GetCommit(m.Head)
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}

	branches := make([]string, 0, len(m.Branches))
	for name := range m.Branches {
		branches = append(branches, name)
	}
	sort.Strings(branches)

	staged, err := r.StagedPaths()
	if err != nil {
		return nil, err
	}

	removed := append([]string(nil), m.Removal...)
	sort.Strings(removed)

	modified, err := modifiedNotStaged(r, m, head, staged)
	if err != nil {
		return nil, err
	}

	untracked, err := untrackedFiles(r, m, head, staged)
	if err != nil {
		return nil, err
	}

	return &Status{
		Branches:          branches,
		CurrentBranch:     m.CurrentBranch,
		Staged:            staged,
		Removed:           removed,
		ModifiedNotStaged: modified,
		Untracked:         untracked,
	}, nil
}

func modifiedNotStaged(r *Repo, m *Management, head *object.Commit, staged []string) ([]ModifiedEntry, error) {
	stagedSet := toSet(staged)
	var entries []ModifiedEntry

	for path, headHash := range head.Tracked {
		if stagedSet[path] || m.InRemoval(path) {
			continue
		}
		data, err := os.ReadFile(r.WorkingPath(path))
		if err != nil {
			if os.IsNotExist(err) {
				entries = append(entries, ModifiedEntry{Path: path, Kind: "deleted"})
				continue
			}
			return nil, fmt.Errorf("status: read %s: %w", path, err)
		}
		if object.HashBytes(data) != headHash {
			entries = append(entries, ModifiedEntry{Path: path, Kind: "modified"})
		}
	}

	for _, path := range staged {
		stagedData, err := os.ReadFile(r.StagedPath(path))
		if err != nil {
			return nil, fmt.Errorf("status: read staged %s: %w", path, err)
		}
		data, err := os.ReadFile(r.WorkingPath(path))
		if err != nil {
			if os.IsNotExist(err) {
				entries = append(entries, ModifiedEntry{Path: path, Kind: "deleted"})
				continue
			}
			return nil, fmt.Errorf("status: read %s: %w", path, err)
		}
		if string(data) != string(stagedData) {
			entries = append(entries, ModifiedEntry{Path: path, Kind: "modified"})
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}

func untrackedFiles(r *Repo, m *Management, head *object.Commit, staged []string) ([]string, error) {
	stagedSet := toSet(staged)
	entries, err := os.ReadDir(r.RootDir)
	if err != nil {
		return nil, fmt.Errorf("status: read working dir: %w", err)
	}
	var untracked []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if name == ".gitlet" {
			continue
		}
		if stagedSet[name] {
			continue
		}
		if _, trackedByHead := head.Tracked[name]; trackedByHead {
			continue
		}
		untracked = append(untracked, name)
	}
	sort.Strings(untracked)
	return untracked, nil
}

func toSet(paths []string) map[string]bool {
	set := make(map[string]bool, len(paths))
	for _, p := range paths {
		set[p] = true
	}
	return set
}
