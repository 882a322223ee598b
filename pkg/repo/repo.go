package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gitlet/pkg/object"
)

// Repo bundles the three pieces every operation needs: the working
// directory root, the .gitlet directory beneath it, and the object
// store. The Management record is loaded and saved per-command by
// callers (LoadManagement/SaveManagement) rather than cached here,
// since a long-lived process is not a scenario this spec covers (spec
// §5: no concurrent access, no daemon mode).
type Repo struct {
	RootDir   string
	GitletDir string
	Store     *object.Store
}

func stagingDir(gitletDir string) string {
	return filepath.Join(gitletDir, "staging")
}

// Init creates a new repository rooted at path: the .gitlet directory
// tree (blobs/, commits/, staging/), the initial commit, and the
// master branch pointing at it, current branch set to master (spec §6
// "init" row, spec §9 supplemented semantics: initial commit message
// "initial commit", zero timestamp, no parents, empty tracked map).
// Returns ErrAlreadyInitialized if .gitlet already exists.
func Init(path string) (*Repo, error) {
	gitletDir := filepath.Join(path, ".gitlet")

	if _, err := os.Stat(gitletDir); err == nil {
		return nil, ErrAlreadyInitialized
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("init: stat %s: %w", gitletDir, err)
	}

	dirs := []string{
		gitletDir,
		filepath.Join(gitletDir, "blobs"),
		filepath.Join(gitletDir, "commits"),
		stagingDir(gitletDir),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("init: mkdir %s: %w", d, err)
		}
	}

	r := &Repo{
		RootDir:   path,
		GitletDir: gitletDir,
		Store:     object.NewStore(gitletDir),
	}

	initial := object.NewInitialCommit()
	head, err := r.Store.PutCommit(initial)
	if err != nil {
		return nil, fmt.Errorf("init: write initial commit: %w", err)
	}

	m := NewManagement()
	m.CurrentBranch = "master"
	m.Head = head
	m.UpdateBranch("master", head)

	if err := r.SaveManagement(m); err != nil {
		return nil, fmt.Errorf("init: %w", err)
	}

	return r, nil
}

// Open opens the repository rooted at path. Unlike a VCS that walks
// upward looking for a repository boundary, gitlet commands only ever
// run from the repository root (spec §6), so Open simply checks for
// .gitlet directly under path. Returns ErrNotInitialized if absent.
func Open(path string) (*Repo, error) {
	gitletDir := filepath.Join(path, ".gitlet")
	info, err := os.Stat(gitletDir)
	if err != nil || !info.IsDir() {
		return nil, ErrNotInitialized
	}
	return &Repo{
		RootDir:   path,
		GitletDir: gitletDir,
		Store:     object.NewStore(gitletDir),
	}, nil
}

// WorkingPath returns the absolute path of a repository-relative file.
func (r *Repo) WorkingPath(relPath string) string {
	return filepath.Join(r.RootDir, relPath)
}

// StagedPath returns the path of relPath's pending-add contents under
// .gitlet/staging/.
func (r *Repo) StagedPath(relPath string) string {
	return filepath.Join(stagingDir(r.GitletDir), relPath)
}

// IsStaged reports whether relPath has pending-add contents staged.
func (r *Repo) IsStaged(relPath string) bool {
	_, err := os.Stat(r.StagedPath(relPath))
	return err == nil
}

// StagedPaths returns every path with pending-add contents, sorted.
func (r *Repo) StagedPaths() ([]string, error) {
	var paths []string
	root := stagingDir(r.GitletDir)
	err := filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("staged paths: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}
