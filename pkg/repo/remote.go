package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"gitlet/pkg/object"
)

// AddRemote registers a remote repository path under name. Path
// separators in path are normalized to the host separator (§4.12).
func AddRemote(m *Management, name, path string) error {
	if _, ok := m.Remotes[name]; ok {
		return ErrRemoteExists
	}
	m.Remotes[name] = filepath.FromSlash(path)
	return nil
}

// RmRemote removes a registered remote.
func RmRemote(m *Management, name string) error {
	if _, ok := m.Remotes[name]; !ok {
		return ErrNoSuchRemote
	}
	delete(m.Remotes, name)
	return nil
}

// openRemote resolves a registered remote name to a Repo handle on its
// root directory, failing with ErrNoRemoteDir if the directory is
// absent.
func openRemote(m *Management, name string) (*Repo, error) {
	path, ok := m.Remotes[name]
	if !ok {
		return nil, ErrNoSuchRemote
	}
	gitletDir := filepath.Join(path, ".gitlet")
	if info, err := os.Stat(gitletDir); err != nil || !info.IsDir() {
		return nil, ErrNoRemoteDir
	}
	return &Repo{
		RootDir:   path,
		GitletDir: gitletDir,
		Store:     object.NewStore(gitletDir),
	}, nil
}

// Push implements §4.12 push: copy every local object to the peer, then
// advance the peer's branch tip to local head. Fails with
// ErrPushNotFastForward if the peer already has branch and its tip is
// not an ancestor of local head.
func Push(r *Repo, m *Management, remoteName, branch string) error {
	peer, err := openRemote(m, remoteName)
	if err != nil {
		return err
	}
	peerManagement, err := peer.LoadManagement()
	if err != nil {
		return fmt.Errorf("push: load peer state: %w", err)
	}

	localHead := m.Head

	if peerTip, ok := peerManagement.Branches[branch]; ok {
		ancestor, err := isAncestorAlongFirstParent(r, peerTip, localHead)
		if err != nil {
			return fmt.Errorf("push: %w", err)
		}
		if !ancestor {
			return ErrPushNotFastForward
		}
	}

	if err := copyAllObjects(r, peer); err != nil {
		return fmt.Errorf("push: %w", err)
	}

	peerManagement.UpdateBranch(branch, localHead)
	if branch == "master" {
		peerManagement.Head = localHead
	}
	if err := peer.SaveManagement(peerManagement); err != nil {
		return fmt.Errorf("push: save peer state: %w", err)
	}
	return nil
}

// Fetch implements §4.12 fetch: copy every peer object locally and
// create or update the local remote-tracking branch "<name>/<branch>".
// Does not touch the working tree.
func Fetch(r *Repo, m *Management, remoteName, branch string) error {
	peer, err := openRemote(m, remoteName)
	if err != nil {
		return err
	}
	peerManagement, err := peer.LoadManagement()
	if err != nil {
		return fmt.Errorf("fetch: load peer state: %w", err)
	}
	peerTip, ok := peerManagement.Branches[branch]
	if !ok {
		return ErrNoSuchRemoteBranch
	}

	if err := copyAllObjects(peer, r); err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	trackingBranch := remoteName + "/" + branch
	m.UpdateBranch(trackingBranch, peerTip)
	return nil
}

// Pull implements §4.12 pull: fetch then merge the resulting
// remote-tracking branch into the current branch.
func Pull(r *Repo, m *Management, remoteName, branch string) (*MergeResult, error) {
	if err := Fetch(r, m, remoteName, branch); err != nil {
		return nil, err
	}
	return Merge(r, m, remoteName+"/"+branch)
}

// isAncestorAlongFirstParent walks descendant's first-parent chain
// looking for candidate, matching §4.12's literal "walk local head's
// first-parent chain" wording rather than the fuller both-parents
// ancestor search used elsewhere.
func isAncestorAlongFirstParent(r *Repo, candidate, descendant object.Hash) (bool, error) {
	cur := descendant
	for cur != "" {
		if cur == candidate {
			return true, nil
		}
		c, err := r.Store.GetCommit(cur)
		if err != nil {
			return false, err
		}
		if len(c.Parents) == 0 {
			break
		}
		cur = c.Parents[0]
	}
	return false, nil
}

// copyAllObjects copies every blob and commit from src to dst.
// Content-addressed storage makes this safe to re-run: an existing
// object with the same hash is byte-identical, so overwrite-if-exists
// is never observable.
func copyAllObjects(src, dst *Repo) error {
	blobHashes, err := listBlobHashes(src)
	if err != nil {
		return err
	}
	for _, h := range blobHashes {
		data, err := src.Store.GetBlob(h)
		if err != nil {
			return fmt.Errorf("read blob %s: %w", h, err)
		}
		if _, err := dst.Store.PutBlob(data); err != nil {
			return fmt.Errorf("write blob %s: %w", h, err)
		}
	}

	commitHashes, err := src.Store.AllCommitHashes()
	if err != nil {
		return err
	}
	for _, h := range commitHashes {
		c, err := src.Store.GetCommit(h)
		if err != nil {
			return fmt.Errorf("read commit %s: %w", h, err)
		}
		if _, err := dst.Store.PutCommit(c); err != nil {
			return fmt.Errorf("write commit %s: %w", h, err)
		}
	}
	return nil
}

func listBlobHashes(r *Repo) ([]object.Hash, error) {
	entries, err := os.ReadDir(filepath.Join(r.GitletDir, "blobs"))
	if err != nil {
		return nil, fmt.Errorf("list blobs: %w", err)
	}
	hashes := make([]object.Hash, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		hashes = append(hashes, object.Hash(e.Name()))
	}
	return hashes, nil
}
