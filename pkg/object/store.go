package object

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Store is the content-addressed object store rooted at a .gitlet
// directory, laid out exactly as spec §6 describes:
//
//	blobs/<hash>     raw file contents, no header
//	commits/<hash>   MarshalCommit output
//
// Reads are cached in a bounded LRU (see cache.go) so a command that
// repeatedly resolves the same commit (log traversal, merge-base search,
// status) does not re-read it from disk each time; this is scoped to one
// Store value, i.e. one command invocation, per spec §9.
type Store struct {
	gitletDir string
	cache     *objectCache
}

// NewStore creates a Store rooted at gitletDir (the ".gitlet" directory).
// The blobs/ and commits/ subdirectories are created lazily on first
// write.
func NewStore(gitletDir string) *Store {
	return &Store{gitletDir: gitletDir, cache: newObjectCache(256)}
}

func (s *Store) blobPath(h Hash) string {
	return filepath.Join(s.gitletDir, "blobs", string(h))
}

func (s *Store) commitPath(h Hash) string {
	return filepath.Join(s.gitletDir, "commits", string(h))
}

// PutBlob writes content's raw bytes at blobs/<hash> and returns the
// hash. Idempotent: if the file already exists, nothing is written
// (spec §4.2).
func (s *Store) PutBlob(content []byte) (Hash, error) {
	h := HashBytes(content)
	path := s.blobPath(h)
	if _, err := os.Stat(path); err == nil {
		s.cache.putBlob(h, content)
		return h, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("put blob: mkdir: %w", err)
	}
	if err := writeFileAtomic(path, content); err != nil {
		return "", fmt.Errorf("put blob: %w", err)
	}
	s.cache.putBlob(h, content)
	return h, nil
}

// GetBlob returns a blob's raw bytes, failing with ErrMissingObject if
// absent.
func (s *Store) GetBlob(h Hash) ([]byte, error) {
	if data, ok := s.cache.getBlob(h); ok {
		return data, nil
	}
	data, err := os.ReadFile(s.blobPath(h))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrMissingObject
		}
		return nil, fmt.Errorf("get blob %s: %w", h, err)
	}
	s.cache.putBlob(h, data)
	return data, nil
}

// HasBlob reports whether a blob with hash h is present.
func (s *Store) HasBlob(h Hash) bool {
	if s.cache.hasBlob(h) {
		return true
	}
	_, err := os.Stat(s.blobPath(h))
	return err == nil
}

// PutCommit serializes and stores c, returning its hash. All of c's
// parent hashes and tracked blob hashes must already exist in the store
// (spec §3 invariants); PutCommit does not itself verify this. Remote
// sync copies every blob before any commit, but copies commits in
// directory order, so a commit can be written before its parent.
func (s *Store) PutCommit(c *Commit) (Hash, error) {
	data := MarshalCommit(c)
	h := HashBytes(data)
	path := s.commitPath(h)
	if _, err := os.Stat(path); err == nil {
		s.cache.putCommit(h, c)
		return h, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("put commit: mkdir: %w", err)
	}
	if err := writeFileAtomic(path, data); err != nil {
		return "", fmt.Errorf("put commit: %w", err)
	}
	s.cache.putCommit(h, c)
	return h, nil
}

// GetCommit reads and deserializes a commit, failing with
// ErrNoSuchCommit if absent; a malformed record yields a decode error.
func (s *Store) GetCommit(h Hash) (*Commit, error) {
	if c, ok := s.cache.getCommit(h); ok {
		return c, nil
	}
	data, err := os.ReadFile(s.commitPath(h))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSuchCommit
		}
		return nil, fmt.Errorf("get commit %s: %w", h, err)
	}
	c, err := UnmarshalCommit(data)
	if err != nil {
		return nil, fmt.Errorf("get commit %s: %w", h, err)
	}
	s.cache.putCommit(h, c)
	return c, nil
}

// HasCommit reports whether a commit with hash h is present.
func (s *Store) HasCommit(h Hash) bool {
	if s.cache.hasCommit(h) {
		return true
	}
	_, err := os.Stat(s.commitPath(h))
	return err == nil
}

// AllCommitHashes lists every commit hash in the store, in arbitrary
// (directory-read) order, for use by GlobalLog/Find (spec §4.3).
func (s *Store) AllCommitHashes() ([]Hash, error) {
	dir := filepath.Join(s.gitletDir, "commits")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list commits: %w", err)
	}
	hashes := make([]Hash, 0, len(entries))
	for _, e := range entries {
		// Skip directories and any non-hash file sharing the directory,
		// such as "<hash>.sig" signature sidecars or ".tmp-*" files.
		if e.IsDir() || strings.Contains(e.Name(), ".") {
			continue
		}
		hashes = append(hashes, Hash(e.Name()))
	}
	return hashes, nil
}

// ResolvePrefix scans the commits directory for the first commit hash
// starting with prefix. Per spec §4.2/§9, when multiple commits share a
// prefix the first one encountered in sorted directory order is
// returned; callers should pass prefixes long enough to be unique.
// Returns "" with no error if nothing matches.
func (s *Store) ResolvePrefix(prefix string) (Hash, error) {
	if len(prefix) >= 40 {
		if s.HasCommit(Hash(prefix)) {
			return Hash(prefix), nil
		}
	}
	dir := filepath.Join(s.gitletDir, "commits")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("resolve prefix: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			return Hash(name), nil
		}
	}
	return "", nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
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
