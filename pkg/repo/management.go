package repo

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gitlet/pkg/object"
)

// Management is the single persisted Repository State record described in
// spec §3: branches, the current branch, head, the removal set, the
// remote registry, and the transient output flag. It owns all mutable
// metadata; commits and blobs are immutable and live in the object
// store.
type Management struct {
	Branches      map[string]object.Hash // name -> tip commit hash
	CurrentBranch string
	Head          object.Hash
	Removal       []string // ordered, deduplicated paths staged for removal
	Remotes       map[string]string // name -> filesystem path
	Output        bool              // transient; not written by marshalManagement
}

// NewManagement returns an empty Management record with initialized
// maps, ready to be populated by Init.
func NewManagement() *Management {
	return &Management{
		Branches: make(map[string]object.Hash),
		Remotes:  make(map[string]string),
	}
}

// BranchExists reports whether a branch named name exists.
func (m *Management) BranchExists(name string) bool {
	_, ok := m.Branches[name]
	return ok
}

// UpdateBranch creates or advances branch name to commitHash.
func (m *Management) UpdateBranch(name string, commitHash object.Hash) {
	m.Branches[name] = commitHash
}

// SetCurrentBranchHead advances the tip of the current branch.
func (m *Management) SetCurrentBranchHead(commitHash object.Hash) {
	m.UpdateBranch(m.CurrentBranch, commitHash)
}

// AddRemoval adds path to the removal set if not already present.
func (m *Management) AddRemoval(path string) {
	for _, p := range m.Removal {
		if p == path {
			return
		}
	}
	m.Removal = append(m.Removal, path)
}

// DeleteFromRemoval removes path from the removal set, if present.
func (m *Management) DeleteFromRemoval(path string) {
	out := m.Removal[:0]
	for _, p := range m.Removal {
		if p != path {
			out = append(out, p)
		}
	}
	m.Removal = out
}

// InRemoval reports whether path is staged for removal.
func (m *Management) InRemoval(path string) bool {
	for _, p := range m.Removal {
		if p == path {
			return true
		}
	}
	return false
}

// ClearRemoval empties the removal set.
func (m *Management) ClearRemoval() {
	m.Removal = nil
}

// ---------------------------------------------------------------------------
// Serialization
//
// Like object.MarshalCommit, this is a fixed-order, deterministic text
// encoding. Unlike commits, the Management record is not content-
// addressed (it has no hash identity of its own; it is always read and
// written at the single path .gitlet/Management), so determinism here is
// about readability and diffability, not a hash invariant.
// ---------------------------------------------------------------------------

func marshalManagement(m *Management) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "currentBranch %s\n", m.CurrentBranch)
	fmt.Fprintf(&buf, "head %s\n", string(m.Head))

	names := make([]string, 0, len(m.Branches))
	for name := range m.Branches {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&buf, "branch %s %s\n", name, string(m.Branches[name]))
	}

	for _, path := range m.Removal {
		fmt.Fprintf(&buf, "removal %s\n", path)
	}

	remoteNames := make([]string, 0, len(m.Remotes))
	for name := range m.Remotes {
		remoteNames = append(remoteNames, name)
	}
	sort.Strings(remoteNames)
	for _, name := range remoteNames {
		fmt.Fprintf(&buf, "remote %s %s\n", name, filepath.ToSlash(m.Remotes[name]))
	}

	return buf.Bytes()
}

func unmarshalManagement(data []byte) (*Management, error) {
	m := NewManagement()
	text := strings.TrimRight(string(data), "\n")
	if text == "" {
		return m, nil
	}
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		key, rest, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("unmarshal management: malformed line %q", line)
		}
		switch key {
		case "currentBranch":
			m.CurrentBranch = rest
		case "head":
			m.Head = object.Hash(rest)
		case "branch":
			name, hash, ok := strings.Cut(rest, " ")
			if !ok {
				return nil, fmt.Errorf("unmarshal management: malformed branch line %q", line)
			}
			m.Branches[name] = object.Hash(hash)
		case "removal":
			m.Removal = append(m.Removal, rest)
		case "remote":
			name, path, ok := strings.Cut(rest, " ")
			if !ok {
				return nil, fmt.Errorf("unmarshal management: malformed remote line %q", line)
			}
			m.Remotes[name] = filepath.FromSlash(path)
		default:
			return nil, fmt.Errorf("unmarshal management: unknown key %q", key)
		}
	}
	return m, nil
}

// managementPath returns the path to .gitlet/Management.
func (r *Repo) managementPath() string {
	return filepath.Join(r.GitletDir, "Management")
}

// LoadManagement reads and deserializes the Repository State record.
// Commands that read or change branch, head, removal or remote state
// call this after confirming .gitlet exists; commands that only read
// the object store (global-log, find, archive, sign, verify-sig) do not.
func (r *Repo) LoadManagement() (*Management, error) {
	data, err := os.ReadFile(r.managementPath())
	if err != nil {
		return nil, fmt.Errorf("load management: %w", err)
	}
	m, err := unmarshalManagement(data)
	if err != nil {
		return nil, fmt.Errorf("load management: %w", err)
	}
	return m, nil
}

// SaveManagement atomically persists m to .gitlet/Management (write to a
// temp file, then rename), per spec §9's crash-safety recommendation:
// this is the last write of any command, after all blob/commit writes.
func (r *Repo) SaveManagement(m *Management) error {
	if err := writeManagementAtomic(r.managementPath(), marshalManagement(m)); err != nil {
		return fmt.Errorf("save management: %w", err)
	}
	return nil
}

func writeManagementAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".management-tmp-*")
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
