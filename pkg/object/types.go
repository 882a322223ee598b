package object

import (
	"sort"
	"time"
)

// Blob is an opaque, immutable byte sequence. Its hash (computed by
// HashBytes over Data with no header) is its store key.
type Blob struct {
	Data []byte
}

// Commit is an immutable snapshot: a message, a timestamp, up to two
// parent hashes, and the path->blob mapping it tracks. See spec §3.
type Commit struct {
	Message     string
	TimestampMS int64 // milliseconds since Unix epoch
	Parents     []Hash
	Tracked     map[string]Hash // path -> blob hash
}

// Timestamp returns the commit's timestamp as a time.Time in UTC.
func (c *Commit) Timestamp() time.Time {
	return time.UnixMilli(c.TimestampMS).UTC()
}

// IsMerge reports whether this is a merge commit (exactly two parents).
func (c *Commit) IsMerge() bool {
	return len(c.Parents) == 2
}

// SortedPaths returns the tracked paths in lexicographic order.
func (c *Commit) SortedPaths() []string {
	paths := make([]string, 0, len(c.Tracked))
	for p := range c.Tracked {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// NewInitialCommit returns the repository's first commit: message
// "initial commit", timestamp the Unix epoch, no parents, nothing
// tracked. See spec §3.
func NewInitialCommit() *Commit {
	return &Commit{
		Message:     "initial commit",
		TimestampMS: 0,
		Tracked:     make(map[string]Hash),
	}
}
