package object

import lru "github.com/hashicorp/golang-lru/v2"

// objectCache is a bounded, in-memory LRU over decoded objects, scoped to
// a single Store (and so, per spec §9, to a single command invocation).
// Both blobs and commits are immutable once written, so cache entries
// never need invalidation.
type objectCache struct {
	blobs   *lru.Cache[Hash, []byte]
	commits *lru.Cache[Hash, *Commit]
}

func newObjectCache(size int) *objectCache {
	blobs, err := lru.New[Hash, []byte](size)
	if err != nil {
		// Only returns an error for a non-positive size, which never
		// happens with the fixed size NewStore passes.
		panic(err)
	}
	commits, err := lru.New[Hash, *Commit](size)
	if err != nil {
		panic(err)
	}
	return &objectCache{blobs: blobs, commits: commits}
}

func (c *objectCache) getBlob(h Hash) ([]byte, bool) {
	return c.blobs.Get(h)
}

func (c *objectCache) putBlob(h Hash, data []byte) {
	c.blobs.Add(h, data)
}

func (c *objectCache) hasBlob(h Hash) bool {
	return c.blobs.Contains(h)
}

func (c *objectCache) getCommit(h Hash) (*Commit, bool) {
	return c.commits.Get(h)
}

func (c *objectCache) putCommit(h Hash, commit *Commit) {
	c.commits.Add(h, commit)
}

func (c *objectCache) hasCommit(h Hash) bool {
	return c.commits.Contains(h)
}
