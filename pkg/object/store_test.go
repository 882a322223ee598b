package object

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore_PutGetBlob(t *testing.T) {
	s := NewStore(t.TempDir())
	h, err := s.PutBlob([]byte("A"))
	require.NoError(t, err)

	got, err := s.GetBlob(h)
	require.NoError(t, err)
	require.Equal(t, []byte("A"), got)
}

func TestStore_PutBlobIdempotent(t *testing.T) {
	s := NewStore(t.TempDir())
	h1, err := s.PutBlob([]byte("same"))
	require.NoError(t, err)
	h2, err := s.PutBlob([]byte("same"))
	require.NoError(t, err)
	require.Equal(t, h1, h2)
}

func TestStore_GetBlobMissing(t *testing.T) {
	s := NewStore(t.TempDir())
	_, err := s.GetBlob("deadbeef")
	require.ErrorIs(t, err, ErrMissingObject)
}

func TestStore_PutGetCommit(t *testing.T) {
	s := NewStore(t.TempDir())
	c := NewInitialCommit()
	h, err := s.PutCommit(c)
	require.NoError(t, err)

	got, err := s.GetCommit(h)
	require.NoError(t, err)
	require.Equal(t, c.Message, got.Message)

	// Hash stability (spec §8 property 2).
	require.Equal(t, HashBytes(MarshalCommit(got)), h)
}

func TestStore_GetCommitMissing(t *testing.T) {
	s := NewStore(t.TempDir())
	_, err := s.GetCommit("deadbeef")
	require.ErrorIs(t, err, ErrNoSuchCommit)
}

func TestStore_ResolvePrefix(t *testing.T) {
	s := NewStore(t.TempDir())
	h, err := s.PutCommit(NewInitialCommit())
	require.NoError(t, err)

	resolved, err := s.ResolvePrefix(string(h)[:8])
	require.NoError(t, err)
	require.Equal(t, h, resolved)
}

func TestStore_ResolvePrefixNoMatch(t *testing.T) {
	s := NewStore(t.TempDir())
	resolved, err := s.ResolvePrefix("ffffffff")
	require.NoError(t, err)
	require.Equal(t, Hash(""), resolved)
}
