package repo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitlet/pkg/object"
)

func TestLog_FirstParentOnly(t *testing.T) {
	r, m := newTestRepo(t)
	writeWorking(t, r, "a.txt", "A")
	require.NoError(t, Add(r, m, "a.txt"))
	m1, err := Commit(r, m, "m1", nil)
	require.NoError(t, err)

	writeWorking(t, r, "a.txt", "B")
	require.NoError(t, Add(r, m, "a.txt"))
	m2, err := Commit(r, m, "m2", nil)
	require.NoError(t, err)

	entries, err := Log(r, m.Head)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, m2, entries[0].Hash)
	require.Equal(t, m1, entries[1].Hash)
	require.Equal(t, "initial commit", entries[2].Commit.Message)
}

func TestGlobalLog_IncludesAllBranches(t *testing.T) {
	r, m := newTestRepo(t)
	require.NoError(t, Branch(m, "other"))
	require.NoError(t, CheckoutBranch(r, m, "other"))
	writeWorking(t, r, "a.txt", "A")
	require.NoError(t, Add(r, m, "a.txt"))
	_, err := Commit(r, m, "on-other", nil)
	require.NoError(t, err)

	entries, err := GlobalLog(r)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestFind_ExactMessage(t *testing.T) {
	r, m := newTestRepo(t)
	writeWorking(t, r, "a.txt", "A")
	require.NoError(t, Add(r, m, "a.txt"))
	h, err := Commit(r, m, "unique message", nil)
	require.NoError(t, err)

	hits, err := Find(r, "unique message")
	require.NoError(t, err)
	require.Equal(t, []object.Hash{h}, hits)
}

func TestFind_NoMatch(t *testing.T) {
	r, _ := newTestRepo(t)
	_, err := Find(r, "nope")
	require.ErrorIs(t, err, ErrNoCommitsFound)
}
