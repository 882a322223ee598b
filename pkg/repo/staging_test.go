package repo

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdd_FileDoesNotExist(t *testing.T) {
	r, m := newTestRepo(t)
	err := Add(r, m, "missing.txt")
	require.ErrorIs(t, err, ErrFileDoesNotExist)
}

func TestAdd_UnchangedContentUnstages(t *testing.T) {
	r, m := newTestRepo(t)
	writeWorking(t, r, "a.txt", "A")
	require.NoError(t, Add(r, m, "a.txt"))
	_, err := Commit(r, m, "m1", nil)
	require.NoError(t, err)

	// Re-stage, then add again with content identical to head: should
	// clear staging (§4.5 step 2).
	writeWorking(t, r, "a.txt", "B")
	require.NoError(t, Add(r, m, "a.txt"))
	require.True(t, r.IsStaged("a.txt"))

	writeWorking(t, r, "a.txt", "A")
	require.NoError(t, Add(r, m, "a.txt"))
	require.False(t, r.IsStaged("a.txt"))
}

func TestRm_NothingToRemove(t *testing.T) {
	r, m := newTestRepo(t)
	err := Rm(r, m, "nope.txt")
	require.ErrorIs(t, err, ErrNothingToRemove)
}

// TestScenario3_RemoveUndoesTracking follows spec scenario 3.
func TestScenario3_RemoveUndoesTracking(t *testing.T) {
	r, m := newTestRepo(t)
	writeWorking(t, r, "a.txt", "A")
	require.NoError(t, Add(r, m, "a.txt"))
	_, err := Commit(r, m, "m1", nil)
	require.NoError(t, err)

	require.NoError(t, Rm(r, m, "a.txt"))
	_, err = os.Stat(r.WorkingPath("a.txt"))
	require.True(t, os.IsNotExist(err))
	require.Contains(t, m.Removal, "a.txt")

	h2, err := Commit(r, m, "m2", nil)
	require.NoError(t, err)

	entries, err := Log(r, m.Head)
	require.NoError(t, err)
	require.Equal(t, "m2", entries[0].Commit.Message)
	require.Equal(t, h2, entries[0].Hash)

	c2, err := r.Store.GetCommit(h2)
	require.NoError(t, err)
	_, tracked := c2.Tracked["a.txt"]
	require.False(t, tracked)
}
