package repo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckWorkingTreeSafety_BlocksUntrackedOverwrite(t *testing.T) {
	r, m := newTestRepo(t)
	head, err := r.Store.GetCommit(m.Head)
	require.NoError(t, err)

	require.NoError(t, Branch(m, "other"))
	require.NoError(t, CheckoutBranch(r, m, "other"))
	writeWorking(t, r, "a.txt", "A")
	require.NoError(t, Add(r, m, "a.txt"))
	_, err = Commit(r, m, "c1", nil)
	require.NoError(t, err)
	target, err := r.Store.GetCommit(m.Head)
	require.NoError(t, err)

	require.NoError(t, CheckoutBranch(r, m, "master"))
	writeWorking(t, r, "a.txt", "untracked-conflict")

	err = CheckWorkingTreeSafety(r, head, target)
	require.ErrorIs(t, err, ErrUntrackedOverwrite)
}

func TestCheckWorkingTreeSafety_AllowsTrackedOverwrite(t *testing.T) {
	r, m := newTestRepo(t)
	writeWorking(t, r, "a.txt", "A")
	require.NoError(t, Add(r, m, "a.txt"))
	_, err := Commit(r, m, "m1", nil)
	require.NoError(t, err)
	head, err := r.Store.GetCommit(m.Head)
	require.NoError(t, err)

	writeWorking(t, r, "a.txt", "B")
	require.NoError(t, Add(r, m, "a.txt"))
	_, err = Commit(r, m, "m2", nil)
	require.NoError(t, err)
	target, err := r.Store.GetCommit(m.Head)
	require.NoError(t, err)

	require.NoError(t, CheckWorkingTreeSafety(r, head, target))
}
