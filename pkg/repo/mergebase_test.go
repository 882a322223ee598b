package repo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitPoint_LinearHistory(t *testing.T) {
	r, m := newTestRepo(t)
	writeWorking(t, r, "a.txt", "A")
	require.NoError(t, Add(r, m, "a.txt"))
	base, err := Commit(r, m, "m1", nil)
	require.NoError(t, err)

	require.NoError(t, Branch(m, "other"))
	require.NoError(t, CheckoutBranch(r, m, "other"))
	writeWorking(t, r, "b.txt", "B")
	require.NoError(t, Add(r, m, "b.txt"))
	otherTip, err := Commit(r, m, "on-other", nil)
	require.NoError(t, err)

	require.NoError(t, CheckoutBranch(r, m, "master"))
	writeWorking(t, r, "c.txt", "C")
	require.NoError(t, Add(r, m, "c.txt"))
	masterTip, err := Commit(r, m, "on-master", nil)
	require.NoError(t, err)

	split, err := SplitPoint(r, masterTip, otherTip)
	require.NoError(t, err)
	require.Equal(t, base, split)
}

func TestIsAncestor_SelfAndDirect(t *testing.T) {
	r, m := newTestRepo(t)
	writeWorking(t, r, "a.txt", "A")
	require.NoError(t, Add(r, m, "a.txt"))
	m1, err := Commit(r, m, "m1", nil)
	require.NoError(t, err)

	ok, err := IsAncestor(r, m1, m1)
	require.NoError(t, err)
	require.True(t, ok)

	writeWorking(t, r, "b.txt", "B")
	require.NoError(t, Add(r, m, "b.txt"))
	m2, err := Commit(r, m, "m2", nil)
	require.NoError(t, err)

	ok, err = IsAncestor(r, m1, m2)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = IsAncestor(r, m2, m1)
	require.NoError(t, err)
	require.False(t, ok)
}
