package repo

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestScenario2_ModifyNotStaged follows spec scenario 2: after committing
// a.txt="A", overwriting it with "B" must surface as modified.
func TestScenario2_ModifyNotStaged(t *testing.T) {
	r, m := newTestRepo(t)
	writeWorking(t, r, "a.txt", "A")
	require.NoError(t, Add(r, m, "a.txt"))
	_, err := Commit(r, m, "m1", nil)
	require.NoError(t, err)

	writeWorking(t, r, "a.txt", "B")

	st, err := BuildStatus(r, m)
	require.NoError(t, err)
	require.Len(t, st.ModifiedNotStaged, 1)
	require.Equal(t, "a.txt", st.ModifiedNotStaged[0].Path)
	require.Equal(t, "modified", st.ModifiedNotStaged[0].Kind)
}

func TestStatus_DeletedTrackedFile(t *testing.T) {
	r, m := newTestRepo(t)
	writeWorking(t, r, "a.txt", "A")
	require.NoError(t, Add(r, m, "a.txt"))
	_, err := Commit(r, m, "m1", nil)
	require.NoError(t, err)

	require.NoError(t, os.Remove(r.WorkingPath("a.txt")))

	st, err := BuildStatus(r, m)
	require.NoError(t, err)
	require.Len(t, st.ModifiedNotStaged, 1)
	require.Equal(t, "deleted", st.ModifiedNotStaged[0].Kind)
}

func TestStatus_UntrackedFile(t *testing.T) {
	r, m := newTestRepo(t)
	writeWorking(t, r, "u.txt", "x")

	st, err := BuildStatus(r, m)
	require.NoError(t, err)
	require.Equal(t, []string{"u.txt"}, st.Untracked)
}
