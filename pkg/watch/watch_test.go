package watch

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlet/pkg/repo"
)

func TestShouldIgnore_GitletDir(t *testing.T) {
	require.True(t, shouldIgnore("/repo/.gitlet/commits/abc", "/repo/.gitlet"))
	require.True(t, shouldIgnore("/repo/.gitlet", "/repo/.gitlet"))
}

func TestShouldIgnore_WorkingFile(t *testing.T) {
	require.False(t, shouldIgnore("/repo/a.txt", "/repo/.gitlet"))
	require.False(t, shouldIgnore("/repo/.gitletconfig", "/repo/.gitlet"))
}

func TestReportStatus_AutoAddsModifiedTrackedFile(t *testing.T) {
	dir := t.TempDir()
	r, err := repo.Init(dir)
	require.NoError(t, err)
	m, err := r.LoadManagement()
	require.NoError(t, err)

	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("A"), 0o644))
	require.NoError(t, repo.Add(r, m, "a.txt"))
	_, err = repo.Commit(r, m, "m1", nil)
	require.NoError(t, err)
	require.NoError(t, r.SaveManagement(m))

	require.NoError(t, os.WriteFile(path, []byte("B"), 0o644))

	var out bytes.Buffer
	require.NoError(t, reportStatus(r, &out))
	require.Contains(t, out.String(), "1 auto-added")
	require.True(t, r.IsStaged("a.txt"))

	m2, err := r.LoadManagement()
	require.NoError(t, err)
	require.True(t, m2.BranchExists("master"))
}
