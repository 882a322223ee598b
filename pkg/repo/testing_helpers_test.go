package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestRepo initializes a fresh repository under a temp directory and
// returns it with its loaded Management record.
func newTestRepo(t *testing.T) (*Repo, *Management) {
	t.Helper()
	dir := t.TempDir()
	r, err := Init(dir)
	require.NoError(t, err)
	m, err := r.LoadManagement()
	require.NoError(t, err)
	return r, m
}

func writeWorking(t *testing.T, r *Repo, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(r.RootDir, path), []byte(content), 0o644))
}

func readWorking(t *testing.T, r *Repo, path string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(r.RootDir, path))
	require.NoError(t, err)
	return string(data)
}
