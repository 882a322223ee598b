package repo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitlet/pkg/object"
)

func TestManagement_RoundTrip(t *testing.T) {
	m := NewManagement()
	m.CurrentBranch = "master"
	m.Head = "aaaa"
	m.UpdateBranch("master", "aaaa")
	m.UpdateBranch("other", "bbbb")
	m.AddRemoval("a.txt")
	m.Remotes["origin"] = "/tmp/peer"

	data := marshalManagement(m)
	got, err := unmarshalManagement(data)
	require.NoError(t, err)

	require.Equal(t, m.CurrentBranch, got.CurrentBranch)
	require.Equal(t, m.Head, got.Head)
	require.Equal(t, m.Branches, got.Branches)
	require.Equal(t, m.Removal, got.Removal)
	require.Equal(t, m.Remotes, got.Remotes)
}

func TestManagement_RemovalDedup(t *testing.T) {
	m := NewManagement()
	m.AddRemoval("a.txt")
	m.AddRemoval("a.txt")
	require.Equal(t, []string{"a.txt"}, m.Removal)

	m.DeleteFromRemoval("a.txt")
	require.Empty(t, m.Removal)
}

func TestManagement_LoadSave(t *testing.T) {
	dir := t.TempDir()
	r := &Repo{RootDir: dir, GitletDir: dir, Store: object.NewStore(dir)}

	m := NewManagement()
	m.CurrentBranch = "master"
	m.Head = "deadbeef"
	m.UpdateBranch("master", "deadbeef")

	require.NoError(t, r.SaveManagement(m))

	got, err := r.LoadManagement()
	require.NoError(t, err)
	require.Equal(t, m.CurrentBranch, got.CurrentBranch)
	require.Equal(t, m.Head, got.Head)
	require.Equal(t, m.Branches, got.Branches)
}
