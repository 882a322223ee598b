package repo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newRemotePair(t *testing.T) (local *Repo, localM *Management, remote *Repo, remoteM *Management) {
	t.Helper()
	local, localM = newTestRepo(t)
	remote, remoteM = newTestRepo(t)
	require.NoError(t, AddRemote(localM, "origin", remote.RootDir))
	return
}

func TestAddRemote_AlreadyExists(t *testing.T) {
	_, m, remote, _ := newRemotePair(t)
	err := AddRemote(m, "origin", remote.RootDir)
	require.ErrorIs(t, err, ErrRemoteExists)
}

func TestRmRemote_NoSuchRemote(t *testing.T) {
	_, m := newTestRepo(t)
	err := RmRemote(m, "ghost")
	require.ErrorIs(t, err, ErrNoSuchRemote)
}

func TestPush_NoRemoteDir(t *testing.T) {
	r, m := newTestRepo(t)
	require.NoError(t, AddRemote(m, "origin", "/nonexistent/path/for/gitlet/test"))
	err := Push(r, m, "origin", "master")
	require.ErrorIs(t, err, ErrNoRemoteDir)
}

func TestPush_FastForwardsRemoteBranch(t *testing.T) {
	local, localM, remote, remoteM := newRemotePair(t)

	writeWorking(t, local, "a.txt", "A")
	require.NoError(t, Add(local, localM, "a.txt"))
	localHead, err := Commit(local, localM, "c1", nil)
	require.NoError(t, err)

	require.NoError(t, Push(local, localM, "origin", "master"))

	remoteM2, err := remote.LoadManagement()
	require.NoError(t, err)
	require.Equal(t, localHead, remoteM2.Branches["master"])
	require.Equal(t, localHead, remoteM2.Head)
	_ = remoteM
}

func TestPush_RejectsNonFastForward(t *testing.T) {
	local, localM, remote, remoteM := newRemotePair(t)

	writeWorking(t, remote, "r.txt", "R")
	require.NoError(t, Add(remote, remoteM, "r.txt"))
	_, err := Commit(remote, remoteM, "remote-only", nil)
	require.NoError(t, err)
	require.NoError(t, remote.SaveManagement(remoteM))

	writeWorking(t, local, "a.txt", "A")
	require.NoError(t, Add(local, localM, "a.txt"))
	_, err = Commit(local, localM, "local-only", nil)
	require.NoError(t, err)

	err = Push(local, localM, "origin", "master")
	require.ErrorIs(t, err, ErrPushNotFastForward)
}

func TestFetch_CreatesTrackingBranch(t *testing.T) {
	local, localM, remote, remoteM := newRemotePair(t)

	writeWorking(t, remote, "r.txt", "R")
	require.NoError(t, Add(remote, remoteM, "r.txt"))
	remoteHead, err := Commit(remote, remoteM, "remote-commit", nil)
	require.NoError(t, err)
	require.NoError(t, remote.SaveManagement(remoteM))

	require.NoError(t, Fetch(local, localM, "origin", "master"))
	require.Equal(t, remoteHead, localM.Branches["origin/master"])

	_, err = local.Store.GetCommit(remoteHead)
	require.NoError(t, err)
}

func TestFetch_NoSuchRemoteBranch(t *testing.T) {
	local, localM, _, _ := newRemotePair(t)
	err := Fetch(local, localM, "origin", "ghost-branch")
	require.ErrorIs(t, err, ErrNoSuchRemoteBranch)
}

func TestPull_MergesFetchedBranch(t *testing.T) {
	local, localM, remote, remoteM := newRemotePair(t)

	writeWorking(t, remote, "r.txt", "R")
	require.NoError(t, Add(remote, remoteM, "r.txt"))
	remoteHead, err := Commit(remote, remoteM, "remote-commit", nil)
	require.NoError(t, err)
	require.NoError(t, remote.SaveManagement(remoteM))

	_, err = Pull(local, localM, "origin", "master")
	require.ErrorIs(t, err, ErrFastForward)
	require.Equal(t, remoteHead, localM.Head)
}
