package sign

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"

	"gitlet/pkg/object"
)

func writeTestKey(t *testing.T) string {
	t.Helper()
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	block, err := ssh.MarshalPrivateKey(priv, "")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "id_ed25519")
	require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(block), 0o600))
	return path
}

func TestSignAndVerify_RoundTrip(t *testing.T) {
	keyPath := writeTestKey(t)
	signer, err := LoadSigner(keyPath)
	require.NoError(t, err)

	h := object.Hash("deadbeefdeadbeefdeadbeefdeadbeefdeadbeef")
	sigLine, err := signer.SignCommit(h)
	require.NoError(t, err)

	_, err = Verify(h, sigLine)
	require.NoError(t, err)
}

func TestVerify_RejectsMismatchedHash(t *testing.T) {
	keyPath := writeTestKey(t)
	signer, err := LoadSigner(keyPath)
	require.NoError(t, err)

	h := object.Hash("deadbeefdeadbeefdeadbeefdeadbeefdeadbeef")
	sigLine, err := signer.SignCommit(h)
	require.NoError(t, err)

	other := object.Hash("0000000000000000000000000000000000000000")
	_, err = Verify(other, sigLine)
	require.Error(t, err)
}

func TestVerify_MalformedSignature(t *testing.T) {
	_, err := Verify(object.Hash("abc"), "not-a-signature")
	require.Error(t, err)
}

func TestLoadSigner_MissingKey(t *testing.T) {
	_, err := LoadSigner(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestSidecarPath(t *testing.T) {
	got := SidecarPath("/repo/.gitlet", object.Hash("abc123"))
	require.Equal(t, "/repo/.gitlet/commits/abc123.sig", got)
}
