// Package sign implements optional SSH-based signing of commits. A
// signature is a detached sidecar file, .gitlet/commits/<hash>.sig; it
// is never part of the bytes that hash to <hash>, so signing a commit
// after the fact cannot change its identity.
package sign

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/ssh"

	"gitlet/pkg/object"
)

const signaturePrefix = "sshsig-v1"

// Signer signs commit payloads with a loaded SSH private key.
type Signer struct {
	signer ssh.Signer
	pubB64 string
}

// LoadSigner reads and parses an SSH private key from keyPath. If
// keyPath is empty, the usual ~/.ssh default key names are tried in
// order.
func LoadSigner(keyPath string) (*Signer, error) {
	resolved, err := resolveKeyPath(keyPath)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("read signing key %q: %w", resolved, err)
	}
	signer, err := ssh.ParsePrivateKey(raw)
	if err != nil {
		return nil, fmt.Errorf("parse signing key %q: %w", resolved, err)
	}
	pubB64 := base64.StdEncoding.EncodeToString(signer.PublicKey().Marshal())
	return &Signer{signer: signer, pubB64: pubB64}, nil
}

// SignCommit signs the hash bytes of a commit and returns the encoded
// signature line to store at commits/<hash>.sig.
func (s *Signer) SignCommit(h object.Hash) (string, error) {
	sig, err := s.signer.Sign(rand.Reader, []byte(h))
	if err != nil {
		return "", fmt.Errorf("sign commit %s: %w", h, err)
	}
	sigB64 := base64.StdEncoding.EncodeToString(sig.Blob)
	return fmt.Sprintf("%s:%s:%s:%s", signaturePrefix, sig.Format, s.pubB64, sigB64), nil
}

// SidecarPath returns the path a commit's detached signature is stored
// at, alongside its (content-addressed, signature-independent) object
// file.
func SidecarPath(gitletDir string, h object.Hash) string {
	return filepath.Join(gitletDir, "commits", string(h)+".sig")
}

// Verify checks that sigLine is a well-formed signature produced by
// this package for commit hash h against the embedded public key. It
// does not check the public key against any trust store; that policy
// decision is left to the caller.
func Verify(h object.Hash, sigLine string) (ssh.PublicKey, error) {
	parts := strings.SplitN(sigLine, ":", 4)
	if len(parts) != 4 || parts[0] != signaturePrefix {
		return nil, fmt.Errorf("verify commit %s: malformed signature", h)
	}
	format, pubB64, sigB64 := parts[1], parts[2], parts[3]

	pubBytes, err := base64.StdEncoding.DecodeString(pubB64)
	if err != nil {
		return nil, fmt.Errorf("verify commit %s: decode public key: %w", h, err)
	}
	pub, err := ssh.ParsePublicKey(pubBytes)
	if err != nil {
		return nil, fmt.Errorf("verify commit %s: parse public key: %w", h, err)
	}
	sigBytes, err := base64.StdEncoding.DecodeString(sigB64)
	if err != nil {
		return nil, fmt.Errorf("verify commit %s: decode signature: %w", h, err)
	}

	sig := &ssh.Signature{Format: format, Blob: sigBytes}
	if err := pub.Verify([]byte(h), sig); err != nil {
		return nil, fmt.Errorf("verify commit %s: signature does not match: %w", h, err)
	}
	return pub, nil
}

func resolveKeyPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		return expandUserPath(path)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	candidates := []string{
		filepath.Join(home, ".ssh", "id_ed25519"),
		filepath.Join(home, ".ssh", "id_ecdsa"),
		filepath.Join(home, ".ssh", "id_rsa"),
	}
	for _, candidate := range candidates {
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no default SSH private key found in ~/.ssh (id_ed25519, id_ecdsa, id_rsa)")
}

func expandUserPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}
	return filepath.Abs(path)
}
