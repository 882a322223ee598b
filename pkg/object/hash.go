// Package object implements gitlet's content-addressed store: blobs and
// commits, their canonical byte encodings, and the hash used to name them.
package object

import (
	"crypto/sha1"
	"encoding/hex"
)

// Hash is a 40-character lowercase hex-encoded SHA-1 digest.
type Hash string

// Empty reports whether h is the zero hash (no object).
func (h Hash) Empty() bool {
	return h == ""
}

// String returns the canonical 40-character hex rendering.
func (h Hash) String() string {
	return string(h)
}

// HashBytes computes the raw SHA-1 hash of data, with no header or
// envelope, matching the blob-hashing rule in §4.1.
func HashBytes(data []byte) Hash {
	sum := sha1.Sum(data)
	return Hash(hex.EncodeToString(sum[:]))
}
