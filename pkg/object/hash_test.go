package object

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashBytes_Deterministic(t *testing.T) {
	h1 := HashBytes([]byte("hello"))
	h2 := HashBytes([]byte("hello"))
	require.Equal(t, h1, h2)
	require.Len(t, string(h1), 40)
}

func TestHashBytes_DiffersByContent(t *testing.T) {
	require.NotEqual(t, HashBytes([]byte("A")), HashBytes([]byte("B")))
}

func TestHashBytes_IndependentOfPath(t *testing.T) {
	// Scenario from spec §8 property 3: identical bytes hash identically
	// regardless of the path they came from. Hash doesn't take a path at
	// all, so this is true by construction; the test documents the
	// invariant at the API boundary.
	a := HashBytes([]byte("same content"))
	b := HashBytes([]byte("same content"))
	require.Equal(t, a, b)
}
