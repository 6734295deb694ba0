package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/augend/ddar/core"
)

func TestProofArena_IdentityEquality(t *testing.T) {
	arena := core.NewProofArena()
	a := arena.New("given", "coll(A,B,C)")
	b := arena.New("given", "coll(A,B,C)")

	require.NotSame(t, a, b, "two nodes with identical content must remain distinct identities")
	require.Equal(t, 0, a.ID)
	require.Equal(t, 1, b.ID)

	child := arena.New("force_collinear", "coll(A,B,C,D)", a, b)
	require.Len(t, child.Parents, 2)
	require.Equal(t, 3, arena.Len())
}
