package proof_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/augend/ddar/core"
	"github.com/augend/ddar/proof"
)

func TestTopologicalSort_OrdersParentsBeforeChildren(t *testing.T) {
	arena := core.NewProofArena()
	given1 := arena.New("given", "A")
	given2 := arena.New("given", "B")
	derived := arena.New("force_zero", "C", given1, given2)

	order, err := proof.TopologicalSort(derived)
	require.NoError(t, err)
	require.Len(t, order, 3)
	require.Equal(t, derived, order[2])
	require.ElementsMatch(t, []*core.ProofNode{given1, given2}, order[:2])
}

func TestTopologicalSort_DetectsCycle(t *testing.T) {
	a := &core.ProofNode{ID: 0, Rule: "r", Statement: "a"}
	b := &core.ProofNode{ID: 1, Rule: "r", Statement: "b", Parents: []*core.ProofNode{a}}
	a.Parents = []*core.ProofNode{b} // manually constructed cycle, outside arena discipline

	_, err := proof.TopologicalSort(b)
	require.ErrorIs(t, err, proof.ErrCycleDetected)
}

func TestRender_NamesParentsByIndex(t *testing.T) {
	arena := core.NewProofArena()
	given := arena.New("given", "AB = CD")
	derived := arena.New("force_zero", "CD = EF", given)

	lines, err := proof.Render(derived)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	require.Contains(t, lines[1], "from 1")
}
