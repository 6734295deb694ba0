package ddar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/augend/ddar"
	"github.com/augend/ddar/predicate"
)

func square(t *testing.T) *ddar.Engine {
	t.Helper()
	e := ddar.New()
	require.NoError(t, e.AddPoint("A", 0, 0))
	require.NoError(t, e.AddPoint("B", 1, 0))
	require.NoError(t, e.AddPoint("C", 1, 1))
	require.NoError(t, e.AddPoint("D", 0, 1))
	return e
}

func TestForcePredAndCheckPred_Perp(t *testing.T) {
	e := square(t)
	p := predicate.Predicate{Name: "perp", Points: []string{"A", "B", "B", "C"}}

	changed, err := e.ForcePred(p)
	require.NoError(t, err)
	require.True(t, changed)

	ok, err := e.CheckPred(p)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestGetProof_RendersTheAssertedFact(t *testing.T) {
	e := square(t)
	p := predicate.Predicate{Name: "perp", Points: []string{"A", "B", "B", "C"}}

	_, err := e.ForcePred(p)
	require.NoError(t, err)

	lines, err := e.GetProof(p)
	require.NoError(t, err)
	require.NotEmpty(t, lines)
}

func TestGetProof_FailsForUnprovenFact(t *testing.T) {
	e := square(t)
	p := predicate.Predicate{Name: "perp", Points: []string{"A", "C", "B", "D"}}

	_, err := e.GetProof(p)
	require.ErrorIs(t, err, ddar.ErrNotProven)
}

func TestGetProof_OverlapHasNoProofTrace(t *testing.T) {
	e := square(t)
	p := predicate.Predicate{Name: "overlap", Points: []string{"A", "B"}}
	_, err := e.ForcePred(p)
	require.NoError(t, err)

	_, err = e.GetProof(p)
	require.ErrorIs(t, err, ddar.ErrNoProofAvailable)
}

func TestDeductionClosure_DerivesSimilarityFromCongruence(t *testing.T) {
	e := ddar.New(ddar.WithStepBudget(10))
	require.NoError(t, e.AddPoint("A", 0, 0))
	require.NoError(t, e.AddPoint("B", 4, 0))
	require.NoError(t, e.AddPoint("C", 0, 3))
	require.NoError(t, e.AddPoint("A2", 10, 0))
	require.NoError(t, e.AddPoint("B2", 14, 0))
	require.NoError(t, e.AddPoint("C2", 10, 3))

	for _, pr := range [][]string{
		{"A", "B", "A2", "B2"},
		{"A", "C", "A2", "C2"},
		{"B", "C", "B2", "C2"},
	} {
		_, err := e.ForcePred(predicate.Predicate{Name: "cong", Points: pr})
		require.NoError(t, err)
	}

	_, err := e.DeductionClosure()
	require.NoError(t, err)

	ok, err := e.CheckPred(predicate.Predicate{
		Name:   "eqangle",
		Points: []string{"A", "C", "A", "B", "A2", "C2", "A2", "B2"},
	})
	require.NoError(t, err)
	require.True(t, ok)
}

func TestComputeAngle_ConstantAfterPerp(t *testing.T) {
	e := square(t)
	_, err := e.ForcePred(predicate.Predicate{Name: "perp", Points: []string{"A", "B", "B", "C"}})
	require.NoError(t, err)

	deg, ok, err := e.ComputeAngle("A", "B", "B", "C")
	require.NoError(t, err)
	require.True(t, ok)
	require.InDelta(t, 90.0, deg, 1e-6)
}

func TestAddPoint_RejectsDuplicateName(t *testing.T) {
	e := square(t)
	err := e.AddPoint("A", 5, 5)
	require.Error(t, err)
}
