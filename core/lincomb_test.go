package core_test

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/augend/ddar/core"
)

func TestLinComb_AddSubScale(t *testing.T) {
	arena := core.NewProofArena()
	s1 := arena.New("given", "a")
	s2 := arena.New("given", "b")

	a := core.NewLinComb(s1)
	a.SetTerm(1, core.RatInt(1, 2))
	a.SetTerm(2, core.RatInt(1, 3))

	b := core.NewLinComb(s2)
	b.SetTerm(2, core.RatInt(-1, 3))
	b.SetTerm(3, core.RatInt(1, 1))

	sum := a.Add(b)
	require.True(t, sum.Term(2).Sign() == 0, "1/3 - 1/3 must cancel to the zero coefficient")
	require.Equal(t, core.RatInt(1, 2), sum.Term(1))
	require.Equal(t, core.RatInt(1, 1), sum.Term(3))
	require.ElementsMatch(t, []*core.ProofNode{s1, s2}, sum.Sources())
	if diff := cmp.Diff([]int{1, 3}, sum.VarIDs()); diff != "" {
		t.Errorf("surviving variable set mismatch (-want +got):\n%s", diff)
	}

	diff := a.Sub(a)
	require.True(t, diff.Empty(), "a - a must reduce to the empty comb")

	scaled := a.Scale(core.RatInt(2, 1))
	require.Equal(t, core.RatInt(1, 1), scaled.Term(1))
}

func TestLinComb_Normalize(t *testing.T) {
	c := core.NewLinComb()
	c.SetTerm(5, core.RatInt(2, 3))
	c.SetTerm(7, core.RatInt(4, 1))

	normalized, coeff := c.Normalize(5)
	require.Equal(t, core.RatInt(2, 3), coeff)
	require.Equal(t, core.RatInt(1, 1), normalized.Term(5))
	require.Equal(t, new(big.Rat).SetFrac64(6, 1), normalized.Term(7))
}

func TestLinComb_DivScalarByZeroPanics(t *testing.T) {
	c := core.NewLinComb()
	c.SetTerm(1, core.RatInt(1, 1))
	require.Panics(t, func() { c.DivScalar(new(big.Rat)) })
}

func TestLinComb_NumericValue(t *testing.T) {
	c := core.NewLinComb()
	c.SetTerm(1, core.RatInt(1, 2))
	c.SetTerm(2, core.RatInt(-1, 1))
	got := c.NumericValue(map[int]float64{1: 4, 2: 1})
	require.InDelta(t, 1.0, got, 1e-12)
}
