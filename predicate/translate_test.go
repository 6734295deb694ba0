package predicate_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/augend/ddar/core"
	"github.com/augend/ddar/geodb"
	"github.com/augend/ddar/predicate"
)

func square(t *testing.T) *geodb.DB {
	t.Helper()
	arena := core.NewProofArena()
	db := geodb.New(arena)
	pts := []core.Point{
		mustPoint(t, "A", 0, 0),
		mustPoint(t, "B", 1, 0),
		mustPoint(t, "C", 1, 1),
		mustPoint(t, "D", 0, 1),
	}
	for _, p := range pts {
		require.NoError(t, db.AddPoint(p))
	}
	return db
}

func mustPoint(t *testing.T, name string, x, y float64) core.Point {
	t.Helper()
	p, err := core.NewPoint(name, x, y)
	require.NoError(t, err)
	return p
}

func TestForceAndCheck_Perp(t *testing.T) {
	db := square(t)
	arena := core.NewProofArena()
	p := predicate.Predicate{Name: "perp", Points: []string{"A", "B", "B", "C"}}

	changed, err := predicate.Force(db, p, arena.New("given", "AB perp BC"))
	require.NoError(t, err)
	require.True(t, changed)

	ok, err := predicate.Check(db, p)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestForceAndCheck_Cong(t *testing.T) {
	db := square(t)
	arena := core.NewProofArena()
	p := predicate.Predicate{Name: "cong", Points: []string{"A", "B", "B", "C"}}

	changed, err := predicate.Force(db, p, arena.New("given", "AB = BC"))
	require.NoError(t, err)
	require.True(t, changed)

	ok, err := predicate.Check(db, p)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestForce_Overlap(t *testing.T) {
	db := square(t)
	arena := core.NewProofArena()
	p := predicate.Predicate{Name: "overlap", Points: []string{"A", "B"}}

	changed, err := predicate.Force(db, p, arena.New("given", "A = B"))
	require.NoError(t, err)
	require.True(t, changed)

	ok, err := predicate.Check(db, p)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestForce_RconstIsNumericallyConsistent(t *testing.T) {
	db := square(t)
	arena := core.NewProofArena()
	p := predicate.Predicate{Name: "rconst", Points: []string{"A", "B", "A", "D"}, Constants: []*big.Rat{big.NewRat(1, 1)}}

	changed, err := predicate.Force(db, p, arena.New("given", "AB/AD = 1"))
	require.NoError(t, err)
	require.True(t, changed)
}

func TestCompute_AcomputeQueryOnlyAndConstantAngle(t *testing.T) {
	db := square(t)
	arena := core.NewProofArena()
	perp := predicate.Predicate{Name: "perp", Points: []string{"A", "B", "B", "C"}}
	_, err := predicate.Force(db, perp, arena.New("given", "AB perp BC"))
	require.NoError(t, err)

	_, err = predicate.Force(db, predicate.Predicate{Name: "acompute", Points: []string{"A", "B", "B", "C"}}, arena.New("given", "unused"))
	require.ErrorIs(t, err, predicate.ErrQueryOnly)

	deg, ok, err := predicate.Compute(db, predicate.Predicate{Name: "acompute", Points: []string{"A", "B", "B", "C"}})
	require.NoError(t, err)
	require.True(t, ok)
	require.InDelta(t, 90.0, deg, 1e-6)

	_, ok, err = predicate.Compute(db, predicate.Predicate{Name: "acompute", Points: []string{"A", "C", "B", "D"}})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestForce_WrongArity(t *testing.T) {
	db := square(t)
	arena := core.NewProofArena()
	_, err := predicate.Force(db, predicate.Predicate{Name: "perp", Points: []string{"A", "B"}}, arena.New("given", "bad"))
	require.ErrorIs(t, err, predicate.ErrWrongArity)
}

func TestForce_UnknownPredicate(t *testing.T) {
	db := square(t)
	arena := core.NewProofArena()
	_, err := predicate.Force(db, predicate.Predicate{Name: "nonsense"}, arena.New("given", "bad"))
	require.ErrorIs(t, err, predicate.ErrUnknownPredicate)
}
