package geodb_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/augend/ddar/core"
	"github.com/augend/ddar/geodb"
)

func mustPoint(t *testing.T, name string, x, y float64) core.Point {
	t.Helper()
	p, err := core.NewPoint(name, x, y)
	require.NoError(t, err)
	return p
}

func TestForceCollinear_MergesThroughSharedPair(t *testing.T) {
	arena := core.NewProofArena()
	db := geodb.New(arena)

	a := mustPoint(t, "A", 0, 0)
	b := mustPoint(t, "B", 1, 0)
	c := mustPoint(t, "C", 2, 0)
	d := mustPoint(t, "D", 3, 0)
	for _, p := range []core.Point{a, b, c, d} {
		require.NoError(t, db.AddPoint(p))
	}

	cause1 := arena.New("given", "A,B,C collinear")
	changed, err := db.ForceCollinear("A", "B", "C", cause1)
	require.NoError(t, err)
	require.True(t, changed)

	cause2 := arena.New("given", "B,C,D collinear")
	changed, err = db.ForceCollinear("B", "C", "D", cause2)
	require.NoError(t, err)
	require.True(t, changed)

	lines := db.Lines()
	require.Len(t, lines, 1)
	require.Len(t, lines[0].Points, 4)
}

func TestForceConcyclic_DegenerateRoutesToCollinear(t *testing.T) {
	arena := core.NewProofArena()
	db := geodb.New(arena)

	pts := []core.Point{
		mustPoint(t, "A", 0, 0),
		mustPoint(t, "B", 1, 0),
		mustPoint(t, "C", 2, 0),
		mustPoint(t, "D", 0, 1),
	}
	for _, p := range pts {
		require.NoError(t, db.AddPoint(p))
	}

	changed, err := db.ForceConcyclic("A", "B", "C", "D", arena.New("given", "A,B,C,D cyclic"))
	require.NoError(t, err)
	require.True(t, changed)
	require.Len(t, db.Lines(), 1)
	require.Empty(t, db.Circles())
}

func TestForceConcyclic_NonDegenerateBuildsCircle(t *testing.T) {
	arena := core.NewProofArena()
	db := geodb.New(arena)

	// Four points on the unit circle.
	pts := []core.Point{
		mustPoint(t, "A", 1, 0),
		mustPoint(t, "B", 0, 1),
		mustPoint(t, "C", -1, 0),
		mustPoint(t, "D", 0, -1),
	}
	for _, p := range pts {
		require.NoError(t, db.AddPoint(p))
	}

	changed, err := db.ForceConcyclic("A", "B", "C", "D", arena.New("given", "A,B,C,D cyclic"))
	require.NoError(t, err)
	require.True(t, changed)
	circles := db.Circles()
	require.Len(t, circles, 1)
	require.Len(t, circles[0].Points, 4)
	require.InDelta(t, 1.0, circles[0].Value.R, 1e-9)
}

func TestForceEqualPoints_ReconcilesPairVariables(t *testing.T) {
	arena := core.NewProofArena()
	db := geodb.New(arena)

	a := mustPoint(t, "A", 0, 0)
	b := mustPoint(t, "B", 1, 1)
	c := mustPoint(t, "C", 2, 2) // collinear with A and B; merged onto A below
	for _, p := range []core.Point{a, b, c} {
		require.NoError(t, db.AddPoint(p))
	}

	// Touch pair variables for (A,B) and (C,B) before merging A and C.
	dirAB := db.PairDir("A", "B")
	dirCB := db.PairDir("C", "B")

	changed, err := db.ForceEqualPoints("A", "C", arena.New("given", "A = C"))
	require.NoError(t, err)
	require.True(t, changed)

	survivor, err := db.Resolve("A")
	require.NoError(t, err)
	other, err := db.Resolve("C")
	require.NoError(t, err)
	require.Equal(t, survivor, other)

	// The colliding pair variables dir(A,B) and dir(C,B) were forced parallel.
	require.True(t, db.Angle().IsZero(db.Angle().Diff(dirAB, dirCB)))

	// Re-merging is a no-op.
	changed, err = db.ForceEqualPoints("A", "C", arena.New("given", "A = C again"))
	require.NoError(t, err)
	require.False(t, changed)
}
