package saturation_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/augend/ddar/core"
	"github.com/augend/ddar/geodb"
	"github.com/augend/ddar/predicate"
	"github.com/augend/ddar/saturation"
)

func mustPoint(t *testing.T, name string, x, y float64) core.Point {
	t.Helper()
	p, err := core.NewPoint(name, x, y)
	require.NoError(t, err)
	return p
}

// TestSimilarTrianglesPass_SSSCongruenceImpliesAngleEquality builds two
// congruent 3-4-5 triangles, forces all three corresponding sides
// congruent (an SSS witness with ratio 1), and checks the similar-triangles
// pass derives the corresponding angle equality without it being asserted
// directly.
func TestSimilarTrianglesPass_SSSCongruenceImpliesAngleEquality(t *testing.T) {
	arena := core.NewProofArena()
	db := geodb.New(arena)
	pts := []core.Point{
		mustPoint(t, "A", 0, 0),
		mustPoint(t, "B", 4, 0),
		mustPoint(t, "C", 0, 3),
		mustPoint(t, "A2", 10, 0),
		mustPoint(t, "B2", 14, 0),
		mustPoint(t, "C2", 10, 3),
	}
	for _, p := range pts {
		require.NoError(t, db.AddPoint(p))
	}

	cause := arena.New("given", "congruent triangles")
	for _, pr := range [][4]string{
		{"A", "B", "A2", "B2"},
		{"A", "C", "A2", "C2"},
		{"B", "C", "B2", "C2"},
	} {
		_, err := predicate.Force(db, predicate.Predicate{Name: "cong", Points: pr[:]}, cause)
		require.NoError(t, err)
	}

	eng := saturation.New(db, arena, zerolog.Nop())
	_, err := eng.RunToFixedPoint(10)
	require.NoError(t, err)

	require.True(t, db.Angle().CheckEqualAngles(
		db.PairDir("A", "C"), db.PairDir("A", "B"),
		db.PairDir("A2", "C2"), db.PairDir("A2", "B2"),
	))
}

// TestPointMergePass_MergesCoincidentIntersection builds two distinctly
// named points at the same coordinates, each lying on two transversally
// crossing lines, and checks the merge pass identifies them.
func TestPointMergePass_MergesCoincidentIntersection(t *testing.T) {
	arena := core.NewProofArena()
	db := geodb.New(arena)
	pts := []core.Point{
		mustPoint(t, "A", 0, 0),
		mustPoint(t, "B", 2, 2),
		mustPoint(t, "C", 0, 2),
		mustPoint(t, "D", 2, 0),
		mustPoint(t, "X", 1, 1), // A-B diagonal ∩ C-D diagonal
		mustPoint(t, "Y", 1, 1), // same location, different name
	}
	for _, p := range pts {
		require.NoError(t, db.AddPoint(p))
	}

	cause := arena.New("given", "collinear constructions")
	_, err := db.ForceCollinear("A", "X", "B", cause)
	require.NoError(t, err)
	_, err = db.ForceCollinear("C", "Y", "D", cause)
	require.NoError(t, err)

	eng := saturation.New(db, arena, zerolog.Nop())
	_, err = eng.RunToFixedPoint(5)
	require.NoError(t, err)

	rx, err := db.Resolve("X")
	require.NoError(t, err)
	ry, err := db.Resolve("Y")
	require.NoError(t, err)
	require.Equal(t, rx, ry)
}

func TestRunToFixedPoint_TerminatesOnEmptyDB(t *testing.T) {
	arena := core.NewProofArena()
	db := geodb.New(arena)
	eng := saturation.New(db, arena, zerolog.Nop())
	sweeps, err := eng.RunToFixedPoint(0)
	require.NoError(t, err)
	require.Equal(t, 1, sweeps)
}
