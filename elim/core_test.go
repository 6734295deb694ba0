package elim_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/augend/ddar/core"
	"github.com/augend/ddar/elim"
)

func TestElimCore_ForceZeroRREF(t *testing.T) {
	arena := core.NewProofArena()
	ec := elim.NewCore()

	x := ec.NewVar(2.0, "x")
	y := ec.NewVar(3.0, "y")

	// x - y = -1, numerically consistent (2-3=-1).
	xy := core.NewLinComb()
	xy.SetTerm(x.ID, core.RatInt(1, 1))
	xy.AddTerm(y.ID, core.RatInt(-1, 1))
	xy.AddTerm(ec.Unit().ID, core.RatInt(1, 1))

	cause1 := arena.New("given", "x - y + 1 = 0")
	changed, err := ec.ForceZero(xy, cause1)
	require.NoError(t, err)
	require.True(t, changed)

	// Re-asserting the same relation must be a no-op (redundancy).
	changed, err = ec.ForceZero(xy, cause1)
	require.NoError(t, err)
	require.False(t, changed)

	// A second, independent relation introduces a second pivot.
	z := ec.NewVar(7.0, "z")
	yz := core.NewLinComb()
	yz.SetTerm(y.ID, core.RatInt(1, 1))
	yz.AddTerm(z.ID, core.RatInt(-1, 1))
	yz.AddTerm(ec.Unit().ID, core.RatInt(4, 1)) // y - z + 4 = 3-7+4 = 0, consistent
	changed, err = ec.ForceZero(yz, arena.New("given", "y - z + 4 = 0"))
	require.NoError(t, err)
	require.True(t, changed)

	// RREF invariant: every pivot's coefficient in its own defining comb is
	// 1, and no pivot appears in any OTHER pivot's defining comb.
	pivots := ec.Pivots()
	require.Len(t, pivots, 2)
	for _, pivotID := range pivots {
		require.Equal(t, core.RatInt(1, 1), ec.Defining(pivotID).Term(pivotID))
		for _, otherID := range pivots {
			if otherID == pivotID {
				continue
			}
			require.True(t, ec.Defining(otherID).Term(pivotID).Sign() == 0)
		}
	}
}

func TestElimCore_NumericInconsistencyIsFatal(t *testing.T) {
	arena := core.NewProofArena()
	ec := elim.NewCore()
	x := ec.NewVar(2.0, "x")
	y := ec.NewVar(2.0, "y") // x == y numerically

	xMinusY := core.NewLinComb()
	xMinusY.SetTerm(x.ID, core.RatInt(1, 1))
	xMinusY.AddTerm(y.ID, core.RatInt(-1, 1))
	_, err := ec.ForceZero(xMinusY, arena.New("given", "x=y"))
	require.NoError(t, err)

	// x - y = 1 is false (their true difference is 0): once reduced against
	// the pivot just created, only the unit term survives, and its numeric
	// value (-1) exceeds epsilon.
	contradiction := xMinusY.Clone()
	contradiction.AddTerm(ec.Unit().ID, core.RatInt(-1, 1))
	_, err = ec.ForceZero(contradiction, arena.New("given", "x-y=1 (false)"))
	require.Error(t, err)
	require.ErrorIs(t, err, elim.ErrNumericInconsistency)
}

func TestElimCore_Encountered(t *testing.T) {
	arena := core.NewProofArena()
	ec := elim.NewCore()
	x := ec.NewVar(1.0, "x")
	y := ec.NewVar(1.0, "y") // x == y numerically

	require.False(t, ec.Encountered(x.ID))
	c := core.NewLinComb()
	c.SetTerm(x.ID, core.RatInt(1, 1))
	c.AddTerm(y.ID, core.RatInt(-1, 1))
	_, err := ec.ForceZero(c, arena.New("given", "x=y"))
	require.NoError(t, err)
	require.True(t, ec.Encountered(x.ID))
	require.True(t, ec.Encountered(y.ID))
}
