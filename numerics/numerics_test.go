package numerics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/augend/ddar/core"
	"github.com/augend/ddar/numerics"
)

func pt(t *testing.T, name string, x, y float64) core.Point {
	t.Helper()
	p, err := core.NewPoint(name, x, y)
	require.NoError(t, err)
	return p
}

func TestOrientationAndCollinear(t *testing.T) {
	a := pt(t, "A", 0, 0)
	b := pt(t, "B", 1, 0)
	c := pt(t, "C", 2, 0)
	d := pt(t, "D", 1, 1)

	require.True(t, numerics.Collinear(a, b, c))
	require.False(t, numerics.Collinear(a, b, d))
	require.Equal(t, -1, numerics.Orientation(a, d, b))
}

func TestNumLineDirectionIsHalfTurnSymmetric(t *testing.T) {
	a := pt(t, "A", 0, 0)
	b := pt(t, "B", 1, 1)

	forward := numerics.Through(a, b)
	backward := numerics.Through(b, a)
	require.InDelta(t, forward.Direction(), backward.Direction(), 1e-9)
}

func TestThroughThreeRejectsCollinear(t *testing.T) {
	a := pt(t, "A", 0, 0)
	b := pt(t, "B", 1, 0)
	c := pt(t, "C", 2, 0)
	_, err := numerics.ThroughThree(a, b, c)
	require.ErrorIs(t, err, numerics.ErrDegenerate)
}

func TestThroughThreeCircle(t *testing.T) {
	a := pt(t, "A", 1, 0)
	b := pt(t, "B", 0, 1)
	c := pt(t, "C", -1, 0)
	circ, err := numerics.ThroughThree(a, b, c)
	require.NoError(t, err)
	require.InDelta(t, 0, circ.CX, 1e-9)
	require.InDelta(t, 0, circ.CY, 1e-9)
	require.InDelta(t, 1, circ.R, 1e-9)
	require.True(t, circ.On(a))
}
