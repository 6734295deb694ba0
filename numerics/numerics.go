package numerics

import (
	"errors"
	"math"

	"github.com/augend/ddar/core"
)

// ATOM is the numeric tolerance below which two quantities are treated as
// equal: two points closer than ATOM are "numerically identical", and a
// forced LinComb whose numeric value has magnitude below ATOM is consistent.
const ATOM = 1e-9

// UnitValue is the numeric image of the angle-system's reserved unit
// variable (one half-turn). elim.NewAngle seeds its unit Variable with
// this value so ATOM-based consistency checks see a stable, documented
// constant rather than a magic literal re-typed in two packages.
const UnitValue = 1.0

// ErrDegenerate indicates three points were expected to be numerically
// non-collinear (e.g. to determine a circle) but were not.
var ErrDegenerate = errors.New("numerics: points are numerically degenerate")

// Distance returns the Euclidean distance between a and b.
func Distance(a, b core.Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return math.Hypot(dx, dy)
}

// SameSign-free orientation test: returns +1 if (a,b,c) turns
// counterclockwise, -1 if clockwise, 0 if collinear within ATOM.
func Orientation(a, b, c core.Point) int {
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	switch {
	case cross > ATOM:
		return 1
	case cross < -ATOM:
		return -1
	default:
		return 0
	}
}

// Collinear reports whether a, b, c lie on a common line within ATOM.
func Collinear(a, b, c core.Point) bool {
	return Orientation(a, b, c) == 0
}

// Identical reports whether a and b are numerically the same point.
func Identical(a, b core.Point) bool {
	return Distance(a, b) < ATOM
}

// NumLine is a numeric line through two distinct points, represented in
// normal form a*x + b*y = c with (a,b) a unit normal vector.
type NumLine struct {
	A, B, C float64
}

// Through builds the NumLine passing through two numerically distinct
// points. Panics if p == q within ATOM: callers must check first, this
// is the same "degenerate input is a programmer error" contract LinComb's
// DivScalar uses.
func Through(p, q core.Point) NumLine {
	dx, dy := q.X-p.X, q.Y-p.Y
	length := math.Hypot(dx, dy)
	if length < ATOM {
		panic("numerics: Through called with coincident points")
	}
	a, b := -dy/length, dx/length
	c := a*p.X + b*p.Y
	return NumLine{A: a, B: b, C: c}
}

// Direction returns the line's direction angle in turns, normalized to
// [0, 0.5): a directed line and its reverse share the same direction,
// matching the spec's "directed-line angles are half-turn symmetric".
func (l NumLine) Direction() float64 {
	theta := math.Atan2(l.A, -l.B) / (2 * math.Pi)
	theta = math.Mod(theta, 0.5)
	if theta < 0 {
		theta += 0.5
	}
	return theta
}

// Position returns p's signed coordinate along the line, increasing in the
// direction (-B, A) (perpendicular to the normal), used to order collinear
// points and to compute additive segment lengths.
func (l NumLine) Position(p core.Point) float64 {
	return -l.B*p.X + l.A*p.Y
}

// Distance returns p's signed distance from the line (zero within ATOM
// means p lies on the line).
func (l NumLine) Distance(p core.Point) float64 {
	return l.A*p.X + l.B*p.Y - l.C
}

// On reports whether p lies on the line within ATOM.
func (l NumLine) On(p core.Point) bool {
	return math.Abs(l.Distance(p)) < ATOM
}

// NumCircle is a numeric circle given by center and radius.
type NumCircle struct {
	CX, CY, R float64
}

// ThroughThree builds the circle through three numerically non-degenerate
// points (not collinear). Returns ErrDegenerate otherwise.
func ThroughThree(a, b, c core.Point) (NumCircle, error) {
	if Collinear(a, b, c) {
		return NumCircle{}, ErrDegenerate
	}
	ax2y2 := a.X*a.X + a.Y*a.Y
	bx2y2 := b.X*b.X + b.Y*b.Y
	cx2y2 := c.X*c.X + c.Y*c.Y

	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	ux := (ax2y2*(b.Y-c.Y) + bx2y2*(c.Y-a.Y) + cx2y2*(a.Y-b.Y)) / d
	uy := (ax2y2*(c.X-b.X) + bx2y2*(a.X-c.X) + cx2y2*(b.X-a.X)) / d

	r := math.Hypot(a.X-ux, a.Y-uy)
	return NumCircle{CX: ux, CY: uy, R: r}, nil
}

// NewCircle builds a circle from an explicit center and radius.
func NewCircle(center core.Point, r float64) NumCircle {
	return NumCircle{CX: center.X, CY: center.Y, R: r}
}

// Distance returns p's signed distance from the circle (positive outside).
func (c NumCircle) Distance(p core.Point) float64 {
	return math.Hypot(p.X-c.CX, p.Y-c.CY) - c.R
}

// On reports whether p lies on the circle within ATOM.
func (c NumCircle) On(p core.Point) bool {
	return math.Abs(c.Distance(p)) < ATOM
}
