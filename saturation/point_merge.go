// File: point_merge.go
// Role: the point-merge pass (spec.md §4.5 step 4). Two numerically
// identical points are folded into one only when at least two distinct
// lines/circles pass through that location and meet there transversally
// (not tangentially) — a single shared object, or a tangential meeting, is
// too weak a signal to safely identify two differently-named points.
package saturation

import (
	"math"

	"github.com/augend/ddar/core"
	"github.com/augend/ddar/numerics"
)

func (e *Engine) pointMergePass() (bool, error) {
	db := e.db
	points := db.PointNames()
	n := len(points)
	if n < 2 {
		return false, nil
	}
	lines := db.Lines()
	circles := db.Circles()

	changed := false
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			p, q := points[i], points[j]
			pp, err1 := db.Point(p)
			pq, err2 := db.Point(q)
			if err1 != nil || err2 != nil {
				continue
			}
			if !numerics.Identical(pp, pq) {
				continue
			}

			var dirs []float64
			for _, ln := range lines {
				if ln.Value.On(pp) {
					dirs = append(dirs, ln.Value.Direction())
				}
			}
			for _, fc := range circles {
				if fc.Value.On(pp) {
					dirs = append(dirs, circleTangentDirection(fc.Value.CX, fc.Value.CY, pp))
				}
			}
			if len(dirs) < 2 {
				continue
			}
			if tangentAt(dirs[0], dirs[1]) {
				continue
			}

			ok, err := db.ForceEqualPoints(p, q, e.arena.New("point_merge", p+" and "+q+" identified (shared non-tangent objects)"))
			if err != nil {
				return changed, err
			}
			changed = changed || ok
		}
	}
	return changed, nil
}

// circleTangentDirection returns the circle's tangent direction at point p,
// normalized to [0, 0.5) the same way NumLine.Direction is.
func circleTangentDirection(cx, cy float64, p core.Point) float64 {
	radius := math.Atan2(p.Y-cy, p.X-cx) / (2 * math.Pi)
	tangent := math.Mod(radius+0.25, 0.5)
	if tangent < 0 {
		tangent += 0.5
	}
	return tangent
}

// tangentAt reports whether two objects sharing a point meet tangentially
// there (matching directions) rather than transversally.
func tangentAt(d1, d2 float64) bool {
	diff := math.Mod(math.Abs(d1-d2), 0.5)
	return diff < numerics.ATOM || diff > 0.5-numerics.ATOM
}
