// File: concyclic_angle.go
// Role: the concyclic-by-angle pass (spec.md §4.5 step 2). For each pair
// (a,b) and third point c, the inscribed angle ∠ACB is hashed; two
// non-collinear thirds sharing a key see a,b from an equal angle and so lie
// on a common circle with a,b. A third whose key reduces to zero is
// collinear with a,b instead of concyclic.
package saturation

import "github.com/augend/ddar/numerics"

func (e *Engine) concyclicByAnglePass() (bool, error) {
	db := e.db
	points := db.PointNames()
	n := len(points)
	if n < 3 {
		return false, nil
	}

	changed := false
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := points[i], points[j]
			table := map[string]string{} // angle key -> first third point seen
			for k := 0; k < n; k++ {
				if k == i || k == j {
					continue
				}
				c := points[k]
				pa, err1 := db.Point(a)
				pb, err2 := db.Point(b)
				pc, err3 := db.Point(c)
				if err1 != nil || err2 != nil || err3 != nil {
					continue
				}
				if numerics.Identical(pa, pb) || numerics.Identical(pa, pc) || numerics.Identical(pb, pc) {
					continue
				}

				angle := db.Angle().Simplify(db.Angle().Diff(db.PairDir(c, a), db.PairDir(c, b)))
				key := combKey(angle)

				if angle.Empty() {
					ok, err := db.ForceCollinear(a, b, c, e.arena.New("concyclic_by_angle", a+","+b+","+c+" collinear (degenerate inscribed angle)"))
					if err != nil {
						return changed, err
					}
					changed = changed || ok
					continue
				}
				if numerics.Collinear(pa, pb, pc) {
					continue
				}

				if first, ok := table[key]; ok && first != c {
					ok2, err := db.ForceConcyclic(a, b, first, c, e.arena.New("concyclic_by_angle", a+","+b+","+first+","+c+" concyclic (equal inscribed angle)"))
					if err != nil {
						return changed, err
					}
					changed = changed || ok2
				} else if !ok {
					table[key] = c
				}
			}
		}
	}
	return changed, nil
}
