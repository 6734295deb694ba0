// File: circle.go
// Role: FormalCircle — a maximal group of points known to be concyclic, and
// ForceConcyclic, the closure operation over the triple→circle index.
//
// Four points are concyclic, expressed in directed angles, iff the inscribed
// angle identity holds: ∠(CA,CB) = ∠(DA,DB) for any two of the points taken
// as the angle's vertex. ForceConcyclic asserts that identity pairwise
// across every point merged onto the circle, the same "anchor, then force
// every other member parallel/equal to the anchor" shape ForceCollinear
// uses for directions.
package geodb

import (
	"math"

	"github.com/augend/ddar/core"
	"github.com/augend/ddar/numerics"
)

// FormalCircle is a maximal set of (currently) concyclic points.
type FormalCircle struct {
	Points    []string
	Value     numerics.NumCircle
	RadiusVar *core.Variable // log(R), in the distmul system
	Sources   *core.ProofSet
}

// On reports whether name is one of this circle's points.
func (c *FormalCircle) On(name string) bool {
	for _, p := range c.Points {
		if p == name {
			return true
		}
	}
	return false
}

// ForceConcyclic asserts that a, b, c and d lie on a common circle, merging
// with any existing formal circle that already shares a triple among the
// four, and returns whether any new information was added.
func (db *DB) ForceConcyclic(aName, bName, cName, dName string, cause *core.ProofNode) (bool, error) {
	db.mu.Lock()
	resolved := make([]string, 4)
	for i, n := range []string{aName, bName, cName, dName} {
		r, err := db.resolveLocked(n)
		if err != nil {
			db.mu.Unlock()
			return false, errorf("ForceConcyclic", err)
		}
		resolved[i] = r
	}
	// Already known: a single existing circle already covers all four points,
	// so asserting it again adds nothing (spec.md §4.4 step 1 for circles).
	if fc, ok := db.tripleToCircle[tripleKey(resolved[0], resolved[1], resolved[2])]; ok && fc.On(resolved[3]) {
		db.mu.Unlock()
		return false, nil
	}

	pa, pb, pc := db.points[resolved[0]], db.points[resolved[1]], db.points[resolved[2]]
	degenerate := numerics.Collinear(pa, pb, pc)
	db.mu.Unlock()

	if degenerate {
		// Three of the four points are collinear: the "circle" degenerates to
		// a line, so route this through ForceCollinear instead (resolved open
		// question: a degenerate cyclic assertion is a collinearity).
		return db.ForceCollinear(resolved[0], resolved[1], resolved[2], cause)
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	merged := map[string]bool{resolved[0]: true, resolved[1]: true, resolved[2]: true, resolved[3]: true}
	var absorbed []*FormalCircle
	seen := map[*FormalCircle]bool{}
	for i := 0; i < len(resolved); i++ {
		for j := i + 1; j < len(resolved); j++ {
			for k := j + 1; k < len(resolved); k++ {
				if fc, ok := db.tripleToCircle[tripleKey(resolved[i], resolved[j], resolved[k])]; ok && !seen[fc] {
					seen[fc] = true
					absorbed = append(absorbed, fc)
					for _, p := range fc.Points {
						merged[p] = true
					}
				}
			}
		}
	}

	pts := sortedNames(merged)
	if len(pts) < 3 {
		return false, nil
	}
	value, err := numerics.ThroughThree(db.points[pts[0]], db.points[pts[1]], db.points[pts[2]])
	if err != nil {
		return false, errorf("ForceConcyclic", err)
	}

	// Verify every other merged point actually lies on this numeric circle
	// (spec.md §4.4 step 3): a mismatch here is a fatal input error, not
	// something to silently absorb into the linear system.
	for _, p := range pts[3:] {
		if !value.On(db.points[p]) {
			return false, errorf("ForceConcyclic", ErrDegenerateCircle)
		}
	}

	newCircle := &FormalCircle{Points: pts, Value: value, Sources: core.NewProofSet(cause)}
	for _, fc := range absorbed {
		newCircle.Sources.Union(fc.Sources)
	}
	newCircle.RadiusVar = db.mul.NewVar(math.Log(value.R), "log(R) of circle("+pts[0]+pts[1]+pts[2]+")")

	changed := false
	anchorA, anchorB := pts[0], pts[1]
	anchorDiff := db.angle.Diff(db.pairDirVar(anchorA, pts[2]), db.pairDirVar(anchorB, pts[2]))
	for i := 3; i < len(pts); i++ {
		diff := db.angle.Diff(db.pairDirVar(anchorA, pts[i]), db.pairDirVar(anchorB, pts[i]))
		ok, err := db.angle.ForceZero(anchorDiff.Sub(diff), cause)
		if err != nil {
			return changed, errorf("ForceConcyclic", err)
		}
		changed = changed || ok
	}

	for _, fc := range absorbed {
		db.removeCircle(fc)
	}
	db.circles = append(db.circles, newCircle)
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			for k := j + 1; k < len(pts); k++ {
				db.tripleToCircle[tripleKey(pts[i], pts[j], pts[k])] = newCircle
			}
		}
	}

	return changed, nil
}

func (db *DB) removeCircle(fc *FormalCircle) {
	for i, c := range db.circles {
		if c == fc {
			db.circles = append(db.circles[:i], db.circles[i+1:]...)
			return
		}
	}
}
