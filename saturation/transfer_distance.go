// File: transfer_distance.go
// Role: the dist-add↔dist-mul transfer pass (spec.md §4.5 step 5). Two
// pairs whose normalized log-distance combs coincide must have equal
// normalized signed-length combs, and vice versa.
package saturation

import "github.com/augend/ddar/core"

type pairDistances struct {
	a, b   string
	mulVar *core.Variable
	addVar *core.Variable
}

func singleTermComb(id int) *core.LinComb {
	c := core.NewLinComb()
	c.SetTerm(id, core.RatInt(1, 1))
	return c
}

func (e *Engine) distanceTransferPass() (bool, error) {
	db := e.db
	points := db.PointNames()
	n := len(points)
	if n < 2 {
		return false, nil
	}

	mulTable := map[string]pairDistances{}
	addTable := map[string]pairDistances{}
	changed := false

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := points[i], points[j]
			mulVar := db.PairLogDist(a, b)
			addVar, _ := db.PairAddLen(a, b)
			entry := pairDistances{a: a, b: b, mulVar: mulVar, addVar: addVar}

			mulKey := combKey(db.Mul().Simplify(singleTermComb(mulVar.ID)))
			addKey := combKey(db.Add().Simplify(singleTermComb(addVar.ID)))

			if other, ok := mulTable[mulKey]; ok && (other.a != a || other.b != b) {
				cause := e.arena.New("distance_transfer", "|"+a+b+"| = |"+other.a+other.b+"| implies equal signed length")
				ok2, err := db.Add().ForceEqual(other.addVar, addVar, cause)
				if err != nil {
					return changed, err
				}
				changed = changed || ok2
			} else if !ok {
				mulTable[mulKey] = entry
			}

			if other, ok := addTable[addKey]; ok && (other.a != a || other.b != b) {
				cause := e.arena.New("distance_transfer", a+b+" signed length = "+other.a+other.b+" implies equal log-distance")
				ok2, err := db.Mul().ForceCong(other.mulVar, mulVar, cause)
				if err != nil {
					return changed, err
				}
				changed = changed || ok2
			} else if !ok {
				addTable[addKey] = entry
			}
		}
	}
	return changed, nil
}
