// File: similar.go
// Role: the similar-triangles pass (spec.md §4.5 step 1). For every
// positively-oriented ordered triple, four symbolic invariants are hashed
// into four tables (SSS/AA/SAS/SSA); a collision between two distinct
// triples in any table asserts full similarity between them.
package saturation

import (
	"sort"

	"github.com/augend/ddar/core"
	"github.com/augend/ddar/numerics"
)

type triangleInvariant struct {
	triple [3]string // a, b, c in spec.md's (a,b,c) order
	r1     *core.LinComb
	r2     *core.LinComb
	alpha1 *core.LinComb
	alpha2 *core.LinComb
}

// combKey renders a reduced LinComb as a deterministic string key: exact
// rational coefficients, never floats, so collisions are symbolic facts and
// never float noise (spec.md §5's ordering requirement).
func combKey(c *core.LinComb) string {
	ids := c.VarIDs()
	sort.Ints(ids)
	key := make([]byte, 0, 16*len(ids))
	for _, id := range ids {
		key = append(key, []byte(itoa(id))...)
		key = append(key, ':')
		key = append(key, []byte(c.Term(id).RatString())...)
		key = append(key, ';')
	}
	return string(key)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func (e *Engine) similarTrianglesPass() (bool, error) {
	db := e.db
	points := db.PointNames()
	n := len(points)
	if n < 3 {
		return false, nil
	}

	sssTable := map[string]triangleInvariant{}
	aaTable := map[string]triangleInvariant{}
	sasTable := map[string]triangleInvariant{}
	ssaTable := map[string]triangleInvariant{}

	changed := false

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			for k := 0; k < n; k++ {
				if k == i || k == j {
					continue
				}
				a, b, c := points[i], points[j], points[k]
				pa, err1 := db.Point(a)
				pb, err2 := db.Point(b)
				pc, err3 := db.Point(c)
				if err1 != nil || err2 != nil || err3 != nil {
					continue
				}
				if numerics.Orientation(pa, pb, pc) <= 0 {
					continue
				}

				inv := triangleInvariant{
					triple: [3]string{a, b, c},
					r1:     db.Mul().LogDiff(db.PairLogDist(a, c), db.PairLogDist(a, b)),
					r2:     db.Mul().LogDiff(db.PairLogDist(c, b), db.PairLogDist(c, a)),
					alpha1: db.Angle().Diff(db.PairDir(a, c), db.PairDir(a, b)),
					alpha2: db.Angle().Diff(db.PairDir(c, a), db.PairDir(c, b)),
				}
				inv.r1 = db.Mul().Simplify(inv.r1)
				inv.r2 = db.Mul().Simplify(inv.r2)
				inv.alpha1 = db.Angle().Simplify(inv.alpha1)
				inv.alpha2 = db.Angle().Simplify(inv.alpha2)

				orientKey := "1"
				r1Key, r2Key := combKey(inv.r1), combKey(inv.r2)
				a1Key, a2Key := combKey(inv.alpha1), combKey(inv.alpha2)

				var ok bool
				var err error
				if ok, err = e.collideAndForceSimilar(sssTable, r1Key+"|"+r2Key, inv); err != nil {
					return changed, err
				}
				changed = changed || ok
				if ok, err = e.collideAndForceSimilar(aaTable, a1Key+"|"+a2Key, inv); err != nil {
					return changed, err
				}
				changed = changed || ok
				if ok, err = e.collideAndForceSimilar(sasTable, a1Key+"|"+r1Key+"|"+orientKey, inv); err != nil {
					return changed, err
				}
				changed = changed || ok

				if numerics.Distance(pc, pb) > numerics.Distance(pc, pa) {
					if ok, err = e.collideAndForceSimilar(ssaTable, a1Key+"|"+r2Key+"|"+orientKey+"|ssa", inv); err != nil {
						return changed, err
					}
					changed = changed || ok
				}
			}
		}
	}

	return changed, nil
}

// collideAndForceSimilar records inv under key in table; if a different
// triple was already there, it asserts full similarity between the two and
// reports whether force_similar changed anything. A correspondence already
// recorded in knownSimilar (under any of its 6 symmetry images) is skipped:
// the pass has already derived it, possibly via a different invariant
// table in an earlier sweep.
func (e *Engine) collideAndForceSimilar(table map[string]triangleInvariant, key string, inv triangleInvariant) (bool, error) {
	existing, ok := table[key]
	if !ok {
		table[key] = inv
		return false, nil
	}
	if existing.triple == inv.triple {
		return false, nil
	}
	if e.knownSimilar[tripleLabel(existing.triple)+"~"+tripleLabel(inv.triple)] {
		return false, nil
	}
	changed, err := e.forceSimilar(existing, inv)
	if err != nil {
		return changed, err
	}
	for _, k := range symmetryKeys(existing.triple, inv.triple) {
		e.knownSimilar[k] = true
	}
	return changed, nil
}

// tripleLabel renders a triple as a lookup key, distinguishing it from a
// rotation or a different triple entirely.
func tripleLabel(t [3]string) string {
	return t[0] + "," + t[1] + "," + t[2]
}

// rotate returns t cyclically shifted so its i-th point comes first.
func rotate(t [3]string, i int) [3]string {
	return [3]string{t[i%3], t[(i+1)%3], t[(i+2)%3]}
}

// symmetryKeys returns the 6 correspondence keys equivalent to "t1 ~ t2":
// the 3 cyclic relabelings applied to both triangles in lockstep (the
// correspondence a1<->a2, b1<->b2, c1<->c2 is preserved under rotation),
// in both pair orders.
func symmetryKeys(t1, t2 [3]string) []string {
	keys := make([]string, 0, 6)
	for i := 0; i < 3; i++ {
		r1, r2 := rotate(t1, i), rotate(t2, i)
		keys = append(keys, tripleLabel(r1)+"~"+tripleLabel(r2))
		keys = append(keys, tripleLabel(r2)+"~"+tripleLabel(r1))
	}
	return keys
}

// forceSimilar asserts the two angle correspondences and two ratio
// correspondences that make triangle t1 similar to triangle t2.
func (e *Engine) forceSimilar(t1, t2 triangleInvariant) (bool, error) {
	db := e.db
	a1, b1, c1 := t1.triple[0], t1.triple[1], t1.triple[2]
	a2, b2, c2 := t2.triple[0], t2.triple[1], t2.triple[2]

	cause := e.arena.New("similar_triangles",
		"triangle "+a1+b1+c1+" ~ triangle "+a2+b2+c2)

	changed := false
	ok, err := db.Angle().ForceEqualAngles(db.PairDir(a1, c1), db.PairDir(a1, b1), db.PairDir(a2, c2), db.PairDir(a2, b2), cause)
	if err != nil {
		return changed, err
	}
	changed = changed || ok

	ok, err = db.Angle().ForceEqualAngles(db.PairDir(c1, a1), db.PairDir(c1, b1), db.PairDir(c2, a2), db.PairDir(c2, b2), cause)
	if err != nil {
		return changed, err
	}
	changed = changed || ok

	ok, err = db.Mul().ForceEqualRatio(db.PairLogDist(a1, c1), db.PairLogDist(a1, b1), db.PairLogDist(a2, c2), db.PairLogDist(a2, b2), cause)
	if err != nil {
		return changed, err
	}
	changed = changed || ok

	ok, err = db.Mul().ForceEqualRatio(db.PairLogDist(c1, b1), db.PairLogDist(c1, a1), db.PairLogDist(c2, b2), db.PairLogDist(c2, a2), cause)
	if err != nil {
		return changed, err
	}
	changed = changed || ok

	return changed, nil
}

