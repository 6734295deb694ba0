// File: line.go
// Role: FormalLine — a maximal group of points known to be collinear, and
// ForceCollinear, the closure operation spec.md §4.4 defines over the
// pair→line index.
//
// Lines are replaced, never mutated: asserting a new collinearity that
// touches an existing line's points discards that line and builds a wider
// one in its place (old per-point position variables are simply orphaned
// in the distadd system, which never reclaims variables).
package geodb

import (
	"sort"

	"github.com/augend/ddar/core"
	"github.com/augend/ddar/elim"
	"github.com/augend/ddar/numerics"
)

// FormalLine is a maximal set of (currently) collinear points, ordered by
// position along the line's numeric direction.
type FormalLine struct {
	Points  []string // canonical point names, ordered by increasing Position
	Value   numerics.NumLine
	DirVar  *core.Variable
	Pos     map[string]*core.Variable // per-point position variable, this line's chain
	Sources *core.ProofSet
}

// On reports whether name is one of this line's points.
func (l *FormalLine) On(name string) bool {
	for _, p := range l.Points {
		if p == name {
			return true
		}
	}
	return false
}

// ForceCollinear asserts that a, b and c lie on a common line, merging with
// any existing formal line that already shares a pair among the three, and
// returns whether any new information was added.
func (db *DB) ForceCollinear(aName, bName, cName string, cause *core.ProofNode) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	a, err := db.resolveLocked(aName)
	if err != nil {
		return false, errorf("ForceCollinear", err)
	}
	b, err := db.resolveLocked(bName)
	if err != nil {
		return false, errorf("ForceCollinear", err)
	}
	c, err := db.resolveLocked(cName)
	if err != nil {
		return false, errorf("ForceCollinear", err)
	}
	names := []string{a, b, c}

	// Already known: a single existing line already covers all three points,
	// so asserting it again adds nothing (spec.md §4.4 step 3).
	if ln, ok := db.pairToLine[pairKey(a, b)]; ok && ln.On(a) && ln.On(b) && ln.On(c) {
		return false, nil
	}

	// Gather every existing line touching a pair among {a,b,c} and union
	// their point sets with the new triple: the transitive closure through
	// the pair→line index.
	merged := map[string]bool{a: true, b: true, c: true}
	var absorbed []*FormalLine
	seen := map[*FormalLine]bool{}
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if ln, ok := db.pairToLine[pairKey(names[i], names[j])]; ok && !seen[ln] {
				seen[ln] = true
				absorbed = append(absorbed, ln)
				for _, p := range ln.Points {
					merged[p] = true
				}
			}
		}
	}

	pts := sortedNames(merged)
	if len(pts) < 2 {
		return false, nil
	}
	p0, p1 := db.points[pts[0]], db.points[pts[1]]
	if numerics.Identical(p0, p1) {
		return false, nil
	}
	value := numerics.Through(p0, p1)

	// Verify every other merged point actually lies on this numeric line
	// (spec.md §4.4 step 2): a mismatch here is a fatal input error, not
	// something to silently absorb into the linear system.
	for _, p := range pts {
		if p == pts[0] || p == pts[1] {
			continue
		}
		if !value.On(db.points[p]) {
			return false, errorf("ForceCollinear", ErrNotNumericallyCollinear)
		}
	}

	sort.Slice(pts, func(i, j int) bool {
		return value.Position(db.points[pts[i]]) < value.Position(db.points[pts[j]])
	})

	newLine := &FormalLine{
		Points:  pts,
		Value:   value,
		Sources: core.NewProofSet(cause),
		Pos:     make(map[string]*core.Variable),
	}
	for _, ln := range absorbed {
		newLine.Sources.Union(ln.Sources)
	}

	changed := false

	// Anchor direction: the shared pair variable for the first two points in
	// line order becomes this line's direction; every other pair among the
	// merged points is forced parallel to it.
	newLine.DirVar = db.pairDirVar(pts[0], pts[1])
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			if (i == 0 && j == 1) || numerics.Identical(db.points[pts[i]], db.points[pts[j]]) {
				continue
			}
			dv := db.pairDirVar(pts[i], pts[j])
			ok, err := db.angle.ForceParallel(newLine.DirVar, dv, cause)
			if err != nil {
				return changed, errorf("ForceCollinear", err)
			}
			changed = changed || ok
		}
	}

	// Position chain: a fresh position variable per point (seeded from the
	// line's own numeric axis), tied to its neighbours by the additive
	// segment law and to the pair's shared length variable.
	for _, p := range pts {
		newLine.Pos[p] = db.add.NewVar(value.Position(db.points[p]), "pos("+p+" on "+pts[0]+pts[1]+")")
	}
	for i := 1; i < len(pts); i++ {
		// pts is sorted by increasing Position, so the segment from pts[i-1]
		// to pts[i] always runs in the line's positive direction: the
		// coefficient here is always +1, regardless of the lexicographic
		// order pairAddVar's returned sign is relative to (that sign is for
		// callers requesting a length in their own, unsorted, pair order).
		lenVar, _ := db.pairAddVar(pts[i-1], pts[i])
		ok, err := db.add.ForceLinear(cause,
			elim.Term{Coeff: core.RatInt(1, 1), Var: newLine.Pos[pts[i-1]]},
			elim.Term{Coeff: core.RatInt(1, 1), Var: lenVar},
			elim.Term{Coeff: core.RatInt(-1, 1), Var: newLine.Pos[pts[i]]},
		)
		if err != nil {
			return changed, errorf("ForceCollinear", err)
		}
		changed = changed || ok
	}

	for _, ln := range absorbed {
		db.removeLine(ln)
	}
	db.lines = append(db.lines, newLine)
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			db.pairToLine[pairKey(pts[i], pts[j])] = newLine
		}
	}

	return changed, nil
}

func (db *DB) removeLine(ln *FormalLine) {
	for i, l := range db.lines {
		if l == ln {
			db.lines = append(db.lines[:i], db.lines[i+1:]...)
			return
		}
	}
}
