// File: transfer_arc.go
// Role: the arc↔chord transfer pass (spec.md §4.5 step 6). On each circle
// with at least four points, arcs and chords are computed relative to a
// fixed defining point; equal arcs force equal chords and vice versa.
package saturation

import "github.com/augend/ddar/core"

type arcChordEntry struct {
	p, q string
	arc  *core.LinComb
	chordA, chordB string
}

func (e *Engine) arcChordTransferPass() (bool, error) {
	changed := false
	for _, fc := range e.db.Circles() {
		if len(fc.Points) < 4 {
			continue
		}
		if ok, err := e.arcChordForCircle(fc.Points); err != nil {
			return changed, err
		} else {
			changed = changed || ok
		}
	}
	return changed, nil
}

func (e *Engine) arcChordForCircle(points []string) (bool, error) {
	db := e.db
	ref := points[0]
	rest := points[1:]

	arcTable := map[string]arcChordEntry{}
	chordTable := map[string]arcChordEntry{}
	changed := false

	for i := 0; i < len(rest); i++ {
		for j := i + 1; j < len(rest); j++ {
			p, q := rest[i], rest[j]
			arc := db.Angle().Simplify(db.Angle().Diff(db.PairDir(q, ref), db.PairDir(p, ref)))
			chordVar := db.PairLogDist(p, q)
			chordKey := combKey(db.Mul().Simplify(singleTermComb(chordVar.ID)))
			arcKey := combKey(arc)
			entry := arcChordEntry{p: p, q: q, arc: arc, chordA: p, chordB: q}

			if other, ok := arcTable[arcKey]; ok && (other.p != p || other.q != q) {
				cause := e.arena.New("arc_chord_transfer", "equal arcs "+p+q+" and "+other.p+other.q+" imply equal chords")
				ok2, err := db.Mul().ForceCong(db.PairLogDist(other.chordA, other.chordB), chordVar, cause)
				if err != nil {
					return changed, err
				}
				changed = changed || ok2
			} else if !ok {
				arcTable[arcKey] = entry
			}

			if other, ok := chordTable[chordKey]; ok && (other.p != p || other.q != q) {
				cause := e.arena.New("arc_chord_transfer", "equal chords "+p+q+" and "+other.p+other.q+" imply equal arcs")
				ok2, err := db.Angle().ForceZero(arc.Sub(other.arc), cause)
				if err != nil {
					return changed, err
				}
				changed = changed || ok2
			} else if !ok {
				chordTable[chordKey] = entry
			}
		}
	}
	return changed, nil
}
