// File: merge.go
// Role: ForceEqualPoints — point identification by union-find, the third
// force_* primitive spec.md §4.4 defines.
//
// Grounded on lvlath/prim_kruskal's disjoint-set (parent map, path
// compression). Union by deterministic choice (the first argument's name
// survives) rather than by rank: the merge count here is small and
// determinism of the surviving name matters more than tree balance.
package geodb

import "github.com/augend/ddar/core"

// ForceEqualPoints identifies two points as numerically and symbolically
// the same point, rewiring every pair/triple index entry that referenced
// the losing name onto the survivor and enriching provenance wherever the
// rewiring collides two previously-independent facts (resolved open
// question: a collision folds both facts' sources into the forced equation
// that reconciles them, rather than discarding either).
func (db *DB) ForceEqualPoints(aName, bName string, cause *core.ProofNode) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	a, err := db.resolveLocked(aName)
	if err != nil {
		return false, errorf("ForceEqualPoints", err)
	}
	b, err := db.resolveLocked(bName)
	if err != nil {
		return false, errorf("ForceEqualPoints", err)
	}
	if a == b {
		return false, nil
	}

	survivor, loser := a, b
	db.parent[loser] = survivor

	// Rewire every formal line and circle referencing the loser: Points
	// slices are rebuilt in place (the containers themselves are not
	// replaced — only their point-name sets are relabelled — since the
	// geometric identity of the line/circle a point sits on does not change
	// when the point is renamed).
	for _, ln := range db.lines {
		for i, p := range ln.Points {
			if p == loser {
				ln.Points[i] = survivor
				if v, ok := ln.Pos[loser]; ok {
					if existing, already := ln.Pos[survivor]; already {
						if _, err := db.add.ForceEqual(existing, v, cause); err != nil {
							return false, errorf("ForceEqualPoints", err)
						}
					} else {
						ln.Pos[survivor] = v
					}
					delete(ln.Pos, loser)
				}
			}
		}
	}
	for _, fc := range db.circles {
		for i, p := range fc.Points {
			if p == loser {
				fc.Points[i] = survivor
			}
		}
	}

	// Any pair/triple keyed through the loser now collides with the
	// survivor's existing key: reconcile by forcing the two variables equal
	// and keeping one, folding both facts' provenance into the reconciling
	// equation.
	db.reconcilePairDir(survivor, loser, cause)
	db.reconcilePairMul(survivor, loser, cause)
	db.reconcilePairAdd(survivor, loser, cause)
	db.reconcilePairToLine(survivor, loser)
	db.reconcileTripleToCircle(survivor, loser)

	delete(db.points, loser)
	return true, nil
}

func (db *DB) reconcilePairDir(survivor, loser string, cause *core.ProofNode) {
	for key, v := range db.pairDir {
		other, ok := thirdPartyOf(key, loser)
		if !ok {
			continue
		}
		survKey := pairKey(survivor, other)
		if sv, already := db.pairDir[survKey]; already && sv != v {
			_, _ = db.angle.ForceParallel(sv, v, cause)
		} else {
			db.pairDir[survKey] = v
		}
		delete(db.pairDir, key)
	}
}

func (db *DB) reconcilePairMul(survivor, loser string, cause *core.ProofNode) {
	for key, v := range db.pairMul {
		other, ok := thirdPartyOf(key, loser)
		if !ok {
			continue
		}
		survKey := pairKey(survivor, other)
		if sv, already := db.pairMul[survKey]; already && sv != v {
			_, _ = db.mul.ForceCong(sv, v, cause)
		} else {
			db.pairMul[survKey] = v
		}
		delete(db.pairMul, key)
	}
}

func (db *DB) reconcilePairAdd(survivor, loser string, cause *core.ProofNode) {
	for key, v := range db.pairAdd {
		other, ok := thirdPartyOf(key, loser)
		if !ok {
			continue
		}
		survKey := pairKey(survivor, other)
		if sv, already := db.pairAdd[survKey]; already && sv != v {
			_, _ = db.add.ForceEqual(sv, v, cause)
		} else {
			db.pairAdd[survKey] = v
		}
		delete(db.pairAdd, key)
	}
}

func (db *DB) reconcilePairToLine(survivor, loser string) {
	for key, ln := range db.pairToLine {
		other, ok := thirdPartyOf(key, loser)
		if !ok {
			continue
		}
		db.pairToLine[pairKey(survivor, other)] = ln
		delete(db.pairToLine, key)
	}
}

func (db *DB) reconcileTripleToCircle(survivor, loser string) {
	for key, fc := range db.tripleToCircle {
		names, ok := splitTripleKey(key)
		if !ok {
			continue
		}
		hit := false
		for i, n := range names {
			if n == loser {
				names[i] = survivor
				hit = true
			}
		}
		if !hit {
			continue
		}
		db.tripleToCircle[tripleKey(names[0], names[1], names[2])] = fc
		delete(db.tripleToCircle, key)
	}
}
