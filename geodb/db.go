// File: db.go
// Role: DB — the geometric fact database. Owns the three elimination
// systems every predicate ultimately reduces to, the point registry and its
// union-find substitution table, and the per-pair variable maps spec.md §3
// lists as created once for every numerically distinct point pair.
//
// Grounded on lvlath/prim_kruskal's union-find (parent map with path
// compression, deterministic tie-break) for point merging, and
// lvlath/graph's RWMutex-guarded composition-of-subsystems shape for DB
// itself.
package geodb

import (
	"math"
	"sort"
	"sync"

	"github.com/augend/ddar/core"
	"github.com/augend/ddar/elim"
	"github.com/augend/ddar/numerics"
)

// DB is the geometric fact database. All exported methods are safe for
// concurrent use.
type DB struct {
	mu sync.RWMutex

	angle *elim.ElimAngle
	mul   *elim.ElimDistMul
	add   *elim.ElimDistAdd
	arena *core.ProofArena

	points map[string]core.Point // canonical name -> point, survivors only
	parent map[string]string     // union-find parent; parent[name] == name for a root

	pairDir map[string]*core.Variable
	pairMul map[string]*core.Variable
	pairAdd map[string]*core.Variable

	lines      []*FormalLine
	pairToLine map[string]*FormalLine

	circles        []*FormalCircle
	tripleToCircle map[string]*FormalCircle
}

// New builds an empty database backed by the given proof arena.
func New(arena *core.ProofArena) *DB {
	return &DB{
		angle:          elim.NewAngle(),
		mul:            elim.NewDistMul(),
		add:            elim.NewDistAdd(),
		arena:          arena,
		points:         make(map[string]core.Point),
		parent:         make(map[string]string),
		pairDir:        make(map[string]*core.Variable),
		pairMul:        make(map[string]*core.Variable),
		pairAdd:        make(map[string]*core.Variable),
		pairToLine:     make(map[string]*FormalLine),
		tripleToCircle: make(map[string]*FormalCircle),
	}
}

// Angle, Mul and Add expose the underlying elimination systems directly, for
// predicate and saturation code that needs to force facts geodb has no
// dedicated helper for (e.g. a bare ForceConstAngle).
func (db *DB) Angle() *elim.ElimAngle { return db.angle }
func (db *DB) Mul() *elim.ElimDistMul { return db.mul }
func (db *DB) Add() *elim.ElimDistAdd { return db.add }

// AddPoint registers a new point under its own name. Returns
// ErrDuplicatePoint if that name (or a name already merged into it) is
// already known.
func (db *DB) AddPoint(p core.Point) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.points[p.Name]; ok {
		return errorf("AddPoint", ErrDuplicatePoint)
	}
	db.points[p.Name] = p
	db.parent[p.Name] = p.Name
	return nil
}

// Resolve returns the current canonical survivor name for a point, applying
// path compression along the way. Returns ErrUnknownPoint if name was never
// registered.
func (db *DB) Resolve(name string) (string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.resolveLocked(name)
}

// resolveLocked requires db.mu held for writing (path compression mutates
// db.parent).
func (db *DB) resolveLocked(name string) (string, error) {
	if _, ok := db.parent[name]; !ok {
		return "", errorf("Resolve", ErrUnknownPoint)
	}
	root := name
	for db.parent[root] != root {
		root = db.parent[root]
	}
	for db.parent[name] != root {
		next := db.parent[name]
		db.parent[name] = root
		name = next
	}
	return root, nil
}

// Point returns the canonical point for a (possibly pre-merge) name.
func (db *DB) Point(name string) (core.Point, error) {
	db.mu.Lock()
	root, err := db.resolveLocked(name)
	db.mu.Unlock()
	if err != nil {
		return core.Point{}, err
	}
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.points[root], nil
}

// pairDirVar returns the shared direction variable for an unordered pair,
// creating it (seeded from the numeric configuration) on first use.
func (db *DB) pairDirVar(a, b string) *core.Variable {
	key := pairKey(a, b)
	if v, ok := db.pairDir[key]; ok {
		return v
	}
	pa, pb := db.points[a], db.points[b]
	// Direction is in turns on [0, 0.5); the angle system's unit is one
	// half-turn, so the seed is doubled onto [0, 1).
	dir := 2 * numerics.Through(pa, pb).Direction()
	v := db.angle.NewVar(dir, "dir("+a+","+b+")")
	db.pairDir[key] = v
	return v
}

// pairMulVar returns the shared log-distance variable for an unordered
// pair, creating it on first use.
func (db *DB) pairMulVar(a, b string) *core.Variable {
	key := pairKey(a, b)
	if v, ok := db.pairMul[key]; ok {
		return v
	}
	pa, pb := db.points[a], db.points[b]
	d := numerics.Distance(pa, pb)
	v := db.mul.NewVar(math.Log(d), "log|"+a+b+"|")
	db.pairMul[key] = v
	return v
}

// pairAddVar returns the shared signed-length variable for an unordered
// pair in its canonical lo→hi orientation, creating it on first use, plus
// the sign that converts it into the (a,b)-oriented length the caller asked
// for (see additiveOrder).
func (db *DB) pairAddVar(a, b string) (*core.Variable, int64) {
	lo, hi, sign := additiveOrder(a, b)
	key := pairKey(a, b)
	v, ok := db.pairAdd[key]
	if !ok {
		plo, phi := db.points[lo], db.points[hi]
		v = db.add.NewVar(numerics.Distance(plo, phi), "len("+lo+","+hi+")")
		db.pairAdd[key] = v
	}
	return v, sign
}

// PairDir is the exported, locking form of pairDirVar, for predicate code
// that needs a raw direction variable without asserting anything.
func (db *DB) PairDir(a, b string) *core.Variable {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.pairDirVar(a, b)
}

// PairLogDist is the exported, locking form of pairMulVar.
func (db *DB) PairLogDist(a, b string) *core.Variable {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.pairMulVar(a, b)
}

// PairAddLen is the exported, locking form of pairAddVar.
func (db *DB) PairAddLen(a, b string) (*core.Variable, int64) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.pairAddVar(a, b)
}

// PointNames returns every currently-surviving canonical point name, sorted.
func (db *DB) PointNames() []string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	out := make([]string, 0, len(db.points))
	for n := range db.points {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Lines returns a snapshot of every live formal line.
func (db *DB) Lines() []*FormalLine {
	db.mu.RLock()
	defer db.mu.RUnlock()
	out := make([]*FormalLine, len(db.lines))
	copy(out, db.lines)
	return out
}

// Circles returns a snapshot of every live formal circle.
func (db *DB) Circles() []*FormalCircle {
	db.mu.RLock()
	defer db.mu.RUnlock()
	out := make([]*FormalCircle, len(db.circles))
	copy(out, db.circles)
	return out
}

// sortedNames returns the keys of a name-set map in deterministic order.
func sortedNames(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
