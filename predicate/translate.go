// File: translate.go
// Role: the predicate → action dispatch table. One handler per recognized
// predicate name, matching spec.md §4.3's translation table exactly.
package predicate

import (
	"math"

	"github.com/augend/ddar/core"
	"github.com/augend/ddar/elim"
	"github.com/augend/ddar/geodb"
)

type handler func(db *geodb.DB, p Predicate, cause *core.ProofNode) (bool, error)

var handlers = map[string]handler{
	"coll":                forceColl,
	"cyclic":              forceCyclic,
	"cyclic_with_centers": forceCyclicWithCenters,
	"para":                forcePara,
	"perp":                forcePerp,
	"s_angle":             forceConstAngle,
	"aconst":              forceConstAngle,
	"eqangle":             forceEqAngle,
	"angeq":               forceEqAngle,
	"cong":                forceCong,
	"distmeq":             forceCong,
	"eqratio":             forceEqRatio,
	"rconst":              forceRatioConst,
	"distseq":             forceDistSeq,
	"overlap":             forceOverlap,
}

// Force translates and asserts p against db, returning whether it added new
// information. Returns ErrQueryOnly for acompute (spec.md: a warning, not a
// failure — callers should log and continue) and ErrUnknownPredicate /
// ErrWrongArity for malformed input.
func Force(db *geodb.DB, p Predicate, cause *core.ProofNode) (bool, error) {
	if p.Name == "acompute" {
		return false, errorf("Force", ErrQueryOnly)
	}
	h, ok := handlers[p.Name]
	if !ok {
		return false, errorf("Force", ErrUnknownPredicate)
	}
	return h(db, p, cause)
}

// Check reports whether p already follows from db, without asserting
// anything new. Only the equational predicate kinds support a direct check;
// DB-action kinds (coll/cyclic/overlap) are checked via their resulting
// line/circle/substitution membership.
func Check(db *geodb.DB, p Predicate) (bool, error) {
	switch p.Name {
	case "coll":
		return checkColl(db, p)
	case "cyclic":
		return checkCyclic(db, p)
	case "overlap":
		return checkOverlap(db, p)
	case "para", "perp", "s_angle", "aconst", "eqangle", "angeq":
		return checkAngle(db, p)
	case "cong", "distmeq", "eqratio", "rconst":
		return checkRatio(db, p)
	case "distseq":
		return checkDistSeq(db, p)
	default:
		return false, errorf("Check", ErrUnknownPredicate)
	}
}

// Compute implements acompute(a,b,c,d): returns the numeric angle in
// degrees between directed lines AB and CD if it is symbolically constant
// (the reduced comb involves only the system's unit term), and ok=false
// otherwise.
func Compute(db *geodb.DB, p Predicate) (degrees float64, ok bool, err error) {
	if len(p.Points) != 4 {
		return 0, false, errorf("Compute", ErrWrongArity)
	}
	a, b, c, d := p.Points[0], p.Points[1], p.Points[2], p.Points[3]
	diff := db.Angle().Diff(db.PairDir(c, d), db.PairDir(a, b))
	reduced := db.Angle().Simplify(diff)
	unitID := db.Angle().Unit().ID
	for _, id := range reduced.VarIDs() {
		if id != unitID {
			return 0, false, nil
		}
	}
	coeff := reduced.Term(unitID)
	f, _ := coeff.Float64()
	deg := math.Mod(f*180, 180)
	if deg < 0 {
		deg += 180
	}
	return deg, true, nil
}

func requireArity(p Predicate, n int) error {
	if len(p.Points) != n {
		return ErrWrongArity
	}
	return nil
}

func requireMinArity(p Predicate, n int) error {
	if len(p.Points) < n {
		return ErrWrongArity
	}
	return nil
}

func forceColl(db *geodb.DB, p Predicate, cause *core.ProofNode) (bool, error) {
	if err := requireMinArity(p, 3); err != nil {
		return false, errorf("coll", err)
	}
	changed := false
	for i := 2; i < len(p.Points); i++ {
		ok, err := db.ForceCollinear(p.Points[0], p.Points[1], p.Points[i], cause)
		if err != nil {
			return changed, errorf("coll", err)
		}
		changed = changed || ok
	}
	return changed, nil
}

func checkColl(db *geodb.DB, p Predicate) (bool, error) {
	if err := requireMinArity(p, 3); err != nil {
		return false, errorf("coll", err)
	}
	lines := db.Lines()
	names := make(map[string]bool, len(p.Points))
	for _, n := range p.Points {
		r, err := db.Resolve(n)
		if err != nil {
			return false, errorf("coll", err)
		}
		names[r] = true
	}
	for _, ln := range lines {
		hit := 0
		for n := range names {
			if ln.On(n) {
				hit++
			}
		}
		if hit == len(names) {
			return true, nil
		}
	}
	return false, nil
}

func forceCyclic(db *geodb.DB, p Predicate, cause *core.ProofNode) (bool, error) {
	if err := requireMinArity(p, 4); err != nil {
		return false, errorf("cyclic", err)
	}
	changed := false
	for i := 3; i < len(p.Points); i++ {
		ok, err := db.ForceConcyclic(p.Points[0], p.Points[1], p.Points[2], p.Points[i], cause)
		if err != nil {
			return changed, errorf("cyclic", err)
		}
		changed = changed || ok
	}
	return changed, nil
}

func checkCyclic(db *geodb.DB, p Predicate) (bool, error) {
	if err := requireMinArity(p, 4); err != nil {
		return false, errorf("cyclic", err)
	}
	circles := db.Circles()
	names := make(map[string]bool, len(p.Points))
	for _, n := range p.Points {
		r, err := db.Resolve(n)
		if err != nil {
			return false, errorf("cyclic", err)
		}
		names[r] = true
	}
	for _, c := range circles {
		hit := 0
		for n := range names {
			if c.On(n) {
				hit++
			}
		}
		if hit == len(names) {
			return true, nil
		}
	}
	return false, nil
}

// forceCyclicWithCenters handles cyclic_with_centers(k, centers…, pts…):
// the leading constant k gives the number of named centers. Two or more
// centers of the same circle are necessarily the same point, so every
// center after the first is merged onto it before anything else is forced.
// When fewer than 3 distinct points remain besides the centers, the
// assertion degenerates to forcing equal radii from the (merged) center
// rather than building a concyclic record (spec.md §4.3's composite case).
func forceCyclicWithCenters(db *geodb.DB, p Predicate, cause *core.ProofNode) (bool, error) {
	if err := requireMinArity(p, 2); err != nil {
		return false, errorf("cyclic_with_centers", err)
	}
	k := 1
	if len(p.Constants) > 0 {
		if !p.Constants[0].IsInt() {
			return false, errorf("cyclic_with_centers", ErrWrongArity)
		}
		k = int(p.Constants[0].Num().Int64())
	}
	if k < 1 || k >= len(p.Points) {
		return false, errorf("cyclic_with_centers", ErrWrongArity)
	}
	centers := p.Points[:k]
	pts := p.Points[k:]

	changed := false
	for i := 1; i < len(centers); i++ {
		ok, err := db.ForceEqualPoints(centers[0], centers[i], cause)
		if err != nil {
			return changed, errorf("cyclic_with_centers", err)
		}
		changed = changed || ok
	}
	center := centers[0]

	if len(pts) < 3 {
		if len(pts) < 2 {
			return changed, nil
		}
		for i := 1; i < len(pts); i++ {
			ok, err := db.Mul().ForceCong(db.PairLogDist(center, pts[0]), db.PairLogDist(center, pts[i]), cause)
			if err != nil {
				return changed, errorf("cyclic_with_centers", err)
			}
			changed = changed || ok
		}
		return changed, nil
	}
	for i := 3; i < len(pts); i++ {
		ok, err := db.ForceConcyclic(pts[0], pts[1], pts[2], pts[i], cause)
		if err != nil {
			return changed, errorf("cyclic_with_centers", err)
		}
		changed = changed || ok
	}
	for _, pt := range pts {
		ok, err := db.Mul().ForceCong(db.PairLogDist(center, pts[0]), db.PairLogDist(center, pt), cause)
		if err != nil {
			return changed, errorf("cyclic_with_centers", err)
		}
		changed = changed || ok
	}
	return changed, nil
}

func forcePara(db *geodb.DB, p Predicate, cause *core.ProofNode) (bool, error) {
	if err := requireArity(p, 4); err != nil {
		return false, errorf("para", err)
	}
	return db.Angle().ForceParallel(db.PairDir(p.Points[0], p.Points[1]), db.PairDir(p.Points[2], p.Points[3]), cause)
}

func checkAngle(db *geodb.DB, p Predicate) (bool, error) {
	switch p.Name {
	case "para":
		if err := requireArity(p, 4); err != nil {
			return false, errorf("para", err)
		}
		diff := db.Angle().Diff(db.PairDir(p.Points[0], p.Points[1]), db.PairDir(p.Points[2], p.Points[3]))
		return db.Angle().IsZero(diff), nil
	case "perp":
		if err := requireArity(p, 4); err != nil {
			return false, errorf("perp", err)
		}
		diff := db.Angle().Diff(db.PairDir(p.Points[0], p.Points[1]), db.PairDir(p.Points[2], p.Points[3])).Sub(db.Angle().RightAngle())
		return db.Angle().IsZero(diff), nil
	case "s_angle", "aconst":
		if err := requireArity(p, 4); err != nil || len(p.Constants) != 1 {
			return false, errorf(p.Name, ErrWrongArity)
		}
		diff := db.Angle().Diff(db.PairDir(p.Points[0], p.Points[1]), db.PairDir(p.Points[2], p.Points[3])).Sub(db.Angle().ConstDegrees(p.Constants[0]))
		return db.Angle().IsZero(diff), nil
	case "eqangle", "angeq":
		if err := requireArity(p, 8); err != nil {
			return false, errorf(p.Name, err)
		}
		return db.Angle().CheckEqualAngles(
			db.PairDir(p.Points[0], p.Points[1]), db.PairDir(p.Points[2], p.Points[3]),
			db.PairDir(p.Points[4], p.Points[5]), db.PairDir(p.Points[6], p.Points[7]),
		), nil
	}
	return false, errorf("checkAngle", ErrUnknownPredicate)
}

func forcePerp(db *geodb.DB, p Predicate, cause *core.ProofNode) (bool, error) {
	if err := requireArity(p, 4); err != nil {
		return false, errorf("perp", err)
	}
	return db.Angle().ForcePerp(db.PairDir(p.Points[0], p.Points[1]), db.PairDir(p.Points[2], p.Points[3]), cause)
}

func forceConstAngle(db *geodb.DB, p Predicate, cause *core.ProofNode) (bool, error) {
	if err := requireArity(p, 4); err != nil || len(p.Constants) != 1 {
		return false, errorf(p.Name, ErrWrongArity)
	}
	return db.Angle().ForceConstAngle(db.PairDir(p.Points[0], p.Points[1]), db.PairDir(p.Points[2], p.Points[3]), p.Constants[0], cause)
}

func forceEqAngle(db *geodb.DB, p Predicate, cause *core.ProofNode) (bool, error) {
	if err := requireArity(p, 8); err != nil {
		return false, errorf(p.Name, err)
	}
	return db.Angle().ForceEqualAngles(
		db.PairDir(p.Points[0], p.Points[1]), db.PairDir(p.Points[2], p.Points[3]),
		db.PairDir(p.Points[4], p.Points[5]), db.PairDir(p.Points[6], p.Points[7]),
		cause,
	)
}

func forceCong(db *geodb.DB, p Predicate, cause *core.ProofNode) (bool, error) {
	if err := requireArity(p, 4); err != nil {
		return false, errorf(p.Name, err)
	}
	return db.Mul().ForceCong(db.PairLogDist(p.Points[0], p.Points[1]), db.PairLogDist(p.Points[2], p.Points[3]), cause)
}

func forceEqRatio(db *geodb.DB, p Predicate, cause *core.ProofNode) (bool, error) {
	if err := requireArity(p, 8); err != nil {
		return false, errorf("eqratio", err)
	}
	return db.Mul().ForceEqualRatio(
		db.PairLogDist(p.Points[0], p.Points[1]), db.PairLogDist(p.Points[2], p.Points[3]),
		db.PairLogDist(p.Points[4], p.Points[5]), db.PairLogDist(p.Points[6], p.Points[7]),
		cause,
	)
}

func forceRatioConst(db *geodb.DB, p Predicate, cause *core.ProofNode) (bool, error) {
	if err := requireArity(p, 4); err != nil || len(p.Constants) != 1 {
		return false, errorf("rconst", ErrWrongArity)
	}
	return db.Mul().ForceRatioConst(db.PairLogDist(p.Points[0], p.Points[1]), db.PairLogDist(p.Points[2], p.Points[3]), p.Constants[0], cause)
}

func checkRatio(db *geodb.DB, p Predicate) (bool, error) {
	switch p.Name {
	case "cong", "distmeq":
		if err := requireArity(p, 4); err != nil {
			return false, errorf(p.Name, err)
		}
		return db.Mul().IsZero(db.Mul().LogDiff(db.PairLogDist(p.Points[0], p.Points[1]), db.PairLogDist(p.Points[2], p.Points[3]))), nil
	case "eqratio":
		if err := requireArity(p, 8); err != nil {
			return false, errorf("eqratio", err)
		}
		return db.Mul().CheckEqualRatio(
			db.PairLogDist(p.Points[0], p.Points[1]), db.PairLogDist(p.Points[2], p.Points[3]),
			db.PairLogDist(p.Points[4], p.Points[5]), db.PairLogDist(p.Points[6], p.Points[7]),
		), nil
	case "rconst":
		if err := requireArity(p, 4); err != nil || len(p.Constants) != 1 {
			return false, errorf("rconst", ErrWrongArity)
		}
		diff := db.Mul().LogDiff(db.PairLogDist(p.Points[0], p.Points[1]), db.PairLogDist(p.Points[2], p.Points[3])).Sub(db.Mul().ConstRatio(p.Constants[0]))
		return db.Mul().IsZero(diff), nil
	}
	return false, errorf("checkRatio", ErrUnknownPredicate)
}

func forceDistSeq(db *geodb.DB, p Predicate, cause *core.ProofNode) (bool, error) {
	if err := requireArity(p, 4); err != nil {
		return false, errorf("distseq", err)
	}
	v1, s1 := db.PairAddLen(p.Points[0], p.Points[1])
	v2, s2 := db.PairAddLen(p.Points[2], p.Points[3])
	c1, c2 := core.RatInt(s1, 1), core.RatInt(-s2, 1)
	return db.Add().ForceLinear(cause, elim.Term{Coeff: c1, Var: v1}, elim.Term{Coeff: c2, Var: v2})
}

func checkDistSeq(db *geodb.DB, p Predicate) (bool, error) {
	if err := requireArity(p, 4); err != nil {
		return false, errorf("distseq", err)
	}
	v1, s1 := db.PairAddLen(p.Points[0], p.Points[1])
	v2, s2 := db.PairAddLen(p.Points[2], p.Points[3])
	c := db.Add().Linear(
		elim.Term{Coeff: core.RatInt(s1, 1), Var: v1},
		elim.Term{Coeff: core.RatInt(-s2, 1), Var: v2},
	)
	return db.Add().IsZero(c), nil
}

func forceOverlap(db *geodb.DB, p Predicate, cause *core.ProofNode) (bool, error) {
	if err := requireArity(p, 2); err != nil {
		return false, errorf("overlap", err)
	}
	return db.ForceEqualPoints(p.Points[0], p.Points[1], cause)
}

func checkOverlap(db *geodb.DB, p Predicate) (bool, error) {
	if err := requireArity(p, 2); err != nil {
		return false, errorf("overlap", err)
	}
	a, err := db.Resolve(p.Points[0])
	if err != nil {
		return false, errorf("overlap", err)
	}
	b, err := db.Resolve(p.Points[1])
	if err != nil {
		return false, errorf("overlap", err)
	}
	return a == b, nil
}
