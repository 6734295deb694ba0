// File: ddar.go
// Role: Engine — the package's single entry point. Wraps a geodb.DB and a
// saturation.Engine behind the predicate vocabulary callers actually use:
// register points, force or check predicates, saturate to a fixed point,
// and render the proof behind any fact that holds.
package ddar

import (
	"errors"

	"github.com/augend/ddar/core"
	"github.com/augend/ddar/elim"
	"github.com/augend/ddar/geodb"
	"github.com/augend/ddar/predicate"
	"github.com/augend/ddar/proof"
	"github.com/augend/ddar/saturation"
)

// ErrNoProofAvailable is returned by GetProof for predicate kinds that hold
// only as a side effect of point identification (overlap): geodb's
// union-find collapses two names into one without retaining a dedicated
// witness set for the merge itself, so no proof trace can be rendered.
var ErrNoProofAvailable = errors.New("ddar: no proof trace available for this predicate")

// ErrNotProven is returned by GetProof when the predicate does not
// currently hold, so there is no proof to render.
var ErrNotProven = errors.New("ddar: predicate does not currently hold")

// Engine is a single geometric configuration: its points, derived facts,
// and the proof DAG recording how each fact was reached.
type Engine struct {
	db    *geodb.DB
	arena *core.ProofArena
	satur *saturation.Engine
	cfg   config
}

// New builds an empty Engine.
func New(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	arena := core.NewProofArena()
	db := geodb.New(arena)
	return &Engine{
		db:    db,
		arena: arena,
		satur: saturation.New(db, arena, cfg.logger),
		cfg:   cfg,
	}
}

// AddPoint registers a named point at the given coordinates.
func (e *Engine) AddPoint(name string, x, y float64) error {
	p, err := core.NewPoint(name, x, y)
	if err != nil {
		return errorf("AddPoint", err)
	}
	if err := e.db.AddPoint(p); err != nil {
		return errorf("AddPoint", err)
	}
	return nil
}

// ForcePred asserts p as given (an axiom with no parent deductions) and
// returns whether it added any new information.
func (e *Engine) ForcePred(p predicate.Predicate) (bool, error) {
	cause := e.arena.New("given", p.Name+describePoints(p))
	changed, err := predicate.Force(e.db, p, cause)
	if err != nil {
		return false, errorf("ForcePred", err)
	}
	return changed, nil
}

// CheckPred reports whether p currently follows from the database, without
// asserting anything.
func (e *Engine) CheckPred(p predicate.Predicate) (bool, error) {
	ok, err := predicate.Check(e.db, p)
	if err != nil {
		return false, errorf("CheckPred", err)
	}
	return ok, nil
}

// ComputeAngle implements the acompute(a,b,c,d) query: the angle in degrees
// between directed lines AB and CD, if it is symbolically constant.
func (e *Engine) ComputeAngle(a, b, c, d string) (degrees float64, ok bool, err error) {
	deg, ok, err := predicate.Compute(e.db, predicate.Predicate{Name: "acompute", Points: []string{a, b, c, d}})
	if err != nil {
		return 0, false, errorf("ComputeAngle", err)
	}
	return deg, ok, nil
}

// DeductionClosure runs the six saturation passes to a fixed point (or
// until the configured step budget is exhausted) and returns the number of
// sweeps performed.
func (e *Engine) DeductionClosure() (int, error) {
	sweeps, err := e.satur.RunToFixedPoint(e.cfg.stepBudget)
	if err != nil {
		return sweeps, errorf("DeductionClosure", err)
	}
	return sweeps, nil
}

// GetProof renders the proof DAG behind p, earliest deduction first. It
// fails with ErrNoProofAvailable for overlap (see that error's doc) and
// with predicate.ErrUnknownPredicate for anything Check doesn't recognize.
func (e *Engine) GetProof(p predicate.Predicate) ([]string, error) {
	sources, err := e.proofSources(p)
	if err != nil {
		return nil, errorf("GetProof", err)
	}
	lines, err := proof.Render(sources...)
	if err != nil {
		return nil, errorf("GetProof", err)
	}
	return lines, nil
}

func (e *Engine) proofSources(p predicate.Predicate) ([]*core.ProofNode, error) {
	switch p.Name {
	case "coll":
		return e.lineSources(p.Points)
	case "cyclic":
		return e.circleSources(p.Points)
	case "overlap":
		return nil, ErrNoProofAvailable
	case "para", "perp", "s_angle", "aconst", "eqangle", "angeq":
		return e.angleSources(p)
	case "cong", "distmeq", "eqratio", "rconst":
		return e.ratioSources(p)
	case "distseq":
		return e.distSeqSources(p)
	default:
		return nil, predicate.ErrUnknownPredicate
	}
}

func (e *Engine) lineSources(names []string) ([]*core.ProofNode, error) {
	resolved := make(map[string]bool, len(names))
	for _, n := range names {
		r, err := e.db.Resolve(n)
		if err != nil {
			return nil, err
		}
		resolved[r] = true
	}
	for _, ln := range e.db.Lines() {
		hit := 0
		for n := range resolved {
			if ln.On(n) {
				hit++
			}
		}
		if hit == len(resolved) {
			return ln.Sources.Slice(), nil
		}
	}
	return nil, ErrNotProven
}

func (e *Engine) circleSources(names []string) ([]*core.ProofNode, error) {
	resolved := make(map[string]bool, len(names))
	for _, n := range names {
		r, err := e.db.Resolve(n)
		if err != nil {
			return nil, err
		}
		resolved[r] = true
	}
	for _, fc := range e.db.Circles() {
		hit := 0
		for n := range resolved {
			if fc.On(n) {
				hit++
			}
		}
		if hit == len(resolved) {
			return fc.Sources.Slice(), nil
		}
	}
	return nil, ErrNotProven
}

func (e *Engine) angleSources(p predicate.Predicate) ([]*core.ProofNode, error) {
	var diff *core.LinComb
	switch p.Name {
	case "para", "eqangle", "angeq":
		if len(p.Points) != 4 && len(p.Points) != 8 {
			return nil, predicate.ErrWrongArity
		}
		if len(p.Points) == 4 {
			diff = e.db.Angle().Diff(e.db.PairDir(p.Points[0], p.Points[1]), e.db.PairDir(p.Points[2], p.Points[3]))
		} else {
			ab := e.db.Angle().Diff(e.db.PairDir(p.Points[0], p.Points[1]), e.db.PairDir(p.Points[2], p.Points[3]))
			cd := e.db.Angle().Diff(e.db.PairDir(p.Points[4], p.Points[5]), e.db.PairDir(p.Points[6], p.Points[7]))
			diff = ab.Sub(cd)
		}
	case "perp":
		if len(p.Points) != 4 {
			return nil, predicate.ErrWrongArity
		}
		diff = e.db.Angle().Diff(e.db.PairDir(p.Points[0], p.Points[1]), e.db.PairDir(p.Points[2], p.Points[3])).Sub(e.db.Angle().RightAngle())
	case "s_angle", "aconst":
		if len(p.Points) != 4 || len(p.Constants) != 1 {
			return nil, predicate.ErrWrongArity
		}
		diff = e.db.Angle().Diff(e.db.PairDir(p.Points[0], p.Points[1]), e.db.PairDir(p.Points[2], p.Points[3])).Sub(e.db.Angle().ConstDegrees(p.Constants[0]))
	}
	diff = e.db.Angle().Simplify(diff)
	if !e.db.Angle().IsZero(diff) {
		return nil, ErrNotProven
	}
	return diff.Sources(), nil
}

func (e *Engine) ratioSources(p predicate.Predicate) ([]*core.ProofNode, error) {
	var diff *core.LinComb
	switch p.Name {
	case "cong", "distmeq":
		if len(p.Points) != 4 {
			return nil, predicate.ErrWrongArity
		}
		diff = e.db.Mul().LogDiff(e.db.PairLogDist(p.Points[0], p.Points[1]), e.db.PairLogDist(p.Points[2], p.Points[3]))
	case "eqratio":
		if len(p.Points) != 8 {
			return nil, predicate.ErrWrongArity
		}
		r1 := e.db.Mul().LogDiff(e.db.PairLogDist(p.Points[0], p.Points[1]), e.db.PairLogDist(p.Points[2], p.Points[3]))
		r2 := e.db.Mul().LogDiff(e.db.PairLogDist(p.Points[4], p.Points[5]), e.db.PairLogDist(p.Points[6], p.Points[7]))
		diff = r1.Sub(r2)
	case "rconst":
		if len(p.Points) != 4 || len(p.Constants) != 1 {
			return nil, predicate.ErrWrongArity
		}
		diff = e.db.Mul().LogDiff(e.db.PairLogDist(p.Points[0], p.Points[1]), e.db.PairLogDist(p.Points[2], p.Points[3])).Sub(e.db.Mul().ConstRatio(p.Constants[0]))
	}
	diff = e.db.Mul().Simplify(diff)
	if !e.db.Mul().IsZero(diff) {
		return nil, ErrNotProven
	}
	return diff.Sources(), nil
}

func (e *Engine) distSeqSources(p predicate.Predicate) ([]*core.ProofNode, error) {
	if len(p.Points) != 4 {
		return nil, predicate.ErrWrongArity
	}
	v1, s1 := e.db.PairAddLen(p.Points[0], p.Points[1])
	v2, s2 := e.db.PairAddLen(p.Points[2], p.Points[3])
	c := e.db.Add().Simplify(e.db.Add().Linear(
		elim.Term{Coeff: core.RatInt(s1, 1), Var: v1},
		elim.Term{Coeff: core.RatInt(-s2, 1), Var: v2},
	))
	if !c.Empty() {
		return nil, ErrNotProven
	}
	return c.Sources(), nil
}

func describePoints(p predicate.Predicate) string {
	if len(p.Points) == 0 {
		return ""
	}
	out := "("
	for i, pt := range p.Points {
		if i > 0 {
			out += ","
		}
		out += pt
	}
	return out + ")"
}
