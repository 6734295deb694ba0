// File: engine.go
// Role: Engine — owns the outer deduction_closure loop, invoking the six
// passes in order and repeating until a full sweep reports no change.
package saturation

import (
	"github.com/rs/zerolog"

	"github.com/augend/ddar/core"
	"github.com/augend/ddar/geodb"
)

// Engine runs the saturation passes against a shared geometric database.
type Engine struct {
	db     *geodb.DB
	arena  *core.ProofArena
	logger zerolog.Logger

	// knownSimilar records every triangle correspondence the similar-
	// triangles pass has already asserted, under all 6 symmetry images of
	// that correspondence (spec.md §4.5 step 1, §8 seed scenario), so a
	// later collision on a different invariant table is recognized as
	// already-known rather than re-asserted from scratch.
	knownSimilar map[string]bool
}

// New builds a saturation Engine over db, tagging every ProofNode it
// creates in arena.
func New(db *geodb.DB, arena *core.ProofArena, logger zerolog.Logger) *Engine {
	return &Engine{db: db, arena: arena, logger: logger, knownSimilar: make(map[string]bool)}
}

// pass is one named sweep; it returns whether it asserted anything new.
type pass struct {
	name string
	run  func(e *Engine) (bool, error)
}

var passes = []pass{
	{"similar_triangles", (*Engine).similarTrianglesPass},
	{"concyclic_by_angle", (*Engine).concyclicByAnglePass},
	{"equal_radius_circles", (*Engine).equalRadiusPass},
	{"point_merge", (*Engine).pointMergePass},
	{"distance_transfer", (*Engine).distanceTransferPass},
	{"arc_chord_transfer", (*Engine).arcChordTransferPass},
}

// RunToFixedPoint repeats the six passes, in order, until one full sweep
// makes no change to the database, and returns the number of sweeps run.
// stepBudget caps the number of sweeps (0 means unbounded); it exists so a
// caller embedding this engine can bound runaway saturation on malformed
// input, per spec.md §5's "an implementation may add a step-count budget".
func (e *Engine) RunToFixedPoint(stepBudget int) (int, error) {
	sweeps := 0
	for {
		sweeps++
		anyChanged := false
		for _, p := range passes {
			changed, err := p.run(e)
			if err != nil {
				return sweeps, errorf(p.name, err)
			}
			if changed {
				e.logger.Debug().Str("pass", p.name).Int("sweep", sweeps).Msg("saturation pass made progress")
			}
			anyChanged = anyChanged || changed
		}
		if !anyChanged {
			return sweeps, nil
		}
		if stepBudget > 0 && sweeps >= stepBudget {
			e.logger.Warn().Int("sweeps", sweeps).Msg("saturation stopped: step budget exhausted")
			return sweeps, nil
		}
	}
}
