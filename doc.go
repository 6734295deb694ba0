// File: doc.go
// Role: package ddar composes core/elim/numerics/geodb/predicate/proof/
// saturation into the single entry point callers embed: register points,
// assert or query predicates, run saturation to a fixed point, and render
// the proof behind any derived fact.
//
// Grounded on lvlath/graph's facade shape (a struct composing several
// subsystems behind one RWMutex-guarded API).
package ddar
