// Package elim is the symbolic elimination core: fraction-free Gauss–Jordan
// reduction of core.LinComb values over a growing set of core.Variables,
// seeded and verified against numeric oracle values (numerics.ATOM).
//
// ElimCore is the untyped engine; ElimAngle, ElimDistMul and ElimDistAdd are
// thin domain-typed facades over it that fix the semantics spec.md assigns
// to each of the three linear systems (angles mod one half-turn,
// multiplicative log-distances, additive signed segment lengths).
//
// Grounded on lvlath/matrix's linear-algebra kernel shape (impl_linear_algebra.go:
// validate → compute → wrap-error) and its functional-options configuration
// (options.go: Default* constants + With* constructors).
package elim
