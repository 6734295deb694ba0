// File: variable.go
// Role: Variable — a symbolic basis element inside an elimination system,
// and the exact-rational helpers (RatInt, RatZero) its coefficients use.
package core

import "math/big"

// Variable is a symbolic name created once inside an ElimCore. Value is the
// variable's concrete numeric image under the current point configuration,
// used only for the consistency oracle — never for symbolic reduction.
type Variable struct {
	// ID is the insertion-order index of this Variable within its owning core.
	ID int

	// Name is a human-readable label (e.g. "dir(A,B)") used in proof traces.
	Name string

	// Value is the numeric value this variable takes under the current
	// point configuration. Supplied at construction and never mutated.
	Value float64
}

// RatInt builds an exact big.Rat from a pair of integers. Kept here, next to
// Variable, because every constant LinComb in elim is built from one.
func RatInt(num, den int64) *big.Rat {
	return new(big.Rat).SetFrac64(num, den)
}

// RatZero returns a fresh zero rational. big.Rat zero values are usable
// directly, but a named constructor keeps call sites self-documenting.
func RatZero() *big.Rat {
	return new(big.Rat)
}
