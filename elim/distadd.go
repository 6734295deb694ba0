// File: distadd.go
// Role: ElimDistAdd — the additive signed-length system. Variables encode
// signed lengths along oriented lines; is_zero is the comb reducing to the
// empty combination (no constant-unit involvement at all: these are plain
// real numbers, not periodic or multiplicative quantities).
package elim

import (
	"math/big"

	"github.com/augend/ddar/core"
)

// ElimDistAdd is a domain-typed facade over ElimCore fixing signed-length
// semantics in ℝ.
type ElimDistAdd struct {
	*ElimCore
}

// NewDistAdd builds a fresh signed-length system.
func NewDistAdd() *ElimDistAdd {
	return &ElimDistAdd{NewCore(WithUnitName("len_unit"))}
}

// Term is a single coefficient*variable contribution to a linear length
// equation, e.g. for pos(b) + |bc| − pos(c) = 0.
type Term struct {
	Coeff *big.Rat
	Var   *core.Variable
}

// Linear builds the comb Σ Coeff×Var over the given terms.
func (d *ElimDistAdd) Linear(terms ...Term) *core.LinComb {
	c := core.NewLinComb()
	for _, t := range terms {
		c.AddTerm(t.Var.ID, t.Coeff)
	}
	return c
}

// ForceLinear asserts Σ Coeff×Var = 0 over the given terms.
func (d *ElimDistAdd) ForceLinear(cause *core.ProofNode, terms ...Term) (bool, error) {
	return d.ForceZero(d.Linear(terms...), cause)
}

// ForceSegmentAdditivity asserts pos(b) + len(bc) − pos(c) = 0, the
// additive segment law used when collinear points are ordered along a
// line (spec.md §4.4 step 6).
func (d *ElimDistAdd) ForceSegmentAdditivity(posB, lenBC, posC *core.Variable, cause *core.ProofNode) (bool, error) {
	return d.ForceLinear(cause,
		Term{Coeff: core.RatInt(1, 1), Var: posB},
		Term{Coeff: core.RatInt(1, 1), Var: lenBC},
		Term{Coeff: core.RatInt(-1, 1), Var: posC},
	)
}

// ForceEqual asserts two signed lengths are equal: a − b = 0.
func (d *ElimDistAdd) ForceEqual(a, b *core.Variable, cause *core.ProofNode) (bool, error) {
	return d.ForceLinear(cause, Term{Coeff: core.RatInt(1, 1), Var: a}, Term{Coeff: core.RatInt(-1, 1), Var: b})
}

// CheckEqual reports whether a − b = 0 already follows.
func (d *ElimDistAdd) CheckEqual(a, b *core.Variable) bool {
	return d.IsZero(d.Linear(Term{Coeff: core.RatInt(1, 1), Var: a}, Term{Coeff: core.RatInt(-1, 1), Var: b}))
}
