// File: lincomb.go
// Role: LinComb — an exact rational linear combination of Variables, plus
// the set of ProofNodes that witness how it was derived.
//
// Invariant: terms never holds a zero coefficient; Set/AddTerm prune zero
// entries immediately so Empty() is a reliable "this comb reduces to 0/1"
// test without a sweep.
//
// AI-Hints (file):
//   - Build combs with NewLinComb + SetTerm, never by touching terms directly.
//   - Sources() returns a deterministic, ID-sorted slice — never range a map
//     when proof output has to be reproducible across runs.
package core

import (
	"math/big"
	"sort"
)

// LinComb maps Variable.ID to a nonzero rational coefficient and carries the
// set of ProofNodes that witness every reduction step that produced it.
type LinComb struct {
	terms   map[int]*big.Rat
	sources *ProofSet
}

// NewLinComb returns an empty comb (representing 0) carrying the given
// sources. Pass no sources for a comb built from scratch by the caller.
func NewLinComb(sources ...*ProofNode) *LinComb {
	return &LinComb{terms: make(map[int]*big.Rat), sources: NewProofSet(sources...)}
}

// Term returns the coefficient of variable id, or a zero rational if absent.
// The returned value is a copy; mutating it never affects the comb.
func (c *LinComb) Term(id int) *big.Rat {
	if v, ok := c.terms[id]; ok {
		return new(big.Rat).Set(v)
	}
	return new(big.Rat)
}

// SetTerm sets the coefficient of variable id to coeff, removing the entry
// entirely when coeff is zero so Empty() stays accurate.
func (c *LinComb) SetTerm(id int, coeff *big.Rat) {
	if coeff.Sign() == 0 {
		delete(c.terms, id)
		return
	}
	c.terms[id] = new(big.Rat).Set(coeff)
}

// AddTerm adds delta to the existing coefficient of variable id.
func (c *LinComb) AddTerm(id int, delta *big.Rat) {
	sum := new(big.Rat).Add(c.Term(id), delta)
	c.SetTerm(id, sum)
}

// Empty reports whether every coefficient is zero, i.e. the comb represents
// the additive identity of its system.
func (c *LinComb) Empty() bool {
	return len(c.terms) == 0
}

// VarIDs returns the variable ids with a nonzero coefficient, in ascending
// order, so callers can iterate deterministically.
func (c *LinComb) VarIDs() []int {
	ids := make([]int, 0, len(c.terms))
	for id := range c.terms {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Sources returns the witnessing ProofNodes, sorted by ID for determinism.
func (c *LinComb) Sources() []*ProofNode {
	return c.sources.Slice()
}

// AddSource records an additional witness for this comb.
func (c *LinComb) AddSource(n *ProofNode) {
	c.sources.Add(n)
}

// MergeSourcesFrom unions another comb's sources into this one.
func (c *LinComb) MergeSourcesFrom(other *LinComb) {
	c.sources.Union(other.sources)
}

// Clone deep-copies the coefficient map and shares no mutable state with c.
// Sources are copied by reference (ProofNodes are immutable once built).
func (c *LinComb) Clone() *LinComb {
	out := &LinComb{terms: make(map[int]*big.Rat, len(c.terms)), sources: NewProofSet()}
	for id, v := range c.terms {
		out.terms[id] = new(big.Rat).Set(v)
	}
	out.sources.Union(c.sources)
	return out
}

// Add returns a new comb equal to c + other, with unioned sources.
func (c *LinComb) Add(other *LinComb) *LinComb {
	out := c.Clone()
	for id, v := range other.terms {
		out.AddTerm(id, v)
	}
	out.MergeSourcesFrom(other)
	return out
}

// Sub returns a new comb equal to c - other, with unioned sources.
func (c *LinComb) Sub(other *LinComb) *LinComb {
	out := c.Clone()
	for id, v := range other.terms {
		out.AddTerm(id, new(big.Rat).Neg(v))
	}
	out.MergeSourcesFrom(other)
	return out
}

// Scale returns a new comb equal to k*c. Sources are preserved unchanged.
func (c *LinComb) Scale(k *big.Rat) *LinComb {
	out := NewLinComb()
	if k.Sign() == 0 {
		out.MergeSourcesFrom(c)
		return out
	}
	for id, v := range c.terms {
		out.terms[id] = new(big.Rat).Mul(v, k)
	}
	out.MergeSourcesFrom(c)
	return out
}

// Negate returns a new comb equal to -c.
func (c *LinComb) Negate() *LinComb {
	return c.Scale(new(big.Rat).SetInt64(-1))
}

// DivScalar returns a new comb equal to c/k. Panics on a zero divisor: that
// is always a programmer error (callers divide by a pivot coefficient they
// just verified nonzero), never user input.
func (c *LinComb) DivScalar(k *big.Rat) *LinComb {
	if k.Sign() == 0 {
		panic("core: LinComb.DivScalar by zero")
	}
	inv := new(big.Rat).Inv(k)
	return c.Scale(inv)
}

// NumericValue evaluates the comb by substituting each variable's numeric
// value, used by the ATOM consistency oracle. values must contain an entry
// for every variable id present in the comb.
func (c *LinComb) NumericValue(values map[int]float64) float64 {
	var sum float64
	for id, coeff := range c.terms {
		f, _ := coeff.Float64()
		sum += f * values[id]
	}
	return sum
}

// Normalize divides c by the coefficient of pivot (which must be present and
// nonzero) and returns the normalized comb together with that coefficient,
// matching spec step "normalize (divide by leading coefficient; returns
// normalized comb and the coefficient)".
func (c *LinComb) Normalize(pivot int) (*LinComb, *big.Rat) {
	coeff := c.Term(pivot)
	return c.DivScalar(coeff), coeff
}
