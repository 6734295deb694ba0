// File: core.go
// Role: ElimCore — fraction-free Gauss–Jordan elimination over core.LinComb,
// seeded by a reserved constant-unit Variable and verified against a
// pluggable numeric-consistency NormFunc.
//
// Invariant (RREF): every pivot variable has coefficient 1 in its own
// defining comb and appears in no other defining comb. Simplify relies on
// this invariant to reduce in a single pass over existing pivots.
package elim

import (
	"math/big"

	"github.com/bits-and-blooms/bitset"

	"github.com/augend/ddar/core"
)

// ElimCore holds one ordered pivot list and, for each pivot, its normalized
// defining LinComb. It owns every Variable it has ever created; Variables
// and pair-facts built on top of it (in elim's three wrappers) are created
// once and never removed, matching spec.md §3's "Lifecycle" note.
type ElimCore struct {
	norm      NormFunc
	unitName  string
	unitValue float64
	epsilon   float64

	vars   []*core.Variable
	unit   *core.Variable
	pivots []int               // ordered pivot list, insertion order
	define map[int]*core.LinComb // pivot variable id -> normalized defining comb

	isPivot     *bitset.BitSet // membership test for "id is currently a pivot"
	encountered *bitset.BitSet // per-variable "ever touched by a forced equation"
}

// NewCore builds an ElimCore seeded with a single reserved unit Variable
// (DefaultUnitName, numeric value 1.0 unless overridden).
func NewCore(opts ...CoreOption) *ElimCore {
	c := &ElimCore{
		norm:        IdentityNorm,
		unitName:    DefaultUnitName,
		unitValue:   1.0,
		epsilon:     1e-9,
		define:      make(map[int]*core.LinComb),
		isPivot:     bitset.New(64),
		encountered: bitset.New(64),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.unit = c.newVarInternal(c.unitValue, c.unitName)
	return c
}

// WithEpsilon overrides the ATOM-style tolerance used by ForceZero's
// numeric consistency oracle.
func WithEpsilon(eps float64) CoreOption {
	return func(c *ElimCore) {
		if eps > 0 {
			c.epsilon = eps
		}
	}
}

func (c *ElimCore) newVarInternal(value float64, name string) *core.Variable {
	v := &core.Variable{ID: len(c.vars), Name: name, Value: value}
	c.vars = append(c.vars, v)
	return v
}

// NewVar creates a fresh basis element with the given numeric value and
// diagnostic name.
func (c *ElimCore) NewVar(value float64, name string) *core.Variable {
	return c.newVarInternal(value, name)
}

// Unit returns the reserved constant-unit variable (represents the value 1
// in whichever system this core backs: one half-turn for angles, etc).
func (c *ElimCore) Unit() *core.Variable {
	return c.unit
}

// ConstFrac returns (p/q) × unit, the canonical way to express a rational
// constant as a LinComb in this system.
func (c *ElimCore) ConstFrac(p, q int64) *core.LinComb {
	out := core.NewLinComb()
	out.SetTerm(c.unit.ID, core.RatInt(p, q))
	return out
}

// ConstRat is ConstFrac generalized to an arbitrary already-built rational.
func (c *ElimCore) ConstRat(r *big.Rat) *core.LinComb {
	out := core.NewLinComb()
	out.SetTerm(c.unit.ID, new(big.Rat).Set(r))
	return out
}

// valuesSnapshot returns the current numeric value of every variable, keyed
// by id, for the ATOM consistency oracle.
func (c *ElimCore) valuesSnapshot() map[int]float64 {
	out := make(map[int]float64, len(c.vars))
	for _, v := range c.vars {
		out[v.ID] = v.Value
	}
	return out
}

// Simplify reduces in against every current pivot, returning a new comb
// whose support contains no pivot variable. The RREF invariant guarantees a
// single pass over in's own variables suffices: no defining comb ever
// mentions another pivot, so subtracting one pivot's contribution never
// reintroduces another.
func (c *ElimCore) Simplify(in *core.LinComb) *core.LinComb {
	reduced := in.Clone()
	for _, id := range in.VarIDs() {
		if !c.isPivot.Test(uint(id)) {
			continue
		}
		coeff := reduced.Term(id)
		if coeff.Sign() == 0 {
			continue
		}
		def := c.define[id]
		reduced = reduced.Sub(def.Scale(coeff))
	}
	return reduced
}

// IsZero reports whether in reduces to the empty comb against the current
// pivot set. It performs no mutation and never creates a new pivot.
func (c *ElimCore) IsZero(in *core.LinComb) bool {
	return c.Simplify(in).Empty()
}

// nonUnitIDs filters the unit variable out of a var-id slice: the unit is
// the system's fixed reference axis and is never itself chosen as a pivot.
func (c *ElimCore) nonUnitIDs(ids []int) []int {
	out := ids[:0:0]
	for _, id := range ids {
		if id != c.unit.ID {
			out = append(out, id)
		}
	}
	return out
}

// ForceZero asserts in = 0, returning true if it added new information.
//
// Algorithm (spec.md §4.1):
//  1. Simplify in against the current pivot set.
//  2. If nothing but (optionally) the unit term remains, no new pivot can be
//     chosen; verify the ORIGINAL comb's numeric value is within epsilon of
//     zero (mod 1 for angle systems via NormFunc) — otherwise the asserted
//     fact contradicts the numeric configuration, which is fatal.
//  3. Otherwise pick the newest variable present (largest id) as the new
//     pivot, normalize, store, and back-substitute into every earlier
//     pivot whose defining comb mentions it.
//  4. Union sources, mark variables encountered, record the pivot.
func (c *ElimCore) ForceZero(in *core.LinComb, cause *core.ProofNode) (bool, error) {
	reduced := c.Simplify(in)
	candidates := c.nonUnitIDs(reduced.VarIDs())

	if len(candidates) == 0 {
		mag := c.norm(in.NumericValue(c.valuesSnapshot()))
		if mag >= c.epsilon {
			return false, errorf("ForceZero", ErrNumericInconsistency)
		}
		return false, nil
	}

	pivotID := candidates[len(candidates)-1] // newest variable wins the pivot slot
	normalized, _ := reduced.Normalize(pivotID)
	normalized.AddSource(cause)

	// Back-substitute: retire pivotID from every earlier defining comb that
	// mentions it, folding in the new equation's provenance as we go.
	for _, existingID := range c.pivots {
		def := c.define[existingID]
		coeffAtNew := def.Term(pivotID)
		if coeffAtNew.Sign() == 0 {
			continue
		}
		c.define[existingID] = def.Sub(normalized.Scale(coeffAtNew))
	}

	c.define[pivotID] = normalized
	c.isPivot.Set(uint(pivotID))
	c.pivots = append(c.pivots, pivotID)
	for _, id := range normalized.VarIDs() {
		c.encountered.Set(uint(id))
	}

	return true, nil
}

// ForceOne asserts comb = 1 (i.e. comb - unit = 0), the generic "comb − 1
// for constants" sugar described in spec.md §4.1. Domain wrappers whose
// variables already live in log space (ElimDistMul) instead call
// ForceZero directly, since is_one there is equivalent to is_zero.
func (c *ElimCore) ForceOne(comb *core.LinComb, cause *core.ProofNode) (bool, error) {
	return c.ForceZero(comb.Sub(c.ConstFrac(1, 1)), cause)
}

// Encountered reports whether variable id has ever appeared in a forced
// equation, used by saturation passes to prune candidates that carry no
// information yet.
func (c *ElimCore) Encountered(id int) bool {
	return c.encountered.Test(uint(id))
}

// Pivots returns a copy of the ordered pivot list.
func (c *ElimCore) Pivots() []int {
	out := make([]int, len(c.pivots))
	copy(out, c.pivots)
	return out
}

// Defining returns the defining comb for a pivot variable, or nil if id is
// not currently a pivot.
func (c *ElimCore) Defining(id int) *core.LinComb {
	return c.define[id]
}

// NumVars reports how many variables this core has ever created.
func (c *ElimCore) NumVars() int {
	return len(c.vars)
}
