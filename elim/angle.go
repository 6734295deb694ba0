// File: angle.go
// Role: ElimAngle — the directed-angle system. Angles live in ℚ/ℤ where
// 1 = one half-turn; the reserved unit variable represents that half-turn,
// and every constant angle is a rational multiple of it.
package elim

import (
	"math/big"

	"github.com/augend/ddar/core"
	"github.com/augend/ddar/numerics"
)

// ElimAngle is a domain-typed facade over ElimCore fixing angle semantics:
// equality is mod one half-turn, so the numeric consistency oracle measures
// distance to the nearest integer rather than raw magnitude.
type ElimAngle struct {
	*ElimCore
}

// NewAngle builds a fresh angle system with its own reserved unit variable
// representing one half-turn.
func NewAngle() *ElimAngle {
	return &ElimAngle{NewCore(WithNormFunc(ModOneNorm), WithUnitName("half_turn"), WithUnitValue(numerics.UnitValue))}
}

// Diff returns the comb dir(a) − dir(b) for two direction variables.
func (a *ElimAngle) Diff(dirA, dirB *core.Variable) *core.LinComb {
	c := core.NewLinComb()
	c.SetTerm(dirA.ID, core.RatInt(1, 1))
	c.AddTerm(dirB.ID, core.RatInt(-1, 1))
	return c
}

// RightAngle returns the constant comb ½ × unit (a quarter-turn offset,
// i.e. one right angle), used to encode perp.
func (a *ElimAngle) RightAngle() *core.LinComb {
	return a.ConstFrac(1, 2)
}

// ConstDegrees returns the comb −(k/180) × unit for a constant angle of k
// degrees, matching spec.md §4.2's literal encoding for s_angle/aconst.
func (a *ElimAngle) ConstDegrees(k *big.Rat) *core.LinComb {
	r := new(big.Rat).Quo(k, big.NewRat(180, 1))
	r.Neg(r)
	return a.ConstRat(r)
}

// ForceParallel asserts dir(ab) = dir(cd): the two pairs define parallel
// (or identical) directed lines.
func (a *ElimAngle) ForceParallel(dirAB, dirCD *core.Variable, cause *core.ProofNode) (bool, error) {
	return a.ForceZero(a.Diff(dirAB, dirCD), cause)
}

// ForcePerp asserts dir(ab) − dir(cd) = ½, i.e. the two directed lines meet
// at a right angle.
func (a *ElimAngle) ForcePerp(dirAB, dirCD *core.Variable, cause *core.ProofNode) (bool, error) {
	return a.ForceZero(a.Diff(dirAB, dirCD).Sub(a.RightAngle()), cause)
}

// ForceConstAngle asserts dir(ab) − dir(cd) = −(k/180) × unit.
func (a *ElimAngle) ForceConstAngle(dirAB, dirCD *core.Variable, kDegrees *big.Rat, cause *core.ProofNode) (bool, error) {
	return a.ForceZero(a.Diff(dirAB, dirCD).Sub(a.ConstDegrees(kDegrees)), cause)
}

// ForceEqualAngles asserts ∠(dir1,dir2) = ∠(dir3,dir4):
// dir1 − dir2 = dir3 − dir4.
func (a *ElimAngle) ForceEqualAngles(dir1, dir2, dir3, dir4 *core.Variable, cause *core.ProofNode) (bool, error) {
	lhs := a.Diff(dir1, dir2).Sub(a.Diff(dir3, dir4))
	return a.ForceZero(lhs, cause)
}

// CheckEqualAngles reports whether ∠(dir1,dir2) = ∠(dir3,dir4) already
// follows from the current system, without asserting anything new.
func (a *ElimAngle) CheckEqualAngles(dir1, dir2, dir3, dir4 *core.Variable) bool {
	return a.IsZero(a.Diff(dir1, dir2).Sub(a.Diff(dir3, dir4)))
}
