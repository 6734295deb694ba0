// File: distmul.go
// Role: ElimDistMul — the multiplicative-distance system. Variables encode
// log|AB| so ratio equalities become vanishing linear combinations; is_one
// is therefore equivalent to the underlying comb reducing to zero.
package elim

import (
	"math"
	"math/big"

	"github.com/augend/ddar/core"
)

// ElimDistMul is a domain-typed facade over ElimCore fixing log-distance
// semantics. Unlike the angle system, ElimDistMul does not route numeric
// constants through the shared unit variable: a rational ratio constant k
// (e.g. rconst's AB/CD = 3/2) has an irrational log in general, so each
// distinct constant gets its own dedicated named variable (value = ln(k)),
// cached by the constant's canonical rational string so repeated requests
// for the same k reuse one variable.
type ElimDistMul struct {
	*ElimCore
	constCache map[string]*core.Variable
}

// NewDistMul builds a fresh log-distance system.
func NewDistMul() *ElimDistMul {
	return &ElimDistMul{ElimCore: NewCore(WithUnitName("log_unit")), constCache: make(map[string]*core.Variable)}
}

// LogDiff returns the comb log(a) − log(b) for two log-distance variables.
func (m *ElimDistMul) LogDiff(logA, logB *core.Variable) *core.LinComb {
	c := core.NewLinComb()
	c.SetTerm(logA.ID, core.RatInt(1, 1))
	c.AddTerm(logB.ID, core.RatInt(-1, 1))
	return c
}

// ConstRatio returns a comb representing log(k) as a single dedicated
// constant term, creating that constant variable on first use.
func (m *ElimDistMul) ConstRatio(k *big.Rat) *core.LinComb {
	key := k.RatString()
	v, ok := m.constCache[key]
	if !ok {
		kf, _ := k.Float64()
		v = m.NewVar(math.Log(kf), "log_const("+key+")")
		m.constCache[key] = v
	}
	c := core.NewLinComb()
	c.SetTerm(v.ID, core.RatInt(1, 1))
	return c
}

// ForceEqualRatio asserts AB/CD = EF/GH:
// log(ab) − log(cd) − (log(ef) − log(gh)) = 0.
func (m *ElimDistMul) ForceEqualRatio(ab, cd, ef, gh *core.Variable, cause *core.ProofNode) (bool, error) {
	lhs := m.LogDiff(ab, cd).Sub(m.LogDiff(ef, gh))
	return m.ForceZero(lhs, cause)
}

// ForceRatioConst asserts AB/CD = k: log(ab) − log(cd) − log(k) = 0.
func (m *ElimDistMul) ForceRatioConst(ab, cd *core.Variable, k *big.Rat, cause *core.ProofNode) (bool, error) {
	lhs := m.LogDiff(ab, cd).Sub(m.ConstRatio(k))
	return m.ForceZero(lhs, cause)
}

// ForceCong asserts AB = CD (ratio 1): log(ab) − log(cd) = 0.
func (m *ElimDistMul) ForceCong(ab, cd *core.Variable, cause *core.ProofNode) (bool, error) {
	return m.ForceZero(m.LogDiff(ab, cd), cause)
}

// CheckEqualRatio reports whether AB/CD = EF/GH already follows.
func (m *ElimDistMul) CheckEqualRatio(ab, cd, ef, gh *core.Variable) bool {
	return m.IsZero(m.LogDiff(ab, cd).Sub(m.LogDiff(ef, gh)))
}
