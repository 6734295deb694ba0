// File: sort.go
// Role: TopologicalSort over the ProofNode DAG reachable from a set of
// roots, via white/gray/black DFS coloring (lvlath/dfs's
// TopologicalSort, adapted to pointer-identity vertices).
package proof

import "github.com/augend/ddar/core"

const (
	white = 0
	gray  = 1
	black = 2
)

type sorter struct {
	state map[*core.ProofNode]int
	order []*core.ProofNode
}

// TopologicalSort returns every ProofNode reachable from roots (inclusive),
// ordered so each node appears after all of its parents. Returns
// ErrCycleDetected if the reachable subgraph is not a DAG.
func TopologicalSort(roots ...*core.ProofNode) ([]*core.ProofNode, error) {
	s := &sorter{state: make(map[*core.ProofNode]int)}
	for _, r := range roots {
		if r == nil {
			continue
		}
		if s.state[r] == white {
			if err := s.visit(r); err != nil {
				return nil, err
			}
		}
	}
	return s.order, nil
}

func (s *sorter) visit(n *core.ProofNode) error {
	switch s.state[n] {
	case gray:
		return errorf("TopologicalSort", ErrCycleDetected)
	case black:
		return nil
	}
	s.state[n] = gray
	for _, p := range n.Parents {
		if p == nil {
			continue
		}
		if err := s.visit(p); err != nil {
			return err
		}
	}
	s.state[n] = black
	s.order = append(s.order, n)
	return nil
}
