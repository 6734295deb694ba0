// File: proof.go
// Role: ProofNode — an identity-based record in the proof DAG, the arena
// that owns every node an engine ever creates, and ProofSet, the small
// set-of-witnesses type FormalLine, FormalCircle and LinComb's provenance
// are all built from.
//
// Identity-based equality: two distinct *ProofNode with the same Rule and
// Statement are NOT equal. Parents are borrowed references into the same
// arena; the arena outlives every node it hands out.
package core

import "sort"

// ProofNode records one deduction step: the rule that fired, a rendered
// statement describing what was concluded, and the parent nodes whose
// conclusions fed into this one.
type ProofNode struct {
	// ID is the arena-assigned, insertion-order identifier. Equality and
	// hashing of ProofNodes elsewhere in the engine is always by pointer,
	// never by ID value; ID only exists for deterministic ordering.
	ID int

	// Rule names the deduction rule that produced this node
	// (e.g. "force_collinear", "similar_triangle_sss", "given").
	Rule string

	// Statement is a human-readable rendering of the concluded fact.
	Statement string

	// Parents are the nodes this conclusion was derived from. Empty for an
	// axiom (a predicate asserted directly by the caller).
	Parents []*ProofNode
}

// ProofArena owns every ProofNode created during a single engine's
// lifetime. It is never cleared: nodes are append-only, matching the
// spec's "replacement, not mutation" policy for the structures they back.
type ProofArena struct {
	nodes []*ProofNode
}

// NewProofArena returns an empty arena.
func NewProofArena() *ProofArena {
	return &ProofArena{}
}

// New allocates and returns a fresh ProofNode, owned by this arena.
func (a *ProofArena) New(rule, statement string, parents ...*ProofNode) *ProofNode {
	n := &ProofNode{ID: len(a.nodes), Rule: rule, Statement: statement, Parents: parents}
	a.nodes = append(a.nodes, n)
	return n
}

// Len reports how many nodes the arena has ever allocated.
func (a *ProofArena) Len() int {
	return len(a.nodes)
}

// ProofSet is a deduplicated, identity-based set of ProofNodes, used by
// FormalLine and FormalCircle to carry the provenance of a merged record.
type ProofSet struct {
	m map[*ProofNode]struct{}
}

// NewProofSet returns a ProofSet containing the given nodes (nil entries
// ignored).
func NewProofSet(nodes ...*ProofNode) *ProofSet {
	s := &ProofSet{m: make(map[*ProofNode]struct{}, len(nodes))}
	for _, n := range nodes {
		s.Add(n)
	}
	return s
}

// Add records n as a witness, a no-op if n is nil or already present.
func (s *ProofSet) Add(n *ProofNode) {
	if n != nil {
		s.m[n] = struct{}{}
	}
}

// Union adds every witness of other into s.
func (s *ProofSet) Union(other *ProofSet) {
	if other == nil {
		return
	}
	for n := range other.m {
		s.m[n] = struct{}{}
	}
}

// Slice returns the witnesses sorted by ID, for deterministic output.
func (s *ProofSet) Slice() []*ProofNode {
	out := make([]*ProofNode, 0, len(s.m))
	for n := range s.m {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
