// Package proof extracts and renders the proof DAG reachable from a set of
// root ProofNodes: spec.md §4.6's get_proof, split into a reusable
// topological sort plus a line-per-node renderer.
//
// Grounded on lvlath/dfs's TopologicalSort (white/gray/black DFS coloring,
// cycle detection via a gray back-edge), adapted from string vertex ids to
// pointer identity over *core.ProofNode.
package proof
