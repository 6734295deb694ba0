// Package geodb is the geometric fact database: canonical points, formal
// lines (collinear groups) and formal circles (concyclic groups), the
// pair/triple indices that own them, and the three force_* actions
// (ForceCollinear, ForceConcyclic, ForceEqualPoints) spec.md §4.4 defines.
//
// geodb owns one ElimAngle, one ElimDistMul and one ElimDistAdd — the three
// linear systems every geometric fact ultimately bottoms out in — and
// allocates their per-pair variables lazily: once per pair, the first time
// the pair is referenced. Adding a point creates no pair variables.
//
// Grounded on lvlath/prim_kruskal's union-find (kruskal.go) for point
// merging, and lvlath/bfs's walker shape for the transitive pair→line and
// triple→circle closures.
package geodb
