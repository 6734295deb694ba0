// Package saturation runs the six deduction passes spec.md §4.5 defines
// (similar triangles, concyclic-by-angle, equal-radius circles, point
// merge, dist-add↔dist-mul transfer, arc↔chord transfer) to fixed point.
//
// Grounded on lvlath/algorithms' one-file-per-algorithm layout, and on
// lvlath/bfs's walker-with-options shape: each pass is a method on Engine
// that builds its own scratch tables for one sweep, and Engine owns the
// outer repeat-until-no-change loop.
package saturation
