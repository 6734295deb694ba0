// Package predicate translates the caller-facing predicate surface (coll,
// cyclic, para, perp, eqangle, cong, overlap, acompute, …) into geodb
// actions and elim force_zero/force_one calls, per spec.md §4.3's
// translation table.
//
// Grounded on lvlath/builder's functional-option-and-dispatch-table shape:
// one handler per predicate name, registered in a lookup table rather than
// a long type switch.
package predicate
