// Package numerics is the floating-point oracle layer the symbolic engine
// consults but never trusts on its own: distance, orientation, collinearity
// and circle-through-three-points, plus the ATOM tolerance that separates
// "numerically coincident" from "distinct". Every result here only ever
// suggests a fact; elim and geodb certify it exactly before recording it.
//
// Grounded loosely on the normalize/sign-helper shape used by geodesy
// code in the retrieval pack (angle wrap-around, signed comparisons), but
// the formulas themselves are plain planar Euclidean geometry.
package numerics
