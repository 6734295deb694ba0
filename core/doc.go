// Package core defines the primitive data model shared by every layer of
// the deductive closure engine: immutable Points, symbolic Variables,
// exact-rational LinCombs, and the identity-based ProofNode arena that
// records why each derived fact holds.
//
// Nothing in this package knows about angles, distances, lines or
// circles — those live in elim and geodb. core only provides the
// vocabulary they share, the way lvlath/core provides Vertex/Edge/Graph
// for every higher package in that module.
package core
