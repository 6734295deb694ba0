// File: types.go
// Role: Point — the immutable geometric primitive every other package
// refers to by pointer or by name.
//
// Errors:
//
//	ErrEmptyPointName - a Point was constructed with an empty Name.
package core

import (
	"errors"
	"fmt"
)

// ErrEmptyPointName indicates a Point was constructed with an empty Name.
var ErrEmptyPointName = errors.New("core: point name is empty")

// Point is an immutable named location in the plane. Equality between two
// Points is identity-based (compare pointers); geometric coincidence of two
// distinct Points is tracked separately via a substitution map, never by
// mutating or aliasing the Point itself.
type Point struct {
	// Name uniquely identifies this Point within a configuration.
	Name string

	// X, Y are the concrete numeric coordinates used by the numerics
	// oracle. They never participate in symbolic elimination directly.
	X, Y float64
}

// NewPoint constructs a Point, rejecting an empty name.
func NewPoint(name string, x, y float64) (Point, error) {
	if name == "" {
		return Point{}, ErrEmptyPointName
	}
	return Point{Name: name, X: x, Y: y}, nil
}

// String renders the point for diagnostics and proof traces.
func (p Point) String() string {
	return fmt.Sprintf("%s(%.6g,%.6g)", p.Name, p.X, p.Y)
}
