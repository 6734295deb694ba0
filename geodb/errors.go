package geodb

import (
	"errors"
	"fmt"
)

// ErrUnknownPoint is returned when an operation names a point the database
// has never seen via AddPoint.
var ErrUnknownPoint = errors.New("geodb: unknown point")

// ErrDuplicatePoint is returned when AddPoint is called twice for the same
// name without an intervening merge.
var ErrDuplicatePoint = errors.New("geodb: duplicate point name")

// ErrNotNumericallyCollinear is returned by ForceCollinear when one of the
// asserted points does not numerically lie on the line through the other
// two, within numerics.ATOM.
var ErrNotNumericallyCollinear = errors.New("geodb: points are not numerically collinear")

// ErrDegenerateCircle is returned by ForceConcyclic when one of the
// asserted points does not numerically lie on the circle through the other
// three, within numerics.ATOM.
var ErrDegenerateCircle = errors.New("geodb: points are not numerically concyclic")

func errorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
