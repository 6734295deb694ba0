// Package elim: sentinel error set.
//
// Every message is prefixed "elim: ..." for consistent grepping. Algorithms
// return these sentinels (optionally wrapped with %w for extra context);
// callers branch with errors.Is, never string comparison.
package elim

import (
	"errors"
	"fmt"
)

var (
	// ErrNumericInconsistency is fatal: a forced comb reduced to a nonzero
	// constant whose numeric value exceeds numerics.ATOM — the caller's
	// predicates are mutually contradictory under the given coordinates.
	ErrNumericInconsistency = errors.New("elim: numeric inconsistency in forced system")

	// ErrUnknownVariable indicates a LinComb referenced a variable id this
	// core never created.
	ErrUnknownVariable = errors.New("elim: unknown variable id")

	// ErrZeroPivot indicates an internal pivot-selection invariant was
	// violated (a candidate pivot had a zero coefficient after reduction).
	// Surfacing this as an error rather than a panic lets callers treat a
	// logic bug in a saturation pass as a recoverable, loggable event.
	ErrZeroPivot = errors.New("elim: attempted to pivot on a zero coefficient")
)

// errorf wraps an underlying error with the given tag, matching the
// matrixErrorf/validatorErrorf helper every kernel file in the pack uses.
func errorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
