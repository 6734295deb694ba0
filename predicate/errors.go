package predicate

import (
	"errors"
	"fmt"
)

// ErrUnknownPredicate is returned for a name not in the translation table.
var ErrUnknownPredicate = errors.New("predicate: unknown predicate name")

// ErrWrongArity is returned when a predicate's Points/Constants slice
// doesn't match what its name requires.
var ErrWrongArity = errors.New("predicate: wrong arity")

// ErrQueryOnly is returned by Force when called with a predicate kind that
// is query-only (acompute): spec.md §4.7 calls this a warning-not-failure,
// so callers should log it rather than treat it as fatal.
var ErrQueryOnly = errors.New("predicate: acompute is query-only, not forceable")

func errorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
