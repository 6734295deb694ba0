package proof

import (
	"errors"
	"fmt"
)

// ErrCycleDetected indicates the proof DAG contains a cycle: every
// ProofNode's parents must themselves predate it in the owning arena, so
// this signals a caller built nodes outside the arena's append-only
// discipline.
var ErrCycleDetected = errors.New("proof: cycle detected in proof graph")

func errorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
