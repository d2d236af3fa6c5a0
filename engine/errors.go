package engine

import (
	"errors"
	"fmt"
)

// ErrNotAdmissible is returned by Run when candidates is empty while L is
// still non-empty (spec §7 NotAdmissible). It is ordinary control flow, not
// a program bug.
var ErrNotAdmissible = errors.New("engine: graph is not p-2-admissible for this p")

// InvariantViolation reports a broken INV-1..INV-5 detected while
// WithStrictInvariants is enabled. Spec §7 treats this as a fatal program
// bug — Engine panics with it rather than returning it, since there is no
// sensible recovery from an internal contradiction mid-run.
type InvariantViolation struct {
	Invariant string
	Vertex    int64
	Err       error
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("engine: invariant %s violated at vertex %d: %v", e.Invariant, e.Vertex, e.Err)
}

func (e *InvariantViolation) Unwrap() error { return e.Err }
