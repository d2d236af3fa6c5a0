package psearch

import (
	"errors"

	"github.com/katalvlaran/p2adm/core"
)

// ErrInvalidStart indicates a non-positive starting p was supplied.
var ErrInvalidStart = errors.New("psearch: p0 must be >= 1")

// Runner evaluates the decider at a given p, returning the ordering on
// success or an error (spec.md ErrNotAdmissible) on failure.
type Runner func(p int) ([]core.VertexID, error)

// Result is the smallest admissible p found and its witnessing ordering.
type Result struct {
	P        int
	Ordering []core.VertexID
}

type trial struct {
	p        int
	ordering []core.VertexID
	ok       bool
}

// Search performs the doubling-then-bisection search described in spec.md
// §4.4: start at p0; on success, remember it and narrow downward; on
// failure, double p and try again. Stops once the gap between the highest
// known failure and the lowest known success is exactly 1.
func Search(run Runner, p0 int) (Result, error) {
	if p0 < 1 {
		return Result{}, ErrInvalidStart
	}

	evaluate := func(p int) trial {
		ordering, err := run(p)
		return trial{p: p, ordering: ordering, ok: err == nil}
	}

	var success *trial
	highestFailure := 0

	for p := p0; success == nil; p *= 2 {
		t := evaluate(p)
		if t.ok {
			success = &t
		} else {
			highestFailure = p
		}
	}

	for success.p-highestFailure > 1 {
		mid := (highestFailure + success.p) / 2
		t := evaluate(mid)
		if t.ok {
			success = &t
		} else {
			highestFailure = mid
		}
	}

	return Result{P: success.p, Ordering: success.ordering}, nil
}
