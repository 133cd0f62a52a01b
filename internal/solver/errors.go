package solver

import (
	"errors"
	"fmt"
)

// ErrNoConvergence indicates a root search that exhausted its iteration
// budget without the estimate settling.
var ErrNoConvergence = errors.New("solver: iteration did not converge")

// ConvergenceError carries the state of a failed root search. Callers
// that want to retry with a different guess can read Last to see where
// the iteration ended up.
type ConvergenceError struct {
	Period     int
	Guess      float64
	Iterations int
	Last       float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("solver: no convergence for period %d after %d iterations (guess %g, last iterate %g)",
		e.Period, e.Iterations, e.Guess, e.Last)
}

func (e *ConvergenceError) Unwrap() error { return ErrNoConvergence }
