package solver

import "math"

// DefaultGuess starts the Newton iteration just above the golden ratio,
// so the search walks down onto the dominant root from the right.
const DefaultGuess = 1.7

const (
	maxIterations = 100
	convergeTol   = 1e-12
)

// Solve finds the growth rate for an odd period using Newton iteration
// from the default guess. The returned value is the magnitude of the
// root, which for the default guess is the dominant real root in
// (sqrt 2, golden ratio].
func Solve(period int) (float64, error) {
	return SolveFrom(period, DefaultGuess)
}

// SolveFrom runs the Newton iteration from an explicit starting guess.
// Convergence is judged on the relative step size, so roots near 1 and
// large intermediate iterates are treated uniformly. A guess that leads
// the iteration astray yields a *ConvergenceError.
func SolveFrom(period int, guess float64) (float64, error) {
	c, err := NewCharacteristic(period)
	if err != nil {
		return 0, err
	}

	tau := guess
	for i := 0; i < maxIterations; i++ {
		df := c.Derivative(tau)
		if df == 0 || math.IsNaN(df) {
			break
		}
		dt := c.Eval(tau) / df
		next := tau - dt
		if math.Abs(dt) <= convergeTol*(1+math.Abs(next)) {
			return math.Abs(next), nil
		}
		tau = next
	}
	return 0, &ConvergenceError{Period: period, Guess: guess, Iterations: maxIterations, Last: tau}
}
