package solver

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// OddPeriods lists the odd periods 3, 5, ... up to max inclusive.
func OddPeriods(max int) []int {
	var ps []int
	for p := 3; p <= max; p += 2 {
		ps = append(ps, p)
	}
	return ps
}

// SolveRange solves every listed period concurrently and returns the
// rates in matching order. The rates decrease strictly as the period
// grows, approaching sqrt 2 from above.
func SolveRange(ctx context.Context, periods []int) ([]float64, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	out := make([]float64, len(periods))
	for i, p := range periods {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			rho, err := Solve(p)
			if err != nil {
				return fmt.Errorf("period %d: %w", p, err)
			}
			out[i] = rho
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
