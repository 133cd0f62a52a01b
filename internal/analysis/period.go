package analysis

import (
	"math"

	"github.com/san-kum/chaosgen/internal/chaos"
	"github.com/san-kum/chaosgen/internal/solver"
)

// DetectPeriod finds the smallest period at which the recorded orbit
// repeats within tol. Returns -1 when no period up to maxPeriod fits,
// which for this map means the rate sits in a chaotic band. Orbits with
// fewer than 2*maxPeriod+1 points are too short to check every
// candidate and report -1.
func DetectPeriod(orbit []float64, maxPeriod int, tol float64) int {
	if maxPeriod < 1 || len(orbit) < 2*maxPeriod+1 {
		return -1
	}

	for period := 1; period <= maxPeriod; period++ {
		periodic := true
		for i := period; i < len(orbit)-period; i++ {
			if math.Abs(orbit[i]-orbit[i+period]) > tol {
				periodic = false
				break
			}
		}
		if periodic {
			return period
		}
	}
	return -1
}

// CriticalOrbit solves the rate for the given period and returns the
// forward orbit of the critical point 0 together with the closure
// residual |f^p(0)|. A residual near zero confirms the solved rate
// really closes the period-p cycle.
func CriticalOrbit(period int) (chaos.Orbit, float64, error) {
	rho, err := solver.Solve(period)
	if err != nil {
		return nil, 0, err
	}
	m, err := chaos.New(rho)
	if err != nil {
		return nil, 0, err
	}

	o := m.Orbit(0, period)
	return o, math.Abs(o.Last()), nil
}
