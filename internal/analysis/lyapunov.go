package analysis

import (
	"math"

	"github.com/san-kum/chaosgen/internal/chaos"
)

// LyapunovExponent estimates the largest Lyapunov exponent using the
// orbit separation method. A positive value indicates chaos.
//
// Algorithm:
// 1. Run two nearby orbits
// 2. Measure the expansion of their separation each step
// 3. Renormalize the pair and average the log expansion
func LyapunovExponent(m chaos.Map, x0 float64, steps int, perturbation float64) float64 {
	if steps <= 0 || perturbation == 0 {
		return 0
	}

	d0 := math.Abs(perturbation)
	x := x0
	xp := x0 + d0

	sumLog := 0.0
	count := 0

	for k := 0; k < steps; k++ {
		x = m.Apply(x)
		xp = m.Apply(xp)

		sep := math.Abs(xp - x)
		if sep > 0 {
			sumLog += math.Log(sep / d0)
			count++
			// Renormalize so the pair keeps probing the local slope.
			xp = x + (xp-x)*(d0/sep)
		} else {
			// Orbits merged; reseed the perturbation.
			xp = x + d0
		}
	}

	if count == 0 {
		return 0
	}
	return sumLog / float64(count)
}

// TheoreticalLyapunov is the closed-form exponent ln(rho): the map has
// slope magnitude rho everywhere except the single kink at 0.
func TheoreticalLyapunov(rho float64) float64 {
	return math.Log(rho)
}
