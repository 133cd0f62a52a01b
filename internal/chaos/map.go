package chaos

import (
	"fmt"
	"math"
)

// Bounds of the odd-period growth-rate window.
const (
	// SqrtTwo is the infimum of the odd-period growth rates.
	SqrtTwo = 1.4142135623730950488
	// GoldenRatio is the period-3 growth rate, the largest attainable.
	GoldenRatio = 1.6180339887498948482
)

// Map is the piecewise-linear map f(x) = rho*|x| - 1 on [-1, 1].
type Map struct {
	rho float64
}

// New returns a Map with growth rate rho. The rate must be finite;
// whether it lies in the period-locked window is the caller's concern.
func New(rho float64) (Map, error) {
	if math.IsNaN(rho) || math.IsInf(rho, 0) {
		return Map{}, fmt.Errorf("rate %v: %w", rho, ErrInvalidRate)
	}
	return Map{rho: rho}, nil
}

func (m Map) Rate() float64 { return m.rho }

// Apply evaluates one step of the map.
func (m Map) Apply(x float64) float64 { return m.rho*math.Abs(x) - 1 }

// Iterate composes the map depth times starting from x0. The composition
// is evaluated numerically step by step; depth 0 returns x0 unchanged.
func (m Map) Iterate(x0 float64, depth int) float64 {
	x := x0
	for k := 0; k < depth; k++ {
		x = m.rho*math.Abs(x) - 1
	}
	return x
}

// Orbit records the forward orbit x0, f(x0), ..., f^depth(x0).
func (m Map) Orbit(x0 float64, depth int) Orbit {
	if depth < 0 {
		depth = 0
	}
	o := make(Orbit, depth+1)
	o[0] = x0
	for k := 1; k <= depth; k++ {
		o[k] = m.rho*math.Abs(o[k-1]) - 1
	}
	return o
}

// FillOrbit writes the forward orbit of x0 into dst and returns it.
// The orbit length is len(dst); dst[0] is set to x0.
func (m Map) FillOrbit(dst Orbit, x0 float64) Orbit {
	if len(dst) == 0 {
		return dst
	}
	dst[0] = x0
	for k := 1; k < len(dst); k++ {
		dst[k] = m.rho*math.Abs(dst[k-1]) - 1
	}
	return dst
}

// FixedPoints returns the fixed points -1/(rho+1) on the falling branch
// and 1/(rho-1) on the rising branch. For rates below 2 only the left
// one lies inside [-1, 1].
func (m Map) FixedPoints() (left, right float64) {
	return -1 / (m.rho + 1), 1 / (m.rho - 1)
}

// InTheoreticalRange reports whether rho lies in [SqrtTwo, GoldenRatio],
// the closed interval swept by the odd-period growth rates. Both
// endpoints count as inside.
func InTheoreticalRange(rho float64) bool {
	return rho >= SqrtTwo && rho <= GoldenRatio
}
