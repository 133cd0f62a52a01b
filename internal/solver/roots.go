package solver

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// AllRoots returns every complex root of the period polynomial, computed
// as the eigenvalues of its companion matrix. Useful for checking that
// the Newton result really is the dominant root and for inspecting the
// subdominant spectrum.
func AllRoots(period int) ([]complex128, error) {
	c, err := NewCharacteristic(period)
	if err != nil {
		return nil, err
	}

	n := c.period
	coeffs := c.coefficients()
	m := mat.NewDense(n, n, nil)
	for i := 1; i < n; i++ {
		m.Set(i, i-1, 1)
	}
	for i := 0; i < n; i++ {
		m.Set(i, n-1, -coeffs[i])
	}

	var eig mat.Eigen
	if ok := eig.Factorize(m, mat.EigenNone); !ok {
		return nil, fmt.Errorf("eigenvalue factorization failed for period %d: %w", period, ErrNoConvergence)
	}
	return eig.Values(nil), nil
}

// RealRoots filters AllRoots down to the real axis and sorts ascending.
// Every odd period has -1 among its roots; the largest entry is the
// growth rate.
func RealRoots(period int) ([]float64, error) {
	vals, err := AllRoots(period)
	if err != nil {
		return nil, err
	}

	var out []float64
	for _, v := range vals {
		if math.Abs(imag(v)) < 1e-9 {
			out = append(out, real(v))
		}
	}
	sort.Float64s(out)
	return out, nil
}
