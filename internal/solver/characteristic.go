package solver

import (
	"fmt"

	"github.com/san-kum/chaosgen/internal/chaos"
)

// Characteristic is the growth polynomial of an odd period p,
// g(tau) = tau^p - 2*tau^(p-2) - 1. Its dominant root is the growth
// rate at which the critical point of the map closes a period-p cycle.
type Characteristic struct {
	period int
}

// NewCharacteristic validates the period. Only odd periods of at least
// 3 admit the cycle the polynomial encodes.
func NewCharacteristic(period int) (Characteristic, error) {
	if period < 3 || period%2 == 0 {
		return Characteristic{}, fmt.Errorf("period %d: %w", period, chaos.ErrInvalidPeriod)
	}
	return Characteristic{period: period}, nil
}

func (c Characteristic) Period() int { return c.period }

// Eval computes g(tau). Powers are built by repeated multiplication;
// periods stay small enough that this beats math.Pow and keeps results
// reproducible across platforms.
func (c Characteristic) Eval(tau float64) float64 {
	pm2 := 1.0
	for k := 0; k < c.period-2; k++ {
		pm2 *= tau
	}
	return pm2*tau*tau - 2*pm2 - 1
}

// Derivative computes g'(tau) = p*tau^(p-1) - 2(p-2)*tau^(p-3).
func (c Characteristic) Derivative(tau float64) float64 {
	pm3 := 1.0
	for k := 0; k < c.period-3; k++ {
		pm3 *= tau
	}
	return pm3 * (float64(c.period)*tau*tau - 2*float64(c.period-2))
}

// coefficients returns the monic coefficient vector in ascending order:
// c[0] + c[1]*tau + ... + c[p]*tau^p.
func (c Characteristic) coefficients() []float64 {
	cs := make([]float64, c.period+1)
	cs[0] = -1
	cs[c.period-2] = -2
	cs[c.period] = 1
	return cs
}
