package solver

import "math"

const bisectSteps = 100

// Bisect finds the dominant root by bisection on [1, 2], where the
// polynomial always changes sign: g(1) = -2 and g(2) = 2^(p-1) - 1.
// Slower than Newton but immune to a bad starting guess.
func Bisect(period int) (float64, error) {
	c, err := NewCharacteristic(period)
	if err != nil {
		return 0, err
	}

	low := 1.0
	high := 2.0
	epsilon := 1e-12

	for i := 0; i < bisectSteps; i++ {
		mid := (low + high) / 2
		value := c.Eval(mid)

		if math.Abs(value) < epsilon {
			return mid, nil
		}
		if value < 0 {
			low = mid
		} else {
			high = mid
		}
	}
	return (low + high) / 2, nil
}
