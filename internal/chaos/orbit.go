package chaos

import "math"

type Orbit []float64

func (o Orbit) Clone() Orbit {
	c := make(Orbit, len(o))
	copy(c, o)
	return c
}

func (o Orbit) IsValid() bool {
	for _, v := range o {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Bounded reports whether every iterate satisfies |x| <= limit.
func (o Orbit) Bounded(limit float64) bool {
	for _, v := range o {
		if math.Abs(v) > limit {
			return false
		}
	}
	return true
}

func (o Orbit) Min() float64 {
	if len(o) == 0 {
		return math.NaN()
	}
	min := o[0]
	for _, v := range o[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

func (o Orbit) Max() float64 {
	if len(o) == 0 {
		return math.NaN()
	}
	max := o[0]
	for _, v := range o[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

func (o Orbit) Amplitude() float64 {
	return o.Max() - o.Min()
}

func (o Orbit) Last() float64 {
	if len(o) == 0 {
		return math.NaN()
	}
	return o[len(o)-1]
}
