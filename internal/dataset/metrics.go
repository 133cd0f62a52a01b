package dataset

import "math"

// Metric observes samples during generation and reduces them to a
// single number reported alongside the dataset.
type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

// Bounds tracks the share of outputs that stay inside [-limit, limit].
// For rates in the period window the share is exactly 1.
type Bounds struct {
	name       string
	limit      float64
	violations int
	samples    int
}

func NewBounds(limit float64) *Bounds {
	return &Bounds{name: "bounded_share", limit: limit}
}

func (b *Bounds) Name() string { return b.name }

func (b *Bounds) Observe(s Sample) {
	b.samples++
	if math.Abs(s.Y) > b.limit {
		b.violations++
	}
}

func (b *Bounds) Value() float64 {
	if b.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(b.violations)/float64(b.samples)
}

func (b *Bounds) Reset() {
	b.violations = 0
	b.samples = 0
}

// Spread tracks the range covered by the outputs.
type Spread struct {
	name     string
	min, max float64
	samples  int
}

func NewSpread() *Spread {
	return &Spread{name: "output_spread"}
}

func (s *Spread) Name() string { return s.name }

func (s *Spread) Observe(sm Sample) {
	if s.samples == 0 || sm.Y < s.min {
		s.min = sm.Y
	}
	if s.samples == 0 || sm.Y > s.max {
		s.max = sm.Y
	}
	s.samples++
}

func (s *Spread) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return s.max - s.min
}

func (s *Spread) Reset() {
	s.samples = 0
	s.min = 0
	s.max = 0
}
