package dataset

import "testing"

func TestBounds(t *testing.T) {
	m := NewBounds(1.0)

	for _, y := range []float64{0.5, -1.0, 1.5, 0} {
		m.Observe(Sample{Y: y})
	}

	if got := m.Value(); got != 0.75 {
		t.Errorf("Value() = %v, want 0.75", got)
	}
}

func TestBounds_NoSamples(t *testing.T) {
	m := NewBounds(1.0)
	if got := m.Value(); got != 1.0 {
		t.Errorf("Value() with no samples = %v, want 1.0", got)
	}
}

func TestBounds_Reset(t *testing.T) {
	m := NewBounds(1.0)
	m.Observe(Sample{Y: 2.0})
	m.Reset()
	m.Observe(Sample{Y: 0.5})

	if got := m.Value(); got != 1.0 {
		t.Errorf("Value() after reset = %v, want 1.0", got)
	}
}

func TestSpread(t *testing.T) {
	m := NewSpread()

	for _, y := range []float64{-1.0, 0.5, 0} {
		m.Observe(Sample{Y: y})
	}

	if got := m.Value(); got != 1.5 {
		t.Errorf("Value() = %v, want 1.5", got)
	}
}

func TestSpread_Reset(t *testing.T) {
	m := NewSpread()
	m.Observe(Sample{Y: -5})
	m.Observe(Sample{Y: 5})
	m.Reset()

	if got := m.Value(); got != 0 {
		t.Errorf("Value() after reset = %v, want 0", got)
	}

	m.Observe(Sample{Y: 0.25})
	m.Observe(Sample{Y: 0.75})
	if got := m.Value(); got != 0.5 {
		t.Errorf("Value() after new observations = %v, want 0.5", got)
	}
}
