package chaos

import "testing"

func BenchmarkApply(b *testing.B) {
	m, _ := New(GoldenRatio)
	x := 0.25

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = m.Apply(x)
	}
	_ = x
}

func BenchmarkIterate40(b *testing.B) {
	m, _ := New(GoldenRatio)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Iterate(0.25, 40)
	}
}

func BenchmarkOrbit40(b *testing.B) {
	m, _ := New(GoldenRatio)
	dst := make(Orbit, 41)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.FillOrbit(dst, 0.25)
	}
}
