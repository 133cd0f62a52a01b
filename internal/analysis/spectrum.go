package analysis

import (
	"math"
	"math/cmplx"

	"github.com/san-kum/chaosgen/internal/chaos"
)

// FFT computes the discrete Fourier transform with the radix-2
// Cooley-Tukey recursion. The input length must be a power of two;
// OrbitSpectrum pads for callers that cannot guarantee that.
func FFT(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	if n%2 != 0 {
		panic("fft: length must be a power of two")
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)

	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := FFT(even)
	fodd := FFT(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}

	return result
}

// PowerSpectrum returns the magnitude of each frequency bin up to the
// Nyquist limit.
func PowerSpectrum(data []float64) []float64 {
	fft := FFT(data)
	ps := make([]float64, len(fft)/2)

	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}

	return ps
}

// OrbitSpectrum runs an orbit and returns its power spectrum. The mean
// is removed first so the zero-frequency bin does not swamp the
// structure, and the orbit is zero-padded up to a power of two. A
// cycle of length p concentrates power near bin n/p; a chaotic band
// spreads it across the whole axis.
func OrbitSpectrum(m chaos.Map, x0 float64, steps int) []float64 {
	o := m.Orbit(x0, steps)
	if len(o) == 0 {
		return nil
	}

	mean := 0.0
	for _, v := range o {
		mean += v
	}
	mean /= float64(len(o))

	n := 1
	for n < len(o) {
		n *= 2
	}
	padded := make([]float64, n)
	for i, v := range o {
		padded[i] = v - mean
	}

	return PowerSpectrum(padded)
}

// DominantBin returns the index of the strongest frequency, ignoring
// the zero-frequency bin.
func DominantBin(ps []float64) int {
	if len(ps) < 2 {
		return 0
	}
	best := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[best] {
			best = i
		}
	}
	return best
}
