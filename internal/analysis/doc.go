// Package analysis provides chaos diagnostics for the iterated map.
//
// The package includes tools for characterizing the dynamics at a
// given growth rate:
//
//   - [LyapunovExponent]: largest Lyapunov exponent via orbit separation
//   - [TheoreticalLyapunov]: the closed form ln(rho)
//   - [DetectPeriod]: smallest repeating period of a recorded orbit
//   - [CriticalOrbit]: cycle closure check for a solved period
//   - [RateSweep]: attractor diagram across a rate interval
//   - [GenerateCobweb]: staircase construction in the (x, f(x)) plane
//   - [OrbitSpectrum]: power spectrum of a recorded orbit
//   - [DominantBin]: strongest spectral line away from DC
//
// # Chaos Detection
//
// A positive largest Lyapunov exponent indicates chaotic dynamics:
//
//	lambda := analysis.LyapunovExponent(m, 0.25, 5000, 1e-9)
//	if lambda > 0 {
//	    // Orbit separation grows exponentially
//	}
package analysis
