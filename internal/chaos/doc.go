// Package chaos implements the piecewise-linear map f(x) = rho*|x| - 1
// on the interval [-1, 1].
//
// The package defines the map itself plus the small vocabulary shared by
// the packages built on top of it:
//
//   - [Map]: the map with a fixed growth rate rho
//   - [Orbit]: a recorded forward orbit with validity helpers
//   - [OrbitPool]: buffer reuse for sweep and ensemble workloads
//   - [SqrtTwo], [GoldenRatio]: bounds of the odd-period rate window
//
// # Example
//
//	m, _ := chaos.New(chaos.GoldenRatio)
//	y := m.Iterate(0.25, 40)
//
// # Thread Safety
//
// Map is an immutable value and safe for concurrent use. Orbits are
// plain slices and follow the usual aliasing rules.
package chaos
