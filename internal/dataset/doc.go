// Package dataset turns the chaotic map into regression data.
//
// A [Generator] draws n starting points uniformly from [-1, 1] with a
// seeded source, iterates the map t times on each, and records the
// (x0, y) pairs. Everything downstream of the seed is deterministic:
// the same config always reproduces the same dataset bit for bit,
// including under the parallel iteration path, because all random
// draws happen sequentially before iteration begins.
//
//   - [Config]: samples, depth, rate, seed, workers
//   - [Dataset]: parallel input/output slices plus run metrics
//   - [Metric]: per-sample observers reduced to one number
//   - [Summarize], [Histogram]: descriptive statistics for reporting
//
// # Example
//
//	gen := dataset.New(dataset.DefaultConfig(), logger)
//	ds, err := gen.Generate(ctx)
package dataset
