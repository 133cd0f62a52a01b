package dataset

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary condenses a dataset into the numbers worth printing after a
// run.
type Summary struct {
	Count        int
	MeanX0       float64
	StdX0        float64
	MeanY        float64
	StdY         float64
	MinY         float64
	MaxY         float64
	MeanAbsY     float64
	BoundedShare float64
}

func Summarize(d *Dataset) Summary {
	if d.Len() == 0 {
		return Summary{}
	}

	absSum := 0.0
	bounded := 0
	for _, y := range d.Y {
		absSum += math.Abs(y)
		if math.Abs(y) <= 1.0 {
			bounded++
		}
	}

	return Summary{
		Count:        d.Len(),
		MeanX0:       stat.Mean(d.X0, nil),
		StdX0:        stat.StdDev(d.X0, nil),
		MeanY:        stat.Mean(d.Y, nil),
		StdY:         stat.StdDev(d.Y, nil),
		MinY:         floats.Min(d.Y),
		MaxY:         floats.Max(d.Y),
		MeanAbsY:     absSum / float64(d.Len()),
		BoundedShare: float64(bounded) / float64(d.Len()),
	}
}

// Histogram bins the values into equal-width bins across their range
// and returns the per-bin counts with the bin edges.
func Histogram(values []float64, bins int) (counts, edges []float64) {
	if len(values) == 0 || bins < 1 {
		return nil, nil
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		// Degenerate spread, e.g. every orbit pinned to -1 at rate 0.
		lo, hi = lo-0.5, hi+0.5
	}

	edges = make([]float64, bins+1)
	floats.Span(edges, lo, hi)
	counts = stat.Histogram(nil, edges, sorted, nil)
	return counts, edges
}
