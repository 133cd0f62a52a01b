package dataset

// Sample is one generated point: a starting value and its image under
// the iterated map.
type Sample struct {
	X0 float64 `json:"x0"`
	Y  float64 `json:"y"`
}

// Dataset holds the generated points in parallel slices. Index i of the
// output always derives from index i of the input.
type Dataset struct {
	X0      []float64
	Y       []float64
	Config  Config
	Metrics map[string]float64
}

func (d *Dataset) Len() int { return len(d.X0) }

func (d *Dataset) Sample(i int) Sample {
	return Sample{X0: d.X0[i], Y: d.Y[i]}
}
