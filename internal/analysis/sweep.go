package analysis

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/chaosgen/internal/chaos"
)

// SweepPoint holds the attractor values observed at one growth rate.
type SweepPoint struct {
	Rate   float64
	Values []float64
}

// RateSweep walks the growth rate across [min, max] and records the
// distinct values an orbit visits after a transient. The columns trace
// the support of the attractor: below sqrt 2 it splits into separate
// bands, above it the bands have merged into a single interval.
//
// Parameters:
//   - min, max, steps: the rate axis
//   - transient: iterations discarded before recording
//   - record: iterations recorded per rate
//   - x0: shared starting point
func RateSweep(ctx context.Context, min, max float64, steps, transient, record int, x0 float64) ([]SweepPoint, error) {
	if steps <= 1 {
		steps = 2 // Prevent division by zero
	}
	rateStep := (max - min) / float64(steps-1)

	results := make([]SweepPoint, steps)
	pool := chaos.NewOrbitPool(record + 1)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())

	for i := 0; i < steps; i++ {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			rate := min + float64(i)*rateStep
			m, err := chaos.New(rate)
			if err != nil {
				return err
			}

			// Let the orbit settle before recording.
			x := m.Iterate(x0, transient)

			orbit := pool.Get()
			m.FillOrbit(orbit, x)

			values := make([]float64, 0, 32)
			seen := make(map[int]bool)
			for _, v := range orbit[1:] {
				// Quantize to find distinct values
				key := int(v * 1000)
				if !seen[key] {
					seen[key] = true
					values = append(values, v)
				}
			}
			pool.Put(orbit)

			results[i] = SweepPoint{Rate: rate, Values: values}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// SweepToASCII converts sweep data to ASCII art.
func SweepToASCII(data []SweepPoint, width, height int) string {
	if len(data) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	// Find value range - need at least one valid value
	var minVal, maxVal float64
	foundFirst := false
	for _, p := range data {
		for _, v := range p.Values {
			if !foundFirst {
				minVal, maxVal = v, v
				foundFirst = true
			} else {
				if v < minVal {
					minVal = v
				}
				if v > maxVal {
					maxVal = v
				}
			}
		}
	}
	if !foundFirst {
		return "" // No values to plot
	}

	if maxVal == minVal {
		maxVal = minVal + 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for i, p := range data {
		col := i * width / len(data)
		if col >= width {
			col = width - 1
		}

		for _, v := range p.Values {
			row := height - 1 - int((v-minVal)/(maxVal-minVal)*float64(height-1))
			if row >= 0 && row < height && col >= 0 && col < width {
				canvas[row][col] = '•'
			}
		}
	}

	result := ""
	for _, row := range canvas {
		result += string(row) + "\n"
	}
	return result
}
