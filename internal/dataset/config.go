package dataset

import (
	"fmt"
	"math"

	"github.com/san-kum/chaosgen/internal/chaos"
)

// Config describes one dataset run. Samples and Seed fix the drawn
// starting points; Depth and Rate fix the map applied to them. Workers
// only splits the iteration phase, so it never changes the numbers.
type Config struct {
	Samples int     `yaml:"samples" validate:"gte=1"`
	Depth   int     `yaml:"depth" validate:"gte=0"`
	Rate    float64 `yaml:"rate"`
	Seed    int64   `yaml:"seed"`
	Workers int     `yaml:"workers"`
}

// DefaultConfig is the reference run: ten thousand points pushed through
// forty iterations at a rate just inside the period-3 edge.
func DefaultConfig() Config {
	return Config{
		Samples: 10000,
		Depth:   40,
		Rate:    1.618,
		Seed:    42,
		Workers: 1,
	}
}

func (c Config) Validate() error {
	if c.Samples < 1 {
		return fmt.Errorf("samples %d: %w", c.Samples, chaos.ErrInvalidCount)
	}
	if c.Depth < 0 {
		return fmt.Errorf("depth %d: %w", c.Depth, chaos.ErrInvalidDepth)
	}
	if math.IsNaN(c.Rate) || math.IsInf(c.Rate, 0) {
		return fmt.Errorf("rate %v: %w", c.Rate, chaos.ErrInvalidRate)
	}
	return nil
}
