package dataset

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/rs/zerolog"

	"github.com/san-kum/chaosgen/internal/chaos"
)

// chunk is the unit of work between cancellation checks and across
// pool workers.
const chunk = 1024

// Generator draws starting points uniformly from [-1, 1] and pushes
// each one through the iterated map. All randomness comes from a single
// seeded source owned by the run, so equal configs give bit-identical
// datasets.
type Generator struct {
	cfg     Config
	logger  zerolog.Logger
	metrics []Metric
}

func New(cfg Config, logger zerolog.Logger) *Generator {
	return &Generator{cfg: cfg, logger: logger}
}

func (g *Generator) AddMetric(m Metric) {
	g.metrics = append(g.metrics, m)
}

// Generate produces the full dataset. The starting points are drawn
// sequentially before any iteration happens; iteration itself consumes
// no randomness, so the optional worker pool splits it freely without
// touching the results.
func (g *Generator) Generate(ctx context.Context) (*Dataset, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	m, err := chaos.New(g.cfg.Rate)
	if err != nil {
		return nil, err
	}

	n := g.cfg.Samples
	rng := rand.New(rand.NewSource(g.cfg.Seed))
	x0 := make([]float64, n)
	for i := range x0 {
		x0[i] = rng.Float64()*2 - 1
	}

	y := make([]float64, n)
	if g.cfg.Workers > 1 {
		err = g.iterateParallel(ctx, m, x0, y)
	} else {
		err = g.iterateSequential(ctx, m, x0, y)
	}
	if err != nil {
		return nil, fmt.Errorf("generate dataset: %w", err)
	}

	ds := &Dataset{X0: x0, Y: y, Config: g.cfg, Metrics: make(map[string]float64)}
	for _, met := range g.metrics {
		met.Reset()
		for i := 0; i < n; i++ {
			met.Observe(ds.Sample(i))
		}
		ds.Metrics[met.Name()] = met.Value()
	}

	g.logger.Info().
		Int("samples", n).
		Int("depth", g.cfg.Depth).
		Float64("rate", g.cfg.Rate).
		Int64("seed", g.cfg.Seed).
		Dur("elapsed", time.Since(start)).
		Msg("Dataset generated")

	return ds, nil
}

func (g *Generator) iterateSequential(ctx context.Context, m chaos.Map, x0, y []float64) error {
	for s := 0; s < len(x0); s += chunk {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		e := s + chunk
		if e > len(x0) {
			e = len(x0)
		}
		for i := s; i < e; i++ {
			y[i] = m.Iterate(x0[i], g.cfg.Depth)
		}
	}
	return nil
}

func (g *Generator) iterateParallel(ctx context.Context, m chaos.Map, x0, y []float64) error {
	pool := pond.NewPool(g.cfg.Workers)
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for s := 0; s < len(x0); s += chunk {
		e := s + chunk
		if e > len(x0) {
			e = len(x0)
		}
		group.SubmitErr(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := s; i < e; i++ {
				y[i] = m.Iterate(x0[i], g.cfg.Depth)
			}
			return nil
		})
	}
	return group.Wait()
}

// Stream hands each sample to fn as soon as it is computed, without
// keeping the dataset in memory. The sample sequence is identical to
// what Generate stores.
func (g *Generator) Stream(ctx context.Context, fn func(Sample)) error {
	if err := g.cfg.Validate(); err != nil {
		return err
	}

	m, err := chaos.New(g.cfg.Rate)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(g.cfg.Seed))
	for i := 0; i < g.cfg.Samples; i++ {
		if i%chunk == 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("stream dataset: %w", ctx.Err())
			default:
			}
		}
		x0 := rng.Float64()*2 - 1
		fn(Sample{X0: x0, Y: m.Iterate(x0, g.cfg.Depth)})
	}
	return nil
}
