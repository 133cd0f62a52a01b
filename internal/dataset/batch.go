package dataset

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/chaosgen/internal/chaos"
)

// Batch generates count datasets with seeds Seed, Seed+1, ... so one
// configuration can produce train, validation and test splits that stay
// individually reproducible. Runs are independent and execute
// concurrently.
func (g *Generator) Batch(ctx context.Context, count int) ([]*Dataset, error) {
	if count < 1 {
		return nil, fmt.Errorf("batch count %d: %w", count, chaos.ErrInvalidCount)
	}

	results := make([]*Dataset, count)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())

	for i := 0; i < count; i++ {
		eg.Go(func() error {
			cfgCopy := g.cfg
			cfgCopy.Seed = g.cfg.Seed + int64(i)
			cfgCopy.Workers = 1

			sub := New(cfgCopy, g.logger)
			ds, err := sub.Generate(ctx)
			if err != nil {
				return err
			}
			results[i] = ds
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
