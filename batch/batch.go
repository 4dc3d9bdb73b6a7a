// Package batch runs independent computations concurrently with a bounded
// number of workers and collects their results in input order.
package batch

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ErrBadLimit is returned for a negative worker limit.
var ErrBadLimit = errors.New("batch: limit must be non-negative")

// Map calls fn for every input with at most limit calls in flight
// (0 means one per input) and returns the outputs in input order.
// The first error cancels the context passed to the remaining calls and
// is returned, wrapped with the failing index.
func Map[I, O any](ctx context.Context, inputs []I, fn func(context.Context, I) (O, error), limit int) ([]O, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadLimit, limit)
	}
	out := make([]O, len(inputs))
	if len(inputs) == 0 {
		return out, nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for i, in := range inputs {
		i, in := i, in
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := fn(ctx, in)
			if err != nil {
				return fmt.Errorf("batch: item %d: %w", i, err)
			}
			out[i] = v
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Sum is Map followed by adding up the outputs, the merge step for
// row-by-row puzzle work.
func Sum[I any](ctx context.Context, inputs []I, fn func(context.Context, I) (int, error), limit int) (int, error) {
	parts, err := Map(ctx, inputs, fn, limit)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, p := range parts {
		total += p
	}
	return total, nil
}
