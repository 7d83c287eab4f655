// Package engine runs the classification-and-construction pass over a
// batch of rows. Construction is purely functional per row and the
// pricelist is read-only, so rows are mapped in parallel; only the
// output sequence keeps the input order.
package engine

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"duct-cost/core/element"
	"duct-cost/core/pricing"
	"duct-cost/core/shape"
	"duct-cost/core/types"
	"duct-cost/internal/logging"
)

// Engine classifies and constructs elements against one pricelist.
type Engine struct {
	pricelist *pricing.Pricelist
	workers   int
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers bounds the number of concurrent row constructions.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// New creates an engine. The pricelist is shared by all constructions
// and must not be mutated afterwards.
func New(pl *pricing.Pricelist, opts ...Option) *Engine {
	e := &Engine{
		pricelist: pl,
		workers:   runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Process builds one element per row, in input order. A malformed row
// never fails the batch; the only error is context cancellation.
func (g *Engine) Process(ctx context.Context, rows []types.Row) ([]*element.Element, error) {
	out := make([]*element.Element, len(rows))

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(g.workers)
	for i, row := range rows {
		i, row := i, row
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = element.Construct(row, g.pricelist, shape.Classify(row))
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	flagged := 0
	for _, e := range out {
		if len(e.Issues) == 0 {
			continue
		}
		flagged++
		logging.Debug("element has issues",
			zap.String("shape", e.Shape),
			zap.String("position", e.Position),
			zap.String("name", e.Name),
			zap.String("issues", e.Issues.String()))
	}
	logging.Info("processed rows",
		zap.Int("rows", len(rows)),
		zap.Int("flagged", flagged))
	return out, nil
}
