package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/idcard/internal/region"
	"github.com/nao1215/idcard/internal/report"
)

// BatchValidator validates many numbers concurrently.
//
// Design decision: We use errgroup.SetLimit rather than a hand-rolled worker
// pool because it's simpler and handles the concurrency limit correctly.
// Each number gets its own goroutine, but only 'concurrency' goroutines run
// simultaneously. Results are written to a pre-allocated slice indexed by
// input position, so no mutex is needed and input order is preserved.
type BatchValidator struct {
	// reg is the registry used for region decoding in the reports.
	reg region.Registry

	// concurrency is the maximum number of concurrent validations.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// BatchOption configures a BatchValidator.
type BatchOption func(*BatchValidator)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchValidator) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent validations.
// Default is 10 if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchValidator) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchValidator creates a BatchValidator decoding regions against reg.
// A nil registry falls back to the embedded region table.
func NewBatchValidator(reg region.Registry, opts ...BatchOption) *BatchValidator {
	b := &BatchValidator{
		reg:         reg,
		concurrency: 10,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.reg == nil {
		b.reg = region.Embedded()
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	return b
}

// Validate validates all numbers concurrently and returns one report per
// input, in input order. Validation itself never fails; the only error is
// context cancellation.
func (b *BatchValidator) Validate(ctx context.Context, numbers []string) ([]report.Report, error) {
	b.logger.Debug("starting batch validation",
		"total", len(numbers),
		"concurrency", b.concurrency,
	)
	start := time.Now()

	results := make([]report.Report, len(numbers))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, number := range numbers {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = report.FromNumber(number, b.reg)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	valid := 0
	for _, r := range results {
		if r.Valid {
			valid++
		}
	}
	b.logger.Debug("batch validation finished",
		"total", len(numbers),
		"valid", valid,
		"invalid", len(numbers)-valid,
		"elapsed", time.Since(start),
	)
	return results, nil
}
