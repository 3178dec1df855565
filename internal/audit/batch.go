package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/nao1215/passguard/internal/model"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of passwords checked at once when no
// limit is configured.
const DefaultConcurrency = 4

// Reporter checks a single password. *checker.Checker satisfies it.
type Reporter interface {
	Report(label, password string) *model.CheckReport
}

// BatchChecker checks many passwords with bounded concurrency.
type BatchChecker struct {
	reporter    Reporter
	concurrency int
	logger      *slog.Logger
}

// BatchOption configures a BatchChecker.
type BatchOption func(*BatchChecker)

// WithBatchLogger sets the logger used for batch progress.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchChecker) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of passwords checked at once.
// Non-positive values keep the default.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchChecker) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchChecker creates a BatchChecker that delegates to reporter.
func NewBatchChecker(reporter Reporter, opts ...BatchOption) *BatchChecker {
	b := &BatchChecker{
		reporter:    reporter,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	return b
}

// CheckBatch checks every entry and returns the reports in input order.
//
// If ctx is cancelled, entries that were not started yet have a nil report
// and the context error is returned alongside the partial results.
func (b *BatchChecker) CheckBatch(ctx context.Context, entries []Entry) ([]*model.CheckReport, error) {
	results := make([]*model.CheckReport, len(entries))
	err := b.CheckBatchWithCallback(ctx, entries, func(report *model.CheckReport, index int) {
		// each index is written by exactly one goroutine
		results[index] = report
	})
	return results, err
}

// CheckBatchWithCallback checks every entry and calls callback with each
// report and the entry's index as soon as it is ready. The callback runs on
// worker goroutines and must be safe for concurrent use.
func (b *BatchChecker) CheckBatchWithCallback(
	ctx context.Context,
	entries []Entry,
	callback func(report *model.CheckReport, index int),
) error {
	b.logger.Debug("starting batch check",
		"total", len(entries),
		"concurrency", b.concurrency,
	)
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, entry := range entries {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			report := b.reporter.Report(entry.Label, entry.Password)
			b.logger.Debug("password checked",
				"label", entry.Label,
				"fingerprint", report.Fingerprint,
				"errors", report.ErrorCount,
				"warnings", report.WarningCount,
			)
			callback(report, i)
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		// gctx is always done after Wait; only the caller's context matters
		err = ctx.Err()
	}

	b.logger.Debug("batch check complete",
		"total", len(entries),
		"elapsed", time.Since(start),
	)
	return err
}
