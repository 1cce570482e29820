// Package runner fans the linter out across files. Files are independent,
// so each one parses and lints in its own goroutine behind a weighted
// semaphore; results come back in input order regardless of completion
// order.
package runner

import (
	"context"
	"os"
	"runtime"
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/semaphore"

	"github.com/ecmalint/ecmalint/internal/jsparser"
	"github.com/ecmalint/ecmalint/internal/linter"
	"github.com/ecmalint/ecmalint/internal/report"
	"github.com/ecmalint/ecmalint/pkg/logger"
)

// Config holds runner configuration.
type Config struct {
	// MaxWorkers caps concurrent files. Default: runtime.NumCPU().
	MaxWorkers int
}

// Runner lints a batch of files with a shared Linter.
type Runner struct {
	linter *linter.Linter
	logger logger.Logger
	pool   *semaphore.Weighted
}

// New creates a Runner.
func New(lint *linter.Linter, log logger.Logger, cfg *Config) *Runner {
	workers := runtime.NumCPU()
	if cfg != nil && cfg.MaxWorkers > 0 {
		workers = cfg.MaxWorkers
	}

	if log == nil {
		log = logger.NewNoOpLogger()
	}

	return &Runner{
		linter: lint,
		logger: log,
		pool:   semaphore.NewWeighted(int64(workers)),
	}
}

// Run lints every path and returns one result per path, in input order. A
// file that fails to read, parse, or lint carries its error in the result;
// Run itself fails only when the context is cancelled.
func (r *Runner) Run(ctx context.Context, paths []string) ([]report.File, error) {
	results := make([]report.File, len(paths))

	// One file needs no goroutine.
	if len(paths) == 1 {
		results[0] = r.lintFile(ctx, paths[0])

		return results, ctx.Err()
	}

	var wg sync.WaitGroup

	for i, path := range paths {
		wg.Add(1)

		go func(i int, path string) {
			defer wg.Done()

			if err := r.pool.Acquire(ctx, 1); err != nil {
				results[i] = report.File{Filename: path, Err: err}

				return
			}
			defer r.pool.Release(1)

			results[i] = r.lintFile(ctx, path)
		}(i, path)
	}

	wg.Wait()

	return results, ctx.Err()
}

// lintFile runs the whole per-file pipeline. A panicking rule handler is
// contained here so one bad file cannot take down the batch.
func (r *Runner) lintFile(ctx context.Context, path string) (result report.File) {
	result = report.File{Filename: path}

	defer func() {
		if rec := recover(); rec != nil {
			result.Err = errors.Newf("rule handler panicked: %v", rec)
		}
	}()

	source, err := os.ReadFile(path)
	if err != nil {
		result.Err = errors.Wrap(err, "reading file")

		return result
	}

	program, err := jsparser.Parse(ctx, path, source)
	if err != nil {
		result.Err = err

		return result
	}

	r.logger.Debug("linting file", "filename", path, "bytes", len(source))

	result.Program = program
	result.Diagnostics = r.linter.Lint(program)

	return result
}
