package batch

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"speech-summarizer/internal/app/api"
	"speech-summarizer/internal/app/logging"
)

// DefaultConcurrency is the number of files processed at once
const DefaultConcurrency = 2

// Options configure a batch run
type Options struct {
	Summarize   bool
	Concurrency int
	Progress    ProgressConfig
}

// Item is the outcome for one file. Err holds an unclassified failure;
// classified failures are in Result.
type Item struct {
	FileName string
	Result   api.Result
	Err      error
}

// Failed reports whether the file produced no text.
func (i Item) Failed() bool {
	return i.Err != nil || !i.Result.OK()
}

// String renders the item as "<file>: <result>".
func (i Item) String() string {
	if i.Err != nil {
		return fmt.Sprintf("%s: error: %v", i.FileName, i.Err)
	}
	return fmt.Sprintf("%s: %s", i.FileName, i.Result.String())
}

// Runner executes many file references with bounded concurrency
type Runner struct {
	executor api.Executor
	options  Options
	logger   *zap.Logger
}

// NewRunner creates a runner. A non-positive concurrency falls back to
// DefaultConcurrency.
func NewRunner(executor api.Executor, options Options, logger *zap.Logger) *Runner {
	if options.Concurrency <= 0 {
		options.Concurrency = DefaultConcurrency
	}
	return &Runner{
		executor: executor,
		options:  options,
		logger:   logging.Component(logger, "batch"),
	}
}

// Run executes every file and returns the items in input order. A failure
// of one file does not stop the others; only ctx cancellation does.
func (r *Runner) Run(ctx context.Context, files []string) ([]Item, error) {
	items := make([]Item, len(files))
	bar := NewProgressBar(r.options.Progress, len(files), "Transcribing")

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.options.Concurrency)

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			defer bar.Increment()

			result, err := r.executor.Execute(ctx, api.Request{FileName: file, Summarize: r.options.Summarize})
			items[i] = Item{FileName: file, Result: result, Err: err}
			if err != nil {
				r.logger.Error("Failed to process file", zap.String("file", file), zap.Error(err))
			}
			return nil
		})
	}

	err := g.Wait()
	bar.Wait()
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Report writes one line per item and returns the number of failed items.
func Report(w io.Writer, items []Item) (int, error) {
	failed := 0
	for _, item := range items {
		if item.Failed() {
			failed++
		}
		if _, err := fmt.Fprintln(w, item.String()); err != nil {
			return failed, err
		}
	}
	return failed, nil
}
