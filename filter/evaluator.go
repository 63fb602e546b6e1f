package filter

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EvaluatorOption configures an evaluator
type EvaluatorOption func(*ConcurrentEvaluator)

// WithWorkers sets the number of worker goroutines
func WithWorkers(workers int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		if workers > 0 {
			e.workerCount = workers
		}
	}
}

// WithBatchSize sets the batch size for chunked processing
func WithBatchSize(size int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		if size > 0 {
			e.batchSize = size
		}
	}
}

// ConcurrentEvaluator evaluates a filter over rows in parallel batches
type ConcurrentEvaluator struct {
	workerCount int
	batchSize   int
}

// NewConcurrentEvaluator creates a new concurrent evaluator
func NewConcurrentEvaluator(opts ...EvaluatorOption) *ConcurrentEvaluator {
	e := &ConcurrentEvaluator{
		workerCount: runtime.GOMAXPROCS(0),
		batchSize:   256,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Evaluate returns the matching rows in input order
func (e *ConcurrentEvaluator) Evaluate(ctx context.Context, filter CompiledFilter, rows []Row) ([]Row, error) {
	idx, err := e.Select(ctx, filter, rows)
	if err != nil {
		return nil, err
	}

	matches := make([]Row, 0, len(idx))
	for _, i := range idx {
		matches = append(matches, rows[i])
	}
	return matches, nil
}

// Select returns the indexes of matching rows in input order. The first row
// that fails to evaluate aborts the run with an *EvaluationError.
func (e *ConcurrentEvaluator) Select(ctx context.Context, filter CompiledFilter, rows []Row) ([]int, error) {
	if len(rows) == 0 {
		return []int{}, nil
	}

	keep := make([]bool, len(rows))

	// For small row sets, don't bother with concurrency
	if len(rows) <= e.batchSize || !filter.IsThreadSafe() {
		if err := matchRange(ctx, filter, rows, keep, 0, len(rows)); err != nil {
			return nil, err
		}
		return collect(keep), nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workerCount)
	for start := 0; start < len(rows); start += e.batchSize {
		end := min(start+e.batchSize, len(rows))
		g.Go(func() error {
			return matchRange(gctx, filter, rows, keep, start, end)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return collect(keep), nil
}

// matchRange evaluates rows[start:end]; each batch writes a disjoint part of keep
func matchRange(ctx context.Context, filter CompiledFilter, rows []Row, keep []bool, start, end int) error {
	for i := start; i < end; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		ok, err := filter.Match(rows[i])
		if err != nil {
			return &EvaluationError{
				Expression: filter.Expression(),
				Row:        i,
				Reason:     err.Error(),
				Err:        err,
			}
		}
		keep[i] = ok
	}
	return nil
}

func collect(keep []bool) []int {
	idx := make([]int, 0, len(keep))
	for i, ok := range keep {
		if ok {
			idx = append(idx, i)
		}
	}
	return idx
}
