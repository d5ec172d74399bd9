package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// Outcome is the result of processing one file.
type Outcome[R any] struct {
	Path   string
	Result R
	Err    error
}

// ProcessFunc handles a single file.
type ProcessFunc[R any] func(ctx context.Context, path string) (R, error)

// Run calls process for every file on a pool of at most jobs workers and
// returns the outcomes in the order of files. Per-file errors are recorded
// in the outcome; the returned error reports only cancellation.
func Run[R any](ctx context.Context, files []string, jobs int, process ProcessFunc[R]) ([]Outcome[R], error) {
	if len(files) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	workCh := make(chan int)
	outcomes := make([]Outcome[R], len(files))

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range workCh {
				result, err := process(ctx, files[idx])
				outcomes[idx] = Outcome[R]{Path: files[idx], Result: result, Err: err}
			}
		}()
	}

feed:
	for idx := range files {
		select {
		case <-ctx.Done():
			break feed
		case workCh <- idx:
		}
	}
	close(workCh)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return outcomes, fmt.Errorf("run cancelled: %w", err)
	}
	return outcomes, nil
}

// RunOptions discovers files with opts and runs process over them.
func RunOptions[R any](ctx context.Context, opts Options, process ProcessFunc[R]) ([]Outcome[R], error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}
	return Run(ctx, files, opts.Jobs, process)
}
