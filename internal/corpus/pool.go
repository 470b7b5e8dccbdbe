package corpus

import (
	"errors"
	"log/slog"
	"runtime"
	"sort"
	"sync"

	"WordFreq/internal/histogram"
)

var ErrInvalidWorkers = errors.New("worker count must be >= 0")

// Failure records one file that could not be processed.
type Failure struct {
	Path string
	Err  error
}

// Pool processes files on a fixed set of worker goroutines and folds the
// per-file histograms into one combined histogram. Construct it with
// NewPool; a Pool is stateless between Run calls and may be reused.
type Pool struct {
	workers    int
	logger     *slog.Logger
	onProgress func(done, total int)
}

// NewPool creates a Pool from cfg. A zero Workers value means one worker
// per CPU; a negative value is ErrInvalidWorkers.
func NewPool(cfg Config) (*Pool, error) {
	if cfg.Workers < 0 {
		return nil, ErrInvalidWorkers
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Pool{
		workers:    workers,
		logger:     logger,
		onProgress: cfg.OnProgress,
	}, nil
}

// Workers returns the pool's worker count.
func (p *Pool) Workers() int {
	return p.workers
}

// fileResult carries one file's outcome from a worker to the collector.
type fileResult struct {
	index int
	path  string
	hist  *histogram.Histogram
	err   error
}

// Run processes every path and returns the combined histogram over the
// files that succeeded, plus one Failure per file that did not. Files
// beyond pool capacity queue until a worker frees up. Workers share no
// mutable state; the fold runs single-threaded after all results are
// collected, so the combined content is identical regardless of
// completion order. Failures are reported in input order.
//
// An empty path list, or a list where every file fails, yields an empty
// histogram; the caller decides whether a non-empty failure list is
// fatal.
func (p *Pool) Run(paths []string) (*histogram.Histogram, []Failure) {
	combined := histogram.New()
	if len(paths) == 0 {
		return combined, nil
	}

	type task struct {
		index int
		path  string
	}

	tasks := make(chan task)
	results := make(chan fileResult, len(paths))

	workers := min(p.workers, len(paths))
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				hist, err := FromFile(t.path)
				results <- fileResult{index: t.index, path: t.path, hist: hist, err: err}
			}
		}()
	}

	go func() {
		for i, path := range paths {
			tasks <- task{index: i, path: path}
		}
		close(tasks)
	}()

	collected := make([]fileResult, 0, len(paths))
	for done := 1; done <= len(paths); done++ {
		r := <-results
		collected = append(collected, r)
		if p.onProgress != nil {
			p.onProgress(done, len(paths))
		}
	}
	wg.Wait()

	// Restore input order so failure reporting is deterministic. The
	// merged content does not depend on order.
	sort.Slice(collected, func(i, j int) bool {
		return collected[i].index < collected[j].index
	})

	var failures []Failure
	for _, r := range collected {
		if r.err != nil {
			p.logger.Warn("file processing failed",
				"path", r.path,
				"error", r.err,
			)
			failures = append(failures, Failure{Path: r.path, Err: r.err})
			continue
		}
		combined.Merge(r.hist)
	}
	return combined, failures
}
