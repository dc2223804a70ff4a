// Package batch runs the btrfind pipeline over many files concurrently,
// one independent Pipeline per file. It is the only place in this module
// that knows about concurrency; btrfind.Pipeline itself stays
// single-threaded and stateless.
package batch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/btrfind/btrfind"
	"github.com/btrfind/btrfind/monitoring"
	"github.com/btrfind/btrfind/resilience"
)

// Config controls a batch run.
type Config struct {
	// Concurrency is the number of files analyzed at once. Defaults to 4.
	Concurrency int

	// RetryPolicy governs per-file retries on failure. Defaults to
	// resilience.DefaultRetryPolicy.
	RetryPolicy *resilience.RetryPolicy

	// PipelineOptions are forwarded to btrfind.New for every file.
	PipelineOptions []btrfind.Option
}

// FileResult is one file's outcome within a batch run.
type FileResult struct {
	Path   string
	Result *btrfind.Result
	Err    error
}

// Run analyzes every path in paths, up to Concurrency at a time, retrying
// per-file failures per RetryPolicy, and returns one FileResult per input
// path in input order.
func Run(paths []string, cfg Config) []FileResult {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}
	if cfg.RetryPolicy == nil {
		cfg.RetryPolicy = resilience.DefaultRetryPolicy()
	}

	results := make([]FileResult, len(paths))
	sem := make(chan struct{}, cfg.Concurrency)
	var wg sync.WaitGroup

	monitoring.UpdateQueueDepth(len(paths))

	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			sem <- struct{}{}
			monitoring.UpdateActiveWorkers(len(sem))
			defer func() { <-sem }()

			results[i] = runOne(path, cfg)
			monitoring.UpdateQueueDepth(len(paths) - i - 1)
		}(i, path)
	}

	wg.Wait()
	monitoring.UpdateActiveWorkers(0)
	return results
}

func runOne(path string, cfg Config) FileResult {
	start := time.Now()
	var result *btrfind.Result

	err := cfg.RetryPolicy.Execute(func() error {
		p, err := btrfind.New(path, cfg.PipelineOptions...)
		if err != nil {
			return err
		}
		defer p.Close()

		r, err := p.Analyze()
		if err != nil {
			return err
		}
		result = r
		return nil
	})

	contentType := "unknown"
	if result != nil && result.Summary != nil {
		contentType = string(result.Summary.ContentType)
	}
	monitoring.RecordAnalysisLatency(contentType, time.Since(start))
	monitoring.RecordFileProcessed(outcomeLabel(err))

	if err != nil {
		return FileResult{Path: path, Err: fmt.Errorf("batch: %s: %w", filepath.Base(path), err)}
	}
	return FileResult{Path: path, Result: result}
}

func outcomeLabel(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
