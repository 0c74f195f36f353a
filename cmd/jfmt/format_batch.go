package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	jfmt "github.com/alnah/go-jfmt"
	"github.com/alnah/go-jfmt/internal/extract"
	"github.com/alnah/go-jfmt/internal/fileutil"
)

// filePermissions is the mode for formatted output files.
const filePermissions = 0o644 // rw-r--r--: owner read+write, others read

// Sentinel errors for batch operations.
var (
	ErrReadManuscript = errors.New("failed to read manuscript")
	ErrWriteOutput    = errors.New("failed to write formatted output")
)

// Formatter is the interface the format command drives.
type Formatter interface {
	Format(ctx context.Context, input jfmt.Input) (*jfmt.Result, error)
}

// Compile-time interface implementation check.
var _ Formatter = (*jfmt.Service)(nil)

// FormatResult holds the outcome of formatting a single manuscript.
type FormatResult struct {
	InputPath  string
	OutputPath string
	WordCount  int
	Err        error
	Duration   time.Duration
}

// formatBatch processes manuscripts concurrently through a worker group.
// The Service holds no per-run state, so every worker shares one instance.
func formatBatch(ctx context.Context, svc Formatter, ex *extract.Extractor, format jfmt.JournalFormat, files []FileToFormat, workers int) []FormatResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := workers
	if concurrency > len(files) {
		concurrency = len(files)
	}
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]FormatResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = FormatResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = formatOne(ctx, svc, ex, format, files[idx])
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// formatOne extracts, formats, and writes a single manuscript.
func formatOne(ctx context.Context, svc Formatter, ex *extract.Extractor, format jfmt.JournalFormat, f FileToFormat) FormatResult {
	start := time.Now()
	result := FormatResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	text, err := ex.ExtractFile(f.InputPath)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	formatted, err := svc.Format(ctx, jfmt.Input{
		Text:       text,
		Format:     format,
		SourceName: f.InputPath,
	})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}
	result.WordCount = formatted.WordCount

	if err := fileutil.EnsureDir(filepath.Dir(f.OutputPath)); err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	// #nosec G306 -- formatted manuscripts are meant to be readable
	if err := os.WriteFile(f.OutputPath, []byte(formatted.Content), filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		result.Duration = time.Since(start)
		return result
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed runs.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed runs.
func countResults(results []FormatResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResultsWithWriter outputs formatting results using the provided writers.
// Returns the number of failed files.
func printResultsWithWriter(results []FormatResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%d words, %v)\n",
				r.InputPath, r.OutputPath, r.WordCount, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}

// resolveWorkers determines the worker count for a batch.
// Priority: explicit count > GOMAXPROCS-based calculation.
func resolveWorkers(requested int) int {
	if requested > 0 {
		return requested
	}

	// Auto-calculate from GOMAXPROCS (adjusted by automaxprocs in containers)
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}
