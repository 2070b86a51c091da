// Package scan fans a compiled pattern out across a set of files using a
// bounded worker pool, and collects the resulting matches in file order.
package scan

import (
	"bufio"
	"context"
	"io"
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/patternforge/grepling/internal/walk"
	"github.com/patternforge/grepling/pkg/regex"
)

// Match is one matching line found in one file.
type Match struct {
	File walk.File
	Line string
}

// Result is the outcome of scanning one file: either its matches, or an
// error reading it. Exactly one of Err or Matches is meaningful.
type Result struct {
	File    walk.File
	Matches []Match
	Err     error
}

// Run scans every file in files against pattern, using up to
// runtime.GOMAXPROCS(0) workers, each with its own compiled copy of the
// pattern so concurrent matches never share backtracking state. It returns
// one Result per file in the order files were given, regardless of which
// worker finished first. Scanning stops early if ctx is canceled.
func Run(ctx context.Context, fs afero.Fs, pattern string, files []walk.File) ([]Result, error) {
	// Compiled once up front to fail fast on a malformed pattern before any
	// worker is spawned; each worker below still gets its own compilation,
	// since two goroutines are never allowed to share one Pattern's call.
	if _, err := regex.Compile(pattern); err != nil {
		return nil, err
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(files) {
		workers = len(files)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	results := make([]Result, len(files))

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			p, err := regex.Compile(pattern)
			if err != nil {
				return
			}
			for idx := range jobs {
				select {
				case <-ctx.Done():
					results[idx] = Result{File: files[idx], Err: ctx.Err()}
					continue
				default:
				}
				results[idx] = scanFile(fs, p, files[idx])
			}
		}()
	}

	var cancelled bool
	for idx := range files {
		select {
		case <-ctx.Done():
			cancelled = true
		default:
		}
		if cancelled {
			break
		}
		select {
		case jobs <- idx:
		case <-ctx.Done():
			cancelled = true
		}
	}
	close(jobs)
	wg.Wait()

	if cancelled {
		return results, ctx.Err()
	}
	return results, nil
}

func scanFile(fs afero.Fs, p *regex.Pattern, file walk.File) Result {
	f, err := fs.Open(file.Path)
	if err != nil {
		return Result{File: file, Err: errors.Wrapf(err, "open %s", file.Path)}
	}
	defer f.Close()

	var matches []Match
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if p.Match(line) {
			matches = append(matches, Match{File: file, Line: line})
		}
	}
	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
		return Result{File: file, Err: errors.Wrapf(err, "read %s", file.Path)}
	}
	return Result{File: file, Matches: matches}
}

