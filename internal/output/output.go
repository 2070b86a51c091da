// Package output decides how a scan's matches are rendered to the user:
// whether matching lines get a path prefix, and whether the run is in
// files-with-matches mode.
package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/patternforge/grepling/internal/scan"
)

// Writer renders scan results to an underlying stream, matching the path
// prefixing and files-with-matches rules of the front end.
type Writer struct {
	buf            *bufio.Writer
	prefixPaths    bool
	filesWithMatch bool
	matched        bool
}

// New builds a Writer over w. prefixPaths should be true whenever more than
// one file is in play (multiple file arguments, or -r); filesWithMatch puts
// the writer into -l mode, where only each matching file's label is printed.
func New(w io.Writer, prefixPaths, filesWithMatch bool) *Writer {
	return &Writer{
		buf:            bufio.NewWriter(w),
		prefixPaths:    prefixPaths,
		filesWithMatch: filesWithMatch,
	}
}

// Matched reports whether any result written so far contained a match.
func (w *Writer) Matched() bool {
	return w.matched
}

// Write renders one file's result. It is safe to call for files with zero
// matches; those simply produce no output.
func (w *Writer) Write(result scan.Result) error {
	if len(result.Matches) == 0 {
		return nil
	}
	w.matched = true

	if w.filesWithMatch {
		_, err := fmt.Fprintln(w.buf, result.File.Label)
		return err
	}

	for _, m := range result.Matches {
		var err error
		if w.prefixPaths {
			_, err = fmt.Fprintf(w.buf, "%s:%s\n", result.File.Label, m.Line)
		} else {
			_, err = fmt.Fprintln(w.buf, m.Line)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes any buffered output. It must be called once after the last
// Write to guarantee the stream is fully delivered.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}
