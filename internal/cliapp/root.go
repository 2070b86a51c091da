// Package cliapp wires the grepling command line: flag parsing, input
// resolution (files, directories or stdin), dispatch into the scan and
// output layers, and the exit-code decision.
package cliapp

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/patternforge/grepling/internal/output"
	"github.com/patternforge/grepling/internal/scan"
	"github.com/patternforge/grepling/internal/telemetry"
	"github.com/patternforge/grepling/internal/walk"
	"github.com/patternforge/grepling/pkg/regex"
)

// ExitError carries the process exit code a failure should produce,
// distinguishing "no match" (1) from a hard failure (2) without the root
// command needing to inspect error internals.
type ExitError struct {
	Code int
	err  error
}

func (e *ExitError) Error() string { return e.err.Error() }
func (e *ExitError) Unwrap() error { return e.err }

func exitErr(code int, err error) error { return &ExitError{Code: code, err: err} }

// Options are the flag-bound inputs of the root command.
type Options struct {
	Pattern   string
	Recursive bool
	Files     bool
	Verbose   bool
}

// Streams bundles the IO the root command reads from and writes to, so
// tests can substitute in-memory buffers.
type Streams struct {
	Fs     afero.Fs
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewRootCommand builds the cobra command tree for grepling. The command's
// positional arguments are file or directory paths; zero of them means
// "read stdin".
func NewRootCommand(streams Streams) *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "grepling [flags] FILE...",
		Short: "Search input for lines matching a pattern",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), streams, opts, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.Pattern, "extended-regexp", "E", "", "pattern to match (required)")
	flags.BoolVarP(&opts.Recursive, "recursive", "r", false, "search directories recursively")
	flags.BoolVarP(&opts.Files, "files-with-matches", "l", false, "print only the names of files with matches")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose diagnostics")
	_ = cmd.MarkFlagRequired("extended-regexp")

	return cmd
}

func run(ctx context.Context, streams Streams, opts *Options, args []string) error {
	log := telemetry.New(opts.Verbose)
	defer log.Sync()

	p, err := regex.Compile(opts.Pattern)
	if err != nil {
		log.Errorw("malformed pattern", "error", err.Error())
		return exitErr(2, errors.Wrap(err, "malformed pattern"))
	}

	if len(args) == 0 {
		return runStdin(streams, opts, p, log)
	}
	return runFiles(ctx, streams, opts, args, log)
}

func runStdin(streams Streams, opts *Options, p *regex.Pattern, log *telemetry.Logger) error {
	var matches []scan.Match
	scanner := bufio.NewScanner(streams.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if p.Match(line) {
			matches = append(matches, scan.Match{Line: line})
		}
	}
	if err := scanner.Err(); err != nil {
		log.Errorw("reading stdin failed", "error", err.Error())
		return exitErr(2, errors.Wrap(err, "read stdin"))
	}

	w := output.New(streams.Stdout, false, opts.Files)
	if err := w.Write(scan.Result{Matches: matches}); err != nil {
		return exitErr(2, err)
	}
	if err := w.Flush(); err != nil {
		return exitErr(2, err)
	}
	if !w.Matched() {
		return exitErr(1, errors.New("no match"))
	}
	return nil
}

func runFiles(ctx context.Context, streams Streams, opts *Options, args []string, log *telemetry.Logger) error {
	files, err := walk.Resolve(streams.Fs, args, opts.Recursive)
	if err != nil {
		log.Errorw("resolving input paths failed", "error", err.Error())
		return exitErr(2, errors.Wrap(err, "resolve input paths"))
	}

	results, err := scan.Run(ctx, streams.Fs, opts.Pattern, files)
	if err != nil {
		log.Errorw("scan failed", "error", err.Error())
		return exitErr(2, errors.Wrap(err, "scan"))
	}

	prefixPaths := len(files) > 1 || opts.Recursive
	w := output.New(streams.Stdout, prefixPaths, opts.Files)

	var readErr error
	for _, result := range results {
		if result.Err != nil {
			log.Errorw("reading file failed", "file", result.File.Path, "error", result.Err.Error())
			if readErr == nil {
				readErr = result.Err
			}
			continue
		}
		if err := w.Write(result); err != nil {
			return exitErr(2, err)
		}
	}
	if err := w.Flush(); err != nil {
		return exitErr(2, err)
	}
	if readErr != nil {
		return exitErr(2, errors.Wrap(readErr, "one or more files could not be read"))
	}
	if !w.Matched() {
		return exitErr(1, errors.New("no match"))
	}
	return nil
}

// Exec runs the root command and returns the process exit code: 0 if at
// least one line matched, 1 if none did, 2 on malformed pattern or I/O
// failure. Errors from the run itself are also logged through the structured
// logger; Exec prints every error other than "no match" (including flag
// parsing errors) as one line on streams.Stderr, so callers only need the
// code.
func Exec(streams Streams, argv []string) int {
	cmd := NewRootCommand(streams)
	cmd.SetArgs(argv)
	cmd.SetOut(streams.Stdout)
	cmd.SetErr(streams.Stderr)

	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		return 0
	}

	var ee *ExitError
	if errors.As(err, &ee) {
		if ee.Code != 1 {
			fmt.Fprintln(streams.Stderr, ee.Error())
		}
		return ee.Code
	}

	fmt.Fprintln(streams.Stderr, err.Error())
	return 2
}

// NewOsStreams builds the Streams grepling uses outside of tests: the real
// filesystem and the process's own stdio.
func NewOsStreams() Streams {
	return Streams{
		Fs:     afero.NewOsFs(),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}
