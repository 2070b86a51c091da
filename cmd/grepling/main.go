// Command grepling is a grep-like line search tool built on a small
// backtracking regular-expression engine with capture groups and
// back-references.
package main

import (
	"os"

	"github.com/patternforge/grepling/internal/cliapp"
)

func main() {
	os.Exit(cliapp.Exec(cliapp.NewOsStreams(), os.Args[1:]))
}
