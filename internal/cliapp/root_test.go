package cliapp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStreams(t *testing.T, stdin string) (Streams, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "a.txt", []byte("apple\nbanana\ncherry\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "b.txt", []byte("avocado\nkiwi\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "dir/c.txt", []byte("nectarine\napricot\n"), 0o644))

	var stdout, stderr bytes.Buffer
	streams := Streams{
		Fs:     fs,
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	}
	return streams, &stdout, &stderr
}

func TestExec_SingleFileNoPrefix(t *testing.T) {
	streams, stdout, _ := newTestStreams(t, "")
	code := Exec(streams, []string{"-E", "an", "a.txt"})
	assert.Equal(t, 0, code)
	assert.Equal(t, "banana\n", stdout.String())
}

func TestExec_MultipleFilesPrefixesPath(t *testing.T) {
	streams, stdout, _ := newTestStreams(t, "")
	code := Exec(streams, []string{"-E", "^a", "a.txt", "b.txt"})
	assert.Equal(t, 0, code)
	assert.Equal(t, "a.txt:apple\nb.txt:avocado\n", stdout.String())
}

func TestExec_RecursiveWalksDirectories(t *testing.T) {
	streams, stdout, _ := newTestStreams(t, "")
	code := Exec(streams, []string{"-E", "^a", "-r", "dir"})
	assert.Equal(t, 0, code)
	assert.Equal(t, "c.txt:apricot\n", stdout.String())
}

func TestExec_FilesWithMatchesListsNames(t *testing.T) {
	streams, stdout, _ := newTestStreams(t, "")
	code := Exec(streams, []string{"-E", "a", "-r", "-l", "."})
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "a.txt")
	assert.Contains(t, stdout.String(), "b.txt")
}

func TestExec_NoMatchExitsOne(t *testing.T) {
	streams, stdout, _ := newTestStreams(t, "")
	code := Exec(streams, []string{"-E", "zzz", "a.txt"})
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
}

func TestExec_MalformedPatternExitsTwo(t *testing.T) {
	streams, _, stderr := newTestStreams(t, "")
	code := Exec(streams, []string{"-E", "(unclosed", "a.txt"})
	assert.Equal(t, 2, code)
	assert.NotEmpty(t, stderr.String())
}

func TestExec_MissingFileExitsTwo(t *testing.T) {
	streams, _, _ := newTestStreams(t, "")
	code := Exec(streams, []string{"-E", "a", "missing.txt"})
	assert.Equal(t, 2, code)
}

func TestExec_StdinFallback(t *testing.T) {
	streams, stdout, _ := newTestStreams(t, "hello\nworld\n")
	code := Exec(streams, []string{"-E", "wor"})
	assert.Equal(t, 0, code)
	assert.Equal(t, "world\n", stdout.String())
}
