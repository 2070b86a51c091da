package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patternforge/grepling/internal/scan"
	"github.com/patternforge/grepling/internal/walk"
)

func TestWriter_SingleFileNoPrefix(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, false, false)

	result := scan.Result{
		File:    walk.File{Path: "a.txt", Label: "a.txt"},
		Matches: []scan.Match{{Line: "hello world"}},
	}
	require.NoError(t, w.Write(result))
	require.NoError(t, w.Flush())

	assert.Equal(t, "hello world\n", buf.String())
	assert.True(t, w.Matched())
}

func TestWriter_MultipleFilesPrefixesPath(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, true, false)

	result := scan.Result{
		File:    walk.File{Path: "sub/a.txt", Label: "sub/a.txt"},
		Matches: []scan.Match{{Line: "hello"}},
	}
	require.NoError(t, w.Write(result))
	require.NoError(t, w.Flush())

	assert.Equal(t, "sub/a.txt:hello\n", buf.String())
}

func TestWriter_FilesWithMatchesPrintsLabelOnce(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, true, true)

	result := scan.Result{
		File:    walk.File{Path: "sub/a.txt", Label: "sub/a.txt"},
		Matches: []scan.Match{{Line: "one"}, {Line: "two"}},
	}
	require.NoError(t, w.Write(result))
	require.NoError(t, w.Flush())

	assert.Equal(t, "sub/a.txt\n", buf.String())
}

func TestWriter_NoMatchesProducesNoOutput(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, false, false)

	require.NoError(t, w.Write(scan.Result{File: walk.File{Path: "a.txt", Label: "a.txt"}}))
	require.NoError(t, w.Flush())

	assert.Empty(t, buf.String())
	assert.False(t, w.Matched())
}
