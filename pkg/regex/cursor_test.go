package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanAtom_Literals(t *testing.T) {
	pat := []rune("a")
	atom, next, err := scanAtom(pat, 0, len(pat), 0)
	require.NoError(t, err)
	assert.Equal(t, KindLiteral, atom.Kind)
	assert.Equal(t, 'a', atom.Literal)
	assert.Equal(t, 1, next)
}

func TestScanAtom_AnchorsOnlyAtBoundaries(t *testing.T) {
	pat := []rune("a^b")
	atom, _, err := scanAtom(pat, 1, len(pat), 0)
	require.NoError(t, err)
	assert.Equal(t, KindLiteral, atom.Kind, "^ is only an anchor at position 0")
	assert.Equal(t, '^', atom.Literal)
}

func TestScanAtom_CharClassRanges(t *testing.T) {
	pat := []rune("[a-z0-9_]")
	atom, next, err := scanAtom(pat, 0, len(pat), 0)
	require.NoError(t, err)
	assert.Equal(t, KindCharClass, atom.Kind)
	assert.False(t, atom.Negated)
	assert.Equal(t, len(pat), next)
	assert.True(t, classMatches(atom, 'm'))
	assert.True(t, classMatches(atom, '5'))
	assert.True(t, classMatches(atom, '_'))
	assert.False(t, classMatches(atom, '!'))
}

func TestGroupIndexAt_OrderedByOpenParen(t *testing.T) {
	pat := []rune("(a(b)c)")
	assert.Equal(t, 1, groupIndexAt(pat, 0))
	assert.Equal(t, 2, groupIndexAt(pat, 2))
}

func TestSplitBranches_TopLevelOnly(t *testing.T) {
	pat := []rune("a|b(c|d)|e")
	branches := splitBranches(pat, 0, len(pat))
	require.Len(t, branches, 3)
	assert.Equal(t, "a", string(pat[branches[0].start:branches[0].end]))
	assert.Equal(t, "b(c|d)", string(pat[branches[1].start:branches[1].end]))
	assert.Equal(t, "e", string(pat[branches[2].start:branches[2].end]))
}
