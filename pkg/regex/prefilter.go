package regex

import "github.com/itgcl/ahocorasick"

// literalPrefilter lets Match reject a line in O(n) without ever entering
// the backtracking driver, for the one case this engine can prove exact:
// a pattern compiled entirely from unquantified literals, with no anchors,
// classes, groups or back-references, can only ever match lines that
// contain it as a substring. The prefilter is skipped for every other
// pattern shape — it never changes a match result, it only short-circuits a
// false the driver would have produced anyway.
type literalPrefilter struct {
	matcher *ahocorasick.Matcher
}

func (f *literalPrefilter) ContainsString(s string) bool {
	return f.matcher.ContainsString(s)
}

func newLiteralPrefilter(p *Pattern) *literalPrefilter {
	if len(p.runes) == 0 || !isPlainLiteral(p) {
		return nil
	}
	return &literalPrefilter{matcher: ahocorasick.NewStringMatcher([]string{decodedLiteral(p)})}
}

// decodedLiteral rebuilds the literal text a plain-literal pattern matches
// from its parsed atoms, rather than its raw source — an escape like `\.`
// compiles to the single literal rune '.', not the two source characters
// `\` and `.`, so the prefilter must search for the former.
func decodedLiteral(p *Pattern) string {
	var b []rune
	for pos := 0; pos < len(p.runes); {
		atom := p.atoms[pos]
		b = append(b, atom.Literal)
		pos = atom.End
	}
	return string(b)
}

// isPlainLiteral reports whether every atom in the pattern is an unquantified
// literal, i.e. the pattern is equivalent to a single substring search.
func isPlainLiteral(p *Pattern) bool {
	for pos := 0; pos < len(p.runes); {
		atom, ok := p.atoms[pos]
		if !ok || atom.Kind != KindLiteral || atom.Quant != QuantNone {
			return false
		}
		pos = atom.End
	}
	return true
}
