package regex

// Pattern is a compiled regular expression: the pattern's atoms are parsed
// once, up front, into a position-indexed tree (the equivalent, sanctioned
// re-expression of "re-scan on every attempt" described in this engine's
// design notes) rather than re-scanned during every backtracking step.
type Pattern struct {
	runes         []rune
	atoms         map[int]Atom
	anchoredStart bool
	groupCount    int

	prefilter *literalPrefilter
}

// Compile parses pattern into a Pattern ready for repeated matching. It
// returns an error wrapping ErrMalformedPattern if the pattern is invalid.
func Compile(pattern string) (*Pattern, error) {
	runes := []rune(pattern)
	p := &Pattern{
		runes:         runes,
		atoms:         make(map[int]Atom),
		anchoredStart: len(runes) > 0 && runes[0] == '^',
		groupCount:    countGroups(runes),
	}
	if err := p.compileSeq(0, len(runes)); err != nil {
		return nil, err
	}
	p.prefilter = newLiteralPrefilter(p)
	return p, nil
}

// compileSeq parses every atom in the half-open range [start,end), recursing
// into each group's branches, and stores them in p.atoms keyed by position.
func (p *Pattern) compileSeq(start, end int) error {
	for pos := start; pos < end; {
		atom, next, err := scanAtom(p.runes, pos, len(p.runes), p.groupCount)
		if err != nil {
			return err
		}
		p.atoms[pos] = atom
		if atom.Kind == KindGroup {
			for _, br := range atom.Branches {
				if err := p.compileSeq(br.start, br.end); err != nil {
					return err
				}
			}
		}
		pos = next
	}
	return nil
}

// Match compiles pattern and reports whether it matches any substring of
// input, satisfying the package's core API.
func Match(pattern, input string) (bool, error) {
	p, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return p.Match(input), nil
}
