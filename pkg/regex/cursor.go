package regex

// scanAtom identifies the atom starting at pat[i] and returns it along with
// the position immediately following it (past any quantifier). patLen is
// the length of the whole top-level pattern; anchors are only recognized at
// its absolute boundaries, never at the boundary of a group body. totalGroups
// is the number of capturing groups in the whole pattern, used to validate
// back-references.
func scanAtom(pat []rune, i, patLen, totalGroups int) (Atom, int, error) {
	switch pat[i] {
	case '?', '+', '*':
		return Atom{}, 0, malformedf("quantifier %q at position %d has nothing to quantify", pat[i], i)

	case ')':
		return Atom{}, 0, malformedf("unbalanced ')' at position %d", i)

	case ']':
		return Atom{}, 0, malformedf("unbalanced ']' at position %d", i)

	case '^':
		if i == 0 {
			return finishAnchor(pat, KindAnchorStart, i)
		}
		return finishLiteral(pat, i, patLen)

	case '$':
		if i == patLen-1 {
			return finishAnchor(pat, KindAnchorEnd, i)
		}
		return finishLiteral(pat, i, patLen)

	case '\\':
		return scanEscape(pat, i, patLen, totalGroups)

	case '.':
		return finishQuantified(pat, Atom{Kind: KindWildcard}, i+1, patLen)

	case '[':
		return scanCharClass(pat, i, patLen)

	case '(':
		return scanGroup(pat, i, patLen, totalGroups)

	default:
		return finishLiteral(pat, i, patLen)
	}
}

func finishLiteral(pat []rune, i, patLen int) (Atom, int, error) {
	return finishQuantified(pat, Atom{Kind: KindLiteral, Literal: pat[i]}, i+1, patLen)
}

func finishAnchor(pat []rune, kind Kind, i int) (Atom, int, error) {
	next := i + 1
	if next < len(pat) && isQuantChar(pat[next]) {
		return Atom{}, 0, malformedf("anchor at position %d cannot be quantified", i)
	}
	return Atom{Kind: kind, End: next}, next, nil
}

func isQuantChar(r rune) bool {
	return r == '?' || r == '+' || r == '*'
}

// finishQuantified consumes a trailing ?, + or * after an already-built atom
// and records the atom's End position.
func finishQuantified(pat []rune, a Atom, after, patLen int) (Atom, int, error) {
	if after < len(pat) && isQuantChar(pat[after]) {
		switch pat[after] {
		case '?':
			a.Quant = QuantOpt
		case '+':
			a.Quant = QuantPlus
		case '*':
			a.Quant = QuantStar
		}
		after++
	}
	a.End = after
	return a, after, nil
}

func scanEscape(pat []rune, i, patLen, totalGroups int) (Atom, int, error) {
	if i+1 >= len(pat) {
		return Atom{}, 0, malformedf("unterminated escape at position %d", i)
	}
	c := pat[i+1]
	switch {
	case c == 'd':
		return finishQuantified(pat, Atom{Kind: KindDigitClass}, i+2, patLen)
	case c == 'w':
		return finishQuantified(pat, Atom{Kind: KindWordClass}, i+2, patLen)
	case c >= '1' && c <= '9':
		idx := int(c - '0')
		if idx > totalGroups {
			return Atom{}, 0, malformedf("back-reference \\%d refers to a group that does not exist", idx)
		}
		return finishQuantified(pat, Atom{Kind: KindBackref, BackrefIndex: idx}, i+2, patLen)
	default:
		return finishQuantified(pat, Atom{Kind: KindLiteral, Literal: c}, i+2, patLen)
	}
}

func scanCharClass(pat []rune, i, patLen int) (Atom, int, error) {
	j := i + 1
	negated := false
	if j < len(pat) && pat[j] == '^' {
		negated = true
		j++
	}
	bodyStart := j
	for j < len(pat) && pat[j] != ']' {
		j++
	}
	if j >= len(pat) {
		return Atom{}, 0, malformedf("unbalanced '[' at position %d", i)
	}
	if j == bodyStart {
		return Atom{}, 0, malformedf("empty character class at position %d", i)
	}
	members := parseClassMembers(pat[bodyStart:j])
	return finishQuantified(pat, Atom{Kind: KindCharClass, Negated: negated, Members: members}, j+1, patLen)
}

func parseClassMembers(body []rune) []classMember {
	var members []classMember
	for i := 0; i < len(body); {
		if i+2 < len(body) && body[i+1] == '-' {
			members = append(members, classMember{lo: body[i], hi: body[i+2]})
			i += 3
			continue
		}
		members = append(members, classMember{lo: body[i], hi: body[i]})
		i++
	}
	return members
}

func scanGroup(pat []rune, i, patLen, totalGroups int) (Atom, int, error) {
	bodyStart := i + 1
	end, err := matchingParen(pat, i)
	if err != nil {
		return Atom{}, 0, err
	}
	index := groupIndexAt(pat, i)
	branches := splitBranches(pat, bodyStart, end)
	return finishQuantified(pat, Atom{Kind: KindGroup, GroupIndex: index, Branches: branches}, end+1, patLen)
}

// matchingParen returns the position of the ')' matching the '(' at open,
// accounting for nesting and backslash escapes.
func matchingParen(pat []rune, open int) (int, error) {
	depth := 0
	for i := open; i < len(pat); i++ {
		switch pat[i] {
		case '\\':
			i++
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, malformedf("unbalanced '(' at position %d", open)
}

// groupIndexAt counts the unescaped '(' characters in pat[0:openIdx+1],
// which is the 1-based index of the group opened at openIdx.
func groupIndexAt(pat []rune, openIdx int) int {
	count := 0
	for i := 0; i <= openIdx; i++ {
		if pat[i] == '\\' {
			i++
			continue
		}
		if pat[i] == '(' {
			count++
		}
	}
	return count
}

// countGroups returns the total number of capturing groups in pat.
func countGroups(pat []rune) int {
	count := 0
	for i := 0; i < len(pat); i++ {
		if pat[i] == '\\' {
			i++
			continue
		}
		if pat[i] == '(' {
			count++
		}
	}
	return count
}

// splitBranches splits a group body [start,end) into its top-level
// alternatives, separated by '|' at nesting depth 0 relative to the body.
func splitBranches(pat []rune, start, end int) []branch {
	var branches []branch
	depth := 0
	segStart := start
	for i := start; i < end; i++ {
		switch pat[i] {
		case '\\':
			i++
		case '(':
			depth++
		case ')':
			depth--
		case '|':
			if depth == 0 {
				branches = append(branches, branch{start: segStart, end: i})
				segStart = i + 1
			}
		}
	}
	branches = append(branches, branch{start: segStart, end: end})
	return branches
}
