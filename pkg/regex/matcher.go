package regex

// matchFrom walks the compiled atoms from pos up to limit (a half-open range
// of absolute positions into the pattern), threading the current input
// position and capture table. When pos reaches limit it calls cont with the
// input position reached, which is this sub-pattern's only notion of
// "success" — the caller decides what that means (finish the whole match,
// or close a group and resume the enclosing pattern).
func (p *Pattern) matchFrom(pos, limit, ipos int, input []rune, caps *captures, cont func(int) bool) bool {
	if pos == limit {
		return cont(ipos)
	}
	atom := p.atoms[pos]
	next := atom.End

	switch atom.Quant {
	case QuantNone:
		return p.matchOnce(atom, ipos, input, caps, func(newIpos int) bool {
			return p.matchFrom(next, limit, newIpos, input, caps, cont)
		})
	case QuantOpt:
		if p.matchOnce(atom, ipos, input, caps, func(newIpos int) bool {
			return p.matchFrom(next, limit, newIpos, input, caps, cont)
		}) {
			return true
		}
		return p.matchFrom(next, limit, ipos, input, caps, cont)
	case QuantPlus:
		return p.matchOnce(atom, ipos, input, caps, func(newIpos int) bool {
			return p.matchMoreOrStop(atom, newIpos, input, caps, func(finalIpos int) bool {
				return p.matchFrom(next, limit, finalIpos, input, caps, cont)
			})
		})
	case QuantStar:
		return p.matchMoreOrStop(atom, ipos, input, caps, func(finalIpos int) bool {
			return p.matchFrom(next, limit, finalIpos, input, caps, cont)
		})
	}
	return false
}

// matchMoreOrStop implements the greedy tail of + and *: try to consume one
// more repetition before giving the rest of the pattern a chance, and fall
// back to stopping here only once every longer alternative has failed. A
// repetition that consumed zero input characters (possible for an optional
// group) is not retried, since repeating it again could never make further
// progress.
func (p *Pattern) matchMoreOrStop(atom Atom, ipos int, input []rune, caps *captures, cont func(int) bool) bool {
	if p.matchOnce(atom, ipos, input, caps, func(newIpos int) bool {
		if newIpos == ipos {
			return cont(newIpos)
		}
		return p.matchMoreOrStop(atom, newIpos, input, caps, cont)
	}) {
		return true
	}
	return cont(ipos)
}

// matchOnce attempts exactly one occurrence of atom's underlying (unquantified)
// construct at ipos, invoking cont with the resulting input position on
// success. For KindGroup it tries each alternative branch in order; a branch
// that matches writes the group's capture before calling cont, and undoes
// that write if cont ultimately rejects every continuation reachable from it.
func (p *Pattern) matchOnce(atom Atom, ipos int, input []rune, caps *captures, cont func(int) bool) bool {
	switch atom.Kind {
	case KindLiteral:
		if ipos < len(input) && input[ipos] == atom.Literal {
			return cont(ipos + 1)
		}
		return false

	case KindWildcard:
		if ipos < len(input) {
			return cont(ipos + 1)
		}
		return false

	case KindDigitClass:
		if ipos < len(input) && isDigit(input[ipos]) {
			return cont(ipos + 1)
		}
		return false

	case KindWordClass:
		if ipos < len(input) && isWordChar(input[ipos]) {
			return cont(ipos + 1)
		}
		return false

	case KindCharClass:
		if ipos < len(input) && classMatches(atom, input[ipos]) {
			return cont(ipos + 1)
		}
		return false

	case KindAnchorStart:
		if ipos == 0 {
			return cont(ipos)
		}
		return false

	case KindAnchorEnd:
		if ipos == len(input) {
			return cont(ipos)
		}
		return false

	case KindBackref:
		value, ok := caps.get(atom.BackrefIndex)
		if !ok {
			return false
		}
		runes := []rune(value)
		if ipos+len(runes) > len(input) {
			return false
		}
		for i, r := range runes {
			if input[ipos+i] != r {
				return false
			}
		}
		return cont(ipos + len(runes))

	case KindGroup:
		for _, br := range atom.Branches {
			if p.matchFrom(br.start, br.end, ipos, input, caps, func(bodyEnd int) bool {
				prevValue, prevSet := caps.get(atom.GroupIndex)
				caps.setValue(atom.GroupIndex, string(input[ipos:bodyEnd]))
				if cont(bodyEnd) {
					return true
				}
				caps.restore(atom.GroupIndex, prevValue, prevSet)
				return false
			}) {
				return true
			}
		}
		return false
	}
	return false
}

// Match reports whether the pattern matches any substring of input. If the
// pattern begins with ^, only the start of input is tried.
func (p *Pattern) Match(input string) bool {
	if p.prefilter != nil && !p.prefilter.ContainsString(input) {
		return false
	}
	runes := []rune(input)
	if p.anchoredStart {
		return p.tryAt(runes, 0)
	}
	for start := 0; start <= len(runes); start++ {
		if p.tryAt(runes, start) {
			return true
		}
	}
	return false
}

func (p *Pattern) tryAt(input []rune, start int) bool {
	caps := &captures{}
	return p.matchFrom(0, len(p.runes), start, input, caps, func(int) bool { return true })
}
