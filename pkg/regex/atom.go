package regex

// Kind tags the syntactic unit an Atom represents.
type Kind int

const (
	KindLiteral Kind = iota
	KindWildcard
	KindDigitClass
	KindWordClass
	KindCharClass
	KindGroup
	KindBackref
	KindAnchorStart
	KindAnchorEnd
)

// Quantifier controls how many times an Atom may repeat.
type Quantifier int

const (
	QuantNone Quantifier = iota
	QuantOpt             // ?
	QuantPlus            // +
	QuantStar            // *
)

// classMember is either a single character (lo == hi) or an inclusive range.
type classMember struct {
	lo, hi rune
}

func (m classMember) matches(r rune) bool {
	return r >= m.lo && r <= m.hi
}

// branch is one alternative of a group's body, given as a half-open range of
// absolute positions into the pattern's rune slice.
type branch struct {
	start, end int
}

// Atom is a tagged value describing one syntactic unit taken from the
// pattern at some position, plus the position immediately following it
// (past any quantifier) and its optional quantifier.
type Atom struct {
	Kind Kind
	Quant Quantifier
	End  int // position in the pattern immediately after this atom+quantifier

	Literal rune // KindLiteral

	Negated bool          // KindCharClass
	Members []classMember // KindCharClass

	GroupIndex int      // KindGroup
	Branches   []branch // KindGroup

	BackrefIndex int // KindBackref
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isWordChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || isDigit(r) || r == '_'
}

func classMatches(a Atom, r rune) bool {
	found := false
	for _, m := range a.Members {
		if m.matches(r) {
			found = true
			break
		}
	}
	if a.Negated {
		return !found
	}
	return found
}
