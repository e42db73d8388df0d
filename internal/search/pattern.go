package search

import (
	"regexp"
	"strings"
)

// Pattern is a compiled search term.
type Pattern struct {
	term          string
	caseSensitive bool
	re            *regexp.Regexp // nil when case-sensitive
}

// Compile compiles term. An empty term returns ErrEmptyTerm.
func Compile(term string, caseSensitive bool) (Pattern, error) {
	if term == "" {
		return Pattern{}, ErrEmptyTerm
	}
	p := Pattern{term: term, caseSensitive: caseSensitive}
	if !caseSensitive {
		p.re = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term))
	}
	return p, nil
}

// Term returns the term the pattern was compiled from.
func (p Pattern) Term() string {
	return p.term
}

// CaseSensitive reports whether the pattern matches case-sensitively.
func (p Pattern) CaseSensitive() bool {
	return p.caseSensitive
}

// IsZero reports whether p was never compiled.
func (p Pattern) IsZero() bool {
	return p.term == ""
}

// FindAll returns the byte offsets [start, end) of every non-overlapping
// match in text, in order.
func (p Pattern) FindAll(text string) [][2]int {
	if p.IsZero() {
		return nil
	}

	var out [][2]int
	for from := 0; from < len(text); {
		start, end := p.next(text[from:])
		if start < 0 {
			break
		}
		start += from
		end += from
		if end <= start {
			// Never loop on an empty match.
			from = start + 1
			continue
		}
		out = append(out, [2]int{start, end})
		from = end
	}
	return out
}

func (p Pattern) next(text string) (int, int) {
	if p.re == nil {
		i := strings.Index(text, p.term)
		if i < 0 {
			return -1, -1
		}
		return i, i + len(p.term)
	}
	loc := p.re.FindStringIndex(text)
	if loc == nil {
		return -1, -1
	}
	return loc[0], loc[1]
}

// Matches reports whether s is exactly one occurrence of the term.
func (p Pattern) Matches(s string) bool {
	if p.IsZero() {
		return false
	}
	if p.re == nil {
		return s == p.term
	}
	loc := p.re.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s)
}
