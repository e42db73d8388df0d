package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// caseShape is the letter case pattern of a matched text.
type caseShape uint8

const (
	shapeMixed caseShape = iota
	shapeLower
	shapeUpper
	shapeTitle
)

func shapeOf(s string) caseShape {
	var letters, upper int
	firstUpper := false
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		if unicode.IsUpper(r) {
			if letters == 0 {
				firstUpper = true
			}
			upper++
		}
		letters++
	}
	switch {
	case letters == 0 || upper == 0:
		return shapeLower
	case upper == letters && letters > 1:
		return shapeUpper
	case firstUpper && s == cases.Title(language.Und).String(s):
		return shapeTitle
	default:
		return shapeMixed
	}
}

// preserveCase adapts replacement to the case shape of matched.
// Mixed-case matches leave the replacement unchanged.
func preserveCase(matched, replacement string) string {
	if replacement == "" || strings.IndexFunc(replacement, unicode.IsLetter) < 0 {
		return replacement
	}
	switch shapeOf(matched) {
	case shapeUpper:
		return cases.Upper(language.Und).String(replacement)
	case shapeTitle:
		return cases.Title(language.Und).String(replacement)
	case shapeLower:
		if strings.IndexFunc(matched, unicode.IsLetter) < 0 {
			return replacement
		}
		return cases.Lower(language.Und).String(replacement)
	default:
		return replacement
	}
}
