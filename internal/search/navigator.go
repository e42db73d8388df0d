package search

import "github.com/dshills/treefind/internal/engine/pos"

// Outcome describes how a match was selected.
type Outcome uint8

const (
	// OutcomeNone means there was nothing to select.
	OutcomeNone Outcome = iota
	// OutcomeFound means a match was found in the search direction.
	OutcomeFound
	// OutcomeWrapped means the search wrapped around the document.
	OutcomeWrapped
)

// String returns a string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeFound:
		return "found"
	case OutcomeWrapped:
		return "wrapped"
	default:
		return "unknown"
	}
}

// SelectNext returns the first match starting at or after the end of sel,
// wrapping to the first match.
func SelectNext(sel pos.Range, ms MatchSet) (pos.Range, Outcome) {
	if len(ms) == 0 {
		return pos.Range{}, OutcomeNone
	}
	for _, m := range ms {
		if !m.From.Before(sel.To) {
			return m, OutcomeFound
		}
	}
	return ms[0], OutcomeWrapped
}

// SelectPrev returns the last match ending at or before the start of sel,
// wrapping to the last match.
func SelectPrev(sel pos.Range, ms MatchSet) (pos.Range, Outcome) {
	if len(ms) == 0 {
		return pos.Range{}, OutcomeNone
	}
	for i := len(ms) - 1; i >= 0; i-- {
		if !ms[i].To.After(sel.From) {
			return ms[i], OutcomeFound
		}
	}
	return ms[len(ms)-1], OutcomeWrapped
}
