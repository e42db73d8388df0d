package cursor

import (
	"fmt"

	"github.com/dshills/treefind/internal/engine/pos"
)

// Selection represents a range of selected text.
// Anchor is where the selection started; Head is the current cursor position.
// When Anchor == Head, this represents a cursor with no selection.
// Selection is an immutable value type.
type Selection struct {
	Anchor pos.Position // Where selection started
	Head   pos.Position // Current cursor position (where typing occurs)
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head pos.Position) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// NewCursorSelection creates a selection representing just a cursor (no extent).
func NewCursorSelection(p pos.Position) Selection {
	return Selection{Anchor: p, Head: p}
}

// FromRange creates a forward selection covering the given range.
func FromRange(r pos.Range) Selection {
	return Selection{Anchor: r.From, Head: r.To}
}

// IsEmpty returns true if the selection has no extent (just a cursor).
func (s Selection) IsEmpty() bool {
	return s.Anchor.Equal(s.Head)
}

// From returns the lower bound of the selection.
func (s Selection) From() pos.Position {
	return pos.Min(s.Anchor, s.Head)
}

// To returns the upper bound of the selection.
func (s Selection) To() pos.Position {
	return pos.Max(s.Anchor, s.Head)
}

// Range returns the selection as a range (always From <= To).
func (s Selection) Range() pos.Range {
	return pos.Range{From: s.From(), To: s.To()}
}

// Cursor returns the head position (where typing would occur).
func (s Selection) Cursor() pos.Position {
	return s.Head
}

// IsForward returns true if the selection extends forward (head >= anchor).
func (s Selection) IsForward() bool {
	return !s.Head.Before(s.Anchor)
}

// Collapse collapses the selection to a cursor at the head.
func (s Selection) Collapse() Selection {
	return Selection{Anchor: s.Head, Head: s.Head}
}

// CollapseToEnd collapses the selection to its end position.
func (s Selection) CollapseToEnd() Selection {
	end := s.To()
	return Selection{Anchor: end, Head: end}
}

// Equals returns true if two selections have the same anchor and head.
func (s Selection) Equals(other Selection) bool {
	return s.Anchor.Equal(other.Anchor) && s.Head.Equal(other.Head)
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor(%s)", s.Head)
	}
	dir := "→"
	if !s.IsForward() {
		dir = "←"
	}
	return fmt.Sprintf("Selection(%s%s%s)", s.Anchor, dir, s.Head)
}
