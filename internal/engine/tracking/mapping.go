package tracking

import "github.com/dshills/treefind/internal/engine/pos"

// MapPosition carries p through the change.
//
// Positions before the edit are unchanged, positions at or after its end
// shift by the delta, and positions strictly inside the replaced span move
// to the edit start. An insertion exactly at p moves p past the inserted
// text when stickEnd is true and leaves it in place otherwise.
func MapPosition(p pos.Position, c Change, stickEnd bool) pos.Position {
	if !p.Path.Equal(c.Path) {
		return p
	}

	// Pure insertion at exactly p
	if c.Start == c.End && p.Offset == c.Start {
		if stickEnd {
			return p.WithOffset(p.Offset + len(c.NewText))
		}
		return p
	}

	switch {
	case p.Offset <= c.Start:
		return p
	case p.Offset >= c.End:
		return p.WithOffset(p.Offset + c.Delta())
	default:
		return p.WithOffset(c.Start)
	}
}

// MapRange carries r through the change.
//
// The boolean is false when the change consumed part of the range; the
// returned range is then collapsed to the edit start.
func MapRange(r pos.Range, c Change) (pos.Range, bool) {
	if !r.From.Path.Equal(c.Path) && !r.To.Path.Equal(c.Path) {
		return r, !c.Touches(r)
	}

	// Range ends at or before the edit: unchanged
	if r.SingleNode() && r.To.Offset <= c.Start && !(r.IsEmpty() && c.Start == c.End && r.From.Offset == c.Start) {
		return r, true
	}

	// Range starts at or after the edit end: shift by delta
	if r.SingleNode() && r.From.Offset >= c.End {
		return r.Shift(c.Delta()), true
	}

	if !c.Touches(r) {
		// Cross-node range with an endpoint in the edited node.
		return pos.Range{
			From: MapPosition(r.From, c, false),
			To:   MapPosition(r.To, c, true),
		}, true
	}

	at := pos.New(c.Path, c.Start)
	return pos.Collapsed(at), false
}

// MapRanges maps every range through the change. Invalidated ranges are
// returned collapsed and flagged in the parallel valid slice.
func MapRanges(ranges []pos.Range, c Change) (mapped []pos.Range, valid []bool) {
	mapped = make([]pos.Range, len(ranges))
	valid = make([]bool, len(ranges))
	for i, r := range ranges {
		mapped[i], valid[i] = MapRange(r, c)
	}
	return mapped, valid
}

// Mapping is an ordered sequence of changes. Mapping a range through it
// applies each change in turn.
type Mapping struct {
	changes []Change
}

// NewMapping creates a mapping from changes in application order.
func NewMapping(changes ...Change) *Mapping {
	return &Mapping{changes: append([]Change(nil), changes...)}
}

// Append adds a change after all existing ones.
func (m *Mapping) Append(c Change) {
	m.changes = append(m.changes, c)
}

// Len returns the number of changes.
func (m *Mapping) Len() int {
	return len(m.changes)
}

// Changes returns the changes in application order.
func (m *Mapping) Changes() []Change {
	return append([]Change(nil), m.changes...)
}

// TotalDelta returns the summed byte delta of all changes.
func (m *Mapping) TotalDelta() int {
	var delta int
	for _, c := range m.changes {
		delta += c.Delta()
	}
	return delta
}

// MapRange carries r through every change in order.
// Once invalidated, a range stays invalidated.
func (m *Mapping) MapRange(r pos.Range) (pos.Range, bool) {
	ok := true
	for _, c := range m.changes {
		var still bool
		r, still = MapRange(r, c)
		ok = ok && still
	}
	return r, ok
}

// MapPosition carries p through every change in order.
func (m *Mapping) MapPosition(p pos.Position, stickEnd bool) pos.Position {
	for _, c := range m.changes {
		p = MapPosition(p, c, stickEnd)
	}
	return p
}
