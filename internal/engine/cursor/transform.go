package cursor

import "github.com/dshills/treefind/internal/engine/tracking"

// TransformSelection updates a selection after an edit.
//
// Transformation rules:
//   - If the edit replaced exactly the selected text: collapse to the end of
//     the new text (the result of typing over a selection)
//   - Otherwise anchor and head are mapped independently; an insertion at the
//     head moves the head past the inserted text, an insertion at the anchor
//     leaves the anchor in place
func TransformSelection(sel Selection, c tracking.Change) Selection {
	if sel.Range().Equal(c.Range()) {
		end := c.NewRange().To
		return NewCursorSelection(end)
	}
	return Selection{
		Anchor: tracking.MapPosition(sel.Anchor, c, false),
		Head:   tracking.MapPosition(sel.Head, c, true),
	}
}
