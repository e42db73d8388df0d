package tracking

import (
	"fmt"

	"github.com/dshills/treefind/internal/engine/pos"
)

// ChangeType categorizes the type of a change.
type ChangeType uint8

const (
	// ChangeInsert indicates text was inserted (OldText is empty).
	ChangeInsert ChangeType = iota

	// ChangeDelete indicates text was deleted (NewText is empty).
	ChangeDelete

	// ChangeReplace indicates text was replaced (both OldText and NewText present).
	ChangeReplace
)

// String returns a human-readable representation of the change type.
func (ct ChangeType) String() string {
	switch ct {
	case ChangeInsert:
		return "insert"
	case ChangeDelete:
		return "delete"
	case ChangeReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// RevisionID identifies the document revision produced by a change.
type RevisionID uint64

// Change describes a single edit to one text node.
type Change struct {
	// Path addresses the edited text node.
	Path pos.Path

	// Start and End bound the replaced span in the OLD text: [Start, End).
	Start int
	End   int

	// OldText is the text that was removed (empty for inserts).
	OldText string

	// NewText is the text that was added (empty for deletes).
	NewText string

	// Revision is the revision after this change was applied.
	Revision RevisionID
}

// NewChange creates a change replacing old[start:end] with newText.
func NewChange(path pos.Path, start int, oldText, newText string) Change {
	return Change{
		Path:    path.Clone(),
		Start:   start,
		End:     start + len(oldText),
		OldText: oldText,
		NewText: newText,
	}
}

// Type returns the kind of edit.
func (c Change) Type() ChangeType {
	switch {
	case c.OldText == "":
		return ChangeInsert
	case c.NewText == "":
		return ChangeDelete
	default:
		return ChangeReplace
	}
}

// Delta returns the byte delta of this change.
// Positive means the node grew, negative means it shrank.
func (c Change) Delta() int {
	return len(c.NewText) - (c.End - c.Start)
}

// Range returns the affected range in the old text.
func (c Change) Range() pos.Range {
	return pos.Span(c.Path, c.Start, c.End)
}

// NewRange returns the affected range in the new text.
func (c Change) NewRange() pos.Range {
	return pos.Span(c.Path, c.Start, c.Start+len(c.NewText))
}

// Invert returns a change that undoes this change.
func (c Change) Invert() Change {
	return Change{
		Path:     c.Path.Clone(),
		Start:    c.Start,
		End:      c.Start + len(c.NewText),
		OldText:  c.NewText,
		NewText:  c.OldText,
		Revision: c.Revision, // Note: This doesn't create a new revision
	}
}

// Touches returns true if r overlaps the replaced span, or if r is empty and
// lies inside it. Adjacent ranges are not touched.
func (c Change) Touches(r pos.Range) bool {
	if !r.From.Path.Equal(c.Path) && !r.To.Path.Equal(c.Path) {
		if r.From.Path.Compare(c.Path) < 0 && r.To.Path.Compare(c.Path) > 0 {
			return true
		}
		return false
	}
	edit := c.Range()
	if edit.IsEmpty() {
		// A pure insertion touches ranges it lands strictly inside.
		return r.From.Before(edit.From) && edit.From.Before(r.To)
	}
	if r.IsEmpty() {
		return edit.Contains(r.From) && !r.From.Equal(edit.From)
	}
	return r.Overlaps(edit)
}

// String returns a human-readable representation of the change.
func (c Change) String() string {
	switch c.Type() {
	case ChangeInsert:
		return fmt.Sprintf("Insert %q at %s:%d", abbreviate(c.NewText, 20), c.Path, c.Start)
	case ChangeDelete:
		return fmt.Sprintf("Delete %q at %v", abbreviate(c.OldText, 20), c.Range())
	default:
		return fmt.Sprintf("Replace %q with %q at %v",
			abbreviate(c.OldText, 10), abbreviate(c.NewText, 10), c.Range())
	}
}

func abbreviate(s string, max int) string {
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}
