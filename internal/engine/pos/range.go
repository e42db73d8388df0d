package pos

import "fmt"

// Range represents a span between two positions.
// From is inclusive, To is exclusive: [From, To).
type Range struct {
	From Position // Inclusive start position
	To   Position // Exclusive end position
}

// NewRange creates a range, swapping the endpoints if they are reversed.
func NewRange(from, to Position) Range {
	if to.Before(from) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Span creates a range covering [start, end) inside the node at path.
func Span(path Path, start, end int) Range {
	return NewRange(New(path, start), New(path, end))
}

// Collapsed creates an empty range at p.
func Collapsed(p Position) Range {
	return Range{From: p, To: p}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	if r.SingleNode() {
		return fmt.Sprintf("[%s:%d-%d)", r.From.Path.String(), r.From.Offset, r.To.Offset)
	}
	return fmt.Sprintf("[%s, %s)", r.From.String(), r.To.String())
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.From.Equal(r.To)
}

// IsValid returns true if From <= To.
func (r Range) IsValid() bool {
	return !r.To.Before(r.From)
}

// SingleNode returns true if both endpoints are in the same text node.
func (r Range) SingleNode() bool {
	return r.From.SameNode(r.To)
}

// Len returns the byte length of a single-node range, or -1 if the range
// spans more than one node.
func (r Range) Len() int {
	if !r.SingleNode() {
		return -1
	}
	return r.To.Offset - r.From.Offset
}

// Contains returns true if p is within [From, To).
func (r Range) Contains(p Position) bool {
	return !p.Before(r.From) && p.Before(r.To)
}

// ContainsRange returns true if other lies entirely within r.
func (r Range) ContainsRange(other Range) bool {
	return !other.From.Before(r.From) && !other.To.After(r.To)
}

// Overlaps returns true if the two ranges share at least one position.
func (r Range) Overlaps(other Range) bool {
	return r.From.Before(other.To) && other.From.Before(r.To)
}

// Compare orders ranges by From, then by To.
func (r Range) Compare(other Range) int {
	if c := r.From.Compare(other.From); c != 0 {
		return c
	}
	return r.To.Compare(other.To)
}

// Equal returns true if both ranges have the same endpoints.
func (r Range) Equal(other Range) bool {
	return r.Compare(other) == 0
}

// Shift returns a single-node range moved by delta bytes.
func (r Range) Shift(delta int) Range {
	return Range{
		From: r.From.WithOffset(r.From.Offset + delta),
		To:   r.To.WithOffset(r.To.Offset + delta),
	}
}
