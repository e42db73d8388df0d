package pos

import (
	"fmt"
	"strconv"
	"strings"
)

// Path addresses a node by the child index taken at each level, starting at
// the document root. The empty path addresses the root itself.
type Path []int

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
// A path sorts before every path it is a proper prefix of.
func (p Path) Compare(other Path) int {
	n := len(p)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if p[i] < other[i] {
			return -1
		}
		if p[i] > other[i] {
			return 1
		}
	}
	switch {
	case len(p) < len(other):
		return -1
	case len(p) > len(other):
		return 1
	}
	return 0
}

// Equal returns true if both paths address the same node.
func (p Path) Equal(other Path) bool {
	return p.Compare(other) == 0
}

// Child returns a new path addressing the i-th child of p.
// The receiver is never aliased by the result.
func (p Path) Child(i int) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = i
	return out
}

// Clone returns a copy of the path.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// String returns the path as dot-separated indices, e.g. "0.2.1".
func (p Path) String() string {
	if len(p) == 0 {
		return "root"
	}
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ".")
}

// Position is a location inside a text-bearing node.
// Offset is measured in bytes from the start of the node's text.
type Position struct {
	Path   Path // Path to the text node
	Offset int  // 0-indexed byte offset within the node text
}

// New creates a position. The path is copied.
func New(path Path, offset int) Position {
	return Position{Path: path.Clone(), Offset: offset}
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("%s:%d", p.Path.String(), p.Offset)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	if c := p.Path.Compare(other.Path); c != 0 {
		return c
	}
	if p.Offset < other.Offset {
		return -1
	}
	if p.Offset > other.Offset {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// Equal returns true if both positions address the same location.
func (p Position) Equal(other Position) bool {
	return p.Compare(other) == 0
}

// SameNode returns true if both positions are inside the same text node.
func (p Position) SameNode(other Position) bool {
	return p.Path.Equal(other.Path)
}

// WithOffset returns a position in the same node at the given offset.
func (p Position) WithOffset(offset int) Position {
	return Position{Path: p.Path.Clone(), Offset: offset}
}

// Min returns the earlier of two positions.
func Min(a, b Position) Position {
	if b.Before(a) {
		return b
	}
	return a
}

// Max returns the later of two positions.
func Max(a, b Position) Position {
	if b.After(a) {
		return b
	}
	return a
}
