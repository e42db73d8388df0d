package doc

import (
	"fmt"
	"strings"

	"github.com/dshills/treefind/internal/engine/pos"
)

// Kind distinguishes container nodes from text-bearing nodes.
type Kind uint8

const (
	// KindContainer nodes hold child nodes.
	KindContainer Kind = iota

	// KindText nodes hold a run of text.
	KindText
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Node is a node in the document tree.
type Node struct {
	kind     Kind
	typ      string
	text     string
	children []*Node
}

// NewContainer creates a container node with the given children.
func NewContainer(typ string, children ...*Node) *Node {
	return &Node{kind: KindContainer, typ: typ, children: children}
}

// NewText creates a text-bearing node.
func NewText(typ, text string) *Node {
	return &Node{kind: KindText, typ: typ, text: text}
}

// Kind returns the node kind.
func (n *Node) Kind() Kind { return n.kind }

// IsText returns true for text-bearing nodes.
func (n *Node) IsText() bool { return n.kind == KindText }

// Type returns the node's type name, e.g. "paragraph" or "heading".
func (n *Node) Type() string { return n.typ }

// Text returns the text of a text node. Containers return "".
func (n *Node) Text() string { return n.text }

// Len returns the byte length of a text node's text.
func (n *Node) Len() int { return len(n.text) }

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// Child returns the i-th child, or nil if i is out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Append adds children to a container node.
func (n *Node) Append(children ...*Node) {
	n.children = append(n.children, children...)
}

// Resolve returns the node addressed by path.
func (n *Node) Resolve(path pos.Path) (*Node, error) {
	cur := n
	for depth, idx := range path {
		next := cur.Child(idx)
		if next == nil {
			return nil, fmt.Errorf("%w: %s (no child %d at depth %d)", ErrInvalidPath, path, idx, depth)
		}
		cur = next
	}
	return cur, nil
}

// TextNode returns the text node addressed by path.
func (n *Node) TextNode(path pos.Path) (*Node, error) {
	node, err := n.Resolve(path)
	if err != nil {
		return nil, err
	}
	if !node.IsText() {
		return nil, fmt.Errorf("%w: %s is a %s", ErrNotTextNode, path, node.typ)
	}
	return node, nil
}

// CheckPosition validates that p addresses an existing offset in a text node.
func (n *Node) CheckPosition(p pos.Position) error {
	node, err := n.TextNode(p.Path)
	if err != nil {
		return err
	}
	if p.Offset < 0 || p.Offset > len(node.text) {
		return fmt.Errorf("%w: %s (len %d)", ErrOffsetOutOfRange, p, len(node.text))
	}
	return nil
}

// Replace replaces text[start:end] of a text node and returns the removed text.
func (n *Node) Replace(start, end int, text string) (string, error) {
	if !n.IsText() {
		return "", ErrNotTextNode
	}
	if start < 0 || end < start || end > len(n.text) {
		return "", fmt.Errorf("%w: [%d:%d) (len %d)", ErrOffsetOutOfRange, start, end, len(n.text))
	}
	old := n.text[start:end]
	n.text = n.text[:start] + text + n.text[end:]
	return old, nil
}

// Walk visits n and its descendants in document order.
// If fn returns false the node's children are skipped.
func (n *Node) Walk(fn func(path pos.Path, node *Node) bool) {
	n.walk(nil, fn)
}

func (n *Node) walk(path pos.Path, fn func(path pos.Path, node *Node) bool) {
	if !fn(path, n) {
		return
	}
	for i, child := range n.children {
		child.walk(path.Child(i), fn)
	}
}

// TextNodes returns the paths of all text nodes in document order.
func (n *Node) TextNodes() []pos.Path {
	var paths []pos.Path
	n.Walk(func(path pos.Path, node *Node) bool {
		if node.IsText() {
			paths = append(paths, path.Clone())
		}
		return true
	})
	return paths
}

// Slice returns the text covered by r. Text from consecutive text nodes is
// concatenated without a separator.
func (n *Node) Slice(r pos.Range) (string, error) {
	if err := n.CheckPosition(r.From); err != nil {
		return "", err
	}
	if err := n.CheckPosition(r.To); err != nil {
		return "", err
	}
	if r.To.Before(r.From) {
		return "", fmt.Errorf("%w: reversed range %s", ErrOffsetOutOfRange, r)
	}

	if r.SingleNode() {
		node, _ := n.TextNode(r.From.Path)
		return node.text[r.From.Offset:r.To.Offset], nil
	}

	var b strings.Builder
	for _, path := range n.TextNodes() {
		if path.Compare(r.From.Path) < 0 {
			continue
		}
		if path.Compare(r.To.Path) > 0 {
			break
		}
		node, _ := n.TextNode(path)
		start, end := 0, len(node.text)
		if path.Equal(r.From.Path) {
			start = r.From.Offset
		}
		if path.Equal(r.To.Path) {
			end = r.To.Offset
		}
		b.WriteString(node.text[start:end])
	}
	return b.String(), nil
}

// PlainText renders the text of every text node, joined by sep.
func (n *Node) PlainText(sep string) string {
	var parts []string
	n.Walk(func(_ pos.Path, node *Node) bool {
		if node.IsText() {
			parts = append(parts, node.text)
		}
		return true
	})
	return strings.Join(parts, sep)
}

// Clone returns a deep copy of the subtree rooted at n.
func (n *Node) Clone() *Node {
	c := &Node{kind: n.kind, typ: n.typ, text: n.text}
	if len(n.children) > 0 {
		c.children = make([]*Node, len(n.children))
		for i, child := range n.children {
			c.children[i] = child.Clone()
		}
	}
	return c
}

// String returns a compact debug representation of the subtree.
func (n *Node) String() string {
	if n.IsText() {
		return fmt.Sprintf("%s(%q)", n.typ, n.text)
	}
	parts := make([]string, len(n.children))
	for i, child := range n.children {
		parts[i] = child.String()
	}
	return fmt.Sprintf("%s[%s]", n.typ, strings.Join(parts, ", "))
}
