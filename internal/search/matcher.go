package search

import (
	"github.com/dshills/treefind/internal/engine/doc"
	"github.com/dshills/treefind/internal/engine/pos"
)

// MatchSet is the ordered result of one scan. It is only valid for the
// document revision it was scanned from.
type MatchSet []pos.Range

// Len returns the number of matches.
func (ms MatchSet) Len() int {
	return len(ms)
}

// IndexOf returns the index of the match equal to r, or -1.
func (ms MatchSet) IndexOf(r pos.Range) int {
	for i, m := range ms {
		if m.Equal(r) {
			return i
		}
	}
	return -1
}

// Scan returns every occurrence of p in the tree under root, in document
// order. An uncompiled pattern yields no matches.
func Scan(root *doc.Node, p Pattern) MatchSet {
	if root == nil || p.IsZero() {
		return nil
	}
	var ms MatchSet
	root.Walk(func(path pos.Path, node *doc.Node) bool {
		if !node.IsText() {
			return true
		}
		for _, loc := range p.FindAll(node.Text()) {
			ms = append(ms, pos.Span(path, loc[0], loc[1]))
		}
		return true
	})
	return ms
}
