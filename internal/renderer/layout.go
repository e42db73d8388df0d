package renderer

import (
	"strings"

	"github.com/dshills/treefind/internal/engine/doc"
	"github.com/dshills/treefind/internal/engine/pos"
)

// Line is one screen line of a text node.
type Line struct {
	Path  pos.Path // text node
	Start int      // byte offset of the line in the node text
	Text  string   // line text without the newline
}

// Contains reports whether p falls on this line.
func (l Line) Contains(p pos.Position) bool {
	return l.Path.Equal(p.Path) && p.Offset >= l.Start && p.Offset <= l.Start+len(l.Text)
}

// Layout splits the text nodes of root into lines in document order.
func Layout(root *doc.Node) []Line {
	var lines []Line
	for _, path := range root.TextNodes() {
		node, err := root.TextNode(path)
		if err != nil {
			continue
		}
		text := node.Text()
		start := 0
		for {
			i := strings.IndexByte(text[start:], '\n')
			if i < 0 {
				lines = append(lines, Line{Path: path, Start: start, Text: text[start:]})
				break
			}
			lines = append(lines, Line{Path: path, Start: start, Text: text[start : start+i]})
			start += i + 1
		}
	}
	return lines
}

// LineOf returns the index of the line holding p, or -1.
func LineOf(lines []Line, p pos.Position) int {
	for i, l := range lines {
		if l.Contains(p) {
			return i
		}
	}
	return -1
}
