package doc

import (
	"strings"

	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// markdownTypes maps goldmark block kinds to document node type names.
// Kinds not listed fall back to their lowercased kind name.
var markdownTypes = map[gast.NodeKind]string{
	gast.KindDocument:        "doc",
	gast.KindParagraph:       "paragraph",
	gast.KindTextBlock:       "paragraph",
	gast.KindHeading:         "heading",
	gast.KindCodeBlock:       "code_block",
	gast.KindFencedCodeBlock: "code_block",
	gast.KindHTMLBlock:       "html_block",
	gast.KindBlockquote:      "blockquote",
	gast.KindList:            "list",
	gast.KindListItem:        "list_item",
	gast.KindThematicBreak:   "horizontal_rule",
}

// newMarkdownParser returns the goldmark parser used for document import.
// It enables the block extensions whose cells carry searchable text.
func newMarkdownParser() parser.Parser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
			extension.TaskList,
			extension.DefinitionList,
		),
	)
	return md.Parser()
}

// FromMarkdown parses Markdown source into a document tree.
//
// Block nodes whose content is inline (paragraphs, headings, table cells) and
// literal blocks (code, HTML) become text nodes; every other block becomes a
// container. Inline formatting is flattened into the text of its block, so
// "bl**o**ck" is a single text node containing "block".
func FromMarkdown(src []byte) *Node {
	root := newMarkdownParser().Parse(text.NewReader(src))
	return convertBlock(root, src)
}

func convertBlock(n gast.Node, src []byte) *Node {
	typ := markdownType(n)

	switch n.Kind() {
	case gast.KindCodeBlock, gast.KindFencedCodeBlock, gast.KindHTMLBlock:
		return NewText(typ, strings.TrimRight(blockLines(n, src), "\n"))
	case gast.KindParagraph, gast.KindTextBlock, gast.KindHeading:
		return NewText(typ, inlineText(n, src))
	}

	if first := n.FirstChild(); first != nil && first.Type() == gast.TypeInline {
		return NewText(typ, inlineText(n, src))
	}

	node := NewContainer(typ)
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		node.Append(convertBlock(c, src))
	}
	return node
}

func markdownType(n gast.Node) string {
	if typ, ok := markdownTypes[n.Kind()]; ok {
		return typ
	}
	return strings.ToLower(n.Kind().String())
}

// blockLines returns the raw source lines of a literal block.
func blockLines(n gast.Node, src []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
	return b.String()
}

// inlineText flattens the inline children of n into plain text.
func inlineText(n gast.Node, src []byte) string {
	var b strings.Builder
	writeInline(&b, n, src)
	return b.String()
}

func writeInline(b *strings.Builder, n gast.Node, src []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *gast.Text:
			b.Write(t.Segment.Value(src))
			switch {
			case t.HardLineBreak():
				b.WriteByte('\n')
			case t.SoftLineBreak():
				b.WriteByte(' ')
			}
		case *gast.String:
			b.Write(t.Value)
		case *gast.AutoLink:
			b.Write(t.Label(src))
		case *gast.RawHTML:
			for i := 0; i < t.Segments.Len(); i++ {
				seg := t.Segments.At(i)
				b.Write(seg.Value(src))
			}
		default:
			writeInline(b, c, src)
		}
	}
}
