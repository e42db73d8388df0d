// Package doc provides the tree-shaped document the search engine operates on.
//
// A document is a tree of [Node] values. Container nodes hold children and no
// text of their own; text nodes (paragraphs, headings, code blocks, table
// cells) hold a run of text and no children. Positions inside the document are
// expressed with the pos package: the path of child indices to a text node and
// a byte offset into its text.
//
// Documents can be built directly, split from plain text with [FromText], or
// parsed from Markdown with [FromMarkdown]:
//
//	root := doc.NewContainer("doc",
//	    doc.NewText("paragraph", "cat sat cat"),
//	)
//	n, _ := root.TextNode(pos.Path{0})
//	n.Text() // "cat sat cat"
//
// Structural edits are out of scope: once built, only the text of text nodes
// changes, so paths stay valid for the lifetime of a document.
package doc
