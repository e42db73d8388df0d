package doc

import "strings"

// ParagraphSeparator separates paragraphs in plain-text documents.
const ParagraphSeparator = "\n\n"

// FromText splits plain text into paragraphs on blank lines and returns a
// document with one text node per paragraph. Rendering the result with
// PlainText(ParagraphSeparator) reproduces normalized input.
func FromText(s string) *Node {
	root := NewContainer("doc")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimRight(s, "\n")
	if s == "" {
		root.Append(NewText("paragraph", ""))
		return root
	}
	for _, para := range strings.Split(s, ParagraphSeparator) {
		para = strings.Trim(para, "\n")
		if para == "" {
			continue
		}
		root.Append(NewText("paragraph", para))
	}
	return root
}
