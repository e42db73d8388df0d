// Package cursor provides the selection model used by the editor host.
//
// Selection Model:
//
// Selections use an anchor/head model where:
//   - Anchor: The position where the selection started
//   - Head: The current cursor position (where typing would occur)
//
// When Anchor == Head, the selection represents just a cursor with no
// selected text. [Selection.From] and [Selection.To] return the ordered
// endpoints regardless of direction.
//
// Basic usage:
//
//	// Create a cursor at the start of the first paragraph
//	sel := cursor.NewCursorSelection(pos.New(pos.Path{0}, 0))
//
//	// Select a match
//	sel = cursor.FromRange(match)
//
//	// Carry the selection through an edit
//	sel = cursor.TransformSelection(sel, change)
package cursor
