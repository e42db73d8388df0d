// Package engine provides the reference editor host for treefind.
//
// The engine package serves as the main facade, combining the document tree,
// the selection, change tracking, undo/redo, marks and input rules into the
// single host object the search session drives.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - pos: path-plus-offset positions and ranges
//   - doc: the document tree of container and text nodes
//   - tracking: edit records and range remapping
//   - cursor: the selection value and its transformation through edits
//   - history: grouped undo/redo
//   - marks: tagged, optionally volatile range annotations
//   - inputrule: patterns fired by typed text
//
// # Threading
//
// An Engine is not safe for concurrent use. All calls, including change
// listeners and input-rule handlers, run synchronously on the caller's
// goroutine.
//
// # Basic Usage
//
//	e := engine.New(doc.FromText("cat sat cat"))
//
//	// Select the first word and type over it
//	e.SetSelection(cursor.FromRange(pos.Span(pos.Path{0}, 0, 3)))
//	e.TypeText("dog") // "dog sat cat"
//
//	// Undo the edit
//	e.Undo() // "cat sat cat"
//
// Group multiple edits into a single undo unit:
//
//	e.BeginGroup("replace all")
//	e.ApplyEdit(pos.Span(pos.Path{0}, 0, 3), "dog")
//	e.ApplyEdit(pos.Span(pos.Path{0}, 8, 11), "dog")
//	e.EndGroup()
//
//	e.Undo() // Undoes both edits at once
//
// # Error Handling
//
// The package defines several errors:
//
//   - ErrCrossNodeEdit: an edit range spans more than one text node
//   - ErrChangeMismatch: a replayed change does not match the document
//   - ErrReadOnly: write operation on a read-only engine
//   - ErrNothingToUndo: undo stack is empty
//   - ErrNothingToRedo: redo stack is empty
//
// Position errors come from the doc package and are wrapped with %w.
package engine
