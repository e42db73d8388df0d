// Package history provides undo/redo functionality for the editor host.
//
// Every edit the host applies is recorded as an [Entry] holding the
// tracking.Change values it produced, together with the selection before and
// after the edit. Undo applies the inverse changes in reverse order; redo
// re-applies the original changes in order. Both go through an [Applier] so
// the history never touches the document directly.
//
// # Grouping
//
// Multiple edits can be grouped as a single undo unit:
//
//	history.BeginGroup("replace all")
//	// ... multiple edits ...
//	history.EndGroup()
//
// Now all edits undo together with one step.
package history
