// Package tracking records document edits and maps positions through them.
//
// Every edit applied to a document is described by a [Change]: the path of
// the edited text node, the replaced span in the old text, the removed text
// and the inserted text. A Change is the positional delta that lets stale
// positions and ranges be carried forward to the edited document.
//
// # Mapping Rules
//
// Edits never change the shape of the tree, so only ranges inside the edited
// node move:
//
//   - A range ending at or before the edit start is unchanged.
//   - A range starting at or after the edit end shifts by the edit's delta.
//   - A range overlapping the edit collapses to the edit start and is
//     reported as invalidated.
//
// # Usage
//
// Map a pending match list through a sequence of edits:
//
//	var m tracking.Mapping
//	m.Append(change)
//	r, ok := m.MapRange(staleRange)
//	if !ok {
//	    // the edit consumed the range
//	}
//
// [Tracker] assigns revision ids to changes and answers "what changed since
// revision X" queries.
package tracking
