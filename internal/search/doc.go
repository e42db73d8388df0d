// Package search implements find and replace over a document tree.
//
// A Session owns the active search term and drives a Host: it scans the
// document for matches, moves the host selection between them, edits
// through the host, and keeps volatile highlights on every match while the
// user types.
//
// # Matching
//
// Scan walks the tree in document order and runs the pattern against each
// text node independently. Matches never span two text nodes and never
// overlap. Case-sensitive patterns match the literal term byte for byte;
// case-insensitive patterns compile the quoted term with the (?i) flag.
//
// # Replace All
//
// ReplaceAll scans once and then edits front to back. After every edit the
// remaining matches are carried through all changes made so far with a
// tracking.Mapping, so each later edit lands on the text it was found at.
// A pending match the edits have consumed is skipped.
//
// # Highlights
//
// With HighlightAll on, each match gets a host mark of the configured class.
// A highlight watches host changes and removes its mark on the first edit
// that touches its text. An input rule adds a highlight whenever the user
// finishes typing the term.
package search
