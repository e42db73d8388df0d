package search

import "errors"

// Reasons reported in Result.Reason and errors returned by Session methods.
var (
	// ErrNoActiveSearch indicates FindNext or FindPrev was called with no term.
	ErrNoActiveSearch = errors.New("no active search")

	// ErrNoMatchFound indicates the term does not occur in the document.
	ErrNoMatchFound = errors.New("no match found")

	// ErrSelectionMismatch indicates Replace found a selection that does not
	// hold the term and jumped to the next match instead of editing.
	ErrSelectionMismatch = errors.New("selection does not match term")

	// ErrEmptyTerm indicates an empty search term.
	ErrEmptyTerm = errors.New("empty search term")

	// ErrDetached indicates the session was detached from its host.
	ErrDetached = errors.New("search session detached")
)
