package engine

import "github.com/dshills/treefind/internal/engine/cursor"

// Option configures an Engine.
type Option func(*Engine)

// WithMaxUndoEntries sets the maximum number of undo entries.
func WithMaxUndoEntries(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxUndoEntries = n
		}
	}
}

// WithMaxChanges sets the maximum number of changes the tracker retains.
func WithMaxChanges(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxChanges = n
		}
	}
}

// WithReadOnly makes the engine reject edits.
func WithReadOnly() Option {
	return func(e *Engine) {
		e.readOnly = true
	}
}

// WithSelection sets the initial selection. An invalid selection is
// ignored and the cursor stays at the start of the document.
func WithSelection(sel cursor.Selection) Option {
	return func(e *Engine) {
		e.initSelection = &sel
	}
}
