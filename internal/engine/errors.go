package engine

import (
	"errors"

	"github.com/dshills/treefind/internal/engine/history"
)

// Errors returned by engine operations.
var (
	// ErrCrossNodeEdit indicates an edit range spans more than one text node.
	ErrCrossNodeEdit = errors.New("edit spans multiple text nodes")

	// ErrChangeMismatch indicates a replayed change does not match the
	// text currently in the document.
	ErrChangeMismatch = errors.New("change does not match document")

	// ErrReadOnly indicates a write operation on a read-only engine.
	ErrReadOnly = errors.New("engine is read-only")

	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = history.ErrNothingToUndo

	// ErrNothingToRedo indicates the redo stack is empty.
	ErrNothingToRedo = history.ErrNothingToRedo
)
