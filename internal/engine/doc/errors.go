package doc

import "errors"

// Errors returned by document operations.
var (
	// ErrInvalidPath indicates a path does not address an existing node.
	ErrInvalidPath = errors.New("invalid path")

	// ErrNotTextNode indicates a text operation on a container node.
	ErrNotTextNode = errors.New("not a text node")

	// ErrOffsetOutOfRange indicates an offset outside the node's text.
	ErrOffsetOutOfRange = errors.New("offset out of range")
)
