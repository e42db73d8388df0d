package plugin

import "errors"

// Errors returned by the plugin runtime.
var (
	// ErrStateClosed indicates the Lua state has been closed.
	ErrStateClosed = errors.New("lua state closed")
)
