// Package app wires configuration, logging, the document engine, the search
// session and the optional script runtime, preview and config watcher into
// one command-line run.
package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the preview should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrNoInput indicates no document path was given.
	ErrNoInput = errors.New("no input file")

	// ErrLossyWrite indicates write-back was requested for a document that
	// cannot be written without losing its markup.
	ErrLossyWrite = errors.New("cannot write back markdown document")

	// ErrNoOperation indicates nothing was asked of the run.
	ErrNoOperation = errors.New("no find term or script given")
)

// InitError reports a component that failed to start.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("init %s: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// FileError reports a failed file operation.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
