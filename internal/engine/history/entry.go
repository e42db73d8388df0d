package history

import (
	"time"

	"github.com/dshills/treefind/internal/engine/cursor"
	"github.com/dshills/treefind/internal/engine/tracking"
)

// Applier applies changes and selections on behalf of the history.
// Changes applied through an Applier must not be recorded again.
type Applier interface {
	ApplyChange(c tracking.Change) (tracking.Change, error)
	RestoreSelection(sel cursor.Selection)
}

// Entry is one undo unit.
type Entry struct {
	Name            string
	Changes         []tracking.Change
	SelectionBefore cursor.Selection
	SelectionAfter  cursor.Selection
	Timestamp       time.Time
}

// undo applies the inverse of every change, newest first.
func (e *Entry) undo(a Applier) error {
	for i := len(e.Changes) - 1; i >= 0; i-- {
		if _, err := a.ApplyChange(e.Changes[i].Invert()); err != nil {
			return err
		}
	}
	a.RestoreSelection(e.SelectionBefore)
	return nil
}

// redo re-applies every change, oldest first.
func (e *Entry) redo(a Applier) error {
	for _, c := range e.Changes {
		if _, err := a.ApplyChange(c); err != nil {
			return err
		}
	}
	a.RestoreSelection(e.SelectionAfter)
	return nil
}

// OperationInfo provides information about an undo/redo entry.
type OperationInfo struct {
	Description string
	Changes     int
	Timestamp   time.Time
}

func (e *Entry) info() OperationInfo {
	return OperationInfo{
		Description: e.Name,
		Changes:     len(e.Changes),
		Timestamp:   e.Timestamp,
	}
}
