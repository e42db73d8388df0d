package history

import (
	"errors"
	"testing"

	"github.com/dshills/treefind/internal/engine/cursor"
	"github.com/dshills/treefind/internal/engine/doc"
	"github.com/dshills/treefind/internal/engine/pos"
	"github.com/dshills/treefind/internal/engine/tracking"
)

var para = pos.Path{0}

// docApplier applies changes to a one-paragraph document.
type docApplier struct {
	root *doc.Node
	sel  cursor.Selection
}

func newDocApplier(text string) *docApplier {
	return &docApplier{root: doc.NewContainer("doc", doc.NewText("paragraph", text))}
}

func (a *docApplier) ApplyChange(c tracking.Change) (tracking.Change, error) {
	n, err := a.root.TextNode(c.Path)
	if err != nil {
		return tracking.Change{}, err
	}
	if _, err := n.Replace(c.Start, c.End, c.NewText); err != nil {
		return tracking.Change{}, err
	}
	return c, nil
}

func (a *docApplier) RestoreSelection(sel cursor.Selection) { a.sel = sel }

func (a *docApplier) text() string { return a.root.Child(0).Text() }

// edit applies and records a change the way the engine does.
func (a *docApplier) edit(t *testing.T, h *History, start int, old, new string) {
	t.Helper()
	before := a.sel
	c, err := a.ApplyChange(tracking.NewChange(para, start, old, new))
	if err != nil {
		t.Fatalf("ApplyChange error = %v", err)
	}
	a.sel = cursor.NewCursorSelection(pos.New(para, start+len(new)))
	h.Record("edit", c, before, a.sel)
}

func TestUndoRedo(t *testing.T) {
	h := NewHistory(10)
	a := newDocApplier("cat sat cat")

	a.edit(t, h, 0, "cat", "dog")
	if a.text() != "dog sat cat" {
		t.Fatalf("text = %q", a.text())
	}

	if err := h.Undo(a); err != nil {
		t.Fatalf("Undo error = %v", err)
	}
	if a.text() != "cat sat cat" {
		t.Errorf("after undo text = %q", a.text())
	}
	if !h.CanRedo() {
		t.Error("expected redo to be available")
	}

	if err := h.Redo(a); err != nil {
		t.Fatalf("Redo error = %v", err)
	}
	if a.text() != "dog sat cat" {
		t.Errorf("after redo text = %q", a.text())
	}
	if got := a.sel.Head.Offset; got != 3 {
		t.Errorf("selection after redo at %d, want 3", got)
	}
}

func TestUndoEmpty(t *testing.T) {
	h := NewHistory(0)
	a := newDocApplier("x")

	if err := h.Undo(a); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("expected ErrNothingToUndo, got %v", err)
	}
	if err := h.Redo(a); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("expected ErrNothingToRedo, got %v", err)
	}
}

func TestGroupUndoesTogether(t *testing.T) {
	h := NewHistory(10)
	a := newDocApplier("cat sat cat")

	h.BeginGroup("replace all")
	a.edit(t, h, 0, "cat", "dog")
	h.BeginGroup("nested")
	a.edit(t, h, 8, "cat", "dog")
	h.EndGroup()

	if a.text() != "dog sat dog" {
		t.Fatalf("text = %q", a.text())
	}
	info, ok := h.PeekUndo()
	if !ok || info.Description != "replace all" || info.Changes != 2 {
		t.Errorf("PeekUndo() = %+v, %v", info, ok)
	}

	if err := h.Undo(a); err != nil {
		t.Fatalf("Undo error = %v", err)
	}
	if a.text() != "cat sat cat" {
		t.Errorf("after undo text = %q", a.text())
	}
	if h.CanUndo() {
		t.Error("group should undo as one entry")
	}
	info, ok = h.PeekRedo()
	if !ok || info.Description != "replace all" {
		t.Errorf("PeekRedo() = %+v, %v", info, ok)
	}
}

func TestEmptyGroupDiscarded(t *testing.T) {
	h := NewHistory(10)
	h.BeginGroup("nothing")
	h.EndGroup()

	if h.CanUndo() {
		t.Error("empty group should not be recorded")
	}
}

func TestMaxEntries(t *testing.T) {
	h := NewHistory(2)
	a := newDocApplier("abc")

	a.edit(t, h, 0, "", "1")
	a.edit(t, h, 0, "", "2")
	a.edit(t, h, 0, "", "3")

	undone := 0
	for h.Undo(a) == nil {
		undone++
	}
	if undone != 2 {
		t.Errorf("undid %d entries, want 2", undone)
	}
	if a.text() != "1abc" {
		t.Errorf("text = %q, want oldest edit kept", a.text())
	}
	if _, ok := h.PeekUndo(); ok {
		t.Error("PeekUndo() should report nothing left")
	}
}
