package engine

import (
	"fmt"

	"github.com/dshills/treefind/internal/engine/cursor"
	"github.com/dshills/treefind/internal/engine/doc"
	"github.com/dshills/treefind/internal/engine/history"
	"github.com/dshills/treefind/internal/engine/inputrule"
	"github.com/dshills/treefind/internal/engine/marks"
	"github.com/dshills/treefind/internal/engine/pos"
	"github.com/dshills/treefind/internal/engine/tracking"
)

// Re-export commonly used types for convenience.
type (
	// Position is a path-plus-offset address in the document.
	Position = pos.Position

	// Range is a span between two positions.
	Range = pos.Range

	// Selection is the anchor/head selection.
	Selection = cursor.Selection

	// Change is an applied edit.
	Change = tracking.Change

	// RevisionID identifies a document revision.
	RevisionID = tracking.RevisionID

	// Mark is a tagged range annotation.
	Mark = marks.Mark
)

type listener struct {
	id uint64
	fn func(tracking.Change)
}

// Engine is the main facade for the reference host.
// It combines the document, the selection, change tracking, undo/redo,
// marks and input rules into one API.
type Engine struct {
	// Core components
	root    *doc.Node
	sel     cursor.Selection
	tracker *tracking.Tracker
	history *history.History
	marks   *marks.Manager
	rules   *inputrule.Registry

	listeners    []listener
	nextListener uint64

	// Configuration
	maxUndoEntries int
	maxChanges     int
	readOnly       bool

	// Initialization
	initSelection *cursor.Selection
}

// New creates an engine over root. A nil root yields an empty document
// with one paragraph.
func New(root *doc.Node, opts ...Option) *Engine {
	if root == nil {
		root = doc.FromText("")
	}
	e := &Engine{
		root:           root,
		marks:          marks.NewManager(),
		rules:          inputrule.NewRegistry(),
		maxUndoEntries: history.DefaultMaxEntries,
		maxChanges:     tracking.DefaultMaxChanges,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.history = history.NewHistory(e.maxUndoEntries)
	e.tracker = tracking.NewTracker(tracking.WithMaxChanges(e.maxChanges))

	if paths := root.TextNodes(); len(paths) > 0 {
		e.sel = cursor.NewCursorSelection(pos.New(paths[0], 0))
	}
	if e.initSelection != nil && e.validSelection(*e.initSelection) == nil {
		e.sel = *e.initSelection
	}
	e.initSelection = nil
	return e
}

// ============================================================================
// Document
// ============================================================================

// Root returns the document root.
func (e *Engine) Root() *doc.Node {
	return e.root
}

// Text renders the document as plain text with paragraphs separated by
// doc.ParagraphSeparator.
func (e *Engine) Text() string {
	return e.root.PlainText(doc.ParagraphSeparator)
}

// TextIn returns the text covered by r.
func (e *Engine) TextIn(r pos.Range) (string, error) {
	text, err := e.root.Slice(r)
	if err != nil {
		return "", fmt.Errorf("text in %s: %w", r, err)
	}
	return text, nil
}

// IsReadOnly returns true if the engine rejects edits.
func (e *Engine) IsReadOnly() bool {
	return e.readOnly
}

// ============================================================================
// Selection
// ============================================================================

// Selection returns the current selection.
func (e *Engine) Selection() cursor.Selection {
	return e.sel
}

// SetSelection moves the selection. Both ends must address existing
// offsets in text nodes.
func (e *Engine) SetSelection(sel cursor.Selection) error {
	if err := e.validSelection(sel); err != nil {
		return err
	}
	e.sel = sel
	return nil
}

func (e *Engine) validSelection(sel cursor.Selection) error {
	if err := e.root.CheckPosition(sel.Anchor); err != nil {
		return fmt.Errorf("selection anchor: %w", err)
	}
	if err := e.root.CheckPosition(sel.Head); err != nil {
		return fmt.Errorf("selection head: %w", err)
	}
	return nil
}

// ============================================================================
// Editing
// ============================================================================

// ApplyEdit replaces the text in r with text and returns the resulting
// change. The edit is recorded for undo, carried through the selection
// and marks, and delivered to change listeners before ApplyEdit returns.
func (e *Engine) ApplyEdit(r pos.Range, text string) (tracking.Change, error) {
	if e.readOnly {
		return tracking.Change{}, ErrReadOnly
	}
	if !r.SingleNode() {
		return tracking.Change{}, fmt.Errorf("edit %s: %w", r, ErrCrossNodeEdit)
	}
	node, err := e.root.TextNode(r.From.Path)
	if err != nil {
		return tracking.Change{}, fmt.Errorf("edit %s: %w", r, err)
	}

	before := e.sel
	old, err := node.Replace(r.From.Offset, r.To.Offset, text)
	if err != nil {
		return tracking.Change{}, fmt.Errorf("edit %s: %w", r, err)
	}

	c := e.commit(tracking.NewChange(r.From.Path, r.From.Offset, old, text))
	e.history.Record(c.Type().String(), c, before, e.sel)
	e.notify(c)
	return c, nil
}

// TypeText replaces the selection with text as if it were typed, then
// runs the input rules against the text before the cursor.
func (e *Engine) TypeText(text string) (tracking.Change, error) {
	c, err := e.ApplyEdit(e.sel.Range(), text)
	if err != nil {
		return c, err
	}
	if text == "" {
		return c, nil
	}

	head := e.sel.Head
	node, err := e.root.TextNode(head.Path)
	if err != nil {
		return c, nil
	}
	e.rules.Check(node.Text()[:head.Offset], head)
	return c, nil
}

// ApplyChange replays a recorded change without adding it to the undo
// history. It implements history.Applier.
func (e *Engine) ApplyChange(c tracking.Change) (tracking.Change, error) {
	node, err := e.root.TextNode(c.Path)
	if err != nil {
		return tracking.Change{}, fmt.Errorf("replay %s: %w", c, err)
	}
	if c.Start < 0 || c.End < c.Start || c.End > node.Len() || node.Text()[c.Start:c.End] != c.OldText {
		return tracking.Change{}, fmt.Errorf("replay %s: %w", c, ErrChangeMismatch)
	}
	if _, err := node.Replace(c.Start, c.End, c.NewText); err != nil {
		return tracking.Change{}, fmt.Errorf("replay %s: %w", c, err)
	}

	applied := e.commit(tracking.NewChange(c.Path, c.Start, c.OldText, c.NewText))
	e.notify(applied)
	return applied, nil
}

// RestoreSelection sets the selection after undo or redo.
// It implements history.Applier.
func (e *Engine) RestoreSelection(sel cursor.Selection) {
	if e.validSelection(sel) == nil {
		e.sel = sel
	}
}

// commit stamps a change that is already in the document and carries the
// selection and marks through it.
func (e *Engine) commit(c tracking.Change) tracking.Change {
	c = e.tracker.Record(c)
	e.sel = cursor.TransformSelection(e.sel, c)
	e.marks.Apply(c)
	return c
}

// ============================================================================
// Change Listeners
// ============================================================================

// OnChange registers fn to be called after every applied change, including
// undo and redo. The returned function unregisters it.
func (e *Engine) OnChange(fn func(tracking.Change)) (cancel func()) {
	e.nextListener++
	id := e.nextListener
	e.listeners = append(e.listeners, listener{id: id, fn: fn})
	return func() {
		for i := range e.listeners {
			if e.listeners[i].id == id {
				e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount returns the number of registered change listeners.
func (e *Engine) ListenerCount() int {
	return len(e.listeners)
}

func (e *Engine) notify(c tracking.Change) {
	// Listeners may unregister themselves while being notified.
	ls := make([]listener, len(e.listeners))
	copy(ls, e.listeners)
	for _, l := range ls {
		l.fn(c)
	}
}

// ============================================================================
// Marks
// ============================================================================

// AddMark annotates r with class and returns the mark id. The mark follows
// edits around it and collapses if its text is replaced.
func (e *Engine) AddMark(class string, r pos.Range) string {
	return e.marks.Add(class, r, false)
}

// AddVolatileMark annotates r with class. The mark is destroyed by the
// first edit that touches it.
func (e *Engine) AddVolatileMark(class string, r pos.Range) string {
	return e.marks.Add(class, r, true)
}

// RemoveMark removes a mark by id.
func (e *Engine) RemoveMark(id string) bool {
	return e.marks.Remove(id)
}

// Marks returns the marks of class in document order. An empty class
// returns every mark.
func (e *Engine) Marks(class string) []marks.Mark {
	return e.marks.ByClass(class)
}

// ============================================================================
// Input Rules
// ============================================================================

// AddInputRule registers an input rule.
func (e *Engine) AddInputRule(rule inputrule.Rule) (inputrule.ID, error) {
	return e.rules.Add(rule)
}

// RemoveInputRule unregisters an input rule.
func (e *Engine) RemoveInputRule(id inputrule.ID) bool {
	return e.rules.Remove(id)
}

// InputRuleCount returns the number of registered input rules.
func (e *Engine) InputRuleCount() int {
	return e.rules.Len()
}

// ============================================================================
// Undo/Redo
// ============================================================================

// Undo undoes the last edit or group.
func (e *Engine) Undo() error {
	return e.history.Undo(e)
}

// Redo redoes the last undone edit or group.
func (e *Engine) Redo() error {
	return e.history.Redo(e)
}

// CanUndo returns true if there are edits to undo.
func (e *Engine) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo returns true if there are edits to redo.
func (e *Engine) CanRedo() bool {
	return e.history.CanRedo()
}

// UndoInfo describes the entry Undo would revert.
func (e *Engine) UndoInfo() (history.OperationInfo, bool) {
	return e.history.PeekUndo()
}

// RedoInfo describes the entry Redo would reapply.
func (e *Engine) RedoInfo() (history.OperationInfo, bool) {
	return e.history.PeekRedo()
}

// BeginGroup starts grouping edits into one undo unit.
func (e *Engine) BeginGroup(name string) {
	e.history.BeginGroup(name)
}

// EndGroup closes the current undo group.
func (e *Engine) EndGroup() {
	e.history.EndGroup()
}

// ============================================================================
// Change Tracking
// ============================================================================

// Revision returns the current document revision.
func (e *Engine) Revision() tracking.RevisionID {
	return e.tracker.Revision()
}

// ChangesSince returns the retained changes made after rev.
func (e *Engine) ChangesSince(rev tracking.RevisionID) ([]tracking.Change, bool) {
	return e.tracker.ChangesSince(rev)
}
