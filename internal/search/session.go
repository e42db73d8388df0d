package search

import (
	"errors"
	"fmt"

	"github.com/dshills/treefind/internal/engine/cursor"
	"github.com/dshills/treefind/internal/engine/doc"
	"github.com/dshills/treefind/internal/engine/inputrule"
	"github.com/dshills/treefind/internal/engine/marks"
	"github.com/dshills/treefind/internal/engine/pos"
	"github.com/dshills/treefind/internal/engine/tracking"
	"github.com/dshills/treefind/internal/logging"
)

// Host is the editor a Session drives.
type Host interface {
	// Root returns the document tree.
	Root() *doc.Node
	// Selection returns the current selection.
	Selection() cursor.Selection
	// SetSelection moves the selection.
	SetSelection(sel cursor.Selection) error
	// TextIn returns the text covered by r.
	TextIn(r pos.Range) (string, error)
	// ApplyEdit replaces the text in r and returns the applied change.
	// Change listeners have run by the time it returns.
	ApplyEdit(r pos.Range, text string) (tracking.Change, error)

	AddMark(class string, r pos.Range) string
	RemoveMark(id string) bool
	Marks(class string) []marks.Mark

	// OnChange registers a change listener and returns its cancel function.
	OnChange(fn func(tracking.Change)) (cancel func())

	AddInputRule(rule inputrule.Rule) (inputrule.ID, error)
	RemoveInputRule(id inputrule.ID) bool
}

// Grouper is implemented by hosts that can merge edits into one undo step.
type Grouper interface {
	BeginGroup(name string)
	EndGroup()
}

// State is the lifecycle state of a Session.
type State uint8

const (
	// StateIdle means there is no active term.
	StateIdle State = iota
	// StateSearching means a term is active.
	StateSearching
	// StateDetached means the session was detached and is unusable.
	StateDetached
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSearching:
		return "searching"
	case StateDetached:
		return "detached"
	default:
		return "unknown"
	}
}

// Status indicates whether an operation had an effect.
type Status uint8

const (
	// StatusOK indicates the operation took effect.
	StatusOK Status = iota
	// StatusNoOp indicates the operation had no effect; Result.Reason says why.
	StatusNoOp
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	default:
		return "unknown"
	}
}

// Result is the outcome of a Session operation.
type Result struct {
	Status Status
	// Reason explains a no-op. Replace also sets ErrSelectionMismatch when
	// it moved to a match instead of editing.
	Reason error
	// Matches is the scan the operation worked from.
	Matches MatchSet
	// Selection is the range selected by the operation.
	Selection pos.Range
	// Outcome tells whether the selection wrapped.
	Outcome Outcome
	// Replaced counts the edits made.
	Replaced int
}

// OK reports whether the operation took effect.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

func noop(reason error) Result {
	return Result{Status: StatusNoOp, Reason: reason}
}

// Term is the active search term.
type Term struct {
	Text        string
	Replacement string
	Pattern     Pattern
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// Session is a find/replace session bound to one host.
// It is not safe for concurrent use.
type Session struct {
	host    Host
	cfg     Config
	tracker *Tracker
	term    *Term
	state   State
	log     *logging.Logger
}

// New creates a session over host.
func New(host Host, cfg Config, opts ...Option) *Session {
	s := &Session{
		host: host,
		cfg:  cfg.normalize(),
		log:  logging.Null(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.tracker = NewTracker(host, s.cfg.FindClass, s.log)
	return s
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Config returns the current configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// Term returns the active term.
func (s *Session) Term() (Term, bool) {
	if s.term == nil {
		return Term{}, false
	}
	return *s.term, true
}

// Highlights returns the ranges of the live highlights in document order.
func (s *Session) Highlights() []pos.Range {
	return s.tracker.Ranges()
}

// Matches rescans the document for the active term.
func (s *Session) Matches() (MatchSet, error) {
	if s.state == StateDetached {
		return nil, ErrDetached
	}
	if s.term == nil {
		return nil, nil
	}
	return Scan(s.host.Root(), s.term.Pattern), nil
}

// Find makes term the active term, selects the first match at or after
// the selection and, with HighlightAll on, highlights every match.
// A term that does not occur stays active.
func (s *Session) Find(term string) (Result, error) {
	if s.state == StateDetached {
		return Result{}, ErrDetached
	}
	s.clear()

	p, err := Compile(term, s.cfg.CaseSensitive)
	if err != nil {
		return noop(err), nil
	}
	s.activate(&Term{Text: term, Pattern: p})
	s.log.Debug("find %q", term)

	return s.locate(SelectNext)
}

// FindNext selects the next match after the selection, wrapping.
func (s *Session) FindNext() (Result, error) {
	if s.state == StateDetached {
		return Result{}, ErrDetached
	}
	if s.term == nil {
		return noop(ErrNoActiveSearch), nil
	}
	return s.locate(SelectNext)
}

// FindPrev selects the previous match before the selection, wrapping.
func (s *Session) FindPrev() (Result, error) {
	if s.state == StateDetached {
		return Result{}, ErrDetached
	}
	if s.term == nil {
		return noop(ErrNoActiveSearch), nil
	}
	return s.locate(SelectPrev)
}

// ClearFind removes every highlight and the typing rule and drops the term.
// It is idempotent.
func (s *Session) ClearFind() (Result, error) {
	if s.state == StateDetached {
		return Result{}, ErrDetached
	}
	s.clear()
	return Result{Status: StatusOK}, nil
}

// Replace replaces the selection with replacement if the selection holds
// term. Otherwise it selects the next match and reports
// ErrSelectionMismatch without editing.
func (s *Session) Replace(term, replacement string) (Result, error) {
	if s.state == StateDetached {
		return Result{}, ErrDetached
	}
	p, err := Compile(term, s.cfg.CaseSensitive)
	if err != nil {
		return noop(err), nil
	}
	s.retarget(&Term{Text: term, Replacement: replacement, Pattern: p})

	// Matches never span text nodes, so neither does a selection holding one.
	sel := s.host.Selection().Range()
	var selected string
	if sel.SingleNode() {
		if selected, err = s.host.TextIn(sel); err != nil {
			return Result{}, fmt.Errorf("replace: %w", err)
		}
	}

	if !sel.SingleNode() || !p.Matches(selected) {
		s.log.Debug("replace %q: %v, moving to next match", term, ErrSelectionMismatch)
		res, err := s.locate(SelectNext)
		if err != nil || !res.OK() {
			return res, err
		}
		res.Reason = ErrSelectionMismatch
		return res, nil
	}

	c, err := s.host.ApplyEdit(sel, s.replacementFor(selected, replacement))
	if err != nil {
		return Result{}, fmt.Errorf("replace: %w", err)
	}
	s.log.Debug("replaced %q at %s", term, sel)

	res := Result{Status: StatusOK, Replaced: 1, Selection: c.NewRange()}
	if s.cfg.FindNextAfterReplace {
		next, err := s.locate(SelectNext)
		if err != nil {
			return res, err
		}
		res.Matches = next.Matches
		if next.OK() {
			res.Selection = next.Selection
			res.Outcome = next.Outcome
		}
		return res, nil
	}

	res.Matches = s.refresh()
	return res, nil
}

// ReplaceAll replaces every occurrence of term front to back and returns
// the number of edits in Result.Replaced. Pending matches are carried
// through each edit before the next one is made.
func (s *Session) ReplaceAll(term, replacement string) (Result, error) {
	if s.state == StateDetached {
		return Result{}, ErrDetached
	}
	p, err := Compile(term, s.cfg.CaseSensitive)
	if err != nil {
		return noop(err), nil
	}
	s.retarget(&Term{Text: term, Replacement: replacement, Pattern: p})

	pending := Scan(s.host.Root(), p)
	if len(pending) == 0 {
		s.refresh()
		return noop(ErrNoMatchFound), nil
	}

	if g, ok := s.host.(Grouper); ok {
		g.BeginGroup("replace all")
		defer g.EndGroup()
	}

	applied := tracking.NewMapping()
	var replaced, skipped int
	for _, orig := range pending {
		r, ok := applied.MapRange(orig)
		if !ok {
			skipped++
			continue
		}
		if err := s.host.SetSelection(cursor.FromRange(r)); err != nil {
			return Result{Status: StatusOK, Replaced: replaced}, fmt.Errorf("replace all: %w", err)
		}
		matched, err := s.host.TextIn(r)
		if err != nil {
			return Result{Status: StatusOK, Replaced: replaced}, fmt.Errorf("replace all: %w", err)
		}
		c, err := s.host.ApplyEdit(r, s.replacementFor(matched, replacement))
		if err != nil {
			return Result{Status: StatusOK, Replaced: replaced}, fmt.Errorf("replace all: %w", err)
		}
		applied.Append(c)
		replaced++
	}
	s.log.Debug("replace all %q: %d replaced, %d skipped", term, replaced, skipped)

	return Result{
		Status:    StatusOK,
		Matches:   s.refresh(),
		Selection: s.host.Selection().Range(),
		Outcome:   OutcomeFound,
		Replaced:  replaced,
	}, nil
}

// SetHighlightAll turns highlighting on or off. Turning it on highlights
// the active term's matches.
func (s *Session) SetHighlightAll(on bool) (Result, error) {
	if s.state == StateDetached {
		return Result{}, ErrDetached
	}
	s.cfg.HighlightAll = on
	return Result{Status: StatusOK, Matches: s.refresh()}, nil
}

// Configure replaces the configuration. Highlights of a previous class are
// removed, and the active term is recompiled under the new case policy.
func (s *Session) Configure(cfg Config) error {
	if s.state == StateDetached {
		return ErrDetached
	}
	cfg = cfg.normalize()

	if cfg.FindClass != s.cfg.FindClass {
		s.tracker.ClearAll()
		s.tracker.SetClass(cfg.FindClass)
	}
	s.cfg = cfg

	if s.term != nil && s.term.Pattern.CaseSensitive() != cfg.CaseSensitive {
		p, err := Compile(s.term.Text, cfg.CaseSensitive)
		if err != nil {
			return err
		}
		s.term.Pattern = p
	}
	s.refresh()
	return nil
}

// Detach removes every highlight and the typing rule. The session reports
// ErrDetached afterwards. Detaching twice is a no-op.
func (s *Session) Detach() error {
	if s.state == StateDetached {
		return nil
	}
	s.clear()
	s.state = StateDetached
	s.log.Debug("detached")
	return nil
}

// activate makes t the active term.
func (s *Session) activate(t *Term) {
	s.term = t
	s.state = StateSearching
}

// retarget activates t, dropping highlights of a different previous term.
func (s *Session) retarget(t *Term) {
	if s.term != nil && s.term.Text != t.Text {
		s.clear()
	}
	s.activate(t)
}

// clear drops highlights, the rule and the term.
func (s *Session) clear() {
	s.tracker.ClearAll()
	s.tracker.Uninstall()
	s.term = nil
	if s.state != StateDetached {
		s.state = StateIdle
	}
}

// refresh rescans the active term and rebuilds highlights and the typing
// rule to match the configuration. It returns the scan.
func (s *Session) refresh() MatchSet {
	s.tracker.ClearAll()
	if s.term == nil {
		s.tracker.Uninstall()
		return nil
	}
	ms := Scan(s.host.Root(), s.term.Pattern)
	if !s.cfg.HighlightAll {
		s.tracker.Uninstall()
		return ms
	}
	s.tracker.MarkAll(ms)
	if err := s.tracker.Install(s.term.Pattern); err != nil {
		s.log.Warn("install typing rule: %v", err)
	}
	return ms
}

// locate rescans, refreshes highlights and moves the selection with nav.
func (s *Session) locate(nav func(pos.Range, MatchSet) (pos.Range, Outcome)) (Result, error) {
	ms := s.refresh()
	r, outcome := nav(s.host.Selection().Range(), ms)
	if outcome == OutcomeNone {
		res := noop(ErrNoMatchFound)
		return res, nil
	}
	if err := s.host.SetSelection(cursor.FromRange(r)); err != nil {
		return Result{}, fmt.Errorf("select match: %w", err)
	}
	return Result{
		Status:    StatusOK,
		Matches:   ms,
		Selection: r,
		Outcome:   outcome,
	}, nil
}

// replacementFor applies case preservation when it is enabled.
func (s *Session) replacementFor(matched, replacement string) string {
	if s.cfg.PreserveCase && !s.cfg.CaseSensitive {
		return preserveCase(matched, replacement)
	}
	return replacement
}

// IsNoOp reports whether err is one of the no-op reasons a Result carries.
func IsNoOp(err error) bool {
	return errors.Is(err, ErrNoActiveSearch) ||
		errors.Is(err, ErrNoMatchFound) ||
		errors.Is(err, ErrSelectionMismatch) ||
		errors.Is(err, ErrEmptyTerm)
}
