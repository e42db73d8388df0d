package search

import (
	"sort"

	"github.com/dshills/treefind/internal/engine/inputrule"
	"github.com/dshills/treefind/internal/engine/pos"
	"github.com/dshills/treefind/internal/engine/tracking"
	"github.com/dshills/treefind/internal/logging"
)

// extendRuleName names the input rule that highlights typed terms.
const extendRuleName = "search.extend"

// Highlight is a volatile host mark over one match. It is destroyed by the
// first change that touches its text and carried through every other change.
type Highlight struct {
	tracker *Tracker
	markID  string
	rng     pos.Range
	cancel  func()
}

// Range returns the current range of the highlight.
func (h *Highlight) Range() pos.Range {
	return h.rng
}

// MarkID returns the host mark id of the highlight.
func (h *Highlight) MarkID() string {
	return h.markID
}

func (h *Highlight) onChange(c tracking.Change) {
	if c.Touches(h.rng) {
		h.tracker.host.RemoveMark(h.markID)
		h.tracker.release(h)
		return
	}
	h.rng, _ = tracking.MapRange(h.rng, c)
}

// Tracker owns the highlights of a session and its typing rule.
type Tracker struct {
	host       Host
	class      string
	highlights map[*Highlight]struct{}
	rule       inputrule.ID
	hasRule    bool
	log        *logging.Logger
}

// NewTracker creates a tracker that marks ranges with class.
func NewTracker(host Host, class string, log *logging.Logger) *Tracker {
	if log == nil {
		log = logging.Null()
	}
	return &Tracker{
		host:       host,
		class:      class,
		highlights: make(map[*Highlight]struct{}),
		log:        log,
	}
}

// Class returns the mark class.
func (t *Tracker) Class() string {
	return t.class
}

// SetClass changes the mark class. Existing marks keep their old class;
// callers clear them first.
func (t *Tracker) SetClass(class string) {
	t.class = class
}

// MarkAll adds one highlight per match.
func (t *Tracker) MarkAll(ms MatchSet) {
	for _, r := range ms {
		t.add(r)
	}
	t.log.Debug("marked %d matches", len(ms))
}

func (t *Tracker) add(r pos.Range) *Highlight {
	h := &Highlight{
		tracker: t,
		markID:  t.host.AddMark(t.class, r),
		rng:     r,
	}
	h.cancel = t.host.OnChange(h.onChange)
	t.highlights[h] = struct{}{}
	return h
}

// overlapsLive reports whether r shares text with a live highlight.
// Matches do not overlap, so such a range is not a new match.
func (t *Tracker) overlapsLive(r pos.Range) bool {
	for h := range t.highlights {
		if h.rng.Overlaps(r) {
			return true
		}
	}
	return false
}

func (t *Tracker) release(h *Highlight) {
	if _, ok := t.highlights[h]; !ok {
		return
	}
	delete(t.highlights, h)
	if h.cancel != nil {
		h.cancel()
	}
}

// ClearAll removes every host mark of the tracker's class and unsubscribes
// every live highlight.
func (t *Tracker) ClearAll() {
	for _, m := range t.host.Marks(t.class) {
		t.host.RemoveMark(m.ID)
	}
	for h := range t.highlights {
		t.release(h)
	}
}

// Install registers the typing rule for p, replacing any previous rule.
func (t *Tracker) Install(p Pattern) error {
	t.Uninstall()
	rule := inputrule.Literal(extendRuleName, p.Term(), p.CaseSensitive(), func(m inputrule.Match) {
		if t.overlapsLive(m.Range) {
			return
		}
		t.add(m.Range)
		t.log.Debug("typed highlight at %s", m.Range)
	})
	id, err := t.host.AddInputRule(rule)
	if err != nil {
		return err
	}
	t.rule = id
	t.hasRule = true
	return nil
}

// Uninstall removes the typing rule. It is a no-op without one.
func (t *Tracker) Uninstall() {
	if !t.hasRule {
		return
	}
	t.host.RemoveInputRule(t.rule)
	t.hasRule = false
}

// Installed reports whether the typing rule is registered.
func (t *Tracker) Installed() bool {
	return t.hasRule
}

// Len returns the number of live highlights.
func (t *Tracker) Len() int {
	return len(t.highlights)
}

// Ranges returns the ranges of the live highlights in document order.
func (t *Tracker) Ranges() []pos.Range {
	out := make([]pos.Range, 0, len(t.highlights))
	for h := range t.highlights {
		out = append(out, h.rng)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Compare(out[j]) < 0
	})
	return out
}
