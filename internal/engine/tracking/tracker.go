package tracking

// DefaultMaxChanges is the default maximum number of changes to track.
const DefaultMaxChanges = 10000

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithMaxChanges sets the maximum number of changes to track.
func WithMaxChanges(maxChanges int) TrackerOption {
	return func(t *Tracker) {
		if maxChanges > 0 {
			t.maxChanges = maxChanges
		}
	}
}

// Tracker assigns revision ids to changes and keeps a bounded history of
// them in a ring buffer.
type Tracker struct {
	// Recent changes in a ring buffer
	changes    []Change
	head       int // Index of oldest entry
	count      int // Number of entries
	maxChanges int

	revision RevisionID
}

// NewTracker creates a new change tracker.
func NewTracker(opts ...TrackerOption) *Tracker {
	t := &Tracker{maxChanges: DefaultMaxChanges}
	for _, opt := range opts {
		opt(t)
	}
	t.changes = make([]Change, t.maxChanges)
	return t
}

// Revision returns the current revision. It starts at 0 and increases by
// one per recorded change.
func (t *Tracker) Revision() RevisionID {
	return t.revision
}

// Record stamps the change with the next revision id and stores it.
func (t *Tracker) Record(c Change) Change {
	t.revision++
	c.Revision = t.revision

	idx := (t.head + t.count) % t.maxChanges
	if t.count < t.maxChanges {
		t.count++
	} else {
		// Ring buffer is full, advance head
		t.head = (t.head + 1) % t.maxChanges
	}
	t.changes[idx] = c
	return c
}

// ChangesSince returns the retained changes made after rev, oldest first.
// The boolean is false if some of those changes were already evicted.
func (t *Tracker) ChangesSince(rev RevisionID) ([]Change, bool) {
	var result []Change
	complete := rev >= t.revision
	for i := 0; i < t.count; i++ {
		c := t.changes[(t.head+i)%t.maxChanges]
		if c.Revision == rev+1 {
			complete = true
		}
		if c.Revision > rev {
			result = append(result, c)
		}
	}
	return result, complete
}

// MappingSince returns a Mapping over the changes made after rev.
func (t *Tracker) MappingSince(rev RevisionID) (*Mapping, bool) {
	changes, complete := t.ChangesSince(rev)
	return NewMapping(changes...), complete
}

// Len returns the number of retained changes.
func (t *Tracker) Len() int {
	return t.count
}
