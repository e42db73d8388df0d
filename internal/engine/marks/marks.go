// Package marks provides the host's range-highlighting subsystem: tagged
// visual annotations over document ranges.
//
// Marks are grouped by class (for example "find") so a feature can enumerate
// and clear its own marks without touching anyone else's. A mark's range is
// carried through every edit the host applies; volatile marks are destroyed
// by the first edit that touches the text they cover.
package marks

import (
	"sort"

	"github.com/google/uuid"

	"github.com/dshills/treefind/internal/engine/pos"
	"github.com/dshills/treefind/internal/engine/tracking"
)

// Mark is a tagged annotation over a range.
type Mark struct {
	ID       string
	Class    string
	Range    pos.Range
	Volatile bool
}

// Manager manages all marks of a document.
type Manager struct {
	// marks contains all registered marks, keyed by ID.
	marks map[string]*Mark
}

// NewManager creates a new mark manager.
func NewManager() *Manager {
	return &Manager{
		marks: make(map[string]*Mark),
	}
}

// Add creates a mark and returns its id.
func (m *Manager) Add(class string, r pos.Range, volatile bool) string {
	id := uuid.NewString()
	m.marks[id] = &Mark{
		ID:       id,
		Class:    class,
		Range:    r,
		Volatile: volatile,
	}
	return id
}

// Remove removes a mark by ID.
func (m *Manager) Remove(id string) bool {
	if _, ok := m.marks[id]; !ok {
		return false
	}
	delete(m.marks, id)
	return true
}

// Get returns a mark by ID.
func (m *Manager) Get(id string) (Mark, bool) {
	mark, ok := m.marks[id]
	if !ok {
		return Mark{}, false
	}
	return *mark, true
}

// ByClass returns the marks of a class in document order.
// An empty class returns every mark.
func (m *Manager) ByClass(class string) []Mark {
	var result []Mark
	for _, mark := range m.marks {
		if class == "" || mark.Class == class {
			result = append(result, *mark)
		}
	}
	sortMarks(result)
	return result
}

// ClearClass removes all marks of a class and returns how many were removed.
func (m *Manager) ClearClass(class string) int {
	var removed int
	for id, mark := range m.marks {
		if mark.Class == class {
			delete(m.marks, id)
			removed++
		}
	}
	return removed
}

// Clear removes all marks.
func (m *Manager) Clear() {
	m.marks = make(map[string]*Mark)
}

// Len returns the number of marks.
func (m *Manager) Len() int {
	return len(m.marks)
}

// Apply carries every mark through an applied change. Volatile marks the
// change touches are removed and returned in document order.
func (m *Manager) Apply(c tracking.Change) []Mark {
	var destroyed []Mark
	for id, mark := range m.marks {
		if mark.Volatile && c.Touches(mark.Range) {
			destroyed = append(destroyed, *mark)
			delete(m.marks, id)
			continue
		}
		mark.Range, _ = tracking.MapRange(mark.Range, c)
	}
	sortMarks(destroyed)
	return destroyed
}

func sortMarks(ms []Mark) {
	sort.Slice(ms, func(i, j int) bool {
		if c := ms[i].Range.Compare(ms[j].Range); c != 0 {
			return c < 0
		}
		return ms[i].ID < ms[j].ID
	})
}
