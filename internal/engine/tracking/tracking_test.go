package tracking

import (
	"testing"

	"github.com/dshills/treefind/internal/engine/pos"
)

var para = pos.Path{0}

// TestChangeTypes tests change type creation and properties
func TestChangeTypes(t *testing.T) {
	t.Run("insert change", func(t *testing.T) {
		c := NewChange(para, 10, "", "hello")

		if c.Type() != ChangeInsert {
			t.Errorf("expected ChangeInsert, got %v", c.Type())
		}
		if c.Start != 10 || c.End != 10 {
			t.Errorf("expected span [10:10), got [%d:%d)", c.Start, c.End)
		}
		if !c.NewRange().Equal(pos.Span(para, 10, 15)) {
			t.Errorf("expected new range [10:15), got %v", c.NewRange())
		}
		if c.Delta() != 5 {
			t.Errorf("expected delta 5, got %d", c.Delta())
		}
	})

	t.Run("delete change", func(t *testing.T) {
		c := NewChange(para, 10, "hello", "")

		if c.Type() != ChangeDelete {
			t.Errorf("expected ChangeDelete, got %v", c.Type())
		}
		if c.End != 15 {
			t.Errorf("expected end 15, got %d", c.End)
		}
		if c.Delta() != -5 {
			t.Errorf("expected delta -5, got %d", c.Delta())
		}
	})

	t.Run("replace change", func(t *testing.T) {
		c := NewChange(para, 0, "cat", "horse")

		if c.Type() != ChangeReplace {
			t.Errorf("expected ChangeReplace, got %v", c.Type())
		}
		if c.Delta() != 2 {
			t.Errorf("expected delta 2, got %d", c.Delta())
		}
	})

	t.Run("invert", func(t *testing.T) {
		c := NewChange(para, 4, "sat", "stood")
		inv := c.Invert()

		if inv.Start != 4 || inv.End != 9 {
			t.Errorf("inverse span = [%d:%d), want [4:9)", inv.Start, inv.End)
		}
		if inv.OldText != "stood" || inv.NewText != "sat" {
			t.Errorf("inverse texts = %q -> %q", inv.OldText, inv.NewText)
		}
	})
}

func TestMapRangeInsertion(t *testing.T) {
	// Insert k=4 characters at offset 8.
	c := NewChange(para, 8, "", "big ")

	tests := []struct {
		name  string
		in    pos.Range
		want  pos.Range
		valid bool
	}{
		{"entirely before", pos.Span(para, 0, 3), pos.Span(para, 0, 3), true},
		{"ends at insertion", pos.Span(para, 5, 8), pos.Span(para, 5, 8), true},
		{"starts at insertion", pos.Span(para, 8, 11), pos.Span(para, 12, 15), true},
		{"entirely after", pos.Span(para, 9, 11), pos.Span(para, 13, 15), true},
		{"insertion inside", pos.Span(para, 6, 10), pos.Collapsed(pos.New(para, 8)), false},
		{"other node", pos.Span(pos.Path{1}, 8, 11), pos.Span(pos.Path{1}, 8, 11), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MapRange(tt.in, c)
			if ok != tt.valid {
				t.Errorf("valid = %v, want %v", ok, tt.valid)
			}
			if !got.Equal(tt.want) {
				t.Errorf("MapRange(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMapRangeReplace(t *testing.T) {
	// "cat sat cat": replace [0,3) "cat" with "horse" (+2).
	c := NewChange(para, 0, "cat", "horse")

	tests := []struct {
		name  string
		in    pos.Range
		want  pos.Range
		valid bool
	}{
		{"the replaced range", pos.Span(para, 0, 3), pos.Collapsed(pos.New(para, 0)), false},
		{"partial overlap", pos.Span(para, 2, 5), pos.Collapsed(pos.New(para, 0)), false},
		{"adjacent after", pos.Span(para, 3, 4), pos.Span(para, 5, 6), true},
		{"later match", pos.Span(para, 8, 11), pos.Span(para, 10, 13), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MapRange(tt.in, c)
			if ok != tt.valid {
				t.Errorf("valid = %v, want %v", ok, tt.valid)
			}
			if !got.Equal(tt.want) {
				t.Errorf("MapRange(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMapRangeDelete(t *testing.T) {
	c := NewChange(para, 2, "xyz", "")

	got, ok := MapRange(pos.Span(para, 6, 9), c)
	if !ok || !got.Equal(pos.Span(para, 3, 6)) {
		t.Errorf("MapRange after delete = %v (%v), want [0:3-6)", got, ok)
	}

	got, ok = MapRange(pos.Collapsed(pos.New(para, 3)), c)
	if ok || !got.Equal(pos.Collapsed(pos.New(para, 2))) {
		t.Errorf("cursor inside deletion = %v (%v), want collapsed at 2", got, ok)
	}
}

func TestMapPosition(t *testing.T) {
	c := NewChange(para, 4, "", "XY")

	if got := MapPosition(pos.New(para, 4), c, false); got.Offset != 4 {
		t.Errorf("non-sticky insertion at p: offset %d, want 4", got.Offset)
	}
	if got := MapPosition(pos.New(para, 4), c, true); got.Offset != 6 {
		t.Errorf("sticky insertion at p: offset %d, want 6", got.Offset)
	}
	if got := MapPosition(pos.New(para, 9), c, false); got.Offset != 11 {
		t.Errorf("after insertion: offset %d, want 11", got.Offset)
	}

	del := NewChange(para, 2, "abcd", "")
	if got := MapPosition(pos.New(para, 4), del, false); got.Offset != 2 {
		t.Errorf("inside deletion: offset %d, want 2", got.Offset)
	}
}

func TestTouches(t *testing.T) {
	c := NewChange(para, 4, "sat", "sits")

	if !c.Touches(pos.Span(para, 5, 6)) {
		t.Error("range inside edit should be touched")
	}
	if c.Touches(pos.Span(para, 0, 4)) {
		t.Error("range ending at edit start should not be touched")
	}
	if c.Touches(pos.Span(para, 7, 11)) {
		t.Error("range starting at edit end should not be touched")
	}
	if c.Touches(pos.Span(pos.Path{1}, 4, 7)) {
		t.Error("range in another node should not be touched")
	}

	spanning := pos.NewRange(pos.New(pos.Path{}, 0), pos.New(pos.Path{2}, 0))
	if !c.Touches(spanning) {
		t.Error("cross-node range enclosing the edited node should be touched")
	}
}

func TestMappingSequential(t *testing.T) {
	// Matches of "cat" in "cat sat cat cat" computed before any edit.
	pending := []pos.Range{
		pos.Span(para, 8, 11),
		pos.Span(para, 12, 15),
	}

	var m Mapping
	m.Append(NewChange(para, 0, "cat", "lion"))  // +1
	m.Append(NewChange(para, 9, "cat", "ox"))    // -1, applied to the mapped first match

	got, ok := m.MapRange(pending[1])
	if !ok || !got.Equal(pos.Span(para, 12, 15)) {
		t.Errorf("MapRange = %v (%v), want [0:12-15)", got, ok)
	}
	if m.TotalDelta() != 0 {
		t.Errorf("TotalDelta() = %d, want 0", m.TotalDelta())
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}

	mapped, valid := MapRanges(pending, m.Changes()[0])
	if !valid[0] || !valid[1] {
		t.Fatalf("valid = %v, want all true", valid)
	}
	if mapped[0].From.Offset != 9 || mapped[1].From.Offset != 13 {
		t.Errorf("mapped = %v", mapped)
	}
}

func TestTracker(t *testing.T) {
	tr := NewTracker(WithMaxChanges(2))

	if tr.Revision() != 0 {
		t.Fatalf("initial revision = %d, want 0", tr.Revision())
	}

	c1 := tr.Record(NewChange(para, 0, "", "a"))
	c2 := tr.Record(NewChange(para, 1, "", "b"))
	c3 := tr.Record(NewChange(para, 2, "", "c"))

	if c1.Revision != 1 || c2.Revision != 2 || c3.Revision != 3 {
		t.Errorf("revisions = %d, %d, %d", c1.Revision, c2.Revision, c3.Revision)
	}
	if tr.Len() != 2 {
		t.Errorf("Len() = %d, want 2 after eviction", tr.Len())
	}

	changes, complete := tr.ChangesSince(1)
	if !complete || len(changes) != 2 {
		t.Errorf("ChangesSince(1) = %d changes (complete=%v), want 2 complete", len(changes), complete)
	}

	_, complete = tr.ChangesSince(0)
	if complete {
		t.Error("ChangesSince(0) should report evicted history")
	}

	m, _ := tr.MappingSince(2)
	if got := m.MapPosition(pos.New(para, 5), false); got.Offset != 6 {
		t.Errorf("MappingSince(2) offset = %d, want 6", got.Offset)
	}
}
