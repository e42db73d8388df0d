package pos

import "testing"

func TestPathCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Path
		want int
	}{
		{"equal", Path{0, 1}, Path{0, 1}, 0},
		{"less by index", Path{0, 1}, Path{0, 2}, -1},
		{"greater by index", Path{1}, Path{0, 5}, 1},
		{"prefix sorts first", Path{0}, Path{0, 0}, -1},
		{"longer sorts after prefix", Path{0, 0}, Path{0}, 1},
		{"root before everything", Path{}, Path{0}, -1},
		{"nil equals empty", nil, Path{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPathChildDoesNotAlias(t *testing.T) {
	base := make(Path, 1, 4)
	base[0] = 3

	a := base.Child(1)
	b := base.Child(2)

	if a.String() != "3.1" {
		t.Errorf("a = %s, want 3.1", a)
	}
	if b.String() != "3.2" {
		t.Errorf("b = %s, want 3.2", b)
	}
}

func TestPositionCompare(t *testing.T) {
	p1 := New(Path{0}, 5)
	p2 := New(Path{0}, 8)
	p3 := New(Path{1}, 0)

	if !p1.Before(p2) {
		t.Error("expected 0:5 before 0:8")
	}
	if !p2.Before(p3) {
		t.Error("path order should win over offset")
	}
	if !p3.After(p1) {
		t.Error("expected 1:0 after 0:5")
	}
	if !p1.Equal(New(Path{0}, 5)) {
		t.Error("expected equal positions")
	}
	if !Min(p3, p1).Equal(p1) {
		t.Error("Min should return the earlier position")
	}
	if !Max(p1, p3).Equal(p3) {
		t.Error("Max should return the later position")
	}
}

func TestRange(t *testing.T) {
	t.Run("new range normalizes", func(t *testing.T) {
		r := NewRange(New(Path{0}, 9), New(Path{0}, 2))
		if r.From.Offset != 2 || r.To.Offset != 9 {
			t.Errorf("NewRange = %v, want [0:2-9)", r)
		}
	})

	t.Run("len", func(t *testing.T) {
		if got := Span(Path{1}, 3, 7).Len(); got != 4 {
			t.Errorf("Len() = %d, want 4", got)
		}
		cross := NewRange(New(Path{0}, 1), New(Path{1}, 1))
		if got := cross.Len(); got != -1 {
			t.Errorf("cross-node Len() = %d, want -1", got)
		}
	})

	t.Run("overlaps", func(t *testing.T) {
		a := Span(Path{0}, 0, 3)
		b := Span(Path{0}, 3, 6)
		c := Span(Path{0}, 2, 4)
		if a.Overlaps(b) {
			t.Error("adjacent ranges must not overlap")
		}
		if !a.Overlaps(c) || !c.Overlaps(b) {
			t.Error("expected overlap")
		}
	})

	t.Run("contains", func(t *testing.T) {
		r := Span(Path{2}, 4, 8)
		if !r.Contains(New(Path{2}, 4)) {
			t.Error("From is inclusive")
		}
		if r.Contains(New(Path{2}, 8)) {
			t.Error("To is exclusive")
		}
		if !r.ContainsRange(Span(Path{2}, 5, 8)) {
			t.Error("expected inner range to be contained")
		}
	})

	t.Run("shift", func(t *testing.T) {
		got := Span(Path{0}, 8, 11).Shift(-2)
		if !got.Equal(Span(Path{0}, 6, 9)) {
			t.Errorf("Shift(-2) = %v, want [0:6-9)", got)
		}
	})

	t.Run("string", func(t *testing.T) {
		if got := Span(Path{0, 1}, 0, 3).String(); got != "[0.1:0-3)" {
			t.Errorf("String() = %q", got)
		}
	})
}
