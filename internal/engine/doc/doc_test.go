package doc

import (
	"errors"
	"testing"

	"github.com/dshills/treefind/internal/engine/pos"
)

func sampleTree() *Node {
	return NewContainer("doc",
		NewText("heading", "Cats"),
		NewContainer("list",
			NewContainer("list_item", NewText("paragraph", "one cat")),
			NewContainer("list_item", NewText("paragraph", "two cats")),
		),
		NewText("paragraph", "cat sat cat"),
	)
}

func TestResolve(t *testing.T) {
	root := sampleTree()

	t.Run("text node", func(t *testing.T) {
		n, err := root.TextNode(pos.Path{1, 1, 0})
		if err != nil {
			t.Fatalf("TextNode error = %v", err)
		}
		if n.Text() != "two cats" {
			t.Errorf("Text() = %q, want %q", n.Text(), "two cats")
		}
	})

	t.Run("invalid path", func(t *testing.T) {
		_, err := root.Resolve(pos.Path{1, 5})
		if !errors.Is(err, ErrInvalidPath) {
			t.Errorf("expected ErrInvalidPath, got %v", err)
		}
	})

	t.Run("container is not text", func(t *testing.T) {
		_, err := root.TextNode(pos.Path{1})
		if !errors.Is(err, ErrNotTextNode) {
			t.Errorf("expected ErrNotTextNode, got %v", err)
		}
	})
}

func TestCheckPosition(t *testing.T) {
	root := sampleTree()

	if err := root.CheckPosition(pos.New(pos.Path{2}, 11)); err != nil {
		t.Errorf("end of text should be valid: %v", err)
	}
	if err := root.CheckPosition(pos.New(pos.Path{2}, 12)); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("expected ErrOffsetOutOfRange, got %v", err)
	}
	if err := root.CheckPosition(pos.New(pos.Path{2}, -1)); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("expected ErrOffsetOutOfRange for negative offset, got %v", err)
	}
}

func TestReplace(t *testing.T) {
	n := NewText("paragraph", "cat sat cat")

	old, err := n.Replace(0, 3, "dog")
	if err != nil {
		t.Fatalf("Replace error = %v", err)
	}
	if old != "cat" {
		t.Errorf("old = %q, want %q", old, "cat")
	}
	if n.Text() != "dog sat cat" {
		t.Errorf("Text() = %q", n.Text())
	}

	if _, err := n.Replace(5, 2, "x"); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("expected ErrOffsetOutOfRange, got %v", err)
	}
	if _, err := NewContainer("doc").Replace(0, 0, "x"); !errors.Is(err, ErrNotTextNode) {
		t.Errorf("expected ErrNotTextNode, got %v", err)
	}
}

func TestWalkOrder(t *testing.T) {
	root := sampleTree()
	paths := root.TextNodes()

	want := []string{"0", "1.0.0", "1.1.0", "2"}
	if len(paths) != len(want) {
		t.Fatalf("TextNodes() returned %d paths, want %d", len(paths), len(want))
	}
	for i, p := range paths {
		if p.String() != want[i] {
			t.Errorf("path[%d] = %s, want %s", i, p, want[i])
		}
		if i > 0 && paths[i-1].Compare(p) >= 0 {
			t.Errorf("paths not in document order at %d", i)
		}
	}
}

func TestSlice(t *testing.T) {
	root := sampleTree()

	t.Run("single node", func(t *testing.T) {
		got, err := root.Slice(pos.Span(pos.Path{2}, 4, 7))
		if err != nil {
			t.Fatalf("Slice error = %v", err)
		}
		if got != "sat" {
			t.Errorf("Slice = %q, want %q", got, "sat")
		}
	})

	t.Run("across nodes", func(t *testing.T) {
		r := pos.NewRange(pos.New(pos.Path{1, 0, 0}, 4), pos.New(pos.Path{2}, 3))
		got, err := root.Slice(r)
		if err != nil {
			t.Fatalf("Slice error = %v", err)
		}
		if got != "cattwo catscat" {
			t.Errorf("Slice = %q, want %q", got, "cattwo catscat")
		}
	})

	t.Run("ends before later nodes", func(t *testing.T) {
		r := pos.NewRange(pos.New(pos.Path{0}, 2), pos.New(pos.Path{1, 0, 0}, 3))
		got, err := root.Slice(r)
		if err != nil {
			t.Fatalf("Slice error = %v", err)
		}
		if got != "tsone" {
			t.Errorf("Slice = %q, want %q", got, "tsone")
		}
	})
}

func TestClone(t *testing.T) {
	root := sampleTree()
	c := root.Clone()

	n, _ := c.TextNode(pos.Path{2})
	if _, err := n.Replace(0, 3, "dog"); err != nil {
		t.Fatal(err)
	}

	orig, _ := root.TextNode(pos.Path{2})
	if orig.Text() != "cat sat cat" {
		t.Errorf("clone edit leaked into original: %q", orig.Text())
	}
}

func TestFromText(t *testing.T) {
	root := FromText("cat sat cat\n\nsecond para\nwith two lines\n")

	if root.ChildCount() != 2 {
		t.Fatalf("ChildCount() = %d, want 2", root.ChildCount())
	}
	if got := root.Child(1).Text(); got != "second para\nwith two lines" {
		t.Errorf("second paragraph = %q", got)
	}
	if got := root.PlainText(ParagraphSeparator); got != "cat sat cat\n\nsecond para\nwith two lines" {
		t.Errorf("PlainText = %q", got)
	}
}

func TestFromTextEmpty(t *testing.T) {
	root := FromText("")
	if root.ChildCount() != 1 || !root.Child(0).IsText() {
		t.Fatalf("empty input should produce one empty paragraph, got %s", root)
	}
}

func TestFromMarkdown(t *testing.T) {
	src := "# Cats\n\nThe cat sat on the **mat**.\n\n- one cat\n- two\n\n```\ncode cat\n```\n"
	root := FromMarkdown([]byte(src))

	tests := []struct {
		path pos.Path
		typ  string
		text string
	}{
		{pos.Path{0}, "heading", "Cats"},
		{pos.Path{1}, "paragraph", "The cat sat on the mat."},
		{pos.Path{2, 0, 0}, "paragraph", "one cat"},
		{pos.Path{2, 1, 0}, "paragraph", "two"},
		{pos.Path{3}, "code_block", "code cat"},
	}

	for _, tt := range tests {
		t.Run(tt.path.String(), func(t *testing.T) {
			n, err := root.TextNode(tt.path)
			if err != nil {
				t.Fatalf("TextNode(%s) error = %v; tree = %s", tt.path, err, root)
			}
			if n.Type() != tt.typ {
				t.Errorf("Type() = %q, want %q", n.Type(), tt.typ)
			}
			if n.Text() != tt.text {
				t.Errorf("Text() = %q, want %q", n.Text(), tt.text)
			}
		})
	}

	if root.Child(2).Type() != "list" {
		t.Errorf("expected list container, got %s", root.Child(2).Type())
	}
}
