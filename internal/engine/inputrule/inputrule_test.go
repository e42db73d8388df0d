package inputrule

import (
	"regexp"
	"testing"

	"github.com/dshills/treefind/internal/engine/pos"
)

func TestRegistryCheck(t *testing.T) {
	reg := NewRegistry()

	var got []Match
	_, err := reg.Add(Literal("find", "cat", true, func(m Match) {
		got = append(got, m)
	}))
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	cursor := pos.New(pos.Path{0}, 11)
	if n := reg.Check("cat sat cat", cursor); n != 1 {
		t.Fatalf("Check() fired %d rules, want 1", n)
	}
	if len(got) != 1 {
		t.Fatalf("handler called %d times, want 1", len(got))
	}
	if !got[0].Range.Equal(pos.Span(pos.Path{0}, 8, 11)) {
		t.Errorf("match range = %v, want [0:8-11)", got[0].Range)
	}
	if got[0].Text != "cat" {
		t.Errorf("match text = %q, want cat", got[0].Text)
	}

	if n := reg.Check("cat sat", pos.New(pos.Path{0}, 7)); n != 0 {
		t.Errorf("Check() fired %d rules for text not ending in the term", n)
	}
}

func TestLiteralCaseInsensitive(t *testing.T) {
	reg := NewRegistry()
	var fired bool
	if _, err := reg.Add(Literal("find", "a.b", false, func(Match) { fired = true })); err != nil {
		t.Fatal(err)
	}

	if reg.Check("xaxb", pos.New(pos.Path{0}, 4)); fired {
		t.Error("term metacharacters must be matched literally")
	}
	if reg.Check("x A.B", pos.New(pos.Path{0}, 5)); !fired {
		t.Error("expected case-insensitive match")
	}
}

func TestRegistryRemove(t *testing.T) {
	reg := NewRegistry()
	id, err := reg.Add(Literal("find", "x", true, func(Match) {}))
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := reg.Lookup("find"); !ok || got != id {
		t.Errorf("Lookup(find) = %d, %v; want %d, true", got, ok, id)
	}

	if !reg.Remove(id) {
		t.Error("Remove should report true for an existing rule")
	}
	if reg.Remove(id) {
		t.Error("Remove should report false for a missing rule")
	}
	if reg.Len() != 0 {
		t.Errorf("Len() = %d, want 0", reg.Len())
	}
	if _, ok := reg.Lookup("find"); ok {
		t.Error("Lookup should fail after Remove")
	}
}

func TestRegistryAddValidation(t *testing.T) {
	reg := NewRegistry()

	if _, err := reg.Add(Rule{Name: "nil"}); err == nil {
		t.Error("expected error for rule without pattern")
	}
	unanchored := Rule{
		Name:    "loose",
		Pattern: regexp.MustCompile("cat"),
		Handler: func(Match) {},
	}
	if _, err := reg.Add(unanchored); err == nil {
		t.Error("expected error for unanchored pattern")
	}
}

func TestHandlerMayRemoveRule(t *testing.T) {
	reg := NewRegistry()
	var id ID
	id, _ = reg.Add(Literal("once", "go", true, func(Match) {
		reg.Remove(id)
	}))

	reg.Check("go", pos.New(pos.Path{0}, 2))
	if reg.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after self-removal", reg.Len())
	}
}
