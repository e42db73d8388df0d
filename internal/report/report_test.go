package report

import (
	"testing"

	"github.com/tidwall/gjson"

	"github.com/dshills/treefind/internal/engine"
	"github.com/dshills/treefind/internal/engine/doc"
	"github.com/dshills/treefind/internal/search"
)

func TestFromSession(t *testing.T) {
	e := engine.New(doc.FromText("cat sat cat"))
	s := search.New(e, search.DefaultConfig())
	if _, err := s.Find("cat"); err != nil {
		t.Fatal(err)
	}

	rep, err := FromSession(s, e, 0, e.Text())
	if err != nil {
		t.Fatalf("FromSession: %v", err)
	}
	data, err := rep.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if !gjson.ValidBytes(data) {
		t.Fatalf("invalid JSON: %s", data)
	}

	parsed := gjson.ParseBytes(data)
	checks := []struct {
		path string
		want string
	}{
		{"term", "cat"},
		{"count", "2"},
		{"case_sensitive", "true"},
		{"matches.0.path", "0"},
		{"matches.0.from", "0"},
		{"matches.0.to", "3"},
		{"matches.1.from", "8"},
		{"matches.1.text", "cat"},
		{"replaced", "0"},
		{"text", "cat sat cat"},
	}
	for _, c := range checks {
		t.Run(c.path, func(t *testing.T) {
			if got := parsed.Get(c.path).String(); got != c.want {
				t.Errorf("%s = %q, want %q", c.path, got, c.want)
			}
		})
	}
}

func TestFromSessionAfterReplaceAll(t *testing.T) {
	e := engine.New(doc.FromText("cat sat cat"))
	s := search.New(e, search.DefaultConfig())
	res, err := s.ReplaceAll("cat", "dog")
	if err != nil {
		t.Fatal(err)
	}

	rep, err := FromSession(s, e, res.Replaced, e.Text())
	if err != nil {
		t.Fatal(err)
	}
	data, err := rep.JSON()
	if err != nil {
		t.Fatal(err)
	}

	if got := gjson.GetBytes(data, "replaced").Int(); got != 2 {
		t.Errorf("replaced = %d, want 2", got)
	}
	if got := gjson.GetBytes(data, "replacement").String(); got != "dog" {
		t.Errorf("replacement = %q", got)
	}
	if got := gjson.GetBytes(data, "matches.#").Int(); got != 0 {
		t.Errorf("matches.# = %d, want 0", got)
	}
	if !gjson.GetBytes(data, "matches").IsArray() {
		t.Error("matches should be an empty array")
	}
	if got := gjson.GetBytes(data, "text").String(); got != "dog sat dog" {
		t.Errorf("text = %q", got)
	}
}

func TestNoActiveTerm(t *testing.T) {
	e := engine.New(doc.FromText("x"))
	s := search.New(e, search.DefaultConfig())

	rep, err := FromSession(s, e, 0, "x")
	if err != nil {
		t.Fatal(err)
	}
	data, err := rep.JSON()
	if err != nil {
		t.Fatal(err)
	}
	if got := gjson.GetBytes(data, "term").String(); got != "" {
		t.Errorf("term = %q, want empty", got)
	}
	if got := gjson.GetBytes(data, "count").Int(); got != 0 {
		t.Errorf("count = %d", got)
	}
}

func TestMatchTextWithQuotes(t *testing.T) {
	rep := Report{Term: `"q"`, Matches: []Match{{Path: "0.1", From: 1, To: 4, Text: `"q"`}}}
	data, err := rep.JSON()
	if err != nil {
		t.Fatal(err)
	}
	if got := gjson.GetBytes(data, "matches.0.text").String(); got != `"q"` {
		t.Errorf("text = %q", got)
	}
	if got := gjson.GetBytes(data, "matches.0.path").String(); got != "0.1" {
		t.Errorf("path = %q", got)
	}
}
