// Package report builds JSON reports of a search session.
package report

import (
	"fmt"

	"github.com/tidwall/sjson"

	"github.com/dshills/treefind/internal/engine/pos"
	"github.com/dshills/treefind/internal/search"
)

// Match is one occurrence in a report.
type Match struct {
	Path string
	From int
	To   int
	Text string
}

// Report describes the state of a search after the requested operations.
type Report struct {
	Term          string
	Replacement   string
	CaseSensitive bool
	Matches       []Match
	Replaced      int
	Text          string
}

// TextSource reads document text.
type TextSource interface {
	TextIn(r pos.Range) (string, error)
}

// Collect converts ranges to report matches, reading their text from src.
func Collect(src TextSource, ranges []pos.Range) ([]Match, error) {
	out := make([]Match, 0, len(ranges))
	for _, r := range ranges {
		text, err := src.TextIn(r)
		if err != nil {
			return nil, fmt.Errorf("collect %s: %w", r, err)
		}
		out = append(out, Match{
			Path: r.From.Path.String(),
			From: r.From.Offset,
			To:   r.To.Offset,
			Text: text,
		})
	}
	return out, nil
}

// FromSession builds a report of the session's active term. replaced is the
// number of edits made and text the resulting document text.
func FromSession(s *search.Session, src TextSource, replaced int, text string) (Report, error) {
	rep := Report{Replaced: replaced, Text: text}
	rep.CaseSensitive = s.Config().CaseSensitive

	term, ok := s.Term()
	if !ok {
		return rep, nil
	}
	rep.Term = term.Text
	rep.Replacement = term.Replacement

	ms, err := s.Matches()
	if err != nil {
		return rep, err
	}
	rep.Matches, err = Collect(src, ms)
	if err != nil {
		return rep, err
	}
	return rep, nil
}

// JSON encodes the report:
//
//	{"term":"cat","replacement":"","case_sensitive":true,"count":2,
//	 "matches":[{"path":"0","from":0,"to":3,"text":"cat"}],
//	 "replaced":0,"text":"..."}
func (r Report) JSON() ([]byte, error) {
	data := []byte(`{}`)
	var err error

	set := func(path string, value any) {
		if err != nil {
			return
		}
		data, err = sjson.SetBytes(data, path, value)
	}

	set("term", r.Term)
	set("replacement", r.Replacement)
	set("case_sensitive", r.CaseSensitive)
	set("count", len(r.Matches))
	if err == nil {
		data, err = sjson.SetRawBytes(data, "matches", []byte(`[]`))
	}
	for i, m := range r.Matches {
		prefix := fmt.Sprintf("matches.%d.", i)
		set(prefix+"path", m.Path)
		set(prefix+"from", m.From)
		set(prefix+"to", m.To)
		set(prefix+"text", m.Text)
	}
	set("replaced", r.Replaced)
	set("text", r.Text)

	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return data, nil
}
