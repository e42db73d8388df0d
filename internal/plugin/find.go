package plugin

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/treefind/internal/engine/pos"
	"github.com/dshills/treefind/internal/search"
)

// TextSource reads document text for match tables.
type TextSource interface {
	TextIn(r pos.Range) (string, error)
}

// FindModule exposes a search session as the Lua "find" table.
type FindModule struct {
	session  *search.Session
	text     TextSource
	replaced int
}

// NewFindModule creates the find module.
func NewFindModule(session *search.Session, text TextSource) *FindModule {
	return &FindModule{session: session, text: text}
}

// Name returns the module name.
func (m *FindModule) Name() string {
	return "find"
}

// Replaced returns the number of edits made by scripts.
func (m *FindModule) Replaced() int {
	return m.replaced
}

// Register builds the module table.
func (m *FindModule) Register(L *lua.LState) *lua.LTable {
	mod := L.NewTable()

	L.SetField(mod, "find", L.NewFunction(m.find))
	L.SetField(mod, "next", L.NewFunction(m.next))
	L.SetField(mod, "prev", L.NewFunction(m.prev))
	L.SetField(mod, "clear", L.NewFunction(m.clear))
	L.SetField(mod, "replace", L.NewFunction(m.replace))
	L.SetField(mod, "replace_all", L.NewFunction(m.replaceAll))
	L.SetField(mod, "highlight", L.NewFunction(m.highlight))
	L.SetField(mod, "matches", L.NewFunction(m.matches))

	return mod
}

// find(term) -> count | nil, reason
func (m *FindModule) find(L *lua.LState) int {
	term := L.CheckString(1)
	res, err := m.session.Find(term)
	if err != nil {
		L.RaiseError("find: %v", err)
		return 0
	}
	if !res.OK() {
		return pushNoOp(L, res)
	}
	L.Push(lua.LNumber(res.Matches.Len()))
	return 1
}

// next() -> match, outcome | nil, reason
func (m *FindModule) next(L *lua.LState) int {
	res, err := m.session.FindNext()
	return m.pushSelection(L, "next", res, err)
}

// prev() -> match, outcome | nil, reason
func (m *FindModule) prev(L *lua.LState) int {
	res, err := m.session.FindPrev()
	return m.pushSelection(L, "prev", res, err)
}

func (m *FindModule) pushSelection(L *lua.LState, op string, res search.Result, err error) int {
	if err != nil {
		L.RaiseError("%s: %v", op, err)
		return 0
	}
	if !res.OK() {
		return pushNoOp(L, res)
	}
	L.Push(m.rangeTable(L, res.Selection))
	L.Push(lua.LString(res.Outcome.String()))
	return 2
}

// clear() -> nil
func (m *FindModule) clear(L *lua.LState) int {
	if _, err := m.session.ClearFind(); err != nil {
		L.RaiseError("clear: %v", err)
	}
	return 0
}

// replace(term, replacement) -> replaced | nil, reason
func (m *FindModule) replace(L *lua.LState) int {
	term := L.CheckString(1)
	replacement := L.CheckString(2)
	res, err := m.session.Replace(term, replacement)
	if err != nil {
		L.RaiseError("replace: %v", err)
		return 0
	}
	m.replaced += res.Replaced
	if !res.OK() {
		return pushNoOp(L, res)
	}
	L.Push(lua.LNumber(res.Replaced))
	return 1
}

// replace_all(term, replacement) -> count | nil, reason
func (m *FindModule) replaceAll(L *lua.LState) int {
	term := L.CheckString(1)
	replacement := L.CheckString(2)
	res, err := m.session.ReplaceAll(term, replacement)
	if err != nil {
		L.RaiseError("replace_all: %v", err)
		return 0
	}
	m.replaced += res.Replaced
	if !res.OK() {
		return pushNoOp(L, res)
	}
	L.Push(lua.LNumber(res.Replaced))
	return 1
}

// highlight(on) -> count
func (m *FindModule) highlight(L *lua.LState) int {
	on := L.CheckBool(1)
	res, err := m.session.SetHighlightAll(on)
	if err != nil {
		L.RaiseError("highlight: %v", err)
		return 0
	}
	L.Push(lua.LNumber(res.Matches.Len()))
	return 1
}

// matches() -> {match...}
func (m *FindModule) matches(L *lua.LState) int {
	ms, err := m.session.Matches()
	if err != nil {
		L.RaiseError("matches: %v", err)
		return 0
	}
	tbl := L.NewTable()
	for i, r := range ms {
		tbl.RawSetInt(i+1, m.rangeTable(L, r))
	}
	L.Push(tbl)
	return 1
}

// rangeTable converts a single-node range to {path=, from=, to=, text=}.
func (m *FindModule) rangeTable(L *lua.LState, r pos.Range) *lua.LTable {
	tbl := L.NewTable()
	tbl.RawSetString("path", lua.LString(r.From.Path.String()))
	tbl.RawSetString("from", lua.LNumber(r.From.Offset))
	tbl.RawSetString("to", lua.LNumber(r.To.Offset))
	if m.text != nil {
		if text, err := m.text.TextIn(r); err == nil {
			tbl.RawSetString("text", lua.LString(text))
		}
	}
	return tbl
}

func pushNoOp(L *lua.LState, res search.Result) int {
	L.Push(lua.LNil)
	reason := "no-op"
	if res.Reason != nil {
		reason = res.Reason.Error()
	}
	L.Push(lua.LString(reason))
	return 2
}
