// Package plugin runs Lua scripts against a search session.
//
// Scripts run in a sandboxed gopher-lua state with only the base, table,
// string and math libraries. The global table "find" exposes the session:
//
//	local n = find.find("cat")          -- number of matches
//	local r, how = find.next()          -- {path=, from=, to=, text=}, "found" or "wrapped"
//	find.replace("cat", "dog")
//	local count = find.replace_all("cat", "dog")
//	find.highlight(false)
//	for _, m in ipairs(find.matches()) do print(m.path, m.from, m.to) end
//	find.clear()
//
// Operations that have no effect return nil and a reason string. Host
// failures raise a Lua error.
package plugin
