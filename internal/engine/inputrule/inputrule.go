// Package inputrule implements the host's input-rule registry.
//
// An input rule watches text as it is typed. After every typed insertion the
// registry matches each rule's pattern against the text of the node before
// the cursor; a rule whose pattern matches has its handler called with the
// range of the match.
package inputrule

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/dshills/treefind/internal/engine/pos"
)

// ID uniquely identifies a registered rule.
type ID uint64

// Match describes text that triggered a rule.
type Match struct {
	// Range covers the matched text, ending at the cursor.
	Range pos.Range
	// Text is the matched text.
	Text string
}

// Handler is called when a rule fires.
type Handler func(m Match)

// Rule is a pattern and the handler to run when typed text matches it.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Handler Handler
}

// Literal returns a rule that fires when the text before the cursor ends
// with term. When caseSensitive is false the comparison ignores case.
func Literal(name, term string, caseSensitive bool, h Handler) Rule {
	expr := regexp.QuoteMeta(term) + `$`
	if !caseSensitive {
		expr = `(?i)` + expr
	}
	return Rule{
		Name:    name,
		Pattern: regexp.MustCompile(expr),
		Handler: h,
	}
}

type registration struct {
	id   ID
	rule Rule
}

// Registry holds input rules in registration order.
type Registry struct {
	mu     sync.RWMutex
	rules  []registration
	byName map[string]ID
	nextID ID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]ID),
	}
}

// Add registers a rule. Patterns must be anchored at the end of input
// so they only ever match text ending at the cursor.
func (r *Registry) Add(rule Rule) (ID, error) {
	if rule.Pattern == nil || rule.Handler == nil {
		return 0, fmt.Errorf("inputrule: rule %q needs a pattern and a handler", rule.Name)
	}
	if !strings.HasSuffix(rule.Pattern.String(), "$") {
		return 0, fmt.Errorf("inputrule: pattern %q of rule %q is not anchored with $", rule.Pattern, rule.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	id := r.nextID
	r.rules = append(r.rules, registration{id: id, rule: rule})
	if rule.Name != "" {
		r.byName[rule.Name] = id
	}
	return id, nil
}

// Remove unregisters a rule by ID.
func (r *Registry) Remove(id ID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.rules {
		if r.rules[i].id != id {
			continue
		}
		if name := r.rules[i].rule.Name; name != "" && r.byName[name] == id {
			delete(r.byName, name)
		}
		r.rules = append(r.rules[:i], r.rules[i+1:]...)
		return true
	}
	return false
}

// Lookup returns the ID of the most recently added rule with the given name.
func (r *Registry) Lookup(name string) (ID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byName[name]
	return id, ok
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rules)
}

// Check runs every rule against textBefore, the text of the cursor's node up
// to the cursor. Handlers run outside the registry lock, so they may add or
// remove rules. It returns the number of rules that fired.
func (r *Registry) Check(textBefore string, cursor pos.Position) int {
	r.mu.RLock()
	rules := make([]registration, len(r.rules))
	copy(rules, r.rules)
	r.mu.RUnlock()

	var fired int
	for _, reg := range rules {
		loc := reg.rule.Pattern.FindStringIndex(textBefore)
		if loc == nil || loc[1] != len(textBefore) {
			continue
		}
		start := cursor.Offset - (loc[1] - loc[0])
		reg.rule.Handler(Match{
			Range: pos.Span(cursor.Path, start, cursor.Offset),
			Text:  textBefore[loc[0]:loc[1]],
		})
		fired++
	}
	return fired
}
