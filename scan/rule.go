package scan

import (
	"fmt"
	"regexp"
)

// State names a scanner mode. Each state selects its own ordered rule list.
// The zero value is the default state.
type State string

const DefaultState State = ""

func (s State) String() string {
	if s == DefaultState {
		return "default"
	}
	return string(s)
}

type transition uint8

const (
	remain transition = iota
	goTo
	push
	pop
)

// Rule recognizes an input prefix and classifies it. A rule may also switch
// the scanner to another state when it matches. Transition setters are only
// valid until the owning table is sealed by its first scanner.
type Rule struct {
	table      *Table
	pattern    *regexp.Regexp
	tokenType  TokenType
	transition transition
	target     State
}

func newRule(table *Table, pattern string, tokenType TokenType) *Rule {
	// Anchor at the region start and match a prefix only. The non-capturing
	// group keeps the caller's group numbering intact.
	re, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		panic(fmt.Errorf("compile rule pattern %q: %w", pattern, err))
	}
	return &Rule{
		table:     table,
		pattern:   re,
		tokenType: tokenType,
	}
}

// GoTo makes the scanner switch to the given state after this rule matches.
func (r *Rule) GoTo(state State) *Rule {
	r.table.mustMutable()
	r.transition = goTo
	r.target = state
	return r
}

// Push makes the scanner save the current state and switch to the given one
// after this rule matches.
func (r *Rule) Push(state State) *Rule {
	r.table.mustMutable()
	r.transition = push
	r.target = state
	return r
}

// Pop makes the scanner return to the most recently pushed state after this
// rule matches. Scanning panics if the state stack is empty when a pop rule
// fires.
func (r *Rule) Pop() *Rule {
	r.table.mustMutable()
	r.transition = pop
	r.target = DefaultState
	return r
}
