package scan

import (
	"fmt"
	"sync/atomic"
)

// AnyState is a sentinel for AddStatesRule: the rule applies to the default
// state and to every state registered so far.
var AnyState []State = nil

// Table holds one rule list per state. It is append-only during grammar
// definition and sealed by the first scanner created from it; a sealed table
// is immutable and safe to share across goroutines.
type Table struct {
	defaultRules []*Rule
	stateRules   map[State][]*Rule
	stateOrder   []State
	sealed       atomic.Bool
}

func NewTable() *Table {
	return &Table{
		stateRules: make(map[State][]*Rule),
	}
}

// AddRule registers a rule effective in the default state only. Rules within
// a state are tried in registration order: the first match wins, not the
// longest, so more specific patterns must be registered first.
func (t *Table) AddRule(pattern string, tokenType TokenType) *Rule {
	t.mustMutable()
	rule := newRule(t, pattern, tokenType)
	t.defaultRules = append(t.defaultRules, rule)
	return rule
}

// AddStateRule registers a rule effective in the named state only.
func (t *Table) AddStateRule(state State, pattern string, tokenType TokenType) *Rule {
	t.mustMutable()
	if state == DefaultState {
		return t.AddRule(pattern, tokenType)
	}
	rule := newRule(t, pattern, tokenType)
	t.appendStateRule(state, rule)
	return rule
}

// AddStatesRule registers one rule shared by all the given states; a later
// transition set on the returned handle applies in every one of them. Passing
// AnyState registers the rule in the default state and in every state known
// at this point of grammar definition.
func (t *Table) AddStatesRule(states []State, pattern string, tokenType TokenType) *Rule {
	t.mustMutable()
	rule := newRule(t, pattern, tokenType)
	if states == nil {
		t.defaultRules = append(t.defaultRules, rule)
		for _, state := range t.stateOrder {
			t.stateRules[state] = append(t.stateRules[state], rule)
		}
		return rule
	}
	for _, state := range states {
		if state == DefaultState {
			t.defaultRules = append(t.defaultRules, rule)
		} else {
			t.appendStateRule(state, rule)
		}
	}
	return rule
}

func (t *Table) appendStateRule(state State, rule *Rule) {
	if _, ok := t.stateRules[state]; !ok {
		t.stateOrder = append(t.stateOrder, state)
	}
	t.stateRules[state] = append(t.stateRules[state], rule)
}

func (t *Table) mustMutable() {
	if t.sealed.Load() {
		panic(fmt.Errorf("rule table is sealed, grammar must be fully defined before the first scan"))
	}
}

func (t *Table) rulesFor(state State) []*Rule {
	if state == DefaultState {
		return t.defaultRules
	}
	rules, ok := t.stateRules[state]
	if !ok {
		panic(fmt.Errorf("transition to unknown state %q", state))
	}
	return rules
}

// NewScanner seals the table and returns a scanner positioned at the start
// of input, in the default state.
func (t *Table) NewScanner(input string) *Scanner {
	t.sealed.Store(true)
	return &Scanner{
		table: t,
		input: input,
		rules: t.defaultRules,
	}
}
