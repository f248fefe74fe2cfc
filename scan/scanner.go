package scan

import (
	"fmt"
	"unicode/utf8"
)

// Scanner is a cursor over one input string, applying the rule list of its
// current state. A scanner is single-use: once Produce returns the end of
// input, scanning the same input again requires a fresh scanner. Scanners are
// not safe for concurrent use; the shared table is.
type Scanner struct {
	table      *Table
	input      string
	offset     int
	prevOffset int
	state      State
	rules      []*Rule
	stack      []savedState
}

type savedState struct {
	state State
	rules []*Rule
}

// Produce returns the next token, or nil at end of input. Rules of the
// current state are tried in registration order; the first rule whose
// pattern matches a prefix of the remaining input wins.
//
// A rule that matches an empty prefix does not advance the cursor; a grammar
// containing such a rule can make Produce loop forever. Grammar authors are
// responsible for avoiding that.
func (s *Scanner) Produce() (*Token, error) {
	if s.offset == len(s.input) {
		return nil, nil
	}

	for _, rule := range s.rules {
		loc := rule.pattern.FindStringSubmatchIndex(s.input[s.offset:])
		if loc == nil {
			continue
		}

		switch rule.transition {
		case goTo:
			s.state = rule.target
			s.rules = s.table.rulesFor(rule.target)
		case push:
			s.stack = append(s.stack, savedState{state: s.state, rules: s.rules})
			s.state = rule.target
			s.rules = s.table.rulesFor(rule.target)
		case pop:
			if len(s.stack) == 0 {
				panic(fmt.Errorf("state stack underflow at offset %d: pop in state %s without a matching push", s.offset, s.state))
			}
			top := s.stack[len(s.stack)-1]
			s.stack = s.stack[:len(s.stack)-1]
			s.state = top.state
			s.rules = top.rules
		}

		var groups []string
		if n := len(loc)/2 - 1; n > 0 {
			groups = make([]string, n)
			for i := 1; i <= n; i++ {
				start, end := loc[2*i], loc[2*i+1]
				if start >= 0 {
					groups[i-1] = s.input[s.offset+start : s.offset+end]
				}
			}
		}

		token := &Token{
			Type:   rule.tokenType,
			Text:   s.input[s.offset : s.offset+loc[1]],
			Groups: groups,
		}
		s.prevOffset = s.offset
		s.offset += loc[1]
		return token, nil
	}

	char, _ := utf8.DecodeRuneInString(s.input[s.offset:])
	return nil, &ScanError{
		Char:     char,
		Offset:   s.offset,
		State:    s.state,
		Expected: expectedTypes(s.rules),
	}
}

// Offset is the cursor position: the end of the last produced token.
func (s *Scanner) Offset() int {
	return s.offset
}

// PreviousTokenOffset is the start position of the last produced token.
func (s *Scanner) PreviousTokenOffset() int {
	return s.prevOffset
}

// StackDepth reports how many pushed states have not been popped yet. A
// balanced grammar leaves it at zero at end of input.
func (s *Scanner) StackDepth() int {
	return len(s.stack)
}

// State is the scanner's current state.
func (s *Scanner) State() State {
	return s.state
}

func expectedTypes(rules []*Rule) []TokenType {
	var types []TokenType
	seen := make(map[TokenType]bool)
	for _, rule := range rules {
		if seen[rule.tokenType] {
			continue
		}
		seen[rule.tokenType] = true
		types = append(types, rule.tokenType)
	}
	return types
}
