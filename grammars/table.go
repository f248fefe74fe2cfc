package grammars

import (
	"fmt"

	"github.com/reusee/lexpr/scan"
)

type grammarDef struct {
	Rules []ruleDef `json:"rules"`
}

type ruleDef struct {
	State   string `json:"state"`
	Pattern string `json:"pattern"`
	Type    string `json:"type"`
	GoTo    string `json:"goto"`
	Push    string `json:"push"`
	Pop     bool   `json:"pop"`
}

// Table builds a scan.Table from the named grammar, searching the loader's
// files in order.
func (l Loader) Table(name string) (table *scan.Table, err error) {
	var def grammarDef
	if err := l.lookupFirst("grammars."+name, &def); err != nil {
		return nil, fmt.Errorf("load grammar %q: %w", name, err)
	}

	// Rule patterns are validated at table construction time, which panics
	// on a bad regex.
	defer func() {
		if p := recover(); p != nil {
			table = nil
			err = fmt.Errorf("grammar %q: %v", name, p)
		}
	}()

	table = scan.NewTable()
	for i, rule := range def.Rules {
		handle := table.AddStateRule(stateOf(rule.State), rule.Pattern, scan.TokenType(rule.Type))

		transitions := 0
		if rule.GoTo != "" {
			handle.GoTo(stateOf(rule.GoTo))
			transitions++
		}
		if rule.Push != "" {
			handle.Push(stateOf(rule.Push))
			transitions++
		}
		if rule.Pop {
			handle.Pop()
			transitions++
		}
		if transitions > 1 {
			return nil, fmt.Errorf("grammar %q rule %d: at most one of goto, push, pop", name, i)
		}
	}
	return table, nil
}

// stateOf maps a definition-file state name to a scan.State. The name
// "default" (and the empty string, for the rule's own state field) means the
// default state; a goto back to it is written as goto: "default".
func stateOf(name string) scan.State {
	if name == "default" {
		return scan.DefaultState
	}
	return scan.State(name)
}
