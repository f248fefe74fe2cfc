package scripts

import (
	"fmt"

	"github.com/reusee/lexpr/expr"
	"github.com/reusee/lexpr/scan"
	"go.starlark.net/starlark"
)

// Builtins are the toolkit functions predeclared for scripts:
//
//	expand(template, vars={}) -> string
//	evaluate(source, vars={}) -> value
//	tokenize(rules, input) -> list of (type, text) tuples
func Builtins() starlark.StringDict {
	return starlark.StringDict{
		"expand":   starlark.NewBuiltin("expand", expandBuiltin),
		"evaluate": starlark.NewBuiltin("evaluate", evaluateBuiltin),
		"tokenize": starlark.NewBuiltin("tokenize", tokenizeBuiltin),
	}
}

func expandBuiltin(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var template string
	var varsDict *starlark.Dict
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "template", &template, "vars?", &varsDict); err != nil {
		return nil, err
	}
	vars, err := fromDict(varsDict)
	if err != nil {
		return nil, err
	}
	expression, err := expr.Expand(template, func(name string) bool {
		_, ok := vars[name]
		return ok
	})
	if err != nil {
		return nil, err
	}
	return starlark.String(expr.EvaluateLeniently(expression, vars)), nil
}

func evaluateBuiltin(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var source string
	var varsDict *starlark.Dict
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "source", &source, "vars?", &varsDict); err != nil {
		return nil, err
	}
	vars, err := fromDict(varsDict)
	if err != nil {
		return nil, err
	}
	expression, err := expr.Parse(source)
	if err != nil {
		return nil, err
	}
	value, err := expression.Evaluate(vars)
	if err != nil {
		return nil, err
	}
	return toStarlarkValue(value), nil
}

func tokenizeBuiltin(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (ret starlark.Value, err error) {
	var rules *starlark.List
	var input string
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "rules", &rules, "input", &input); err != nil {
		return nil, err
	}

	// a bad pattern panics in scan
	defer func() {
		if p := recover(); p != nil {
			ret = nil
			err = fmt.Errorf("%s: %v", fn.Name(), p)
		}
	}()

	table := scan.NewTable()
	for i := range rules.Len() {
		pair, ok := rules.Index(i).(starlark.Tuple)
		if !ok || pair.Len() != 2 {
			return nil, fmt.Errorf("%s: rule %d must be a (pattern, type) tuple", fn.Name(), i)
		}
		pattern, ok := starlark.AsString(pair.Index(0))
		if !ok {
			return nil, fmt.Errorf("%s: rule %d pattern must be a string", fn.Name(), i)
		}
		tokenType, ok := starlark.AsString(pair.Index(1))
		if !ok {
			return nil, fmt.Errorf("%s: rule %d type must be a string", fn.Name(), i)
		}
		table.AddRule(pattern, scan.TokenType(tokenType))
	}

	scanner := table.NewScanner(input)
	var tokens []starlark.Value
	for {
		token, err := scanner.Produce()
		if err != nil {
			return nil, err
		}
		if token == nil {
			break
		}
		tokens = append(tokens, starlark.Tuple{
			starlark.String(token.Type),
			starlark.String(token.Text),
		})
	}
	return starlark.NewList(tokens), nil
}
