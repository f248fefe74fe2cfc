package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/reusee/dscope"
	"github.com/reusee/lexpr/cmds"
	"github.com/reusee/lexpr/expr"
	"github.com/reusee/lexpr/grammars"
	"github.com/reusee/lexpr/logs"
	"github.com/reusee/lexpr/scripts"
	"github.com/reusee/lexpr/vars"
)

var (
	grammarFileFlag = cmds.Var[string]("-grammar-file")
	delimiterFlag   = cmds.Var[string]("-delimiter")
)

var scope = sync.OnceValue(func() dscope.Scope {
	return dscope.New(new(scripts.Module))
})

// evalVars accumulates "var name=value" bindings used by eval, expand and
// repl.
var evalVars = map[string]any{}

func init() {
	cmds.Define("var", cmds.Func(func(pair string) error {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("expected name=value, got %q", pair)
		}
		evalVars[name] = parseValue(value)
		return nil
	}).Desc("bind a variable: var name=value"))

	cmds.Define("eval", cmds.Func(func(source string) error {
		expression, err := expr.Parse(source)
		if err != nil {
			return renderError(source, err)
		}
		value, err := expression.Evaluate(evalVars)
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	}).Desc("evaluate an expression"))

	cmds.Define("expand", cmds.Func(func(template string) error {
		expression, err := expr.ExpandWith(delimiter(), template, anyName)
		if err != nil {
			return renderError(template, err)
		}
		fmt.Println(expr.EvaluateLeniently(expression, evalVars))
		return nil
	}).Desc("expand a template with embedded expressions"))

	cmds.Define("tokenize", cmds.Func(func(grammarName string, input string) error {
		if *grammarFileFlag == "" {
			return fmt.Errorf("no grammar file, use -grammar-file")
		}
		loader := grammars.NewLoader([]string{*grammarFileFlag})
		table, err := loader.Table(grammarName)
		if err != nil {
			return err
		}
		scanner := table.NewScanner(input)
		for {
			token, err := scanner.Produce()
			if err != nil {
				return renderError(input, err)
			}
			if token == nil {
				return nil
			}
			fmt.Printf("%s\t%q\n", token.Type, token.Text)
		}
	}).Desc("tokenize input with a grammar from -grammar-file"))

	cmds.Define("script", cmds.Func(func(path string) error {
		var err error
		scope().Call(func(
			run scripts.Run,
		) {
			_, err = run(path, nil)
		})
		return err
	}).Desc("run a starlark script with the toolkit builtins"))

	cmds.Define("repl", cmds.Func(func() error {
		var logger logs.Logger
		scope().Call(func(l logs.Logger) {
			logger = l
		})
		return repl(logger)
	}).Desc("interactive expression evaluation"))
}

func main() {
	cmds.Execute(os.Args[1:])
}

func anyName(string) bool { return true }

func delimiter() rune {
	d := vars.FirstNonZero(*delimiterFlag, "#")
	return []rune(d)[0]
}

// parseValue guesses a literal type for a command line binding.
func parseValue(str string) any {
	if i, err := strconv.ParseInt(str, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(str, 64); err == nil {
		return f
	}
	switch str {
	case "true":
		return true
	case "false":
		return false
	}
	return str
}
