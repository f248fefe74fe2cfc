package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/reusee/lexpr/expr"
	"github.com/reusee/lexpr/logs"
)

const historyFile = ".lexpr_history"

// repl reads one expression per line. "name = expression" binds a variable
// for later lines; a line starting with the template delimiter is expanded
// instead of evaluated.
func repl(logger logs.Logger) error {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("> ")
		if err != nil {
			// Ctrl-C or Ctrl-D
			fmt.Println()
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ":quit" {
			return nil
		}
		ln.AppendHistory(line)

		if name, source, ok := splitAssignment(line); ok {
			value, err := evalLine(source)
			if err != nil {
				fmt.Fprintln(os.Stderr, red(err.Error()))
				continue
			}
			evalVars[name] = value
			logger.Debug("bind", "name", name, "value", value)
			continue
		}

		value, err := evalLine(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			continue
		}
		fmt.Println(value)
	}
}

func evalLine(source string) (any, error) {
	if strings.ContainsRune(source, delimiter()) {
		expression, err := expr.ExpandWith(delimiter(), source, anyName)
		if err != nil {
			return nil, renderError(source, err)
		}
		return expr.EvaluateLeniently(expression, evalVars), nil
	}
	expression, err := expr.Parse(source)
	if err != nil {
		return nil, renderError(source, err)
	}
	return expression.Evaluate(evalVars)
}

// splitAssignment recognizes "name = expression" lines. The = must not be
// part of an operator like == or <=.
func splitAssignment(line string) (name string, source string, ok bool) {
	i := strings.IndexByte(line, '=')
	if i <= 0 || i+1 >= len(line) {
		return "", "", false
	}
	if line[i+1] == '=' || line[i-1] == '!' || line[i-1] == '<' || line[i-1] == '>' {
		return "", "", false
	}
	name = strings.TrimSpace(line[:i])
	for _, r := range name {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_') {
			return "", "", false
		}
	}
	if name == "" {
		return "", "", false
	}
	return name, strings.TrimSpace(line[i+1:]), true
}
