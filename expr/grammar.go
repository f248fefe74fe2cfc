package expr

import (
	"strings"
	"sync"

	"github.com/reusee/lexpr/scan"
)

const (
	TypeWhitespace scan.TokenType = "whitespace"
	TypeFloat      scan.TokenType = "float"
	TypeInteger    scan.TokenType = "integer"
	TypeString     scan.TokenType = "string"
	TypeIdentifier scan.TokenType = "identifier"
	TypeOperator   scan.TokenType = "operator"
)

// grammar is the shared rule table for expression source text, built once.
// Order matters: float before integer, multi-character operators before
// single-character ones.
var grammar = sync.OnceValue(func() *scan.Table {
	table := scan.NewTable()
	table.AddRule(`\s+`, TypeWhitespace)
	table.AddRule(`\d+\.\d+`, TypeFloat)
	table.AddRule(`\d+`, TypeInteger)
	table.AddRule(`"((?:[^"\\]|\\.)*)"`, TypeString)
	table.AddRule(`[A-Za-z_][A-Za-z0-9_]*`, TypeIdentifier)
	table.AddRule(`\|\||&&|==|!=|<=|>=|[-+*/%()<>!]`, TypeOperator)
	return table
})

func unescape(text string) string {
	if !strings.ContainsRune(text, '\\') {
		return text
	}
	var sb strings.Builder
	escaped := false
	for _, r := range text {
		if !escaped {
			if r == '\\' {
				escaped = true
			} else {
				sb.WriteRune(r)
			}
			continue
		}
		escaped = false
		switch r {
		case 'n':
			sb.WriteRune('\n')
		case 'r':
			sb.WriteRune('\r')
		case 't':
			sb.WriteRune('\t')
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
