package expr

import (
	"fmt"
	"strings"

	"github.com/reusee/lexpr/parse"
)

// Delimiter marks embedded expressions in a template string.
const Delimiter = '#'

// Expand parses a template string: text outside delimiter pairs becomes
// string constants, text between a pair of delimiters is parsed as an
// embedded expression, and the result is the ordered concatenation of all
// fragments. The predicate decides which bare identifiers are acceptable as
// variable references inside embedded expressions.
func Expand(source string, isValidName func(string) bool) (Expression, error) {
	return ExpandWith(Delimiter, source, isValidName)
}

// ExpandWith is Expand with a custom delimiter character.
func ExpandWith(delimiter rune, source string, isValidName func(string) bool) (Expression, error) {
	var parts []Expression
	rest := source
	for {
		i := strings.IndexRune(rest, delimiter)
		if i < 0 {
			if rest != "" {
				parts = append(parts, ConstantExpression(rest))
			}
			break
		}
		if i > 0 {
			parts = append(parts, ConstantExpression(rest[:i]))
		}
		rest = rest[i+len(string(delimiter)):]

		j := strings.IndexRune(rest, delimiter)
		if j < 0 {
			return nil, &parse.ParseError{Message: fmt.Sprintf("missing closing %q for embedded expression", delimiter)}
		}
		embedded, err := ParseWith(rest[:j], isValidName)
		if err != nil {
			return nil, err
		}
		parts = append(parts, embedded)
		rest = rest[j+len(string(delimiter)):]
	}

	switch len(parts) {
	case 0:
		return ConstantExpression(""), nil
	case 1:
		return parts[0], nil
	}
	return &concat{parts: parts}, nil
}

// EvaluateLeniently renders the expression as a string, downgrading any
// failure, including panics, to an inline placeholder embedding the error
// message. Meant for best-effort template rendering.
func EvaluateLeniently(expression Expression, vars map[string]any) (result string) {
	defer func() {
		if p := recover(); p != nil {
			result = fmt.Sprintf("[cannot evaluate: %v]", p)
		}
	}()
	value, err := expression.Evaluate(vars)
	if err != nil {
		return fmt.Sprintf("[cannot evaluate: %s]", err)
	}
	return stringify(value)
}
