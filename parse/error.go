package parse

import (
	"fmt"
	"strings"

	"github.com/reusee/lexpr/scan"
)

// ParseError reports a token that does not match what the grammar production
// expects, a premature end of input, or a wrapped scan failure.
type ParseError struct {
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func wrap(err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Err: err}
}

// expected builds the uniform "expected X instead of Y" message. Literal
// texts come quoted, token types and the end-of-input marker bare.
func expected(alternatives []string, found *scan.Token) *ParseError {
	var sb strings.Builder
	sb.WriteString("expected ")
	for i, alternative := range alternatives {
		if i > 0 {
			if i == len(alternatives)-1 {
				sb.WriteString(" or ")
			} else {
				sb.WriteString(", ")
			}
		}
		sb.WriteString(alternative)
	}
	sb.WriteString(" instead of ")
	if found == nil {
		sb.WriteString("end of input")
	} else {
		fmt.Fprintf(&sb, "%q", found.Text)
	}
	return &ParseError{Message: sb.String()}
}

func quoted(texts []string) []string {
	alternatives := make([]string, len(texts))
	for i, text := range texts {
		alternatives[i] = fmt.Sprintf("%q", text)
	}
	return alternatives
}
