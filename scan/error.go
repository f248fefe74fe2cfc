package scan

import (
	"fmt"
	"strings"
)

// ScanError reports that no rule of the current state matches the remaining
// input. It carries enough positional context to render a precise diagnostic.
type ScanError struct {
	Char     rune
	Offset   int
	State    State
	Expected []TokenType
}

func (e *ScanError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "unexpected character %q at offset %d in state %s", e.Char, e.Offset, e.State)
	if len(e.Expected) > 0 {
		sb.WriteString("; expected ")
		for i, tokenType := range e.Expected {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(string(tokenType))
		}
	}
	return sb.String()
}
