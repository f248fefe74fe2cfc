package scan

// TokenType tags a token with its grammar-specific kind. Each grammar
// declares its own closed set of values.
type TokenType string

// Token is one classified unit of input text. Tokens are immutable once
// produced.
type Token struct {
	Type   TokenType
	Text   string
	Groups []string
}

// Group returns the text of the n-th capture group (1-based, like regexp
// group numbering). Groups that did not participate in the match are empty.
func (t *Token) Group(n int) string {
	if n < 1 || n > len(t.Groups) {
		return ""
	}
	return t.Groups[n-1]
}
