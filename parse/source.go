package parse

import "github.com/reusee/lexpr/scan"

// TokenSource produces tokens one at a time; nil means end of input. It is
// satisfied by *scan.Scanner and by any hand-written producer.
type TokenSource interface {
	Produce() (*scan.Token, error)
}

// SourceFunc adapts a plain function to TokenSource.
type SourceFunc func() (*scan.Token, error)

func (fn SourceFunc) Produce() (*scan.Token, error) {
	return fn()
}

// Slice is a TokenSource over an in-memory token sequence.
func Slice(tokens []*scan.Token) TokenSource {
	idx := 0
	return SourceFunc(func() (*scan.Token, error) {
		if idx >= len(tokens) {
			return nil, nil
		}
		token := tokens[idx]
		idx++
		return token, nil
	})
}

// Filter drops every token the keep predicate rejects, e.g. whitespace before
// a parser that does not care about it.
func Filter(source TokenSource, keep func(*scan.Token) bool) TokenSource {
	return SourceFunc(func() (*scan.Token, error) {
		for {
			token, err := source.Produce()
			if err != nil {
				return nil, err
			}
			if token == nil {
				return nil, nil
			}
			if keep(token) {
				return token, nil
			}
		}
	})
}
