package parse

import (
	"fmt"

	"github.com/reusee/lexpr/scan"
)

// Parser adds one token of lookahead over any TokenSource. At most one token
// is buffered at a time. A parser is single-use and not safe for concurrent
// use.
type Parser struct {
	source    TokenSource
	lookahead *scan.Token
}

func New(source TokenSource) *Parser {
	return &Parser{
		source: source,
	}
}

// Peek returns the next token without consuming it, or nil at end of input.
// Repeated calls without an intervening Read return the identical token.
func (p *Parser) Peek() (*scan.Token, error) {
	if p.lookahead != nil {
		return p.lookahead, nil
	}
	token, err := p.source.Produce()
	if err != nil {
		return nil, wrap(err)
	}
	p.lookahead = token
	return token, nil
}

// PeekType reports which of the given types the next token has, or -1.
func (p *Parser) PeekType(types ...scan.TokenType) (int, error) {
	token, err := p.Peek()
	if err != nil || token == nil {
		return -1, err
	}
	for i, tokenType := range types {
		if token.Type == tokenType {
			return i, nil
		}
	}
	return -1, nil
}

// PeekText reports which of the given texts the next token has, or -1.
func (p *Parser) PeekText(texts ...string) (int, error) {
	token, err := p.Peek()
	if err != nil || token == nil {
		return -1, err
	}
	for i, text := range texts {
		if token.Text == text {
			return i, nil
		}
	}
	return -1, nil
}

// PeekRead consumes the next token iff its text matches.
func (p *Parser) PeekRead(text string) (bool, error) {
	idx, err := p.PeekReadAny(text)
	return idx == 0, err
}

// PeekReadAny consumes the next token iff its text is one of the candidates,
// reporting which one, or -1 without consuming.
func (p *Parser) PeekReadAny(texts ...string) (int, error) {
	idx, err := p.PeekText(texts...)
	if err != nil || idx < 0 {
		return idx, err
	}
	p.lookahead = nil
	return idx, nil
}

// PeekReadType consumes and returns the next token iff it has the given
// type; returns nil without consuming otherwise.
func (p *Parser) PeekReadType(tokenType scan.TokenType) (*scan.Token, error) {
	token, err := p.Peek()
	if err != nil || token == nil {
		return nil, err
	}
	if token.Type != tokenType {
		return nil, nil
	}
	p.lookahead = nil
	return token, nil
}

// Read consumes and returns the next token; it is an error to read past the
// end of input.
func (p *Parser) Read() (*scan.Token, error) {
	token, err := p.Peek()
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, &ParseError{Message: "unexpected end of input"}
	}
	p.lookahead = nil
	return token, nil
}

// ReadText consumes the next token, which must have one of the given texts,
// and returns the matched text.
func (p *Parser) ReadText(texts ...string) (string, error) {
	token, err := p.Peek()
	if err != nil {
		return "", err
	}
	if token != nil {
		for _, text := range texts {
			if token.Text == text {
				p.lookahead = nil
				return text, nil
			}
		}
	}
	return "", expected(quoted(texts), token)
}

// ReadType consumes and returns the next token, which must have the given
// type.
func (p *Parser) ReadType(tokenType scan.TokenType) (*scan.Token, error) {
	token, err := p.Peek()
	if err != nil {
		return nil, err
	}
	if token == nil || token.Type != tokenType {
		return nil, expected([]string{string(tokenType)}, token)
	}
	p.lookahead = nil
	return token, nil
}

// Unread pushes a token back as the next lookahead. Only one token of
// buffering is supported: Unread panics if a lookahead is already pending.
func (p *Parser) Unread(token *scan.Token) {
	if p.lookahead != nil {
		panic(fmt.Errorf("unread with a pending lookahead token %q", p.lookahead.Text))
	}
	p.lookahead = token
}

// EOI asserts that no tokens remain.
func (p *Parser) EOI() error {
	token, err := p.Peek()
	if err != nil {
		return err
	}
	if token != nil {
		return expected([]string{"end of input"}, token)
	}
	return nil
}
