package expr

import (
	"fmt"
	"strconv"

	"github.com/reusee/lexpr/parse"
	"github.com/reusee/lexpr/scan"
)

// Parse builds an expression tree from source text. The grammar is the
// usual one: || binds loosest, then &&, relational, additive, multiplicative
// operators, unary - and !, literals, variable references, parentheses.
func Parse(source string) (Expression, error) {
	return ParseWith(source, nil)
}

// ParseWith additionally gates bare identifiers: only names the predicate
// accepts may appear as variable references. A nil predicate accepts all.
func ParseWith(source string, isValidName func(string) bool) (Expression, error) {
	p := &parser{
		Parser: parse.New(parse.Filter(
			grammar().NewScanner(source),
			func(token *scan.Token) bool {
				return token.Type != TypeWhitespace
			},
		)),
		isValidName: isValidName,
	}
	expression, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if err := p.EOI(); err != nil {
		return nil, err
	}
	return expression, nil
}

type parser struct {
	*parse.Parser
	isValidName func(string) bool
}

func (p *parser) parseOr() (Expression, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		ok, err := p.PeekRead("||")
		if err != nil {
			return nil, err
		}
		if !ok {
			return left, nil
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = LogicalOr(left, right)
	}
}

func (p *parser) parseAnd() (Expression, error) {
	left, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	for {
		ok, err := p.PeekRead("&&")
		if err != nil {
			return nil, err
		}
		if !ok {
			return left, nil
		}
		right, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		left = LogicalAnd(left, right)
	}
}

var relationalOps = []string{"==", "!=", "<=", ">=", "<", ">"}

func (p *parser) parseRelational() (Expression, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		idx, err := p.PeekReadAny(relationalOps...)
		if err != nil {
			return nil, err
		}
		if idx < 0 {
			return left, nil
		}
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &binary{op: relationalOps[idx], left: left, right: right}
	}
}

func (p *parser) parseAdditive() (Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		idx, err := p.PeekReadAny("+", "-")
		if err != nil {
			return nil, err
		}
		if idx < 0 {
			return left, nil
		}
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &binary{op: []string{"+", "-"}[idx], left: left, right: right}
	}
}

func (p *parser) parseMultiplicative() (Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		idx, err := p.PeekReadAny("*", "/", "%")
		if err != nil {
			return nil, err
		}
		if idx < 0 {
			return left, nil
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &binary{op: []string{"*", "/", "%"}[idx], left: left, right: right}
	}
}

func (p *parser) parseUnary() (Expression, error) {
	idx, err := p.PeekReadAny("-", "!")
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return p.parsePrimary()
	}
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &unary{op: []string{"-", "!"}[idx], operand: operand}, nil
}

func (p *parser) parsePrimary() (Expression, error) {
	token, err := p.Read()
	if err != nil {
		return nil, err
	}

	switch token.Type {

	case TypeInteger:
		i, err := strconv.ParseInt(token.Text, 10, 64)
		if err != nil {
			return nil, &parse.ParseError{Message: fmt.Sprintf("invalid integer literal %q: %v", token.Text, err)}
		}
		return ConstantExpression(i), nil

	case TypeFloat:
		f, err := strconv.ParseFloat(token.Text, 64)
		if err != nil {
			return nil, &parse.ParseError{Message: fmt.Sprintf("invalid float literal %q: %v", token.Text, err)}
		}
		return ConstantExpression(f), nil

	case TypeString:
		return ConstantExpression(unescape(token.Group(1))), nil

	case TypeIdentifier:
		switch token.Text {
		case "true":
			return True, nil
		case "false":
			return False, nil
		}
		if p.isValidName != nil && !p.isValidName(token.Text) {
			return nil, &parse.ParseError{Message: fmt.Sprintf("invalid variable name %q", token.Text)}
		}
		return &variableRef{name: token.Text}, nil

	case TypeOperator:
		if token.Text == "(" {
			expression, err := p.parseOr()
			if err != nil {
				return nil, err
			}
			if _, err := p.ReadText(")"); err != nil {
				return nil, err
			}
			return expression, nil
		}
	}

	return nil, &parse.ParseError{Message: fmt.Sprintf("expected an expression instead of %q", token.Text)}
}
