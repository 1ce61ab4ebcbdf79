package crisp

import (
	"io"
	"strings"
)

// ParseString parses src into its ordered top-level expressions.
func ParseString(src string) ([]Expr, error) {
	return Parse(strings.NewReader(src))
}

// Parse reads every top-level expression from r.
func Parse(r io.Reader) ([]Expr, error) {
	p := &parser{l: newLexer(r)}

	var exprs []Expr
	for {
		tok, err := p.next()
		if err == io.EOF {
			return exprs, nil
		}
		if err != nil {
			return nil, err
		}
		e, err := p.parseExpression(tok)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
}

type parser struct {
	l *lexer
	t interface{}
}

func (p *parser) peek() interface{} {
	if p.t == nil {
		p.t, _ = p.l.next()
	}
	return p.t
}

func (p *parser) next() (interface{}, error) {
	if p.t != nil {
		v := p.t
		p.t = nil
		return v, nil
	}
	return p.l.next()
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return p.l.errorf(format, args...)
}

func (p *parser) parseExpression(tok interface{}) (Expr, error) {
	switch tok := tok.(type) {
	case Expr:
		return tok, nil
	case rune:
		switch tok {
		case '\'':
			return p.parseQuote()
		case '(':
			return p.parseForm()
		case ')':
			return nil, p.errorf("unexpected )")
		}
	}
	return nil, p.errorf("unexpected token %v", tok)
}

func (p *parser) parseQuote() (Expr, error) {
	tok, err := p.next()
	if err != nil {
		return nil, p.errorf("unterminated quote")
	}
	if tok != '(' {
		return nil, p.errorf("quote must be followed by a list")
	}

	q := Quote{}
	for {
		if p.peek() == ')' {
			p.next()
			return q, nil
		}
		tok, err := p.next()
		if err != nil {
			return nil, p.errorf("unterminated quote")
		}
		e, err := p.parseExpression(tok)
		if err != nil {
			return nil, err
		}
		q = append(q, e)
	}
}

func (p *parser) parseForm() (Expr, error) {
	switch p.peek() {
	case ')':
		p.next()
		return nil, nil
	case Symbol("if"):
		p.next()
		return p.parseIf()
	case Symbol("let"):
		p.next()
		return p.parseLet()
	case Symbol("fn"):
		p.next()
		return p.parseFunction()
	}

	tok, err := p.next()
	if err != nil {
		return nil, p.errorf("unterminated form")
	}
	head, err := p.parseExpression(tok)
	if err != nil {
		return nil, err
	}

	var args []Expr
	for {
		if p.peek() == ')' {
			p.next()
			return &Call{Head: head, Args: args}, nil
		}
		tok, err := p.next()
		if err != nil {
			return nil, p.errorf("unterminated form")
		}
		arg, err := p.parseExpression(tok)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
}

func (p *parser) parseIf() (Expr, error) {
	pred, err := p.parseElement("if")
	if err != nil {
		return nil, err
	}
	then, err := p.parseElement("if")
	if err != nil {
		return nil, err
	}

	e := &If{Pred: pred, Then: then}
	if p.peek() != ')' {
		if e.Otherwise, err = p.parseElement("if"); err != nil {
			return nil, err
		}
	}
	if tok, _ := p.next(); tok != ')' {
		return nil, p.errorf("if takes a predicate, a branch, and an optional else branch")
	}
	return e, nil
}

func (p *parser) parseLet() (Expr, error) {
	var bindings Let
	for {
		switch p.peek() {
		case ')':
			p.next()
			return bindings, nil
		case '(':
			p.next()
		default:
			return nil, p.errorf("let bindings must be of the form (name value)")
		}

		tok, err := p.next()
		if err != nil {
			return nil, p.errorf("unterminated let binding")
		}
		name, ok := tok.(Atom)
		if !ok {
			return nil, p.errorf("let binding names must be atoms")
		}
		value, err := p.parseElement("let")
		if err != nil {
			return nil, err
		}
		if tok, _ := p.next(); tok != ')' {
			return nil, p.errorf("let bindings must be of the form (name value)")
		}

		bindings = append(bindings, Binding{Name: name, Value: value})
	}
}

func (p *parser) parseFunction() (Expr, error) {
	if tok, _ := p.next(); tok != '(' {
		return nil, p.errorf("fn must be of the form (fn (params) body)")
	}

	var params []Expr
	for {
		if p.peek() == ')' {
			p.next()
			break
		}
		tok, err := p.next()
		if err != nil {
			return nil, p.errorf("unterminated parameter list")
		}
		param, ok := tok.(Symbol)
		if !ok {
			return nil, p.errorf("fn parameters must be symbols")
		}
		params = append(params, param)
	}

	body, err := p.parseElement("fn")
	if err != nil {
		return nil, err
	}
	if tok, _ := p.next(); tok != ')' {
		return nil, p.errorf("fn must be of the form (fn (params) body)")
	}
	return &Function{Params: params, Body: body}, nil
}

func (p *parser) parseElement(form string) (Expr, error) {
	if p.peek() == ')' {
		return nil, p.errorf("%s is missing an expression", form)
	}
	tok, err := p.next()
	if err != nil {
		return nil, p.errorf("unterminated %s", form)
	}
	return p.parseExpression(tok)
}
