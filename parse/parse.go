// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package parse reads lambda-terms from their surface syntax:
//
//	term   := lambda | atom+ [lambda]
//	lambda := ("\" | "λ") name+ "." term
//	atom   := name | "(" term ")"
//
// Application associates to the left, and the body of an abstraction extends as far to the
// right as possible: `\x y.f x y` is `\x.\y.((f x) y)`.
package parse

import (
	"strconv"

	"github.com/wdamron/lambda/ast"
)

// Error describes malformed syntax at a byte offset of the source.
type Error struct {
	Message string
	Offset  int
}

func (e *Error) Error() string {
	return "Syntax error at offset " + strconv.Itoa(e.Offset) + ": " + e.Message
}

// Parse a single lambda-term from source.
func Parse(source string) (ast.Term, error) {
	tokens, err := tokenize(source)
	if err != nil {
		return nil, err
	}
	p := parser{tokens: tokens}
	t, err := p.term()
	if err != nil {
		return nil, err
	}
	if next := p.peek(); next.kind != tokenEnd {
		return nil, p.unexpected(next, tokenEnd)
	}
	return t, nil
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token { return p.tokens[p.pos] }

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokenEnd {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind) (token, error) {
	t := p.next()
	if t.kind != kind {
		return t, p.unexpected(t, kind)
	}
	return t, nil
}

func (p *parser) unexpected(found token, expected tokenKind) error {
	desc := found.kind.String()
	if found.kind == tokenName {
		desc = "`" + found.value + "`"
	}
	return &Error{Message: "Expected " + expected.String() + ", found " + desc, Offset: found.offset}
}

func (p *parser) term() (ast.Term, error) {
	if p.peek().kind == tokenLambda {
		return p.lambda()
	}
	var t ast.Term
	for p.peek().kind == tokenName || p.peek().kind == tokenLeftParenthesis {
		arg, err := p.atom()
		if err != nil {
			return nil, err
		}
		t = apply(t, arg)
	}
	if t == nil {
		next := p.peek()
		return nil, &Error{Message: "Expected a term, found " + next.kind.String(), Offset: next.offset}
	}
	// A trailing abstraction is the last argument: `f \x.x`
	if p.peek().kind == tokenLambda {
		arg, err := p.lambda()
		if err != nil {
			return nil, err
		}
		t = apply(t, arg)
	}
	return t, nil
}

func apply(f, arg ast.Term) ast.Term {
	if f == nil {
		return arg
	}
	return &ast.App{Left: f, Right: arg}
}

func (p *parser) lambda() (ast.Term, error) {
	if _, err := p.expect(tokenLambda); err != nil {
		return nil, err
	}
	var vars []*ast.Var
	for p.peek().kind == tokenName {
		vars = append(vars, &ast.Var{Name: p.next().value})
	}
	if len(vars) == 0 {
		return nil, p.unexpected(p.peek(), tokenName)
	}
	if _, err := p.expect(tokenDot); err != nil {
		return nil, err
	}
	body, err := p.term()
	if err != nil {
		return nil, err
	}
	for i := len(vars) - 1; i >= 0; i-- {
		body = &ast.Abs{Var: vars[i], Body: body}
	}
	return body, nil
}

func (p *parser) atom() (ast.Term, error) {
	t := p.next()
	switch t.kind {
	case tokenName:
		return &ast.Var{Name: t.value}, nil
	case tokenLeftParenthesis:
		inner, err := p.term()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokenRightParenthesis); err != nil {
			return nil, err
		}
		return inner, nil
	}
	return nil, p.unexpected(t, tokenName)
}
