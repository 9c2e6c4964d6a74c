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

package parse

import (
	lex "github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

type tokenKind int

const (
	tokenLambda tokenKind = iota
	tokenDot
	tokenLeftParenthesis
	tokenRightParenthesis
	tokenName
	tokenEnd
)

var tokenNames = [...]string{
	tokenLambda:           "`\\`",
	tokenDot:              "`.`",
	tokenLeftParenthesis:  "`(`",
	tokenRightParenthesis: "`)`",
	tokenName:             "a name",
	tokenEnd:              "the end of input",
}

func (k tokenKind) String() string { return tokenNames[k] }

type token struct {
	kind   tokenKind
	value  string
	offset int
}

type tokenRule struct {
	kind    tokenKind
	pattern string
	skip    bool
}

var rules = []tokenRule{
	{pattern: `[ \t\n]+`, skip: true},
	{kind: tokenLambda, pattern: `\\|λ`},
	{kind: tokenDot, pattern: `\.`},
	{kind: tokenLeftParenthesis, pattern: `\(`},
	{kind: tokenRightParenthesis, pattern: `\)`},
	{kind: tokenName, pattern: `[A-Za-z_][A-Za-z0-9_']*`},
}

var lexer *lex.Lexer

func emit(kind tokenKind) lex.Action {
	return func(s *lex.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(kind), string(m.Bytes), m), nil
	}
}

func skip(*lex.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func init() {
	lexer = lex.NewLexer()
	for _, rule := range rules {
		action := skip
		if !rule.skip {
			action = emit(rule.kind)
		}
		lexer.Add([]byte(rule.pattern), action)
	}
	if err := lexer.CompileNFA(); err != nil {
		panic(err)
	}
}

// tokenize source. The returned tokens always end with a tokenEnd.
func tokenize(source string) ([]token, error) {
	scanner, err := lexer.Scanner([]byte(source))
	if err != nil {
		return nil, err
	}

	var tokens []token
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			return nil, &Error{Message: "Unexpected character", Offset: scanner.TC}
		}
		t := tok.(*lex.Token)
		tokens = append(tokens, token{
			kind:   tokenKind(t.Type),
			value:  t.Value.(string),
			offset: t.TC,
		})
	}
	return append(tokens, token{kind: tokenEnd, offset: len(source)}), nil
}
