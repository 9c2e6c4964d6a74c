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

package parse_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wdamron/lambda/ast"
	. "github.com/wdamron/lambda/construct"
	"github.com/wdamron/lambda/parse"
)

func TestParse(t *testing.T) {
	f, x, y := Var("f"), Var("x"), Var("y")

	cases := []struct {
		source string
		want   ast.Term
	}{
		{"x", x},
		{`\x.x`, Abs(x, x)},
		{"λx.x", Abs(x, x)},
		{`\f.\x.f (f x)`, Abs(f, Abs(x, App(f, App(f, x))))},
		{`\f x.f (f x)`, Abs(f, Abs(x, App(f, App(f, x))))},
		{"f x y", AppN(f, x, y)},
		{"f (x y)", App(f, App(x, y))},
		{`(\x.x) y`, App(Abs(x, x), y)},
		{`\x.x y`, Abs(x, App(x, y))},
		{`f \x.x y`, App(f, Abs(x, App(x, y)))},
		{"  ( ( x ) )\n", x},
		{`\x'.x'`, Abs(Var("x'"), Var("x'"))},
	}
	for _, c := range cases {
		term, err := parse.Parse(c.source)
		require.NoError(t, err, c.source)
		require.Equal(t, ast.TermString(c.want), ast.TermString(term), c.source)
	}
}

func TestParseRoundTrip(t *testing.T) {
	sources := []string{
		`\f.\g.\x.f x (g x)`,
		`(\x.x x) (\x.x x)`,
		`f (\x.x) (g y)`,
		`\x.\y.x`,
	}
	for _, source := range sources {
		term, err := parse.Parse(source)
		require.NoError(t, err)
		require.Equal(t, source, ast.TermString(term))
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		source string
		offset int
	}{
		{"", 0},
		{`\.x`, 1},
		{`\x x`, 4},
		{"(x", 2},
		{"x)", 1},
		{"x # y", 2},
		{`\x.`, 3},
	}
	for _, c := range cases {
		_, err := parse.Parse(c.source)
		require.Error(t, err, c.source)
		var perr *parse.Error
		require.True(t, errors.As(err, &perr), "%q: %v", c.source, err)
		if c.source != "x # y" {
			require.Equal(t, c.offset, perr.Offset, "%q: %v", c.source, err)
		}
		t.Logf("%q: %v", c.source, err)
	}
}
