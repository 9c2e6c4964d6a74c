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

package lambda_test

import (
	"testing"

	. "github.com/wdamron/lambda"
	. "github.com/wdamron/lambda/construct"

	"github.com/wdamron/lambda/ast"
)

func churchNumeral(n int) ast.Term {
	f, x := Var("f"), Var("x")
	var body ast.Term = x
	for i := 0; i < n; i++ {
		body = App(f, body)
	}
	return Abs(f, Abs(x, body))
}

func BenchmarkChurchNumeral(b *testing.B) {
	ctx := NewContext()
	expr := churchNumeral(32)

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		ty := ctx.Infer(expr)
		if ty == nil {
			b.Fatal(ctx.Error())
		}
	}
}

func BenchmarkShadowedCombinators(b *testing.B) {
	ctx := NewContext()
	x, y, z := Var("x"), Var("y"), Var("z")
	s := Abs(x, Abs(y, Abs(z, AppN(x, z, App(y, z)))))
	k := Abs(x, Abs(y, x))
	expr := AppN(s, k, k, AppN(s, k, k, AppN(s, k, k)))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		ty := ctx.Infer(expr)
		if ty == nil {
			b.Fatal(ctx.Error())
		}
	}
}

func BenchmarkSelfApplication(b *testing.B) {
	ctx := NewContext()
	x := Var("x")
	expr := Abs(x, App(x, x))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if ty := ctx.Infer(expr); ty != nil {
			b.Fatal("expected no type")
		}
	}
}
