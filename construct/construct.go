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

package construct

import (
	"github.com/wdamron/lambda/ast"
	"github.com/wdamron/lambda/types"
)

// Types

// Type-variable: `t0`
func TVar(name string) *types.Var {
	return types.NewVar(name)
}

// Function type: `t0 -> t1`
func TArrow(from, to types.Type) *types.Arrow {
	return types.NewArrow(from, to)
}

// Function type: `t0 -> t1 -> t2`
func TArrowN(first types.Type, rest ...types.Type) types.Type {
	if len(rest) == 0 {
		return first
	}
	return types.NewArrow(first, TArrowN(rest[0], rest[1:]...))
}

// Terms:

// Variable
func Var(name string) *ast.Var {
	return &ast.Var{Name: name}
}

// Abstraction: `\x.body`
func Abs(v *ast.Var, body ast.Term) *ast.Abs {
	return &ast.Abs{Var: v, Body: body}
}

// Nested abstractions: `\x.\y.body`
func AbsN(vars []*ast.Var, body ast.Term) ast.Term {
	for i := len(vars) - 1; i >= 0; i-- {
		body = &ast.Abs{Var: vars[i], Body: body}
	}
	return body
}

// Application: `f x`
func App(left, right ast.Term) *ast.App {
	return &ast.App{Left: left, Right: right}
}

// Left-associated applications: `f x y`
func AppN(f ast.Term, args ...ast.Term) ast.Term {
	for _, arg := range args {
		f = &ast.App{Left: f, Right: arg}
	}
	return f
}
