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

package ast

// WalkTerm visits t and each of its sub-terms in pre-order. Binders of abstractions are not
// visited separately; they are available through (*Abs).Var.
func WalkTerm(t Term, f func(Term)) {
	switch t := t.(type) {
	case *Var:
		f(t)

	case *Abs:
		f(t)
		WalkTerm(t.Body, f)

	case *App:
		f(t)
		WalkTerm(t.Left, f)
		WalkTerm(t.Right, f)

	case nil:

	default:
		panic("unknown term type: " + t.TermName())
	}
}

// Binders returns the bound variables of all abstractions within t, in pre-order.
func Binders(t Term) []*Var {
	var vars []*Var
	WalkTerm(t, func(t Term) {
		if abs, ok := t.(*Abs); ok {
			vars = append(vars, abs.Var)
		}
	})
	return vars
}
