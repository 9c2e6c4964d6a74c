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

package lambda

import (
	"github.com/wdamron/lambda/ast"
	"github.com/wdamron/lambda/types"
)

// Type-variables for term variables are derived from their (unique, renamed) names.
func varType(v *ast.Var) *types.Var { return types.NewVar("t" + v.Name) }

// reserve the names of type-variables derived from term variables, so the tracker never
// allocates them as fresh type-variables.
func (ti *InferenceContext) reserve(t ast.Term) {
	ast.WalkTerm(t, func(t ast.Term) {
		switch t := t.(type) {
		case *ast.Var:
			ti.common.VarTracker.Reserve(varType(t).Name)
		case *ast.Abs:
			ti.common.VarTracker.Reserve(varType(t.Var).Name)
		}
	})
}

// generate returns the type of t and appends the equations t imposes to ti.equations.
// Equations are emitted left to right: those of an application's function, then those of its
// argument, then the equation for the application itself.
func (ti *InferenceContext) generate(t ast.Term) types.Type {
	switch t := t.(type) {
	case *ast.Var:
		tv := varType(t)
		ti.common.Assign(t, tv)
		return tv

	case *ast.Abs:
		// Renamed binders have unique ids, so nothing is stashed here unless the term was
		// not renamed. The bracket keeps an outer binding with the same id intact.
		stashed := ti.common.Stash(t.Var.Id)
		body := ti.generate(t.Body)
		ti.common.Delete(t.Var.Id)
		ti.common.Unstash(stashed)
		return &types.Arrow{From: varType(t.Var), To: body}

	case *ast.App:
		left := ti.generate(t.Left)
		right := ti.generate(t.Right)
		ret := ti.common.VarTracker.New()
		ti.equations = append(ti.equations, types.Equation{
			Left:  left,
			Right: &types.Arrow{From: right, To: ret},
		})
		return ret
	}
	panic("unknown term type: " + t.TermName())
}
