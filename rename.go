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
	"strconv"

	"github.com/benbjohnson/immutable"

	"github.com/wdamron/lambda/ast"
)

var emptyRenames = immutable.NewSortedMap(nil)

// Rename returns a copy of t in which every abstraction binds a variable with a name which is
// not used by any other binder or free variable within t. Free variables keep their names.
//
// Every variable in the result carries a non-zero Id: occurrences bound by the same abstraction
// share the Id of their binder, and all occurrences of a free variable share one Id.
func Rename(t ast.Term) ast.Term {
	r := renamer{
		used:   make(map[string]struct{}, 16),
		suffix: make(map[string]int, 16),
		free:   make(map[string]int, 16),
	}
	ast.WalkTerm(t, func(t ast.Term) {
		switch t := t.(type) {
		case *ast.Var:
			r.used[t.Name] = struct{}{}
		case *ast.Abs:
			r.used[t.Var.Name] = struct{}{}
		}
	})
	return r.rename(t, emptyRenames)
}

type renamer struct {
	used   map[string]struct{} // names of all variables, original and renamed
	suffix map[string]int      // next numeric suffix to try for each original name
	free   map[string]int      // ids of free variables
	nextId int
}

func (r *renamer) newId() int {
	r.nextId++
	return r.nextId
}

func (r *renamer) freshName(name string) string {
	n := r.suffix[name] + 1
	for {
		candidate := name + strconv.Itoa(n)
		if _, ok := r.used[candidate]; !ok {
			r.suffix[name] = n
			r.used[candidate] = struct{}{}
			return candidate
		}
		n++
	}
}

// Scopes map original names to renamed binders.
func (r *renamer) rename(t ast.Term, scope *immutable.SortedMap) ast.Term {
	switch t := t.(type) {
	case *ast.Var:
		if binder, ok := scope.Get(t.Name); ok {
			v := binder.(*ast.Var)
			return &ast.Var{Name: v.Name, Id: v.Id}
		}
		id, ok := r.free[t.Name]
		if !ok {
			id = r.newId()
			r.free[t.Name] = id
		}
		return &ast.Var{Name: t.Name, Id: id}

	case *ast.Abs:
		binder := &ast.Var{Name: r.freshName(t.Var.Name), Id: r.newId()}
		body := r.rename(t.Body, scope.Set(t.Var.Name, binder))
		return &ast.Abs{Var: binder, Body: body}

	case *ast.App:
		left := r.rename(t.Left, scope)
		return &ast.App{Left: left, Right: r.rename(t.Right, scope)}
	}
	panic("unknown term type: " + t.TermName())
}
