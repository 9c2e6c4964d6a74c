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

import (
	"github.com/benbjohnson/immutable"
)

var emptyNames = immutable.NewSortedMap(nil)

// FreeVars returns the names of variables which occur in t outside of any abstraction binding
// the same name. Names are sorted and unique.
func FreeVars(t Term) []string {
	free := immutable.NewSortedMapBuilder(emptyNames)
	freeVars(t, emptyNames, free)
	m := free.Map()
	names := make([]string, 0, m.Len())
	iter := m.Iterator()
	for !iter.Done() {
		k, _ := iter.Next()
		names = append(names, k.(string))
	}
	return names
}

// Bound names are tracked with a persistent map, so sibling sub-terms never observe each
// other's binders.
func freeVars(t Term, bound *immutable.SortedMap, free *immutable.SortedMapBuilder) {
	switch t := t.(type) {
	case *Var:
		if _, ok := bound.Get(t.Name); !ok {
			free.Set(t.Name, struct{}{})
		}

	case *Abs:
		freeVars(t.Body, bound.Set(t.Var.Name, struct{}{}), free)

	case *App:
		freeVars(t.Left, bound, free)
		freeVars(t.Right, bound, free)

	default:
		panic("unknown term type: " + t.TermName())
	}
}

// AlphaEquivalent reports whether a and b are equal up to a consistent renaming of bound
// variables. Free variables must have identical names.
func AlphaEquivalent(a, b Term) bool {
	return alphaEquivalent(a, b, emptyNames, emptyNames, 0)
}

// Binders are compared by the depth at which they were introduced.
func alphaEquivalent(a, b Term, aBound, bBound *immutable.SortedMap, depth int) bool {
	switch a := a.(type) {
	case *Var:
		b, ok := b.(*Var)
		if !ok {
			return false
		}
		ad, aok := aBound.Get(a.Name)
		bd, bok := bBound.Get(b.Name)
		if aok != bok {
			return false
		}
		if !aok {
			return a.Name == b.Name
		}
		return ad.(int) == bd.(int)

	case *Abs:
		b, ok := b.(*Abs)
		if !ok {
			return false
		}
		return alphaEquivalent(a.Body, b.Body, aBound.Set(a.Var.Name, depth), bBound.Set(b.Var.Name, depth), depth+1)

	case *App:
		b, ok := b.(*App)
		if !ok {
			return false
		}
		return alphaEquivalent(a.Left, b.Left, aBound, bBound, depth) &&
			alphaEquivalent(a.Right, b.Right, aBound, bBound, depth)
	}
	panic("unknown term type: " + a.TermName())
}
