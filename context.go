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
	"github.com/benbjohnson/immutable"

	"github.com/wdamron/lambda/internal/typeutil"
)

// Binding pairs a variable with its inferred type.
type Binding = typeutil.Binding

// Context contains the inferred types of the free variables of a term, keyed by the unique
// ids assigned during alpha-renaming. A Context is immutable.
type Context struct {
	m *immutable.SortedMap
}

// Get the number of variables in the context.
func (c *Context) Len() int {
	if c == nil || c.m == nil {
		return 0
	}
	return c.m.Len()
}

// Get the binding for the variable with the given id.
func (c *Context) Lookup(id int) (Binding, bool) {
	if c.Len() == 0 {
		return Binding{}, false
	}
	b, ok := c.m.Get(id)
	if !ok {
		return Binding{}, false
	}
	return b.(Binding), true
}

// Get the binding for the variable with the given name.
func (c *Context) LookupName(name string) (Binding, bool) {
	var found Binding
	var ok bool
	c.Range(func(b Binding) bool {
		if b.Var.Name == name {
			found, ok = b, true
			return false
		}
		return true
	})
	return found, ok
}

// Iterate over bindings in the context, ordered by variable id.
// If f returns false, iteration will be stopped.
func (c *Context) Range(f func(Binding) bool) {
	if c.Len() == 0 {
		return
	}
	iter := c.m.Iterator()
	for !iter.Done() {
		_, b := iter.Next()
		if !f(b.(Binding)) {
			return
		}
	}
}
