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

package types

import (
	"strings"

	"github.com/benbjohnson/immutable"
)

var emptySubst = immutable.NewSortedMap(nil)

// Subst is an immutable mapping from type-variable names to types.
//
// Substitutions produced by unification are idempotent: no bound type contains a variable
// which is itself bound by the substitution.
type Subst struct {
	m *immutable.SortedMap
}

// Create an empty substitution.
func NewSubst() Subst { return Subst{emptySubst} }

// Create a substitution with a single binding.
func SingletonSubst(name string, t Type) Subst { return Subst{emptySubst.Set(name, t)} }

func (s Subst) sorted() *immutable.SortedMap {
	if s.m == nil {
		return emptySubst
	}
	return s.m
}

// Get the number of bindings in the substitution.
func (s Subst) Len() int { return s.sorted().Len() }

// Get the type bound to the given type-variable name.
func (s Subst) Get(name string) (Type, bool) {
	t, ok := s.sorted().Get(name)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Bind name to t, without mutating the existing substitution.
func (s Subst) Set(name string, t Type) Subst { return Subst{s.sorted().Set(name, t)} }

// Iterate over bindings in the substitution, sorted by name.
// If f returns false, iteration will be stopped.
func (s Subst) Range(f func(string, Type) bool) {
	iter := s.sorted().Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Type)) {
			return
		}
	}
}

// Compose returns a substitution equivalent to applying s and then next. Bindings of s are
// rewritten under next, and bindings of next which are not already bound in s are added.
func (s Subst) Compose(next Subst) Subst {
	b := immutable.NewSortedMapBuilder(s.sorted())
	s.Range(func(name string, t Type) bool {
		b.Set(name, next.Apply(t))
		return true
	})
	next.Range(func(name string, t Type) bool {
		if _, ok := b.Get(name); !ok {
			b.Set(name, t)
		}
		return true
	})
	return Subst{b.Map()}
}

// Apply the substitution to t. Unbound type-variables are left unchanged. The result shares
// structure with t where nothing was replaced.
func (s Subst) Apply(t Type) Type {
	if s.Len() == 0 {
		return t
	}
	return s.apply(t)
}

func (s Subst) apply(t Type) Type {
	switch t := t.(type) {
	case *Var:
		if bound, ok := s.Get(t.Name); ok {
			return bound
		}
		return t
	case *Arrow:
		from, to := s.apply(t.From), s.apply(t.To)
		if from == t.From && to == t.To {
			return t
		}
		return &Arrow{From: from, To: to}
	}
	panic("unknown type: " + t.TypeName())
}

// Get a string representation of s: `{t0 := t1 -> t1, t2 := t1}`
func (s Subst) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	i := 0
	s.Range(func(name string, t Type) bool {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
		sb.WriteString(" := ")
		sb.WriteString(TypeString(t))
		i++
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}
