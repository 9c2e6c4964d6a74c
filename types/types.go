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

// Type is the base interface for all types.
type Type interface {
	TypeName() string
}

var (
	_ Type = (*Var)(nil)
	_ Type = (*Arrow)(nil)
)

func (t *Var) TypeName() string   { return "Var" }
func (t *Arrow) TypeName() string { return "Arrow" }

// Type-variable: `t0`
type Var struct {
	Name string
}

// Function type: `t0 -> t1`
type Arrow struct {
	From Type
	To   Type
}

// Create a new type-variable with the given name.
func NewVar(name string) *Var { return &Var{Name: name} }

// Create a new function type.
func NewArrow(from, to Type) *Arrow { return &Arrow{From: from, To: to} }

// Equal reports whether a and b are structurally identical, including variable names.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Name == b.Name
	case *Arrow:
		b, ok := b.(*Arrow)
		return ok && Equal(a.From, b.From) && Equal(a.To, b.To)
	case nil:
		return b == nil
	}
	panic("unknown type: " + a.TypeName())
}

// Occurs reports whether the type-variable name appears anywhere within t.
func Occurs(name string, t Type) bool {
	switch t := t.(type) {
	case *Var:
		return t.Name == name
	case *Arrow:
		return Occurs(name, t.From) || Occurs(name, t.To)
	}
	panic("unknown type: " + t.TypeName())
}

// Visit each type-variable within t from left to right, including repeated occurrences.
// If f returns false, the walk will be stopped.
func WalkVars(t Type, f func(*Var) bool) bool {
	switch t := t.(type) {
	case *Var:
		return f(t)
	case *Arrow:
		return WalkVars(t.From, f) && WalkVars(t.To, f)
	}
	panic("unknown type: " + t.TypeName())
}
