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

import "strconv"

// Canonical renames the type-variables of t to `t0`, `t1`, ... in order of first occurrence,
// reading from left to right.
func Canonical(t Type) Type {
	names := make(map[string]string, 8)
	return canonical(t, names)
}

func canonical(t Type, names map[string]string) Type {
	switch t := t.(type) {
	case *Var:
		name, ok := names[t.Name]
		if !ok {
			name = "t" + strconv.Itoa(len(names))
			names[t.Name] = name
		}
		return &Var{Name: name}
	case *Arrow:
		from := canonical(t.From, names)
		return &Arrow{From: from, To: canonical(t.To, names)}
	}
	panic("unknown type: " + t.TypeName())
}

// Equivalent reports whether a and b are equal up to a consistent renaming of type-variables.
func Equivalent(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return Equal(Canonical(a), Canonical(b))
}

// CanonicalAll renames the type-variables of ts consistently, as if ts were read left to right
// as a single type.
func CanonicalAll(ts ...Type) []Type {
	names := make(map[string]string, 8)
	out := make([]Type, len(ts))
	for i, t := range ts {
		out[i] = canonical(t, names)
	}
	return out
}
