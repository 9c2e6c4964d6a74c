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
	"strings"
)

const (
	precTop = iota
	precAppLeft
	precAtom
)

// TermString returns a string representation of a Term, using `\` for abstractions:
//
//	\f.\x.f (f x)
func TermString(t Term) string {
	var sb strings.Builder
	termString(&sb, precTop, t)
	return sb.String()
}

func termString(sb *strings.Builder, prec int, t Term) {
	switch tt := t.(type) {
	case *Var:
		sb.WriteString(tt.Name)

	case *Abs:
		if prec > precTop {
			sb.WriteByte('(')
		}
		sb.WriteByte('\\')
		sb.WriteString(tt.Var.Name)
		sb.WriteByte('.')
		termString(sb, precTop, tt.Body)
		if prec > precTop {
			sb.WriteByte(')')
		}

	case *App:
		if prec == precAtom {
			sb.WriteByte('(')
		}
		termString(sb, precAppLeft, tt.Left)
		sb.WriteByte(' ')
		termString(sb, precAtom, tt.Right)
		if prec == precAtom {
			sb.WriteByte(')')
		}

	case nil:
		sb.WriteString("<nil>")

	default:
		panic("unknown term type: " + t.TermName())
	}
}
