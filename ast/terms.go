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

// Term is the base for all lambda-terms. The set of terms is closed: *Var, *Abs and *App.
//
// Terms are never mutated after construction; transformations build new trees.
type Term interface {
	// Name of the syntax-type of the term.
	TermName() string
}

var (
	_ Term = (*Var)(nil)
	_ Term = (*Abs)(nil)
	_ Term = (*App)(nil)
)

// Variable: `x`
type Var struct {
	Name string
	// Id uniquely identifies the binding of a variable after alpha-renaming.
	// Variables which have not been renamed have an Id of 0.
	Id int
}

// "Var"
func (t *Var) TermName() string { return "Var" }

// Abstraction: `\x.body`
type Abs struct {
	Var  *Var
	Body Term
}

// "Abs"
func (t *Abs) TermName() string { return "Abs" }

// Application: `left right`
type App struct {
	Left  Term
	Right Term
}

// "App"
func (t *App) TermName() string { return "App" }
