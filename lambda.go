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

// lambda provides type inference for the untyped lambda calculus.
//
// Inference follows the constraint-based presentation of Hindley-Milner, without let-bindings:
//
//  1. Bound variables are renamed so that every abstraction binds a unique name.
//  2. Each variable is assigned a type-variable derived from its name, and each application is
//     assigned a fresh type-variable. Every application `f x` of type `r` produces an equation
//     `type(f) = type(x) -> r`.
//  3. The system of equations is solved by (Robinson) unification, with an occurs-check.
//  4. The most general unifier is applied to the type of the term and to the types of its
//     free variables.
//
// A term without a type (e.g. `\x.x x`) produces an inconsistent system of equations, and
// inference reports no type.
//
// Links:
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// Unification: https://en.wikipedia.org/wiki/Unification_(computer_science)
package lambda
