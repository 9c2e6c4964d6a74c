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
	"errors"
	"fmt"

	"github.com/wdamron/lambda/types"
)

// ErrInconsistent is returned (wrapped) when a system of equations has no solution.
var ErrInconsistent = errors.New("Inconsistent system of equations")

// Unify solves eqs, returning the most general unifier of the system. The returned substitution
// is idempotent.
//
// If the system has no solution, the error wraps ErrInconsistent.
func Unify(eqs []types.Equation) (types.Subst, error) {
	s, _, err := unify(eqs)
	return s, err
}

// unify additionally returns the equation which could not be solved.
func unify(eqs []types.Equation) (types.Subst, types.Equation, error) {
	// Outstanding equations are kept as a stack; the next equation to solve is at the end.
	work := make([]types.Equation, len(eqs), len(eqs)+8)
	for i, eq := range eqs {
		work[len(eqs)-1-i] = eq
	}
	subst := types.NewSubst()

	for len(work) > 0 {
		eq := work[len(work)-1]
		work = work[:len(work)-1]

		switch left := eq.Left.(type) {
		case *types.Var:
			if right, ok := eq.Right.(*types.Var); ok && right.Name == left.Name {
				continue
			}
			if err := bind(&subst, work, left, eq.Right); err != nil {
				return types.Subst{}, eq, err
			}
			continue

		case *types.Arrow:
			switch right := eq.Right.(type) {
			case *types.Var:
				if err := bind(&subst, work, right, left); err != nil {
					return types.Subst{}, eq, err
				}
				continue

			case *types.Arrow:
				work = append(work,
					types.Equation{Left: left.To, Right: right.To},
					types.Equation{Left: left.From, Right: right.From})
				continue
			}
		}

		return types.Subst{}, eq, fmt.Errorf("%w: cannot unify %s", ErrInconsistent, eq)
	}

	return subst, types.Equation{}, nil
}

// bind v to t, rewriting the outstanding equations and the accumulated substitution.
func bind(subst *types.Subst, work []types.Equation, v *types.Var, t types.Type) error {
	if types.Occurs(v.Name, t) {
		return fmt.Errorf("%w: %s occurs in %s", ErrInconsistent, v.Name, types.TypeString(t))
	}
	single := types.SingletonSubst(v.Name, t)
	for i, eq := range work {
		work[i] = types.Equation{Left: single.Apply(eq.Left), Right: single.Apply(eq.Right)}
	}
	*subst = subst.Compose(single)
	return nil
}
