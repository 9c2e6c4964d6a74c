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
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/wdamron/lambda/construct"
	"github.com/wdamron/lambda/types"
)

func eq(a, b types.Type) types.Equation { return types.NewEquation(a, b) }

func TestUnifyTrivial(t *testing.T) {
	a := TVar("a")
	s, err := Unify([]types.Equation{eq(a, a)})
	require.NoError(t, err)
	require.Equal(t, 0, s.Len())

	s, err = Unify(nil)
	require.NoError(t, err)
	require.Equal(t, 0, s.Len())
}

func TestUnifyBindsEitherSide(t *testing.T) {
	a, b := TVar("a"), TVar("b")

	s, err := Unify([]types.Equation{eq(TArrow(b, b), a)})
	require.NoError(t, err)
	require.Equal(t, "{a := b -> b}", s.String())

	s, err = Unify([]types.Equation{eq(a, TArrow(b, b))})
	require.NoError(t, err)
	require.Equal(t, "{a := b -> b}", s.String())
}

func TestUnifyDecompose(t *testing.T) {
	a, b, c, d := TVar("a"), TVar("b"), TVar("c"), TVar("d")

	s, err := Unify([]types.Equation{eq(TArrow(a, TArrow(b, a)), TArrow(TArrow(c, c), TArrow(d, d)))})
	require.NoError(t, err)
	require.Equal(t, "{a := c -> c, b := c -> c, d := c -> c}", s.String())
}

func TestUnifyIdempotent(t *testing.T) {
	a, b, c, d, e := TVar("a"), TVar("b"), TVar("c"), TVar("d"), TVar("e")

	eqs := []types.Equation{
		eq(a, TArrow(b, c)),
		eq(b, TArrow(d, d)),
		eq(c, TArrow(d, e)),
		eq(e, d),
	}
	s, err := Unify(eqs)
	require.NoError(t, err)

	// Each binding is fully resolved, and applying the substitution twice changes nothing:
	s.Range(func(name string, bound types.Type) bool {
		types.WalkVars(bound, func(v *types.Var) bool {
			_, ok := s.Get(v.Name)
			require.False(t, ok, "%s := %s refers to bound variable %s", name, types.TypeString(bound), v.Name)
			return true
		})
		return true
	})
	for _, eq := range eqs {
		left, right := s.Apply(eq.Left), s.Apply(eq.Right)
		require.True(t, types.Equal(left, right), "%s is not satisfied", eq)
		require.True(t, types.Equal(left, s.Apply(left)))
	}
	require.Equal(t, "(d -> d) -> d -> d", types.TypeString(s.Apply(a)))
}

func TestUnifyOccursCheck(t *testing.T) {
	a, b := TVar("a"), TVar("b")

	_, err := Unify([]types.Equation{eq(a, TArrow(a, b))})
	require.True(t, errors.Is(err, ErrInconsistent), "error: %v", err)

	// The cycle only appears after an earlier binding:
	_, err = Unify([]types.Equation{eq(a, TArrow(b, b)), eq(b, a)})
	require.True(t, errors.Is(err, ErrInconsistent), "error: %v", err)
	t.Logf("error: %v", err)
}

func TestUnifyConflictAfterDecomposition(t *testing.T) {
	a, b, c := TVar("a"), TVar("b"), TVar("c")

	_, invalid, err := unify([]types.Equation{
		eq(TArrow(a, b), TArrow(TArrow(b, c), a)),
	})
	require.True(t, errors.Is(err, ErrInconsistent), "error: %v", err)
	t.Logf("invalid equation: %s (%v)", invalid, err)
}

// Any other unifier of the system is an instance of the most general one.
func TestUnifyMostGeneral(t *testing.T) {
	a, b, c := TVar("a"), TVar("b"), TVar("c")
	eqs := []types.Equation{eq(a, TArrow(b, c))}

	mgu, err := Unify(eqs)
	require.NoError(t, err)

	other := types.NewSubst().Set("a", TArrow(c, c)).Set("b", c)
	for _, eq := range eqs {
		require.True(t, types.Equal(other.Apply(eq.Left), other.Apply(eq.Right)))
	}
	// other = mgu followed by {b := c}
	factor := types.SingletonSubst("b", c)
	for _, v := range []types.Type{a, b, c} {
		require.True(t, types.Equal(other.Apply(v), factor.Apply(mgu.Apply(v))))
	}
}
