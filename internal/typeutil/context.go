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

package typeutil

import (
	"github.com/benbjohnson/immutable"

	"github.com/wdamron/lambda/ast"
	"github.com/wdamron/lambda/types"
)

// Binding pairs a variable occurrence with its type.
type Binding struct {
	Var  *ast.Var
	Type types.Type
}

type StashedBinding struct {
	Id      int
	Binding Binding
}

type idComparer struct{}

func (idComparer) Compare(a, b interface{}) int {
	i, j := a.(int), b.(int)
	switch {
	case i < j:
		return -1
	case i > j:
		return 1
	}
	return 0
}

var emptyScope = immutable.NewSortedMap(idComparer{})

type CommonContext struct {
	VarTracker VarTracker
	Scope      *immutable.SortedMap // variable id -> Binding, for the innermost occurrence
	EnvStash   []StashedBinding     // shadowed bindings

	// initial space:
	_envStash [32]StashedBinding
}

func (ctx *CommonContext) Init() {
	ctx.Scope, ctx.EnvStash = emptyScope, ctx._envStash[:0]
}

func (ctx *CommonContext) Reset() {
	ctx.VarTracker.Reset()
	for i := range ctx._envStash {
		ctx._envStash[i] = StashedBinding{}
	}
	ctx.Scope, ctx.EnvStash = emptyScope, ctx._envStash[:0]
}

// Record the type of an occurrence of v.
func (ctx *CommonContext) Assign(v *ast.Var, t types.Type) {
	ctx.Scope = ctx.Scope.Set(v.Id, Binding{Var: v, Type: t})
}

func (ctx *CommonContext) Lookup(id int) (Binding, bool) {
	b, ok := ctx.Scope.Get(id)
	if !ok {
		return Binding{}, false
	}
	return b.(Binding), true
}

func (ctx *CommonContext) Delete(id int) {
	ctx.Scope = ctx.Scope.Delete(id)
}

// returns 1 if the binding was stashed, otherwise 0
func (ctx *CommonContext) Stash(id int) int {
	if existing, ok := ctx.Lookup(id); ok {
		ctx.EnvStash = append(ctx.EnvStash, StashedBinding{id, existing})
		return 1
	}
	return 0
}

func (ctx *CommonContext) Unstash(count int) {
	if count <= 0 {
		return
	}
	stash := ctx.EnvStash
	unstashed := 0
	for i := len(stash) - 1; unstashed < count && i >= 0; i, unstashed = i-1, unstashed+1 {
		ctx.Scope = ctx.Scope.Set(stash[i].Id, stash[i].Binding)
		stash[i] = StashedBinding{}
	}
	ctx.EnvStash = ctx.EnvStash[0 : len(stash)-unstashed]
}
