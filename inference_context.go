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
	"github.com/tliron/commonlog"

	"github.com/wdamron/lambda/ast"
	"github.com/wdamron/lambda/internal/typeutil"
	"github.com/wdamron/lambda/types"
)

// InferenceContext is a reusable context for type inference.
//
// An inference context cannot be used concurrently.
type InferenceContext struct {
	common     typeutil.CommonContext
	equations  []types.Equation
	needsReset bool
	log        commonlog.Logger

	err        error
	invalid    types.Equation
	hasInvalid bool
}

// Create a new type-inference context. A context may be reused for inference.
func NewContext() *InferenceContext {
	ti := &InferenceContext{}
	ti.common.Init()
	return ti
}

func (ti *InferenceContext) reset() {
	ti.common.Reset()
	ti.equations = ti.equations[:0]
	ti.err, ti.invalid, ti.hasInvalid, ti.needsReset = nil, types.Equation{}, false, false
}

// Reset the state of the context. The context will be reset automatically before inference.
func (ti *InferenceContext) Reset() {
	if !ti.needsReset {
		return
	}
	ti.reset()
}

// Log each inference through log, at debug level. A nil logger disables logging.
func (ti *InferenceContext) SetLogger(log commonlog.Logger) { ti.log = log }

// Get the error which caused the last inference to fail. The error wraps ErrInconsistent.
func (ti *InferenceContext) Error() error { return ti.err }

// Get the equation which caused the last inference to fail.
func (ti *InferenceContext) InvalidEquation() (types.Equation, bool) {
	return ti.invalid, ti.hasInvalid
}

// Get the equations generated by the last inference, in the order they were generated.
func (ti *InferenceContext) Equations() []types.Equation {
	eqs := make([]types.Equation, len(ti.equations))
	copy(eqs, ti.equations)
	return eqs
}

// Infer the principal type of term. Nil is returned if term has no type.
func (ti *InferenceContext) Infer(term ast.Term) types.Type {
	_, t := ti.inferRoot(term)
	return t
}

// Infer the principal type of term, along with the types of its free variables. Nil values are
// returned if term has no type.
func (ti *InferenceContext) InferWithContext(term ast.Term) (*Context, types.Type) {
	return ti.inferRoot(term)
}

func (ti *InferenceContext) inferRoot(term ast.Term) (*Context, types.Type) {
	if ti.needsReset {
		ti.reset()
	}
	ti.needsReset = true
	if term == nil {
		return nil, nil
	}

	root := Rename(term)
	ti.reserve(root)
	t := ti.generate(root)

	subst, invalid, err := unify(ti.equations)
	if err != nil {
		ti.err, ti.invalid, ti.hasInvalid = err, invalid, true
		if ti.log != nil {
			ti.log.Debugf("%s: no type (%s)", ast.TermString(term), err)
		}
		return nil, nil
	}

	scope := ti.common.Scope
	iter := scope.Iterator()
	for !iter.Done() {
		id, b := iter.Next()
		binding := b.(Binding)
		binding.Type = subst.Apply(binding.Type)
		scope = scope.Set(id, binding)
	}
	t = subst.Apply(t)
	if ti.log != nil {
		ti.log.Debugf("%s : %s (%d equations)", ast.TermString(term), types.TypeString(t), len(ti.equations))
	}
	return &Context{m: scope}, t
}
