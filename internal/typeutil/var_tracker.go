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
	"strconv"

	"github.com/wdamron/lambda/types"
)

// VarTracker allocates fresh type-variables named `t0`, `t1`, ... in allocation order.
//
// Names reserved for type-variables derived from term variables are skipped, so a fresh
// type-variable never coincides with the type of a variable.
type VarTracker struct {
	NextId   int
	count    int
	reserved map[string]struct{}
}

func (vt *VarTracker) Reset() {
	vt.NextId, vt.count = 0, 0
	for k := range vt.reserved {
		delete(vt.reserved, k)
	}
}

// Get the number of type-variables allocated since the last reset.
func (vt *VarTracker) Count() int { return vt.count }

// Prevent the tracker from allocating a type-variable with the given name.
func (vt *VarTracker) Reserve(name string) {
	if vt.reserved == nil {
		vt.reserved = make(map[string]struct{}, 16)
	}
	vt.reserved[name] = struct{}{}
}

func (vt *VarTracker) New() *types.Var {
	for {
		name := "t" + strconv.Itoa(vt.NextId)
		vt.NextId++
		if _, ok := vt.reserved[name]; ok {
			continue
		}
		vt.count++
		return types.NewVar(name)
	}
}
