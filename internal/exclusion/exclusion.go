// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package exclusion computes the variables that are legitimately fresh on each loop iteration.
package exclusion

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/seqguard/internal/loop"
)

// Set is the set of variables owned by a loop.
type Set map[*types.Var]struct{}

// Contains reports whether v is declared by the loop.
func (s Set) Contains(v *types.Var) bool {
	_, ok := s[v]

	return ok
}

// Collect returns the variables whose declaration belongs to the loop in ctx:
// iteration variables declared in the loop header and variables declared in
// the loop body, but not in a nested loop or function literal.
func Collect(info *types.Info, ctx loop.Context) Set {
	if !ctx.Valid() {
		return make(Set)
	}

	return collect(info, ctx.Loop, func(c inspector.Cursor) bool { return loop.Owner(c).Loop == ctx.Loop })
}

// CollectFunc returns the variables declared by the function literal at lit:
// its parameters and named results and every variable declared in its body,
// but not in a nested function literal.
func CollectFunc(info *types.Info, lit inspector.Cursor) Set {
	return collect(info, lit, func(inspector.Cursor) bool { return true })
}

// collect gathers the variables defined below root, not descending into function literals.
func collect(info *types.Info, root inspector.Cursor, owned func(inspector.Cursor) bool) Set {
	set := make(Set)

	nodes := []ast.Node{
		(*ast.CaseClause)(nil),
		(*ast.FuncLit)(nil),
		(*ast.Ident)(nil),
	}

	root.Inspect(nodes, func(c inspector.Cursor) bool {
		var obj types.Object

		switch n := c.Node().(type) {
		case *ast.FuncLit:
			return c == root // Declarations inside are not executed by root

		case *ast.CaseClause:
			obj = info.Implicits[n] // Type switch variable

		case *ast.Ident:
			obj = info.Defs[n]
		}

		if v, ok := obj.(*types.Var); ok && owned(c) {
			set[v] = struct{}{}
		}

		return true
	})

	return set
}
