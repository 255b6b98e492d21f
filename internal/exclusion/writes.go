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

package exclusion

import (
	"go/ast"
	"go/token"
	"go/types"
	"slices"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/seqguard/internal/astutil"
	"fillmore-labs.com/seqguard/internal/loop"
)

// Writes records assignments to variables inside a loop.
type Writes struct {
	// unconditional maps variables to the positions where an assignment executed
	// on every iteration completes, sorted ascending.
	unconditional map[*types.Var][]token.Pos

	// anywhere contains all variables assigned somewhere in the loop.
	anywhere map[*types.Var]struct{}
}

// CollectWrites finds the assignments to variables inside the loop in ctx.
func CollectWrites(info *types.Info, ctx loop.Context) Writes {
	w := Writes{
		unconditional: make(map[*types.Var][]token.Pos),
		anywhere:      make(map[*types.Var]struct{}),
	}

	if !ctx.Valid() {
		return w
	}

	if n, ok := ctx.Loop.Node().(*ast.RangeStmt); ok && n.Tok == token.ASSIGN {
		// for k, v = range ... assigns before each iteration of the body
		w.record(info, []ast.Expr{n.Key, n.Value}, n.Body.Lbrace, true)
	}

	for c := range ctx.Loop.Preorder((*ast.AssignStmt)(nil)) {
		stmt := c.Node().(*ast.AssignStmt)
		w.record(info, stmt.Lhs, stmt.End(), unconditional(c, ctx.Loop))
	}

	for _, positions := range w.unconditional {
		slices.Sort(positions)
	}

	return w
}

// Anywhere reports whether v is assigned anywhere in the loop.
func (w Writes) Anywhere(v *types.Var) bool {
	_, ok := w.anywhere[v]

	return ok
}

// Before reports whether an unconditional assignment to v completes before pos.
func (w Writes) Before(v *types.Var, pos token.Pos) bool {
	positions := w.unconditional[v]

	return len(positions) > 0 && positions[0] <= pos
}

func (w Writes) record(info *types.Info, lhs []ast.Expr, done token.Pos, unconditional bool) {
	for id := range astutil.AllAssigned(lhs...) {
		v, ok := info.Uses[id].(*types.Var) // Redeclarations and plain assignments
		if !ok {
			continue // no variable
		}

		w.anywhere[v] = struct{}{}

		if unconditional {
			w.unconditional[v] = append(w.unconditional[v], done)
		}
	}
}

// unconditional reports whether the statement at c is executed on every iteration of lp,
// i.e. it is nested only in plain blocks and labeled statements of the loop body.
func unconditional(c, lp inspector.Cursor) bool {
	for cur := c; ; {
		kind, _ := cur.ParentEdge()
		parent := cur.Parent()

		switch kind {
		case edge.BlockStmt_List, edge.LabeledStmt_Stmt:
			cur = parent

		case edge.ForStmt_Body, edge.RangeStmt_Body:
			return parent == lp

		default:
			return false
		}
	}
}
