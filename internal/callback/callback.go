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

// Package callback traces a function literal back to the lazy sequence invoking it.
//
// A callback passed to an operation of a lazy sequence runs once per element
// of that sequence:
//
//	ones.Where(func(o int) bool { return contains(twos, o) }) // twos re-evaluated per element of ones
//	filter(ones, func(o int) bool { return contains(twos, o) })
//	ones(func(o int) bool { return contains(twos, o) })
//
// [Resolve] finds the sequence ("receiver") on whose behalf the callback runs,
// following fluent chains (a.Map(f).Where(g)) and nested function composition
// (filter(mapSeq(a, f), g)) back to a variable.
package callback

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/seqguard/internal/lazy"
)

// Receiver describes the lazy sequence invoking a callback.
type Receiver struct {
	Ident *ast.Ident    // The receiver reference
	Var   *types.Var    // The receiver variable
	Call  *ast.CallExpr // The call the callback is passed to
	Func  *ast.FuncLit  // The callback
}

// Resolver resolves receivers of callbacks.
type Resolver struct {
	Info       *types.Info
	Classifier lazy.Classifier
}

// Resolve finds the receiver of the nearest function literal enclosing c.
// It returns false when c is not inside a function literal passed as an
// argument, or the receiver is no variable of iterator type.
func (r Resolver) Resolve(c inspector.Cursor) (Receiver, bool) {
	lit, ok := EnclosingFuncLit(c)
	if !ok {
		return Receiver{}, false
	}

	call, ok := argumentOf(lit)
	if !ok {
		return Receiver{}, false
	}

	fun := lit.Node().(*ast.FuncLit)

	id := r.receiver(call, fun)
	if id == nil {
		return Receiver{}, false
	}

	v, ok := r.Info.Uses[id].(*types.Var)
	if !ok || !r.Classifier.IsIterator(v.Type()) {
		return Receiver{}, false
	}

	return Receiver{Ident: id, Var: v, Call: call, Func: fun}, true
}

// EnclosingFuncLit returns the nearest function literal enclosing c, stopping at function declarations.
func EnclosingFuncLit(c inspector.Cursor) (inspector.Cursor, bool) {
	for cur := range c.Enclosing((*ast.FuncLit)(nil), (*ast.FuncDecl)(nil)) {
		_, ok := cur.Node().(*ast.FuncLit)

		return cur, ok
	}

	return c, false
}

// argumentOf returns the call lit is an argument of.
func argumentOf(lit inspector.Cursor) (*ast.CallExpr, bool) {
	for cur := lit; ; cur = cur.Parent() {
		switch kind, _ := cur.ParentEdge(); kind {
		case edge.ParenExpr_X:
			continue

		case edge.CallExpr_Args:
			call, ok := cur.Parent().Node().(*ast.CallExpr)

			return call, ok

		default:
			return nil, false
		}
	}
}

// receiver follows the call chain starting at call to the identifier of the sequence it operates on.
// skip is the callback argument, which is never its own receiver.
func (r Resolver) receiver(call *ast.CallExpr, skip ast.Expr) *ast.Ident {
	for call != nil {
		var next ast.Expr

		switch fun := ast.Unparen(call.Fun).(type) {
		case *ast.SelectorExpr:
			if sel, ok := r.Info.Selections[fun]; ok && sel.Kind() != types.FieldVal {
				next = fun.X // Method call: seq.Where(...)
			} else {
				next = r.operand(call, skip) // Qualified function: xiter.Filter(seq, ...)
			}

		case *ast.Ident:
			if v, ok := r.Info.Uses[fun].(*types.Var); ok && r.Classifier.IsIterator(v.Type()) {
				return fun // Direct push: seq(func(v T) bool { ... })
			}

			next = r.operand(call, skip) // Function or conversion: filter(seq, ...)

		default:
			next = r.operand(call, skip)
		}

		switch x := ast.Unparen(next).(type) {
		case *ast.Ident:
			return x

		case *ast.CallExpr:
			call, skip = x, nil // Fluent chain or nested composition

		default:
			return nil
		}
	}

	return nil
}

// operand returns the first argument of iterator type other than skip.
func (r Resolver) operand(call *ast.CallExpr, skip ast.Expr) ast.Expr {
	for _, arg := range call.Args {
		arg = ast.Unparen(arg)
		if arg == skip {
			continue
		}

		if r.Classifier.IsIterator(r.Info.TypeOf(arg)) {
			return arg
		}
	}

	return nil
}
