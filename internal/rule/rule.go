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

// Package rule decides for a single variable reference whether it re-evaluates a lazy sequence.
package rule

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/seqguard/internal/callback"
	"fillmore-labs.com/seqguard/internal/config"
	"fillmore-labs.com/seqguard/internal/exclusion"
	"fillmore-labs.com/seqguard/internal/lazy"
	"fillmore-labs.com/seqguard/internal/loop"
)

// Finding is the result of evaluating a reference.
type Finding struct {
	Verdict Verdict
	Ident   *ast.Ident
	Var     *types.Var

	// Loop is the repeating context, valid for [LoopRead] and [Reassigned] and for [Excluded] inside a loop.
	Loop loop.Context

	// Receiver is the sequence invoking the callback, valid for [CallbackRead] and [SameReceiver].
	Receiver callback.Receiver
}

// Engine evaluates references within one function body.
//
// It caches the declarations and assignments of loops it has seen, so it must
// not outlive the analysis of the function it was created for.
type Engine struct {
	info       *types.Info
	classifier lazy.Classifier
	resolver   callback.Resolver
	checks     config.Checks
	reassign   config.Reassign

	loops map[ast.Node]loopInfo
	funcs map[ast.Node]exclusion.Set
}

// loopInfo contains the per-loop exclusions.
type loopInfo struct {
	declared exclusion.Set
	writes   exclusion.Writes
}

// New creates an [Engine] for a single function body.
func New(info *types.Info, classifier lazy.Classifier, checks config.Checks, reassign config.Reassign) *Engine {
	return &Engine{
		info:       info,
		classifier: classifier,
		resolver:   callback.Resolver{Info: info, Classifier: classifier},
		checks:     checks,
		reassign:   reassign,
		loops:      make(map[ast.Node]loopInfo),
		funcs:      make(map[ast.Node]exclusion.Set),
	}
}

// Evaluate classifies the identifier at c.
func (e *Engine) Evaluate(c inspector.Cursor) Finding {
	id, ok := c.Node().(*ast.Ident)
	if !ok {
		return Finding{Verdict: NotBinding}
	}

	v := e.binding(id)
	if v == nil {
		return Finding{Verdict: NotBinding, Ident: id}
	}

	f := Finding{Ident: id, Var: v}

	switch {
	case !e.classifier.IsLazy(v.Type()):
		f.Verdict = NotLazy

	case !forced(c):
		f.Verdict = NotForced

	default:
		if ctx := loop.Find(c); ctx.Valid() {
			f.Loop = ctx
			f.Verdict = e.evaluateLoop(ctx, v, id)
		} else {
			f.Receiver, f.Verdict = e.evaluateCallback(c, v)
		}
	}

	return f
}

// evaluateLoop decides a read inside a loop. The callback check is not consulted.
func (e *Engine) evaluateLoop(ctx loop.Context, v *types.Var, id *ast.Ident) Verdict {
	if !e.checks.Enabled(config.LoopCheck) {
		return Disabled
	}

	li := e.loopInfo(ctx)

	switch {
	case li.declared.Contains(v):
		return Excluded

	case e.reassigned(li.writes, v, id):
		return Reassigned

	default:
		return LoopRead
	}
}

// evaluateCallback decides a read outside of loops.
// Parameters and locals of the enclosing function literal are fresh on every call.
func (e *Engine) evaluateCallback(c inspector.Cursor, v *types.Var) (callback.Receiver, Verdict) {
	if !e.checks.Enabled(config.CallbackCheck) {
		return callback.Receiver{}, Disabled
	}

	if lit, ok := callback.EnclosingFuncLit(c); ok && e.funcDeclared(lit).Contains(v) {
		return callback.Receiver{}, Excluded
	}

	recv, ok := e.resolver.Resolve(c)

	switch {
	case !ok:
		return callback.Receiver{}, NoReceiver

	case recv.Var == v:
		return recv, SameReceiver

	default:
		return recv, CallbackRead
	}
}

func (e *Engine) reassigned(writes exclusion.Writes, v *types.Var, id *ast.Ident) bool {
	switch e.reassign {
	case config.ReassignOrdered:
		return writes.Before(v, id.Pos())

	case config.ReassignAny:
		return writes.Anywhere(v)

	default:
		return false
	}
}

func (e *Engine) loopInfo(ctx loop.Context) loopInfo {
	node := ctx.Loop.Node()
	if li, ok := e.loops[node]; ok {
		return li
	}

	li := loopInfo{
		declared: exclusion.Collect(e.info, ctx),
		writes:   exclusion.CollectWrites(e.info, ctx),
	}
	e.loops[node] = li

	return li
}

func (e *Engine) funcDeclared(lit inspector.Cursor) exclusion.Set {
	node := lit.Node()
	if set, ok := e.funcs[node]; ok {
		return set
	}

	set := exclusion.CollectFunc(e.info, lit)
	e.funcs[node] = set

	return set
}

// binding returns the local variable or parameter referenced by id.
func (e *Engine) binding(id *ast.Ident) *types.Var {
	v, ok := e.info.Uses[id].(*types.Var)
	if !ok || v.IsField() {
		return nil
	}

	if pkg := v.Pkg(); pkg != nil && v.Parent() == pkg.Scope() {
		return nil // Package level
	}

	return v
}

// forced reports whether the reference at c pulls elements from the sequence:
// as a call argument, a called function, a range operand or a method receiver.
func forced(c inspector.Cursor) bool {
	for cur := c; ; cur = cur.Parent() {
		switch kind, _ := cur.ParentEdge(); kind {
		case edge.ParenExpr_X:
			continue

		case edge.CallExpr_Args, edge.CallExpr_Fun, edge.RangeStmt_X, edge.SelectorExpr_X:
			return true

		default:
			return false
		}
	}
}
