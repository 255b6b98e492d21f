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

// Package loop locates the repeating execution context of a syntax node.
package loop

import (
	"go/ast"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

//go:generate go tool stringer -type=Kind

// Kind classifies a repeating execution context.
type Kind uint8

const (
	// None means the node is not inside a loop of the current function.
	None Kind = iota

	// For is a three-clause or condition-only for statement.
	For

	// Range is a range statement with at most a key.
	Range

	// RangeKeyValue is a range statement with key and value.
	RangeKeyValue
)

// Context is the innermost loop re-executing a node.
type Context struct {
	Kind Kind
	Loop inspector.Cursor // The *ast.ForStmt or *ast.RangeStmt, only valid if Kind != None
}

// Valid reports whether a loop was found.
func (c Context) Valid() bool {
	return c.Kind != None
}

// Name returns a human-readable name for the loop.
func (c Context) Name() string {
	switch c.Kind {
	case For:
		return "for"

	case Range, RangeKeyValue:
		return "range"

	default:
		return "<none>"
	}
}

// Body returns the loop body.
func (c Context) Body() *ast.BlockStmt {
	switch n := c.Loop.Node().(type) {
	case *ast.ForStmt:
		return n.Body

	case *ast.RangeStmt:
		return n.Body

	default:
		return nil
	}
}

// Find returns the innermost loop whose body re-executes the node at c.
//
// Only loop bodies count: the init statement, condition and post statement
// of a for statement and the operand of a range statement are part of the
// enclosing context. The walk stops at the enclosing function, so a function
// literal inside a loop body is not considered repeated.
func Find(c inspector.Cursor) Context {
	return walk(c, repeated)
}

// Owner returns the innermost loop a declaration at c belongs to.
//
// In addition to [Find], variables declared in a loop header (the init
// statement of a for statement, key and value of a range statement) belong
// to that loop.
func Owner(c inspector.Cursor) Context {
	return walk(c, owned)
}

// walk follows parent links until a loop edge accepted by match or a function boundary is found.
func walk(c inspector.Cursor, match func(edge.Kind) bool) Context {
	for cur := c; ; {
		kind, _ := cur.ParentEdge()
		parent := cur.Parent()

		switch n := parent.Node().(type) {
		case *ast.ForStmt:
			if match(kind) {
				return Context{Kind: For, Loop: parent}
			}

		case *ast.RangeStmt:
			if match(kind) {
				return Context{Kind: rangeKind(n), Loop: parent}
			}

		case *ast.FuncLit, *ast.FuncDecl, *ast.File, nil:
			return Context{}
		}

		cur = parent
	}
}

func repeated(kind edge.Kind) bool {
	switch kind {
	case edge.ForStmt_Body, edge.RangeStmt_Body:
		return true

	default:
		return false
	}
}

func owned(kind edge.Kind) bool {
	switch kind {
	case edge.ForStmt_Init,
		edge.RangeStmt_Key, edge.RangeStmt_Value:
		return true

	default:
		return repeated(kind)
	}
}

func rangeKind(n *ast.RangeStmt) Kind {
	if n.Key != nil && n.Value != nil {
		return RangeKeyValue
	}

	return Range
}
