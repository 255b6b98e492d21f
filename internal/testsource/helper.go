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

// Package testsource provides utilities for parsing and analyzing Go source code in tests.
//
// Source fragments are wrapped in a function body inside a package that
// declares a few lazy sequence helpers, so tests can exercise loops and
// callbacks over [iter.Seq] values without boilerplate.
package testsource

import (
	"bytes"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

const testpkg = "test"

// Prelude is declared in every wrapped source. It provides:
//
//	repeat(v, n int) iter.Seq[int]
//	contains(s iter.Seq[int], v int) bool
//	filter(s iter.Seq[int], f func(int) bool) iter.Seq[int]
//	collect(s iter.Seq[int]) []int
//	type stream iter.Seq[int] with Where(func(int) bool) stream
const Prelude = `import "iter"

func repeat(v, n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for range n {
			if !yield(v) {
				return
			}
		}
	}
}

func contains(s iter.Seq[int], v int) bool {
	for x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func filter(s iter.Seq[int], f func(int) bool) iter.Seq[int] {
	return func(yield func(int) bool) {
		for x := range s {
			if f(x) && !yield(x) {
				return
			}
		}
	}
}

func collect(s iter.Seq[int]) []int {
	var r []int
	for x := range s {
		r = append(r, x)
	}
	return r
}

type stream iter.Seq[int]

func (s stream) Where(f func(int) bool) stream { return stream(filter(iter.Seq[int](s), f)) }
`

// Parse parses a Go source code fragment into an AST.
// The provided source `src` is automatically wrapped in a function body `func _() { ... }`
// within a package `test` that also declares [Prelude].
//
// Call [Check] on the result when type information is needed.
//
// Returns:
//   - *token.FileSet: The file set containing the single source file.
//   - *ast.File: The parsed AST of the source file.
//   - *ast.FuncDecl: The function declaration wrapping the source code.
//   - inspector.Cursor: A cursor positioned at the wrapper function's Body field.
func Parse(tb testing.TB, src string) (fset *token.FileSet, f *ast.File, fn *ast.FuncDecl, body inspector.Cursor) {
	tb.Helper()

	const filename = "test.go"

	fset = token.NewFileSet()
	srcFile := wrapSource(src)

	f, err := parser.ParseFile(fset, filename, srcFile, parser.SkipObjectResolution|parser.ParseComments)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	fn, body = wrapperFuncDecl(f)
	if fn == nil {
		tb.Fatal("Can't find function")
	}

	return fset, f, fn, body
}

// Check performs type checking on the provided AST file.
// It creates and returns a fully type-checked *types.Package and *types.Info.
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

func wrapSource(src string) *bytes.Buffer {
	const (
		header     = "package " + testpkg + "\n\n" + Prelude + "\nfunc _() {\n"
		suffix     = "\n}\n"
		wrapperLen = len(header) + len(suffix)
	)

	var srcFile bytes.Buffer
	srcFile.Grow(wrapperLen + len(src))

	srcFile.WriteString(header) // ignore error
	srcFile.WriteString(src)    // ignore error
	srcFile.WriteString(suffix) // ignore error

	return &srcFile
}

// wrapperFuncDecl finds the function named "_" wrapping the test source.
func wrapperFuncDecl(f *ast.File) (fn *ast.FuncDecl, body inspector.Cursor) {
	root := inspector.New([]*ast.File{f}).Root()
	for c := range root.Preorder((*ast.FuncDecl)(nil)) {
		if fn = c.Node().(*ast.FuncDecl); fn.Name.Name != "_" {
			continue
		}

		return fn, c.ChildAt(edge.FuncDecl_Body, -1)
	}

	return nil, root
}

// FindIdent returns the cursor of the n-th (0-based) identifier named `name` in the body.
func FindIdent(tb testing.TB, body inspector.Cursor, name string, n int) inspector.Cursor {
	tb.Helper()

	for c := range body.Preorder((*ast.Ident)(nil)) {
		if c.Node().(*ast.Ident).Name != name {
			continue
		}

		if n == 0 {
			return c
		}
		n--
	}

	tb.Fatalf("Identifier %q not found", name)

	return body
}
