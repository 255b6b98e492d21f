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

package loop_test

import (
	"go/ast"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/inspector"

	. "fillmore-labs.com/seqguard/internal/loop"
	"fillmore-labs.com/seqguard/internal/testsource"
)

func TestFind(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		want Kind
	}{
		{
			name: "no_loop",
			src:  `x := 1; _ = x`,
			want: None,
		},
		{
			name: "for_condition",
			src:  `x := 1; for i := 0; i < x; i++ {}`,
			want: None,
		},
		{
			name: "for_post",
			src:  `x := 1; for i := 0; i < 10; i += x {}`,
			want: None,
		},
		{
			name: "for_init",
			src:  `x := 1; for i := x; i < 10; i++ {}`,
			want: None,
		},
		{
			name: "for_body",
			src:  `x := 1; for { _ = x }`,
			want: For,
		},
		{
			name: "range_body",
			src:  `x := 1; for range 3 { _ = x }`,
			want: Range,
		},
		{
			name: "range_operand",
			src:  `x := []int{1}; for i, v := range x { _, _ = i, v }`,
			want: None,
		},
		{
			name: "range_key_value",
			src:  `x := 1; for i, v := range []int{} { _, _, _ = i, v, x }`,
			want: RangeKeyValue,
		},
		{
			name: "nested_block",
			src:  `x := 1; for i := range 3 { if i > 0 { _ = x } }`,
			want: Range,
		},
		{
			name: "innermost",
			src:  `x := 1; for range 3 { for { _ = x } }`,
			want: For,
		},
		{
			name: "inner_condition",
			src:  `x := 1; for range 3 { for i := 0; i < x; i++ {} }`,
			want: Range,
		},
		{
			name: "inner_operand",
			src:  `x := 1; for range 3 { for range x { } }`,
			want: Range,
		},
		{
			name: "funclit",
			src:  `x := 1; for range 3 { func() { _ = x }() }`,
			want: None,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset, f, _, body := testsource.Parse(t, tt.src)
			_, info := testsource.Check(t, fset, f)

			use := firstIdent(t, body, info.Uses)

			ctx := Find(use)
			if got := ctx.Kind; got != tt.want {
				t.Errorf("Find() = %s, want %s", got, tt.want)
			}

			if ctx.Valid() != (tt.want != None) {
				t.Errorf("Valid() = %t for %s", ctx.Valid(), ctx.Kind)
			}

			if ctx.Valid() && ctx.Body() == nil {
				t.Error("Expected loop body")
			}
		})
	}
}

func TestOwner(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		want Kind
	}{
		{
			name: "function_level",
			src:  `x := 1; _ = x`,
			want: None,
		},
		{
			name: "for_init",
			src:  `for x := 0; x < 3; x++ {}`,
			want: For,
		},
		{
			name: "range_key",
			src:  `for x := range 3 { _ = x }`,
			want: Range,
		},
		{
			name: "range_key_value",
			src:  `for x, y := range []int{} { _, _ = x, y }`,
			want: RangeKeyValue,
		},
		{
			name: "range_body",
			src:  `for range 3 { x := 1; _ = x }`,
			want: Range,
		},
		{
			name: "funclit",
			src:  `for range 3 { func() { x := 1; _ = x }() }`,
			want: None,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset, f, _, body := testsource.Parse(t, tt.src)
			_, info := testsource.Check(t, fset, f)

			def := firstIdent(t, body, info.Defs)

			if got := Owner(def).Kind; got != tt.want {
				t.Errorf("Owner() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestName(t *testing.T) {
	t.Parallel()

	for kind, want := range map[Kind]string{None: "<none>", For: "for", Range: "range", RangeKeyValue: "range"} {
		if got := (Context{Kind: kind}).Name(); got != want {
			t.Errorf("Name(%s) = %q, want %q", kind, got, want)
		}
	}
}

// firstIdent finds the first identifier "x" recorded in objs.
func firstIdent(t *testing.T, body inspector.Cursor, objs map[*ast.Ident]types.Object) inspector.Cursor {
	t.Helper()

	const targetName = "x"

	for c := range body.Preorder((*ast.Ident)(nil)) {
		id := c.Node().(*ast.Ident)
		if id.Name != targetName {
			continue
		}

		if _, ok := objs[id]; ok {
			return c
		}
	}

	t.Fatal("Identifier not found")

	return body
}
