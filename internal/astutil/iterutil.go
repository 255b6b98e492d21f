// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package astutil

import (
	"go/ast"
	"iter"
)

// AllAssigned yields all identifiers assigned to, skipping blank identifiers,
// nil expressions and non-identifier targets like fields or index expressions.
func AllAssigned(lhs ...ast.Expr) iter.Seq[*ast.Ident] {
	return func(yield func(*ast.Ident) bool) {
		for _, expr := range lhs {
			if expr == nil {
				continue // omitted range key or value
			}

			id, ok := ast.Unparen(expr).(*ast.Ident)
			if !ok || id.Name == "_" {
				continue // blank identifier
			}

			if !yield(id) {
				return
			}
		}
	}
}
