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

// Package report turns rule findings into diagnostics.
package report

import (
	"context"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/seqguard/internal/astutil"
	"fillmore-labs.com/seqguard/internal/rule"
)

// Diagnostic codes appended to messages.
const (
	LoopCode     = "sq:loop"
	CallbackCode = "sq:callback"
)

// Findings emits a diagnostic for each reported finding not suppressed by a nolint comment.
func Findings(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, findings []rule.Finding) {
	if len(findings) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	for _, f := range findings {
		if !f.Verdict.Reported() || currentFile.NoLintComment(f.Ident.Pos()) {
			continue
		}

		diagnostic, ok := Diagnostic(f)
		if !ok {
			astutil.InternalError(p, f.Ident, "Unexpected finding %s for %s", f.Verdict, f.Ident.Name)

			continue
		}

		p.Report(diagnostic)
	}
}

// Diagnostic creates the diagnostic for a [rule.LoopRead] or [rule.CallbackRead] finding.
func Diagnostic(f rule.Finding) (analysis.Diagnostic, bool) {
	if f.Ident == nil {
		return analysis.Diagnostic{}, false
	}

	diagnostic := analysis.Diagnostic{
		Pos: f.Ident.Pos(),
		End: f.Ident.End(),
	}

	switch f.Verdict {
	case rule.LoopRead:
		if !f.Loop.Valid() {
			return analysis.Diagnostic{}, false
		}

		name := f.Loop.Name()
		diagnostic.Category = "loop"
		diagnostic.Message = fmt.Sprintf("Lazy sequence '%s' is re-evaluated on every iteration of the %s loop (%s)",
			f.Ident.Name, name, LoopCode)
		diagnostic.Related = []analysis.RelatedInformation{loopHeader(f.Loop.Loop.Node(), name)}

	case rule.CallbackRead:
		recv := f.Receiver
		if recv.Ident == nil || recv.Func == nil {
			return analysis.Diagnostic{}, false
		}

		diagnostic.Category = "callback"
		diagnostic.Message = fmt.Sprintf("Lazy sequence '%s' is re-evaluated for every element of '%s' (%s)",
			f.Ident.Name, recv.Ident.Name, CallbackCode)
		diagnostic.Related = []analysis.RelatedInformation{
			{Pos: recv.Ident.Pos(), End: recv.Ident.End(), Message: "Elements of this sequence"},
			{Pos: recv.Func.Pos(), End: recv.Func.Type.End(), Message: "Are passed to this callback"},
		}

	default:
		return analysis.Diagnostic{}, false
	}

	return diagnostic, true
}

// loopHeader points at the loop statement up to its body.
func loopHeader(n ast.Node, name string) analysis.RelatedInformation {
	related := analysis.RelatedInformation{Pos: n.Pos(), End: n.End(), Message: fmt.Sprintf("Inside this %s loop", name)}

	switch n := n.(type) {
	case *ast.ForStmt:
		related.End = n.Body.Lbrace

	case *ast.RangeStmt:
		related.End = n.Body.Lbrace
	}

	return related
}
