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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/seqguard/internal/astutil"
	"fillmore-labs.com/seqguard/internal/config"
	"fillmore-labs.com/seqguard/internal/lazy"
	"fillmore-labs.com/seqguard/internal/report"
	"fillmore-labs.com/seqguard/internal/rule"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the seqguard analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("seqguard: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	if r.Checks.None() {
		return nil, nil
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "SeqGuard")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	classifier := lazy.NewClassifier(r.Shapes...)

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if hasNoLint(file.Doc) {
			continue
		}

		// Loop over all top-level declarations in this file
		for d := range f.Children() {
			switch decl := d.Node().(type) {
			case *ast.FuncDecl:
				if decl.Body == nil || hasNoLint(decl.Doc) {
					continue
				}

				r.check(ctx, p, currentFile, classifier, d.ChildAt(edge.FuncDecl_Body, -1))

			case *ast.GenDecl:
				if hasNoLint(decl.Doc) {
					continue
				}

				// Function literals in package-level initializers, one engine per literal
				d.Inspect([]ast.Node{(*ast.ValueSpec)(nil), (*ast.FuncLit)(nil)}, func(c inspector.Cursor) bool {
					switch n := c.Node().(type) {
					case *ast.ValueSpec:
						return !hasNoLint(n.Doc)

					case *ast.FuncLit:
						r.check(ctx, p, currentFile, classifier, c.ChildAt(edge.FuncLit_Body, -1))
					}

					return false
				})
			}
		}
	}

	return nil, nil
}

// check evaluates a function body with a fresh [rule.Engine] and reports the findings.
func (r *Options) check(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile,
	classifier lazy.Classifier, body inspector.Cursor,
) {
	engine := rule.New(p.TypesInfo, classifier, r.Checks, r.Reassign)

	findings := evaluate(ctx, engine, body)

	report.Findings(ctx, p, currentFile, findings)
}

// hasNoLint reports whether a doc comment ends in a nolint directive.
func hasNoLint(doc *ast.CommentGroup) bool {
	return doc != nil && astutil.CommentHasNoLint(doc.List[len(doc.List)-1])
}

// evaluate collects the reported findings for all identifiers in a function body.
func evaluate(ctx context.Context, engine *rule.Engine, body inspector.Cursor) []rule.Finding {
	defer trace.StartRegion(ctx, "Evaluate").End()

	var findings []rule.Finding

	for c := range body.Preorder((*ast.Ident)(nil)) {
		if f := engine.Evaluate(c); f.Verdict.Reported() {
			findings = append(findings, f)
		}
	}

	return findings
}
