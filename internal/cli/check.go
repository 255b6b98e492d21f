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

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/checker"
	"golang.org/x/tools/go/packages"

	"fillmore-labs.com/seqguard/analyzer"
)

// ErrFindings is returned when the checked packages have diagnostics.
var ErrFindings = errors.New("lazy sequences re-evaluated")

// ErrLoad is returned when packages can't be loaded or type checked.
var ErrLoad = errors.New("can't load packages")

// Finding is a diagnostic with its resolved position.
type Finding struct {
	Position string `json:"position"`
	Category string `json:"category,omitempty"`
	Message  string `json:"message"`
	Related  []Note `json:"related,omitempty"`
}

// Note is related information of a [Finding].
type Note struct {
	Position string `json:"position"`
	Message  string `json:"message"`
}

// runner runs the analyzer over package patterns.
type runner struct {
	dir    string
	tests  bool
	opts   analyzer.Options
	logger *slog.Logger
}

// check loads the packages matching patterns and analyzes them.
func (r runner) check(ctx context.Context, patterns []string) ([]Finding, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	r.logger.DebugContext(ctx, "Loading packages", slog.Any("patterns", patterns), slog.String("dir", r.dir))

	cfg := &packages.Config{
		Context: ctx,
		Mode:    packages.LoadAllSyntax,
		Dir:     r.dir,
		Tests:   r.tests,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	var loadErrs []string
	packages.Visit(pkgs, nil, func(p *packages.Package) {
		for _, e := range p.Errors {
			loadErrs = append(loadErrs, e.Error())
		}
	})

	if len(loadErrs) > 0 {
		return nil, fmt.Errorf("%w:\n%s", ErrLoad, strings.Join(loadErrs, "\n"))
	}

	a := analyzer.New(r.opts)

	graph, err := checker.Analyze([]*analysis.Analyzer{a}, pkgs, &checker.Options{})
	if err != nil {
		return nil, err
	}

	var findings []Finding

	type site struct{ position, message string }

	seen := make(map[site]struct{})

	for _, act := range graph.Roots {
		if act.Err != nil {
			return nil, fmt.Errorf("%s: %w", act.Package.PkgPath, act.Err)
		}

		fset := act.Package.Fset

		for _, d := range act.Diagnostics {
			f := Finding{
				Position: fset.Position(d.Pos).String(),
				Category: d.Category,
				Message:  d.Message,
			}

			// Test variants of a package report the same positions
			key := site{f.Position, f.Message}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			for _, rel := range d.Related {
				f.Related = append(f.Related, Note{Position: fset.Position(rel.Pos).String(), Message: rel.Message})
			}

			findings = append(findings, f)
		}
	}

	r.logger.DebugContext(ctx, "Analyzed packages", slog.Int("packages", len(pkgs)), slog.Int("findings", len(findings)))

	return findings, nil
}

// printFindings writes findings as text or JSON.
func printFindings(w io.Writer, findings []Finding, asJSON bool) error {
	if asJSON {
		if findings == nil {
			findings = []Finding{}
		}

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(findings)
	}

	for _, f := range findings {
		if _, err := fmt.Fprintf(w, "%s: %s\n", f.Position, f.Message); err != nil {
			return err
		}

		for _, n := range f.Related {
			if _, err := fmt.Fprintf(w, "\t%s: %s\n", n.Position, n.Message); err != nil {
				return err
			}
		}
	}

	return nil
}
