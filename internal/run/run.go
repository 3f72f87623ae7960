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
	"runtime/trace"

	"fillmore-labs.com/kalacheck/internal/astutil"
	"fillmore-labs.com/kalacheck/internal/config"
	"fillmore-labs.com/kalacheck/internal/dblity"
	"fillmore-labs.com/kalacheck/internal/inspect"
	"fillmore-labs.com/kalacheck/internal/javasrc"
	"fillmore-labs.com/kalacheck/internal/report"
	"fillmore-labs.com/kalacheck/internal/rewrite"
)

// Result is the outcome of checking one file.
type Result struct {
	File        *javasrc.File
	Diagnostics []report.Diagnostic

	// Generated is set when a generated file was skipped.
	Generated bool
}

// FixResult is the outcome of fixing one file.
type FixResult struct {
	Result

	// Source is the fixed file content.
	Source []byte

	// Applied counts the applied fixes. Stale counts the skips of fixes whose target an
	// earlier fix of the same round changed; skipped fixes are retried in the next round.
	Applied, Stale int
}

// Checker runs the pipeline over single files. A Checker is not safe for concurrent use.
type Checker struct {
	options *Options
	parser  *javasrc.Parser
}

// NewChecker creates a [Checker] with its own parser.
func (r *Options) NewChecker() *Checker {
	return &Checker{options: r, parser: javasrc.NewParser(r.Catalog.Library())}
}

// Close releases the parser.
func (c *Checker) Close() {
	c.parser.Close()
}

// Check executes the kalacheck pipeline on one file.
func (c *Checker) Check(ctx context.Context, filename string, src []byte) (Result, error) {
	return c.check(ctx, filename, src, 0)
}

func (c *Checker) check(ctx context.Context, filename string, src []byte, version int) (Result, error) {
	ctx, task := trace.NewTask(ctx, "KalaCheck")
	defer task.End()

	trace.Log(ctx, "file", filename)

	// Stage 1: Build the syntax tree with resolved types and declarations
	f, err := c.parser.Parse(ctx, filename, src)
	if err != nil {
		return Result{}, err
	}

	currentFile := astutil.NewCurrentFile(f.Tree)

	var collector report.Collector

	if !currentFile.Valid() {
		astutil.InternalError(&collector, "kalacheck", f.Tree.Root(), "File %s without valid tree", filename)

		return Result{File: f, Diagnostics: collector.Diagnostics}, nil
	}

	// Skip generated files
	if currentFile.Generated() && !c.options.Behavior.Enabled(config.IncludeGenerated) {
		return Result{File: f, Generated: true}, nil
	}

	reporter := currentFile.Filter(&collector)

	// Stage 2: Pattern inspections
	if c.options.Inspections.Enabled(config.PatternInspections) {
		pass := inspect.Pass{
			File:        f,
			Catalog:     c.options.Catalog,
			Reporter:    reporter,
			Bundle:      c.options.Bundle,
			Version:     version,
			Inspections: c.options.Inspections,
		}
		pass.Run(ctx)
	}

	// Stage 3: Annotation lattice
	if c.options.Inspections.Enabled(config.Dblity) {
		a := dblity.Analyzer{
			Reporter:  reporter,
			Bundle:    c.options.Bundle,
			Version:   version,
			Names:     c.options.Annotations,
			Narrowing: c.options.Behavior.Enabled(config.ReportNarrowing),
		}
		a.Run(ctx, f)
	}

	return Result{File: f, Diagnostics: collector.Sorted()}, nil
}

// Fix applies the first fix of every diagnostic, re-parsing the file after each round until a
// round applies nothing or the round limit is reached. The result holds the diagnostics of
// the fixed source and internal errors of fixes that could not be applied.
func (c *Checker) Fix(ctx context.Context, filename string, src []byte) (FixResult, error) {
	doc := rewrite.NewDocument(src)

	var (
		result FixResult
		errs   report.Collector
	)

	rounds := max(c.options.FixRounds, 1)

	for round := 0; ; round++ {
		res, err := c.check(ctx, filename, doc.Bytes(), doc.Version())
		if err != nil {
			return FixResult{}, err
		}

		result.Result = res

		if round == rounds {
			break
		}

		applied, stale := ApplyFixes(doc, res.Diagnostics, &errs)
		result.Stale += stale

		if applied == 0 {
			break
		}

		result.Applied += applied
	}

	result.Diagnostics = append(result.Diagnostics, errs.Diagnostics...)
	result.Source = doc.Bytes()

	return result, nil
}

// ApplyFixes applies the first fix of every diagnostic to doc and returns the number of
// applied and stale fixes. Fixes failing for other reasons than a changed target are
// reported to r as internal errors.
func ApplyFixes(doc *rewrite.Document, diagnostics []report.Diagnostic, r report.Reporter) (applied, stale int) {
	for _, d := range diagnostics {
		if len(d.Fixes) == 0 {
			continue
		}

		switch err := doc.Apply(d.Fixes[0]); {
		case err == nil:
			applied++

		case errors.Is(err, rewrite.ErrStale):
			stale++

		default:
			astutil.InternalError(r, d.Inspection, d.Node, "%v", err)
		}
	}

	return applied, stale
}
