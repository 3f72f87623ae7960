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

package inspect_test

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"fillmore-labs.com/kalacheck/internal/catalog"
	"fillmore-labs.com/kalacheck/internal/config"
	. "fillmore-labs.com/kalacheck/internal/inspect"
	"fillmore-labs.com/kalacheck/internal/javasrc"
	"fillmore-labs.com/kalacheck/internal/report"
	"fillmore-labs.com/kalacheck/internal/rewrite"
	"fillmore-labs.com/kalacheck/internal/testsource"
)

func inspect(t *testing.T, f *javasrc.File, inspections ...config.Inspections) []report.Diagnostic {
	t.Helper()

	if len(inspections) == 0 {
		inspections = []config.Inspections{config.AllInspections}
	}

	var c report.Collector

	p := &Pass{
		File:        f,
		Catalog:     catalog.Default(),
		Reporter:    &c,
		Inspections: config.NewBitMask(inspections...),
	}
	p.Run(t.Context())

	return c.Sorted()
}

func render(f *javasrc.File, diagnostics []report.Diagnostic) string {
	lines := report.NewLines(f.Tree.Filename(), f.Tree.Source())

	var b strings.Builder
	for _, d := range diagnostics {
		p := lines.Position(d.Span.Start)
		fmt.Fprintf(&b, "%d:%d %s %s: %s\n", p.Line, p.Column, d.Inspection, d.Severity,
			report.English.Format(d.Message)) // ignore error
	}

	return b.String()
}

func TestInspections(t *testing.T) {
	t.Parallel()

	archives, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil || len(archives) == 0 {
		t.Fatalf("Can't find test archives: %v", err)
	}

	for _, archive := range archives {
		name := strings.TrimSuffix(filepath.Base(archive), ".txtar")

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			a := testsource.Archive(t, archive)

			input, ok := testsource.Section(t, a, "input.java")
			if !ok {
				t.Fatal("Missing input.java")
			}

			want, _ := testsource.Section(t, a, "diagnostics")

			f := testsource.ParseFile(t, "Input.java", input)
			diagnostics := inspect(t, f)

			if got := render(f, diagnostics); got != string(want) {
				t.Errorf("Got diagnostics:\n%s\nwant:\n%s", got, want)
			}

			fixed, ok := testsource.Section(t, a, "fixed.java")
			if !ok {
				return
			}

			doc := rewrite.NewDocument(input)
			for _, d := range diagnostics {
				for _, fix := range d.Fixes {
					if err := doc.Apply(fix); err != nil {
						t.Errorf("Can't apply fix %q: %v", fix.Title, err)
					}
				}
			}

			if got := string(doc.Bytes()); got != string(fixed) {
				t.Errorf("Got fixed source:\n%s\nwant:\n%s", got, fixed)
			}

			g := testsource.ParseFile(t, "Fixed.java", doc.Bytes())
			if again := render(g, inspect(t, g)); again != "" {
				t.Errorf("Got diagnostics on fixed source:\n%s", again)
			}
		})
	}
}

func TestDisabled(t *testing.T) {
	t.Parallel()

	f, _ := testsource.Parse(t, `var b = ImmutableSeq.of("a").size() > 0;`)

	tests := []struct {
		name        string
		inspections []config.Inspections
		want        int
	}{
		{"enabled", []config.Inspections{config.SizeCompare}, 1},
		{"other", []config.Inspections{config.Muda, config.ViewSize}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := len(inspect(t, f, tt.inspections...)); got != tt.want {
				t.Errorf("Got %d diagnostics, want %d", got, tt.want)
			}
		})
	}
}

func TestFixTitles(t *testing.T) {
	t.Parallel()

	f, _ := testsource.Parse(t, `ImmutableSeq<String> s = ImmutableSeq.of();
    var a = s.toImmutableSeq();
    var b = s.take(1).drop(1);`)

	want := map[string]string{
		"prefer-empty": "Replace 'of' with 'empty'",
		"muda":         "Remove redundant 'toImmutableSeq'",
		"fuse-immseq":  "Fuse transformations through a view",
	}

	diagnostics := inspect(t, f)
	if len(diagnostics) != len(want) {
		t.Fatalf("Got %d diagnostics, want %d", len(diagnostics), len(want))
	}

	for _, d := range diagnostics {
		if len(d.Fixes) != 1 {
			t.Errorf("Got %d fixes for %s, want 1", len(d.Fixes), d.Inspection)

			continue
		}

		if got := d.Fixes[0].Title; got != want[d.Inspection] {
			t.Errorf("Got fix title %q for %s, want %q", got, d.Inspection, want[d.Inspection])
		}
	}
}

func TestStaleFix(t *testing.T) {
	t.Parallel()

	f, _ := testsource.Parse(t, `ImmutableSeq<String> s = ImmutableSeq.of();
    var a = s.toImmutableSeq();`)

	diagnostics := inspect(t, f, config.Muda)
	if len(diagnostics) != 1 {
		t.Fatalf("Got %d diagnostics, want 1", len(diagnostics))
	}

	fix := diagnostics[0].Fixes[0]
	doc := rewrite.NewDocument(f.Tree.Source())

	if err := doc.Edit(func(tx *rewrite.Tx) error {
		return tx.Insert(fix.Target.Span.Start+1, "x")
	}); err != nil {
		t.Fatalf("Can't edit document: %v", err)
	}

	if err := doc.Apply(fix); !errors.Is(err, rewrite.ErrStale) {
		t.Errorf("Got error %v, want %v", err, rewrite.ErrStale)
	}
}

func TestFuseMaterialized(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"bare", `var a = s.take(1).drop(1);`, `var a = s.view().take(1).drop(1).toImmutableSeq();`},
		{"materialized", `var a = s.take(1).drop(1).toImmutableSeq();`, `var a = s.view().take(1).drop(1).toImmutableSeq();`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, _ := testsource.Parse(t, "ImmutableSeq<String> s = ImmutableSeq.of();\n    "+tt.src)

			diagnostics := inspect(t, f, config.FuseImmSeq)
			if len(diagnostics) != 1 {
				t.Fatalf("Got %d diagnostics, want 1", len(diagnostics))
			}

			doc := rewrite.NewDocument(f.Tree.Source())
			if err := doc.Apply(diagnostics[0].Fixes[0]); err != nil {
				t.Fatalf("Can't apply fix: %v", err)
			}

			if got := string(doc.Bytes()); !strings.Contains(got, tt.want) {
				t.Errorf("Got fixed source:\n%s\nwant it to contain %q", got, tt.want)
			}
		})
	}
}
