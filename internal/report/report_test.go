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

package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	. "fillmore-labs.com/kalacheck/internal/report"
	"fillmore-labs.com/kalacheck/internal/rewrite"
	"fillmore-labs.com/kalacheck/internal/syntax"
)

const src = "class A {\n  int x = s.size();\n}\n"

func diagnostic() Diagnostic {
	return Diagnostic{
		Inspection: "view-size",
		Severity:   Warning,
		Span:       syntax.Span{Start: 20, End: 28},
		Message:    NewMessage(KeyRedundant, "toSeq"),
		Related:    []Related{{Span: syntax.Span{Start: 20, End: 21}, Message: NewMessage(KeyFuseChain)}},
		Fixes: []rewrite.Fix{{
			Title: "Remove",
			Edits: []rewrite.Edit{{Span: syntax.Span{Start: 21, End: 28}, New: ""}},
		}},
	}
}

func TestBundle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		msg  Message
		want string
	}{
		{"template", NewMessage(KeyFuse, 3), "3 consecutive transformations on an immutable sequence"},
		{"unknown", NewMessage("x.y", "a", 1), "x.y a 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := English.Format(tt.msg); got != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCollectorSorted(t *testing.T) {
	t.Parallel()

	var c Collector

	c.Report(Diagnostic{Inspection: "b", Span: syntax.Span{Start: 5, End: 6}})
	c.Report(Diagnostic{Inspection: "b", Span: syntax.Span{Start: 1, End: 6}})
	c.Report(Diagnostic{Inspection: "a", Span: syntax.Span{Start: 5, End: 6}})

	got := c.Sorted()
	if got[0].Span.Start != 1 || got[1].Inspection != "a" || got[2].Inspection != "b" {
		t.Errorf("Got unsorted diagnostics %+v", got)
	}
}

func TestAnalysis(t *testing.T) {
	t.Parallel()

	l := NewLines("A.java", []byte(src))
	ad := diagnostic().Analysis(l, English)

	if got, want := l.FileSet().Position(ad.Pos).String(), "A.java:2:11"; got != want {
		t.Errorf("Got position %s, want %s", got, want)
	}

	if got, want := ad.Category, "view-size"; got != want {
		t.Errorf("Got category %q, want %q", got, want)
	}

	if len(ad.SuggestedFixes) != 1 || len(ad.SuggestedFixes[0].TextEdits) != 1 || len(ad.Related) != 1 {
		t.Errorf("Got %+v", ad)
	}
}

func TestText(t *testing.T) {
	t.Parallel()

	var b bytes.Buffer

	w := TextWriter{W: &b, Bundle: English}
	if err := w.Write(NewLines("A.java", []byte(src)), []Diagnostic{diagnostic()}); err != nil {
		t.Fatalf("Can't write: %v", err)
	}

	if got, want := b.String(), "A.java:2:11: warning: Redundant call to 'toSeq' (view-size)\n"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}

func TestJSON(t *testing.T) {
	t.Parallel()

	tree := make(JSONTree)
	tree.Add("kalacheck", NewLines("A.java", []byte(src)), []Diagnostic{diagnostic()}, English)

	var b bytes.Buffer
	if err := tree.Print(&b); err != nil {
		t.Fatalf("Can't print: %v", err)
	}

	var decoded map[string]map[string][]JSONDiagnostic
	if err := json.Unmarshal(b.Bytes(), &decoded); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}

	diags := decoded["A.java"]["kalacheck"]
	if len(diags) != 1 {
		t.Fatalf("Got %d diagnostics, want 1", len(diags))
	}

	d := diags[0]
	if d.Posn != "A.java:2:11" || d.Severity != "warning" || len(d.SuggestedFixes) != 1 {
		t.Errorf("Got %+v", d)
	}

	if e := d.SuggestedFixes[0].Edits[0]; e.Start != 21 || e.End != 28 || e.Filename != "A.java" {
		t.Errorf("Got edit %+v", e)
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()

	var s Summary
	s.Add([]Diagnostic{diagnostic(), diagnostic()})
	s.Add(nil)

	var b bytes.Buffer
	if err := s.Render(&b); err != nil {
		t.Fatalf("Can't render: %v", err)
	}

	if out := b.String(); !strings.Contains(out, "view-size") {
		t.Errorf("Got summary %q", out)
	}
}
