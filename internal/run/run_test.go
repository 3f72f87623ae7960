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

package run_test

import (
	"strings"
	"testing"

	"fillmore-labs.com/kalacheck/internal/config"
	"fillmore-labs.com/kalacheck/internal/report"
	"fillmore-labs.com/kalacheck/internal/rewrite"
	. "fillmore-labs.com/kalacheck/internal/run"
)

const header = `package test;

import kala.collection.immutable.ImmutableSeq;

`

func check(t *testing.T, o *Options, src string) Result {
	t.Helper()

	c := o.NewChecker()
	defer c.Close()

	res, err := c.Check(t.Context(), "Test.java", []byte(src))
	if err != nil {
		t.Fatalf("Can't check source: %v", err)
	}

	return res
}

func inspections(res Result) []string {
	var ids []string
	for _, d := range res.Diagnostics {
		ids = append(ids, d.Inspection)
	}

	return ids
}

func TestCheck(t *testing.T) {
	t.Parallel()

	const generated = "// Code generated by kalagen. DO NOT EDIT.\n\n"

	tests := []struct {
		name      string
		src       string
		configure func(o *Options)
		want      []string
	}{
		{
			name: "muda",
			src:  header + "class A {\n  Object f(ImmutableSeq<String> s) { return s.toImmutableSeq(); }\n}\n",
			want: []string{"muda"},
		},
		{
			name: "nolint",
			src:  header + "class A {\n  Object f(ImmutableSeq<String> s) { return s.toImmutableSeq(); } //nolint:muda\n}\n",
		},
		{
			name: "suppressed",
			src:  header + "@SuppressWarnings(\"kala\")\nclass A {\n  Object f(ImmutableSeq<String> s) { return s.toImmutableSeq(); }\n}\n",
		},
		{
			name: "generated",
			src:  generated + header + "class A {\n  Object f(ImmutableSeq<String> s) { return s.toImmutableSeq(); }\n}\n",
		},
		{
			name: "include_generated",
			src:  generated + header + "class A {\n  Object f(ImmutableSeq<String> s) { return s.toImmutableSeq(); }\n}\n",
			configure: func(o *Options) {
				o.Behavior.Enable(config.IncludeGenerated)
			},
			want: []string{"muda"},
		},
		{
			name: "dblity",
			src:  "package test;\n\nclass A {\n  void f(@Closed String c) {\n    @Closed String s = c;\n  }\n}\n",
			want: []string{"dblity"},
		},
		{
			name: "dblity_disabled",
			src:  "package test;\n\nclass A {\n  void f(@Closed String c) {\n    @Closed String s = c;\n  }\n}\n",
			configure: func(o *Options) {
				o.Inspections.Disable(config.Dblity)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o := DefaultOptions()
			if tt.configure != nil {
				tt.configure(o)
			}

			got := inspections(check(t, o, tt.src))
			if len(got) != len(tt.want) {
				t.Fatalf("Got diagnostics %v, want %v", got, tt.want)
			}

			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Got diagnostic %s, want %s", got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGeneratedResult(t *testing.T) {
	t.Parallel()

	res := check(t, DefaultOptions(), "// Code generated by kalagen. DO NOT EDIT.\n\npackage test;\n\nclass A {}\n")
	if !res.Generated {
		t.Error("Got file not skipped, want generated")
	}
}

func TestFix(t *testing.T) {
	t.Parallel()

	const (
		src = header + `class A {
  ImmutableSeq<String> f(ImmutableSeq<String> seq) {
    return seq.take(1).drop(1).toImmutableSeq();
  }
}
`
		want = header + `class A {
  ImmutableSeq<String> f(ImmutableSeq<String> seq) {
    return seq.view().take(1).drop(1).toImmutableSeq();
  }
}
`
	)

	c := DefaultOptions().NewChecker()
	defer c.Close()

	res, err := c.Fix(t.Context(), "Test.java", []byte(src))
	if err != nil {
		t.Fatalf("Can't fix source: %v", err)
	}

	if got := string(res.Source); got != want {
		t.Errorf("Got fixed source:\n%s\nwant:\n%s", got, want)
	}

	if res.Applied != 1 || res.Stale != 1 {
		t.Errorf("Got %d applied and %d stale fixes, want 1 and 1", res.Applied, res.Stale)
	}

	if len(res.Diagnostics) != 0 {
		t.Errorf("Got remaining diagnostics %v", inspections(res.Result))
	}
}

func TestFixRounds(t *testing.T) {
	t.Parallel()

	const src = header + `class A {
  boolean f(ImmutableSeq<String> seq) {
    return seq.toImmutableSeq().size() > 0;
  }
}
`

	o := DefaultOptions()
	o.FixRounds = 1

	c := o.NewChecker()
	defer c.Close()

	res, err := c.Fix(t.Context(), "Test.java", []byte(src))
	if err != nil {
		t.Fatalf("Can't fix source: %v", err)
	}

	if res.Applied != 1 || res.Stale != 1 {
		t.Errorf("Got %d applied and %d stale fixes, want 1 and 1", res.Applied, res.Stale)
	}

	// the fix skipped in the only round is left unapplied
	if got := inspections(res.Result); len(got) != 1 {
		t.Errorf("Got remaining diagnostics %v, want one", got)
	}
}

func TestApplyFixes(t *testing.T) {
	t.Parallel()

	src := header + "class A {\n  Object f(ImmutableSeq<String> s) { return s.toImmutableSeq(); }\n}\n"

	res := check(t, DefaultOptions(), src)
	if len(res.Diagnostics) != 1 || len(res.Diagnostics[0].Fixes) != 1 {
		t.Fatalf("Got diagnostics %v, want one fixable", inspections(res))
	}

	d := res.Diagnostics[0]
	target := d.Fixes[0].Target

	conflict := d
	conflict.Fixes = []rewrite.Fix{{
		Title:  "conflict",
		Target: target,
		Edits:  []rewrite.Edit{{Span: target.Span, New: "a"}, {Span: target.Span, New: "b"}},
	}}

	var c report.Collector

	applied, stale := ApplyFixes(rewrite.NewDocument([]byte(src)), []report.Diagnostic{conflict, d, d}, &c)

	if applied != 1 || stale != 1 {
		t.Errorf("Got %d applied and %d stale fixes, want 1 and 1", applied, stale)
	}

	if len(c.Diagnostics) != 1 {
		t.Fatalf("Got %d internal errors, want 1", len(c.Diagnostics))
	}

	e := c.Diagnostics[0]
	if e.Inspection != "muda" || e.Severity != report.Error {
		t.Errorf("Got %s %s, want muda %s", e.Inspection, e.Severity, report.Error)
	}

	if got := report.English.Format(e.Message); !strings.Contains(got, "conflicting edits") {
		t.Errorf("Got message %q, want conflicting edits", got)
	}
}
