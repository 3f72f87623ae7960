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

package astutil_test

import (
	"slices"
	"testing"

	. "fillmore-labs.com/kalacheck/internal/astutil"
	"fillmore-labs.com/kalacheck/internal/report"
	"fillmore-labs.com/kalacheck/internal/syntax"
	"fillmore-labs.com/kalacheck/internal/testsource"
)

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		comment    string
		inspection string
		want       bool
	}{
		{"linter", "//nolint:kalacheck", "muda", true},
		{"space", "// nolint:kalacheck", "muda", true},
		{"all", "//nolint:all", "muda", true},
		{"inspection", "//nolint:muda,sameness", "sameness", true},
		{"uppercase", "//nolint:KalaCheck", "muda", true},
		{"other", "//nolint:errcheck", "muda", false},
		{"plain", "// kalacheck", "muda", false},
		{"block", "/* nolint:kalacheck */", "muda", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CommentHasNoLint(tt.comment, tt.inspection); got != tt.want {
				t.Errorf("Got %t, want %t", got, tt.want)
			}
		})
	}
}

const suppressSource = `package test;

class Suppress {
  void plain(Object o) {
    o.toString(); //nolint:kalacheck
    o.hashCode(); // nolint:muda,sameness
    o.getClass();
  }

  @SuppressWarnings("muda")
  void suppressed(Object o) {
    o.notify();
  }
}
`

func TestFilter(t *testing.T) {
	t.Parallel()

	f := testsource.ParseFile(t, "Suppress.java", []byte(suppressSource))
	file := NewCurrentFile(f.Tree)

	calls := make(map[string]syntax.Cursor)
	for c := range f.Tree.Root().Preorder(syntax.KindCall) {
		calls[c.Name()] = c
	}

	tests := []struct {
		call       string
		inspection string
		want       bool
	}{
		{"toString", "muda", false},
		{"hashCode", "muda", false},
		{"hashCode", "view-size", true},
		{"getClass", "muda", true},
		{"notify", "muda", false},
		{"notify", "sameness", true},
	}

	for _, tt := range tests {
		t.Run(tt.call+"_"+tt.inspection, func(t *testing.T) {
			t.Parallel()

			call, ok := calls[tt.call]
			if !ok {
				t.Fatalf("Call %s not found", tt.call)
			}

			var c report.Collector
			file.Filter(&c).Report(report.Diagnostic{
				Inspection: tt.inspection,
				Node:       call,
				Span:       call.Child(syntax.RoleName).Span(),
			})

			if got := len(c.Diagnostics) == 1; got != tt.want {
				t.Errorf("Got reported %t, want %t", got, tt.want)
			}
		})
	}
}

func TestGenerated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want bool
	}{
		{"comment", "// Code generated by kalagen. DO NOT EDIT.\n\npackage test;\n\nclass A {}\n", true},
		{"annotation", "package test;\n\nimport javax.annotation.processing.Generated;\n\n@Generated(\"kalagen\")\nclass A {}\n", true},
		{"late_comment", "package test;\n\nclass A {}\n// Code generated by kalagen. DO NOT EDIT.\n", false},
		{"plain", "package test;\n\nclass A {}\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := testsource.ParseFile(t, "A.java", []byte(tt.src))

			file := NewCurrentFile(f.Tree)
			if !file.Valid() {
				t.Fatal("Invalid current file")
			}

			if got := file.Generated(); got != tt.want {
				t.Errorf("Got generated %t, want %t", got, tt.want)
			}
		})
	}
}

func TestLines(t *testing.T) {
	t.Parallel()

	f := testsource.ParseFile(t, "A.java", []byte("package test;\n\nclass A {\n  int x;\n}\n"))
	file := NewCurrentFile(f.Tree)

	var class syntax.Cursor
	for c := range f.Tree.Root().Preorder(syntax.KindClass) {
		class = c
	}

	if got, want := file.Lines(class.Span()), 3; got != want {
		t.Errorf("Got %d lines, want %d", got, want)
	}

	if NewCurrentFile(nil).Valid() {
		t.Error("Got valid current file without tree")
	}
}

func TestInternalError(t *testing.T) {
	t.Parallel()

	_, body := testsource.Parse(t, `int x = 1;`)

	var c report.Collector
	InternalError(&c, "dblity", body, "unexpected %s", "node")

	if len(c.Diagnostics) != 1 {
		t.Fatalf("Got %d diagnostics, want 1", len(c.Diagnostics))
	}

	d := c.Diagnostics[0]
	if d.Severity != report.Error || d.Span != body.Span() {
		t.Errorf("Got %v at %v, want error at %v", d.Severity, d.Span, body.Span())
	}

	if got, want := report.English.Format(d.Message), "Internal Error: unexpected node"; got != want {
		t.Errorf("Got message %q, want %q", got, want)
	}
}

func TestAllDeclaredVariables(t *testing.T) {
	t.Parallel()

	_, body := testsource.Parse(t, `@Deprecated int a = 1, b = 2;`)

	decl := body.Child(syntax.RoleStatement)

	var names []string
	for v := range AllDeclaredVariables(decl) {
		names = append(names, v.Name())

		annotations := Annotations(v)
		if len(annotations) != 1 || annotations[0].Name() != "java.lang.Deprecated" && annotations[0].Name() != "Deprecated" {
			t.Errorf("Got annotations %v for %s, want Deprecated", annotations, v.Name())
		}
	}

	if want := []string{"a", "b"}; !slices.Equal(names, want) {
		t.Errorf("Got variables %v, want %v", names, want)
	}

	if got := len(slices.Collect(AllDeclaredVariables(body))); got != 0 {
		t.Errorf("Got %d variables of a block, want 0", got)
	}
}
