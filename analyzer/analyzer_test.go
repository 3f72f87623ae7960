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

package analyzer_test

import (
	"bytes"
	"flag"
	"log/slog"
	"strings"
	"testing"

	. "fillmore-labs.com/kalacheck/analyzer"
	"fillmore-labs.com/kalacheck/internal/config"
)

const source = `package test;

import kala.collection.immutable.ImmutableSeq;

class A {
  boolean f(ImmutableSeq<String> seq) {
    return seq.toImmutableSeq().size() > 0;
  }

  void g(@Closed String c) {
    @Bound String b = c;
  }
}
`

func inspections(t *testing.T, a *Analyzer, src string) []string {
	t.Helper()

	s := a.NewSession()
	defer s.Close()

	res, err := s.Check(t.Context(), "A.java", []byte(src))
	if err != nil {
		t.Fatalf("Can't check source: %v", err)
	}

	ids := make([]string, 0, len(res.Diagnostics))
	for _, d := range res.Diagnostics {
		ids = append(ids, d.Inspection)
	}

	return ids
}

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{
			name: "default",
			want: "muda size-compare dblity",
		},
		{
			name: "no_muda",
			opts: []Option{WithInspection(config.Muda, false)},
			want: "size-compare dblity",
		},
		{
			name: "no_narrowing",
			opts: []Option{WithNarrowing(false)},
			want: "muda size-compare",
		},
		{
			name: "renamed",
			opts: []Option{WithAnnotationNames(config.Annotations{Closed: "Frozen", Bound: "Bound", NoInherit: "NoInherit"})},
			want: "muda size-compare",
		},
		{
			name: "nested",
			opts: []Option{Options{WithInspection(config.SizeCompare, false), nil}},
			want: "muda dblity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New(tt.opts...)
			if got := strings.Join(inspections(t, a, source), " "); got != tt.want {
				t.Errorf("Got inspections %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRegisterFlags(t *testing.T) {
	t.Parallel()

	a := New()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	a.RegisterFlags(fs)

	if err := fs.Parse([]string{"-muda=false", "-dblity=false"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got, want := strings.Join(inspections(t, a, source), " "), "size-compare"; got != want {
		t.Errorf("Got inspections %q, want %q", got, want)
	}

	if f := fs.Lookup("fix-rounds"); f == nil || f.Value.String() != "5" {
		t.Errorf("Got fix-rounds flag %v, want default 5", f)
	}
}

func TestSessionFix(t *testing.T) {
	t.Parallel()

	a := New(WithInspection(config.Dblity, false))

	s := a.NewSession()
	defer s.Close()

	res, err := s.Fix(t.Context(), "A.java", []byte(source))
	if err != nil {
		t.Fatalf("Can't fix source: %v", err)
	}

	if want := "    return seq.isNotEmpty();\n"; !strings.Contains(string(res.Source), want) {
		t.Errorf("Got fixed source:\n%s\nwant line %q", res.Source, want)
	}

	if res.Applied != 2 {
		t.Errorf("Got %d applied fixes, want 2", res.Applied)
	}
}

func TestLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{
		WithInspection(config.Muda, false),
		WithGenerated(true),
		nil,
		Options{WithFixRounds(2)},
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}

			return a
		},
	}))
	logger.Info("config", opts.LogAttr())

	const want = "level=INFO msg=config options.muda=false options.generated=true options.nil=<nil> options.fixRounds=2\n"
	if got := buf.String(); got != want {
		t.Errorf("Got log %q, want %q", got, want)
	}
}
