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

package rewrite_test

import (
	"errors"
	"testing"

	. "fillmore-labs.com/kalacheck/internal/rewrite"
	"fillmore-labs.com/kalacheck/internal/syntax"
)

func TestTransaction(t *testing.T) {
	t.Parallel()

	d := NewDocument([]byte("abcdef"))

	err := d.Edit(func(tx *Tx) error {
		if err := tx.Insert(6, "!"); err != nil {
			return err
		}

		if err := tx.Replace(syntax.Span{Start: 1, End: 3}, "BC"); err != nil {
			return err
		}

		return tx.Delete(syntax.Span{Start: 0, End: 1})
	})
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}

	if got, want := string(d.Bytes()), "BCdef!"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	if got, want := d.Version(), 1; got != want {
		t.Errorf("Got version %d, want %d", got, want)
	}
}

func TestTransactionDiscarded(t *testing.T) {
	t.Parallel()

	errTest := errors.New("test")

	tests := []struct {
		name string
		fn   func(tx *Tx) error
		want error
	}{
		{
			name: "error",
			fn: func(tx *Tx) error {
				_ = tx.Insert(0, "x")

				return errTest
			},
			want: errTest,
		},
		{
			name: "conflict",
			fn: func(tx *Tx) error {
				_ = tx.Replace(syntax.Span{Start: 0, End: 3}, "x")

				return tx.Delete(syntax.Span{Start: 2, End: 4})
			},
			want: ErrConflict,
		},
		{
			name: "insert_inside",
			fn: func(tx *Tx) error {
				_ = tx.Replace(syntax.Span{Start: 0, End: 3}, "x")

				return tx.Insert(1, "y")
			},
			want: ErrConflict,
		},
		{
			name: "range",
			fn: func(tx *Tx) error {
				return tx.Delete(syntax.Span{Start: 4, End: 9})
			},
			want: ErrRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := NewDocument([]byte("abcdef"))

			if err := d.Edit(tt.fn); !errors.Is(err, tt.want) {
				t.Errorf("Got error %v, want %v", err, tt.want)
			}

			if got, want := string(d.Bytes()), "abcdef"; got != want {
				t.Errorf("Got %q, want %q", got, want)
			}

			if d.Version() != 0 {
				t.Errorf("Got version %d, want 0", d.Version())
			}
		})
	}
}

func TestTransactionPanic(t *testing.T) {
	t.Parallel()

	d := NewDocument([]byte("abc"))

	func() {
		defer func() { _ = recover() }()

		_ = d.Edit(func(tx *Tx) error {
			_ = tx.Insert(0, "x")

			panic("test")
		})
	}()

	if got, want := string(d.Bytes()), "abc"; got != want || d.Version() != 0 {
		t.Errorf("Got %q at version %d, want %q at version 0", got, d.Version(), want)
	}
}

func anchor(src string, s syntax.Span, version int) Anchor {
	b := syntax.NewBuilder("test", []byte(src))
	n := b.Add(syntax.NoNode, syntax.RoleNone, syntax.KindCall, s)
	tree := b.Finish()

	return NewAnchor(tree.Cursor(n), version)
}

func TestApply(t *testing.T) {
	t.Parallel()

	const src = "x = a.toSeq(); y = b.toSeq();"

	d := NewDocument([]byte(src))

	first := Fix{
		Title:  "first",
		Target: anchor(src, syntax.Span{Start: 4, End: 13}, 0),
		Edits:  []Edit{{Span: syntax.Span{Start: 4, End: 13}, New: "a"}},
	}
	second := Fix{
		Title:  "second",
		Target: anchor(src, syntax.Span{Start: 19, End: 28}, 0),
		Edits:  []Edit{{Span: syntax.Span{Start: 19, End: 28}, New: "b"}},
	}

	if err := d.Apply(first); err != nil {
		t.Fatalf("Can't apply first fix: %v", err)
	}

	if err := d.Apply(second); err != nil {
		t.Fatalf("Can't apply second fix: %v", err)
	}

	if got, want := string(d.Bytes()), "x = a; y = b;"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	if err := d.Apply(first); !errors.Is(err, ErrStale) {
		t.Errorf("Got error %v, want %v", err, ErrStale)
	}

	if got, want := string(d.Bytes()), "x = a; y = b;"; got != want {
		t.Errorf("Stale fix modified the document: %q", got)
	}
}

func TestApplyChangedText(t *testing.T) {
	t.Parallel()

	const src = "x = a.toSeq();"

	fix := Fix{
		Title:  "fix",
		Target: anchor(src, syntax.Span{Start: 4, End: 13}, 0),
		Edits:  []Edit{{Span: syntax.Span{Start: 4, End: 13}, New: "a"}},
	}

	d := NewDocument([]byte("x = b.toSeq();"))

	if err := d.Apply(fix); !errors.Is(err, ErrStale) {
		t.Errorf("Got error %v, want %v", err, ErrStale)
	}
}

func TestReplaceRestoringComments(t *testing.T) {
	t.Parallel()

	const src = "  x = a /* one */ .toSeq() // two\n  ;"

	b := syntax.NewBuilder("test", []byte(src))
	b.Add(syntax.NoNode, syntax.RoleNone, syntax.KindFile, syntax.Span{Start: 0, End: len(src)})
	b.AddComment(syntax.Span{Start: 8, End: 17})
	b.AddComment(syntax.Span{Start: 27, End: 33})
	tree := b.Finish()

	target := syntax.Span{Start: 6, End: 33}
	keep := syntax.Span{Start: 6, End: 7}

	e := ReplaceRestoringComments(tree, target, "a", keep)

	if got, want := e.New, "/* one */ // two\n  a"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}

func TestReplaceRestoringCommentsEmptyText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		comment syntax.Span
		want    string
	}{
		{"block", "  put(e, /* c */ v)", syntax.Span{Start: 9, End: 16}, "/* c */"},
		{"line", "  put(e, // c\n  v)", syntax.Span{Start: 9, End: 13}, "// c\n  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := syntax.NewBuilder("test", []byte(tt.src))
			b.Add(syntax.NoNode, syntax.RoleNone, syntax.KindFile, syntax.Span{Start: 0, End: len(tt.src)})
			b.AddComment(tt.comment)
			tree := b.Finish()

			// from the end of the first argument to the end of the second
			target := syntax.Span{Start: 7, End: len(tt.src) - 1}

			e := ReplaceRestoringComments(tree, target, "")

			if got := e.New; got != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}
		})
	}
}
