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

package rewrite

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"slices"

	"fillmore-labs.com/kalacheck/internal/syntax"
)

var (
	// ErrConflict is returned when edits of one transaction overlap.
	ErrConflict = errors.New("conflicting edits")

	// ErrRange is returned for edits outside of the document.
	ErrRange = errors.New("edit out of range")
)

// Edit replaces the text in Span by New. An empty span inserts.
type Edit struct {
	Span syntax.Span
	New  string
}

func (e Edit) delta() int { return len(e.New) - e.Span.Len() }

// Document is a mutable source text with a version counter incremented by each commit.
type Document struct {
	text []byte
	log  [][]Edit // committed edits, indexed by version
}

// NewDocument creates a document at version 0.
func NewDocument(src []byte) *Document {
	return &Document{text: slices.Clone(src)}
}

// Bytes returns the current text. It must not be modified.
func (d *Document) Bytes() []byte { return d.text }

// Version returns the number of committed transactions.
func (d *Document) Version() int { return len(d.log) }

// Edit runs fn in a transaction. The staged edits are committed when fn returns nil
// and discarded when it returns an error or panics.
func (d *Document) Edit(fn func(tx *Tx) error) error {
	tx := &Tx{src: d.text}

	defer tx.discard()

	if err := fn(tx); err != nil {
		return err
	}

	d.commit(tx.edits)

	return nil
}

func (d *Document) commit(edits []Edit) {
	if len(edits) == 0 {
		return
	}

	slices.SortStableFunc(edits, func(x, y Edit) int {
		return cmp.Or(cmp.Compare(x.Span.Start, y.Span.Start), cmp.Compare(x.Span.End, y.Span.End))
	})

	var (
		b    bytes.Buffer
		last int
	)

	for _, e := range edits {
		b.Write(d.text[last:e.Span.Start]) // ignore error
		b.WriteString(e.New)               // ignore error
		last = e.Span.End
	}

	b.Write(d.text[last:]) // ignore error

	d.text = b.Bytes()
	d.log = append(d.log, edits)
}

// rebase maps a span of the document at version since to the current text.
// It fails when a later edit touched the span.
func (d *Document) rebase(s syntax.Span, since int) (syntax.Span, bool) {
	if since < 0 || since > len(d.log) {
		return s, false
	}

	for _, edits := range d.log[since:] {
		shift := 0

		for _, e := range edits {
			switch {
			case e.Span.End <= s.Start:
				shift += e.delta()

			case e.Span.Start >= s.End:

			default:
				return s, false
			}
		}

		s = syntax.Span{Start: s.Start + shift, End: s.End + shift}
	}

	return s, true
}

// Tx is a transaction staging edits against a fixed source text.
type Tx struct {
	src   []byte
	edits []Edit
	done  bool
}

// Source returns the text the transaction's offsets refer to.
func (tx *Tx) Source() []byte { return tx.src }

// Insert stages an insertion before offset.
func (tx *Tx) Insert(offset int, text string) error {
	return tx.Replace(syntax.Span{Start: offset, End: offset}, text)
}

// Delete stages the removal of span s.
func (tx *Tx) Delete(s syntax.Span) error {
	return tx.Replace(s, "")
}

// Replace stages the replacement of span s by text.
func (tx *Tx) Replace(s syntax.Span, text string) error {
	if tx.done {
		return fmt.Errorf("%w: transaction finished", ErrRange)
	}

	if !s.Valid() || s.End > len(tx.src) {
		return fmt.Errorf("%w: %v in document of %d bytes", ErrRange, s, len(tx.src))
	}

	for _, e := range tx.edits {
		if e.Span.Overlaps(s) {
			return fmt.Errorf("%w: %v and %v", ErrConflict, e.Span, s)
		}

		if (e.Span.Len() == 0 && s.Start < e.Span.Start && e.Span.Start < s.End) ||
			(s.Len() == 0 && e.Span.Start < s.Start && s.Start < e.Span.End) {
			return fmt.Errorf("%w: insertion inside replaced text at %v", ErrConflict, s)
		}
	}

	tx.edits = append(tx.edits, Edit{Span: s, New: text})

	return nil
}

func (tx *Tx) discard() {
	tx.done = true
	tx.edits = nil
}
