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
	"errors"
	"fmt"
	"log/slog"

	"github.com/cespare/xxhash/v2"

	"fillmore-labs.com/kalacheck/internal/syntax"
)

// ErrStale is returned when the target of a fix changed after the fix was created.
var ErrStale = errors.New("stale fix")

// Anchor identifies the target node of a fix at a document version.
type Anchor struct {
	Span    syntax.Span
	Kind    syntax.Kind
	Sum     uint64
	Version int
}

// NewAnchor fingerprints node c of a tree parsed from the document at version.
func NewAnchor(c syntax.Cursor, version int) Anchor {
	return Anchor{Span: c.Span(), Kind: c.Kind(), Sum: xxhash.Sum64String(c.Text()), Version: version}
}

// Check reports whether the anchored text is still found at span s of src.
func (a Anchor) Check(src []byte, s syntax.Span) bool {
	return s.Valid() && s.End <= len(src) && s.Len() == a.Span.Len() && xxhash.Sum64(src[s.Start:s.End]) == a.Sum
}

// Resolve finds the anchored node in a tree parsed at the anchor's version.
func (a Anchor) Resolve(tree *syntax.Tree) (syntax.Cursor, error) {
	c, ok := tree.NodeAt(a.Span, a.Kind)
	if !ok || !a.Check(tree.Source(), a.Span) {
		return syntax.Cursor{}, fmt.Errorf("%w: no %v at %v", ErrStale, a.Kind, a.Span)
	}

	return c, nil
}

// LogValue implements [slog.LogValuer].
func (a Anchor) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", a.Kind.String()),
		slog.Int("start", a.Span.Start),
		slog.Int("end", a.Span.End),
		slog.Int("version", a.Version),
	)
}

// Fix is a quick-fix: a titled set of edits against the document version of its anchor.
type Fix struct {
	Title  string
	Target Anchor
	Edits  []Edit
}

// Apply re-validates the fix target and commits its edits in one transaction.
func (d *Document) Apply(f Fix) error {
	return d.Edit(func(tx *Tx) error {
		target, ok := d.rebase(f.Target.Span, f.Target.Version)
		if !ok || !f.Target.Check(tx.Source(), target) {
			return fmt.Errorf("%s: %w", f.Title, ErrStale)
		}

		for _, e := range f.Edits {
			s, ok := d.rebase(e.Span, f.Target.Version)
			if !ok {
				return fmt.Errorf("%s: %w", f.Title, ErrStale)
			}

			if err := tx.Replace(s, e.New); err != nil {
				return fmt.Errorf("%s: %w", f.Title, err)
			}
		}

		return nil
	})
}
