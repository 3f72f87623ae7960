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

// Package report defines diagnostics, their messages and output formats.
//
// Inspections report [Diagnostic] values carrying a fixed message [Key] and arguments;
// the text is rendered late through a [Bundle], so no wording lives in the rules.
package report

import (
	"cmp"
	"slices"

	"fillmore-labs.com/kalacheck/internal/rewrite"
	"fillmore-labs.com/kalacheck/internal/syntax"
)

// Severity is the highlight level of a diagnostic.
type Severity uint8

//go:generate go tool stringer -type Severity -linecomment
const (
	Info       Severity = iota // info
	Unused                     // unused
	Deprecated                 // deprecated
	Warning                    // warning
	Error                      // error
)

// Diagnostic is a finding of one inspection.
type Diagnostic struct {
	Inspection string
	Severity   Severity
	// Node is the node the diagnostic is anchored at.
	Node syntax.Cursor
	// Span is the highlighted range, usually within Node.
	Span    syntax.Span
	Message Message
	Related []Related
	Fixes   []rewrite.Fix
}

// Related is additional position information for a diagnostic.
type Related struct {
	Span    syntax.Span
	Message Message
}

// Reporter receives diagnostics.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to a [Reporter].
type ReporterFunc func(d Diagnostic)

// Report calls f(d).
func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// Collector is a [Reporter] keeping all diagnostics.
type Collector struct {
	Diagnostics []Diagnostic
}

// Report implements [Reporter].
func (c *Collector) Report(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}

// Sorted returns the diagnostics ordered by position and inspection.
func (c *Collector) Sorted() []Diagnostic {
	return slices.SortedStableFunc(slices.Values(c.Diagnostics), func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Span.Start, y.Span.Start),
			cmp.Compare(x.Span.End, y.Span.End),
			cmp.Compare(x.Inspection, y.Inspection),
		)
	})
}
