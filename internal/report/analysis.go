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

package report

import (
	"go/token"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/kalacheck/internal/syntax"
)

// Lines maps byte offsets of one file to positions.
type Lines struct {
	fset *token.FileSet
	file *token.File
}

// NewLines indexes the lines of src.
func NewLines(filename string, src []byte) Lines {
	fset := token.NewFileSet()
	file := fset.AddFile(filename, -1, len(src))
	file.SetLinesForContent(src)

	return Lines{fset: fset, file: file}
}

// FileSet returns the file set holding the file.
func (l Lines) FileSet() *token.FileSet { return l.fset }

// Pos converts an offset to a [token.Pos].
func (l Lines) Pos(offset int) token.Pos {
	return l.file.Pos(min(max(offset, 0), l.file.Size()))
}

// Position converts an offset to a line and column.
func (l Lines) Position(offset int) token.Position {
	return l.file.PositionFor(l.Pos(offset), false)
}

// Analysis converts d into the diagnostic shape of golang.org/x/tools/go/analysis.
func (d Diagnostic) Analysis(l Lines, b Bundle) analysis.Diagnostic {
	ad := analysis.Diagnostic{
		Pos:      l.Pos(d.Span.Start),
		End:      l.Pos(d.Span.End),
		Category: d.Inspection,
		Message:  b.Format(d.Message),
	}

	for _, r := range d.Related {
		ad.Related = append(ad.Related, analysis.RelatedInformation{
			Pos:     l.Pos(r.Span.Start),
			End:     l.Pos(r.Span.End),
			Message: b.Format(r.Message),
		})
	}

	for _, f := range d.Fixes {
		edits := make([]analysis.TextEdit, 0, len(f.Edits))
		for _, e := range f.Edits {
			edits = append(edits, textEdit(l, e.Span, e.New))
		}

		ad.SuggestedFixes = append(ad.SuggestedFixes, analysis.SuggestedFix{Message: f.Title, TextEdits: edits})
	}

	return ad
}

func textEdit(l Lines, s syntax.Span, text string) analysis.TextEdit {
	return analysis.TextEdit{Pos: l.Pos(s.Start), End: l.Pos(s.End), NewText: []byte(text)}
}
