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
	"encoding/json"
	"fmt"
	"go/token"
	"io"

	"golang.org/x/tools/go/analysis"
)

// JSONTree is the machine readable output, keyed by file and tool name.
// The diagnostic shape follows the -json output of go vet.
type JSONTree map[string]map[string][]JSONDiagnostic

// JSONDiagnostic is a diagnostic in JSON output.
type JSONDiagnostic struct {
	Category       string              `json:"category,omitempty"`
	Severity       string              `json:"severity"`
	Posn           string              `json:"posn"`
	Message        string              `json:"message"`
	SuggestedFixes []JSONSuggestedFix  `json:"suggested_fixes,omitempty"`
	Related        []JSONRelatedInform `json:"related,omitempty"`
}

// JSONSuggestedFix is a suggested fix in JSON output.
type JSONSuggestedFix struct {
	Message string         `json:"message"`
	Edits   []JSONTextEdit `json:"edits"`
}

// JSONTextEdit is a text edit in JSON output, with byte offsets.
type JSONTextEdit struct {
	Filename string `json:"filename"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	New      string `json:"new"`
}

// JSONRelatedInform is related information in JSON output.
type JSONRelatedInform struct {
	Posn    string `json:"posn"`
	Message string `json:"message"`
}

// Add records the diagnostics of one file.
func (t JSONTree) Add(tool string, l Lines, diagnostics []Diagnostic, b Bundle) {
	if len(diagnostics) == 0 {
		return
	}

	fset := l.FileSet()
	filename := l.file.Name()

	jd := make([]JSONDiagnostic, 0, len(diagnostics))
	for _, d := range diagnostics {
		ad := d.Analysis(l, b)
		jd = append(jd, JSONDiagnostic{
			Category:       ad.Category,
			Severity:       d.Severity.String(),
			Posn:           fset.Position(ad.Pos).String(),
			Message:        ad.Message,
			SuggestedFixes: suggestedFixes(fset, ad.SuggestedFixes),
			Related:        related(fset, ad.Related),
		})
	}

	if t[filename] == nil {
		t[filename] = make(map[string][]JSONDiagnostic)
	}

	t[filename][tool] = append(t[filename][tool], jd...)
}

func suggestedFixes(fset *token.FileSet, fixes []analysis.SuggestedFix) []JSONSuggestedFix {
	var result []JSONSuggestedFix

	for _, f := range fixes {
		edits := make([]JSONTextEdit, 0, len(f.TextEdits))
		for _, e := range f.TextEdits {
			file := fset.File(e.Pos)
			edits = append(edits, JSONTextEdit{
				Filename: file.Name(),
				Start:    file.Offset(e.Pos),
				End:      file.Offset(e.End),
				New:      string(e.NewText),
			})
		}

		result = append(result, JSONSuggestedFix{Message: f.Message, Edits: edits})
	}

	return result
}

func related(fset *token.FileSet, infos []analysis.RelatedInformation) []JSONRelatedInform {
	var result []JSONRelatedInform

	for _, r := range infos {
		result = append(result, JSONRelatedInform{Posn: fset.Position(r.Pos).String(), Message: r.Message})
	}

	return result
}

// Print writes the tree as indented JSON.
func (t JSONTree) Print(w io.Writer) error {
	data, err := json.MarshalIndent(t, "", "\t")
	if err != nil {
		return fmt.Errorf("can't encode JSON: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("can't write JSON: %w", err)
	}

	return nil
}
