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
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// TextWriter prints diagnostics one per line as "file:line:col: severity: message (inspection)".
type TextWriter struct {
	W      io.Writer
	Bundle Bundle
	Color  bool
}

// Write prints the diagnostics of one file.
func (t TextWriter) Write(l Lines, diagnostics []Diagnostic) error {
	for _, d := range diagnostics {
		severity := severityColor(d.Severity)
		if !t.Color {
			severity.DisableColor()
		}

		_, err := fmt.Fprintf(t.W, "%s: %s: %s (%s)\n",
			l.Position(d.Span.Start), severity.Sprint(d.Severity), t.Bundle.Format(d.Message), d.Inspection)
		if err != nil {
			return fmt.Errorf("can't write diagnostic: %w", err)
		}
	}

	return nil
}

func severityColor(s Severity) *color.Color {
	switch s {
	case Error:
		return color.New(color.FgRed, color.Bold)

	case Warning:
		return color.New(color.FgYellow)

	case Deprecated, Unused:
		return color.New(color.FgHiBlack)

	default:
		return color.New(color.FgCyan)
	}
}

type summaryRow struct {
	severity Severity
	count    int
	fixable  int
}

// Summary counts diagnostics per inspection.
type Summary struct {
	rows  map[string]*summaryRow
	files int
}

// Add counts the diagnostics of one file.
func (s *Summary) Add(diagnostics []Diagnostic) {
	if s.rows == nil {
		s.rows = make(map[string]*summaryRow)
	}

	s.files++

	for _, d := range diagnostics {
		r, ok := s.rows[d.Inspection]
		if !ok {
			r = &summaryRow{severity: d.Severity}
			s.rows[d.Inspection] = r
		}

		r.severity = max(r.severity, d.Severity)
		r.count++

		if len(d.Fixes) > 0 {
			r.fixable++
		}
	}
}

// Render prints the summary as a table.
func (s *Summary) Render(w io.Writer) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
			},
			Row: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.Border{Left: tw.Off, Right: tw.Off, Top: tw.Off, Bottom: tw.Off},
			Settings: tw.Settings{
				Separators: tw.Separators{BetweenColumns: tw.Off},
			},
		}),
	)

	table.Header([]string{"Inspection", "Severity", "Count", "Fixable"})

	total := 0
	for _, id := range slices.Sorted(maps.Keys(s.rows)) {
		r := s.rows[id]
		total += r.count

		if err := table.Append([]string{id, r.severity.String(), strconv.Itoa(r.count), strconv.Itoa(r.fixable)}); err != nil {
			return fmt.Errorf("can't append summary row: %w", err)
		}
	}

	table.Footer("Total", strconv.Itoa(s.files)+" files", strconv.Itoa(total), "")

	if err := table.Render(); err != nil {
		return fmt.Errorf("can't render summary: %w", err)
	}

	return nil
}
