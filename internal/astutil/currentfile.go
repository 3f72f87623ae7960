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

package astutil

import (
	"bytes"
	"regexp"
	"slices"
	"strings"

	"fillmore-labs.com/kalacheck/internal/report"
	"fillmore-labs.com/kalacheck/internal/syntax"
)

// kalacheck is the name of the linter.
const kalacheck = "kalacheck"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	tree      *syntax.Tree
	lines     []int
	generated bool
}

// NewCurrentFile creates a new [CurrentFile] from a parsed [syntax.Tree].
func NewCurrentFile(tree *syntax.Tree) CurrentFile {
	if tree == nil {
		return CurrentFile{}
	}

	src := tree.Source()

	lines := []int{0}
	for i, ch := range src {
		if ch == '\n' {
			lines = append(lines, i+1)
		}
	}

	return CurrentFile{tree, lines, isGenerated(tree)}
}

// Valid returns true if the [CurrentFile] was successfully created from a syntax tree.
func (c CurrentFile) Valid() bool {
	return c.tree != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Lines returns the number of lines a span covers.
func (c CurrentFile) Lines(s syntax.Span) int {
	return c.line(s.End) - c.line(s.Start) + 1
}

func (c CurrentFile) line(offset int) int {
	i, found := slices.BinarySearch(c.lines, offset)
	if found {
		return i + 1
	}

	return i
}

// NoLintComment checks if a line is followed by a //nolint:kalacheck comment.
func (c CurrentFile) NoLintComment(offset int, inspection string) bool {
	if c.tree == nil {
		return false
	}

	line := c.line(offset)
	for _, comment := range c.tree.Comments(syntax.Span{Start: offset, End: len(c.tree.Source())}) {
		if c.line(comment.Start) != line {
			return false // not on this line
		}

		if CommentHasNoLint(c.tree.Text(comment), inspection) {
			return true
		}
	}

	return false
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment contains a `//nolint:kalacheck` directive
// or names the inspection.
func CommentHasNoLint(comment, inspection string) bool {
	matches := nolintPattern.FindStringSubmatch(comment)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == kalacheck || l == "all" || l == inspection {
			return true
		}
	}

	return false
}

// Suppressed reports whether a declaration enclosing n carries a
// @SuppressWarnings("kala") or @SuppressWarnings("<inspection>") annotation.
func Suppressed(n syntax.Cursor, inspection string) bool {
	for d := n; d.Valid(); d = d.Enclosing(syntax.KindClass, syntax.KindMethod, syntax.KindDeclaration) {
		for a := range d.ChildrenOf(syntax.RoleAnnotation) {
			if !isAnnotation(a, "SuppressWarnings") {
				continue
			}

			for v := range a.ChildrenOf(syntax.RoleArgument) {
				switch v.Name() {
				case "kala", kalacheck, "all", inspection:
					return true
				}
			}
		}
	}

	return false
}

func isAnnotation(a syntax.Cursor, simple string) bool {
	name := a.Name()

	return name == simple || strings.HasSuffix(name, "."+simple)
}

var generatedPattern = regexp.MustCompile(`^//\s*Code generated .* DO NOT EDIT\.$`)

// isGenerated detects "Code generated ... DO NOT EDIT." comments before the first type
// declaration and @Generated annotations on top-level types.
func isGenerated(tree *syntax.Tree) bool {
	root := tree.Root()

	first := len(tree.Source())
	for c := range root.ChildrenOf(syntax.RoleMember) {
		first = min(first, c.Span().Start)

		for a := range c.ChildrenOf(syntax.RoleAnnotation) {
			if isAnnotation(a, "Generated") {
				return true
			}
		}
	}

	for _, comment := range tree.Comments(syntax.Span{Start: 0, End: first}) {
		text := bytes.TrimRight([]byte(tree.Text(comment)), "\r")
		if generatedPattern.Match(text) {
			return true
		}
	}

	return false
}

// Filter returns a reporter dropping diagnostics suppressed by a nolint comment on their
// first line or by a @SuppressWarnings annotation.
func (c CurrentFile) Filter(r report.Reporter) report.Reporter {
	return report.ReporterFunc(func(d report.Diagnostic) {
		if c.NoLintComment(d.Span.Start, d.Inspection) || Suppressed(d.Node, d.Inspection) {
			return
		}

		r.Report(d)
	})
}
