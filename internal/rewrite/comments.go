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
	"strings"

	"fillmore-labs.com/kalacheck/internal/syntax"
)

// ReplaceRestoringComments returns an edit replacing target by text. Comments inside target
// that are not part of one of the kept spans are restored in front of the replacement.
func ReplaceRestoringComments(tree *syntax.Tree, target syntax.Span, text string, keep ...syntax.Span) Edit {
	var b strings.Builder

	sep := ""
	for _, c := range tree.Comments(target) {
		if kept(c, keep) {
			continue
		}

		comment := tree.Text(c)
		b.WriteString(sep)     // ignore error
		b.WriteString(comment) // ignore error

		if strings.HasPrefix(comment, "//") {
			sep = "\n" + indentation(tree.Source(), target.Start)
		} else {
			sep = " "
		}
	}

	// a line comment must end its line even when nothing follows
	if text != "" || strings.HasPrefix(sep, "\n") {
		b.WriteString(sep) // ignore error
	}

	b.WriteString(text) // ignore error

	return Edit{Span: target, New: b.String()}
}

func kept(c syntax.Span, keep []syntax.Span) bool {
	for _, k := range keep {
		if k.Contains(c) {
			return true
		}
	}

	return false
}

// indentation returns the leading white space of the line containing offset.
func indentation(src []byte, offset int) string {
	start := offset
	for start > 0 && src[start-1] != '\n' {
		start--
	}

	end := start
	for end < offset && (src[end] == ' ' || src[end] == '\t') {
		end++
	}

	return string(src[start:end])
}
