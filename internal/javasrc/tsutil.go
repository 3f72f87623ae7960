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

package javasrc

import (
	"iter"
	"slices"
	"strings"
	"unicode"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/kalacheck/internal/syntax"
)

func spanOf(n *sitter.Node) syntax.Span {
	return syntax.Span{Start: int(n.StartByte()), End: int(n.EndByte())}
}

func isComment(n *sitter.Node) bool {
	switch n.Type() {
	case "line_comment", "block_comment", "comment":
		return true

	default:
		return false
	}
}

// allChildren yields all children, including anonymous tokens.
func allChildren(n *sitter.Node) iter.Seq[*sitter.Node] {
	return func(yield func(*sitter.Node) bool) {
		if n == nil {
			return
		}

		for i := range int(n.ChildCount()) {
			if c := n.Child(i); c != nil && !yield(c) {
				return
			}
		}
	}
}

// namedChildren yields the named children that are not comments.
func namedChildren(n *sitter.Node) iter.Seq[*sitter.Node] {
	return func(yield func(*sitter.Node) bool) {
		if n == nil {
			return
		}

		for i := range int(n.NamedChildCount()) {
			c := n.NamedChild(i)
			if c == nil || isComment(c) {
				continue
			}

			if !yield(c) {
				return
			}
		}
	}
}

// firstNamed returns the first named child with one of the given types, or any named child
// when no types are given.
func firstNamed(n *sitter.Node, types ...string) *sitter.Node {
	for c := range namedChildren(n) {
		if len(types) == 0 || slices.Contains(types, c.Type()) {
			return c
		}
	}

	return nil
}

// lastNamed returns the last named child with one of the given types.
func lastNamed(n *sitter.Node, types ...string) *sitter.Node {
	var last *sitter.Node
	for c := range namedChildren(n) {
		if slices.Contains(types, c.Type()) {
			last = c
		}
	}

	return last
}

// hasToken reports whether n has a direct child token of the given type.
func hasToken(n *sitter.Node, token string) bool {
	for c := range allChildren(n) {
		if c.Type() == token {
			return true
		}
	}

	return false
}

// compact removes all white space.
func compact(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)
}

// stripTypeArgs removes all type argument lists from a type name.
func stripTypeArgs(s string) string {
	var (
		b     strings.Builder
		depth int
	)

	for _, r := range s {
		switch {
		case r == '<':
			depth++

		case r == '>':
			depth--

		case depth == 0:
			b.WriteRune(r) // ignore error
		}
	}

	return b.String()
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}

	return s
}
