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

package syntax

import (
	"iter"
	"slices"

	"fillmore-labs.com/kalacheck/internal/typesys"
)

// NodeID identifies a node within a [Tree].
type NodeID int32

// NoNode is the absent node.
const NoNode NodeID = -1

type node struct {
	kind      Kind
	role      Role
	attrs     Attr
	parent    NodeID
	decl      NodeID
	span      Span
	children  []NodeID
	name      string
	canonical string
	typ       *typesys.Type
}

// Tree is an immutable syntax tree over a single source file.
type Tree struct {
	filename string
	src      []byte
	nodes    []node
	comments []Span
}

// Filename returns the name of the parsed file.
func (t *Tree) Filename() string { return t.filename }

// Source returns the parsed text. The result must not be modified.
func (t *Tree) Source() []byte { return t.src }

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Root returns a cursor at the root node.
func (t *Tree) Root() Cursor {
	if len(t.nodes) == 0 {
		return Cursor{}
	}

	return Cursor{tree: t, id: 0}
}

// Cursor returns a cursor at the node n.
func (t *Tree) Cursor(n NodeID) Cursor {
	if !t.valid(n) {
		return Cursor{}
	}

	return Cursor{tree: t, id: n}
}

func (t *Tree) valid(n NodeID) bool {
	return t != nil && 0 <= n && int(n) < len(t.nodes)
}

// Text returns the source text covered by span s.
func (t *Tree) Text(s Span) string {
	if !s.Valid() || s.End > len(t.src) {
		return ""
	}

	return string(t.src[s.Start:s.End])
}

// Comments returns the spans of all comments lying completely within s, in source order.
func (t *Tree) Comments(s Span) []Span {
	i, _ := slices.BinarySearchFunc(t.comments, s.Start, func(c Span, start int) int { return c.Start - start })

	var result []Span
	for _, c := range t.comments[i:] {
		if c.Start >= s.End {
			break
		}

		if s.Contains(c) {
			result = append(result, c)
		}
	}

	return result
}

// AllComments returns the spans of all comments in the file.
func (t *Tree) AllComments() iter.Seq[Span] { return slices.Values(t.comments) }

// NodeAt returns the node of the given kind covering exactly span s.
func (t *Tree) NodeAt(s Span, kind Kind) (Cursor, bool) {
	for i := range t.nodes {
		if n := &t.nodes[i]; n.span == s && n.kind == kind {
			return Cursor{tree: t, id: NodeID(i)}, true
		}
	}

	return Cursor{}, false
}

// Preorder yields all nodes below and including root, parents before children,
// children in source order.
func (t *Tree) Preorder(root NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		if !t.valid(root) {
			return
		}

		stack := []NodeID{root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(n) {
				return
			}

			children := t.nodes[n].children
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, children[i])
			}
		}
	}
}
