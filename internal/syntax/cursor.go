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

// Cursor is a position in a [Tree]. The zero Cursor is invalid; all accessors on an invalid
// cursor return zero values.
type Cursor struct {
	tree *Tree
	id   NodeID
}

// Valid reports whether c denotes a node.
func (c Cursor) Valid() bool { return c.tree.valid(c.id) }

// Tree returns the tree c points into.
func (c Cursor) Tree() *Tree { return c.tree }

// ID returns the node index, or [NoNode].
func (c Cursor) ID() NodeID {
	if !c.Valid() {
		return NoNode
	}

	return c.id
}

func (c Cursor) node() *node {
	if !c.Valid() {
		return &invalid
	}

	return &c.tree.nodes[c.id]
}

var invalid = node{parent: NoNode, decl: NoNode}

// Kind returns the node kind.
func (c Cursor) Kind() Kind { return c.node().kind }

// Is reports whether the node has one of the given kinds.
func (c Cursor) Is(kinds ...Kind) bool { return c.Valid() && slices.Contains(kinds, c.node().kind) }

// Role returns the edge by which the node is attached to its parent.
func (c Cursor) Role() Role { return c.node().role }

// Has reports whether all attributes in a are set.
func (c Cursor) Has(a Attr) bool { return c.Valid() && c.node().attrs&a == a }

// Span returns the source range of the node.
func (c Cursor) Span() Span {
	if !c.Valid() {
		return Span{-1, -1}
	}

	return c.node().span
}

// Text returns the source text of the node.
func (c Cursor) Text() string {
	if !c.Valid() {
		return ""
	}

	return c.tree.Text(c.node().span)
}

// Name returns the node's name: identifiers, called methods, declared names, operators and
// resolved annotation names.
func (c Cursor) Name() string { return c.node().name }

// Canonical returns the canonical reference text: the qualified name for references to
// types, the source text with whitespace removed otherwise.
func (c Cursor) Canonical() string { return c.node().canonical }

// Type returns the resolved static type, or nil.
func (c Cursor) Type() *typesys.Type { return c.node().typ }

// Decl returns the resolved declaration.
func (c Cursor) Decl() Cursor { return c.tree.Cursor(c.node().decl) }

// Parent returns the parent node.
func (c Cursor) Parent() Cursor { return c.tree.Cursor(c.node().parent) }

// Child returns the first child attached with role r.
func (c Cursor) Child(r Role) Cursor {
	for _, child := range c.node().children {
		if c.tree.nodes[child].role == r {
			return Cursor{tree: c.tree, id: child}
		}
	}

	return Cursor{}
}

// Children yields all children in source order.
func (c Cursor) Children() iter.Seq[Cursor] {
	return func(yield func(Cursor) bool) {
		for _, child := range c.node().children {
			if !yield(Cursor{tree: c.tree, id: child}) {
				return
			}
		}
	}
}

// ChildrenOf yields the children attached with role r in source order.
func (c Cursor) ChildrenOf(r Role) iter.Seq[Cursor] {
	return func(yield func(Cursor) bool) {
		for _, child := range c.node().children {
			if c.tree.nodes[child].role != r {
				continue
			}

			if !yield(Cursor{tree: c.tree, id: child}) {
				return
			}
		}
	}
}

// Count returns the number of children attached with role r.
func (c Cursor) Count(r Role) int {
	n := 0
	for _, child := range c.node().children {
		if c.tree.nodes[child].role == r {
			n++
		}
	}

	return n
}

// Nth returns the i-th child attached with role r.
func (c Cursor) Nth(r Role, i int) Cursor {
	for child := range c.ChildrenOf(r) {
		if i == 0 {
			return child
		}
		i--
	}

	return Cursor{}
}

// Preorder yields the node and its descendants with one of the given kinds, or all of them
// when no kinds are given.
func (c Cursor) Preorder(kinds ...Kind) iter.Seq[Cursor] {
	return func(yield func(Cursor) bool) {
		if !c.Valid() {
			return
		}

		for n := range c.tree.Preorder(c.id) {
			if len(kinds) > 0 && !slices.Contains(kinds, c.tree.nodes[n].kind) {
				continue
			}

			if !yield(Cursor{tree: c.tree, id: n}) {
				return
			}
		}
	}
}

// Enclosing returns the nearest proper ancestor with one of the given kinds.
func (c Cursor) Enclosing(kinds ...Kind) Cursor {
	for p := c.Parent(); p.Valid(); p = p.Parent() {
		if slices.Contains(kinds, p.Kind()) {
			return p
		}
	}

	return Cursor{}
}

// Unparen returns the innermost expression inside nested parentheses.
func (c Cursor) Unparen() Cursor {
	for c.Kind() == KindParen {
		c = c.Child(RoleOperand)
	}

	return c
}
