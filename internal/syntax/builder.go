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
	"cmp"
	"slices"

	"fillmore-labs.com/kalacheck/internal/typesys"
)

// Builder constructs a [Tree]. Nodes may be added in any order; children are sorted by
// source position when the tree is finished.
type Builder struct {
	tree *Tree
}

// NewBuilder starts a tree for the given file.
func NewBuilder(filename string, src []byte) *Builder {
	return &Builder{tree: &Tree{filename: filename, src: src}}
}

// Add appends a node. The first node added with parent [NoNode] is the root.
func (b *Builder) Add(parent NodeID, role Role, kind Kind, span Span) NodeID {
	id := NodeID(len(b.tree.nodes))
	b.tree.nodes = append(b.tree.nodes, node{
		kind:   kind,
		role:   role,
		parent: parent,
		decl:   NoNode,
		span:   span,
	})

	if b.tree.valid(parent) {
		p := &b.tree.nodes[parent]
		p.children = append(p.children, id)
	}

	return id
}

// SetName sets the name of node n.
func (b *Builder) SetName(n NodeID, name string) { b.tree.nodes[n].name = name }

// SetCanonical sets the canonical reference text of node n.
func (b *Builder) SetCanonical(n NodeID, text string) { b.tree.nodes[n].canonical = text }

// SetType sets the resolved type of node n.
func (b *Builder) SetType(n NodeID, t *typesys.Type) { b.tree.nodes[n].typ = t }

// SetDecl sets the resolved declaration of node n.
func (b *Builder) SetDecl(n, decl NodeID) { b.tree.nodes[n].decl = decl }

// SetAttr sets attributes of node n.
func (b *Builder) SetAttr(n NodeID, a Attr) { b.tree.nodes[n].attrs |= a }

// AddComment records a comment span.
func (b *Builder) AddComment(s Span) { b.tree.comments = append(b.tree.comments, s) }

// View returns a cursor into the tree under construction.
func (b *Builder) View(n NodeID) Cursor { return b.tree.Cursor(n) }

// Finish completes the tree. The builder must not be used afterwards.
func (b *Builder) Finish() *Tree {
	t := b.tree
	b.tree = nil

	for i := range t.nodes {
		slices.SortStableFunc(t.nodes[i].children, func(x, y NodeID) int {
			return cmp.Compare(t.nodes[x].span.Start, t.nodes[y].span.Start)
		})
	}

	slices.SortFunc(t.comments, func(x, y Span) int { return cmp.Compare(x.Start, y.Start) })
	t.comments = slices.Compact(t.comments)

	return t
}
