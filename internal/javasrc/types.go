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
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/kalacheck/internal/typesys"
)

// typeNodes are the node types denoting a type.
var typeNodes = []string{
	"annotated_type", "array_type", "boolean_type", "floating_point_type", "generic_type",
	"integral_type", "scoped_type_identifier", "type_identifier", "void_type",
}

const inferred = "var"

// resolveType resolves a type node. It returns nil for inferred types and nil nodes.
func (b *builder) resolveType(n *sitter.Node) *typesys.Type {
	if n == nil {
		return nil
	}

	switch n.Type() {
	case "annotated_type":
		var annotations []string

		var inner *typesys.Type
		for c := range namedChildren(n) {
			switch c.Type() {
			case "marker_annotation", "annotation":
				annotations = append(annotations, b.annotationName(c))

			default:
				inner = b.resolveType(c)
			}
		}

		return inner.Annotated(annotations...)

	case "integral_type", "floating_point_type", "boolean_type", "void_type":
		if t, ok := typesys.Primitive(b.text(n)); ok {
			return t
		}

		return typesys.New(b.text(n))

	case "type_identifier", "identifier":
		name := b.text(n)
		if name == inferred {
			return nil
		}

		return b.resolveClass(name)

	case "generic_type":
		base := b.resolveType(firstNamed(n, "type_identifier", "scoped_type_identifier"))
		if base == nil {
			return nil
		}

		var args []*typesys.Type
		for a := range namedChildren(firstNamed(n, "type_arguments")) {
			args = append(args, b.resolveTypeArgument(a))
		}

		return typesys.New(base.Name, args...)

	case "array_type":
		elem := b.resolveType(n.ChildByFieldName("element"))
		if elem == nil {
			return nil
		}

		return typesys.New(elem.Name + "[]")

	default:
		return typesys.New(b.resolveDotted(stripTypeArgs(compact(b.text(n)))))
	}
}

func (b *builder) resolveTypeArgument(n *sitter.Node) *typesys.Type {
	if n.Type() != "wildcard" {
		return b.resolveType(n)
	}

	if bound := firstNamed(n, typeNodes...); bound != nil && hasToken(n, "extends") {
		return b.resolveType(bound)
	}

	return nil
}

// resolveClass resolves a simple class name, keeping unknown names as written.
func (b *builder) resolveClass(simple string) *typesys.Type {
	for i := len(b.enclosing) - 1; i >= 0; i-- {
		nested := b.enclosing[i].class.Name + "." + simple
		if _, ok := b.file.Universe.Class(nested); ok {
			return typesys.New(nested)
		}
	}

	if q, ok := b.file.Resolve(simple); ok {
		return typesys.New(q)
	}

	return typesys.New(simple)
}

// resolveDotted resolves a dotted name whose first segment may be a simple class name.
func (b *builder) resolveDotted(dotted string) string {
	first, rest, ok := strings.Cut(dotted, ".")
	if !ok {
		return b.resolveClass(dotted).Name
	}

	if _, known := b.file.Universe.Class(dotted); known {
		return dotted
	}

	if q, ok := b.file.Resolve(first); ok {
		return q + "." + rest
	}

	return dotted
}
