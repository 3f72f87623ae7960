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

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/kalacheck/internal/syntax"
	"fillmore-labs.com/kalacheck/internal/typesys"
)

// declKey identifies a declaration node before it is built.
type declKey struct {
	span syntax.Span
	kind syntax.Kind
}

type field struct {
	typ    *typesys.Type
	key    declKey
	static bool
}

type classDecl struct {
	node   *sitter.Node
	class  *typesys.Class
	fields map[string]field
}

type fixup struct {
	node syntax.NodeID
	key  declKey
}

type builder struct {
	file *File
	src  []byte
	tb   *syntax.Builder

	classes    []*classDecl
	classAt    map[syntax.Span]*classDecl
	classNamed map[string]*classDecl
	declOf     map[*typesys.Method]declKey
	declared   map[declKey]syntax.NodeID
	fixups     []fixup
	scopes     scopes
	enclosing  []*classDecl
}

func newBuilder(f *File, filename string, src []byte) *builder {
	return &builder{
		file:       f,
		src:        src,
		tb:         syntax.NewBuilder(filename, src),
		classAt:    make(map[syntax.Span]*classDecl),
		classNamed: make(map[string]*classDecl),
		declOf:     make(map[*typesys.Method]declKey),
		declared:   make(map[declKey]syntax.NodeID),
	}
}

func (b *builder) text(n *sitter.Node) string { return n.Content(b.src) }

func isClassLike(n *sitter.Node) bool {
	switch n.Type() {
	case "class_declaration", "interface_declaration", "enum_declaration", "record_declaration",
		"annotation_type_declaration":
		return true

	default:
		return false
	}
}

// collect reads the package and imports and registers all classes declared in the file.
func (b *builder) collect(root *sitter.Node) {
	for c := range namedChildren(root) {
		switch c.Type() {
		case "package_declaration":
			if name := firstNamed(c, "scoped_identifier", "identifier"); name != nil {
				b.file.Package = compact(b.text(name))
				b.file.names.pkg = b.file.Package
			}

		case "import_declaration":
			name := firstNamed(c, "scoped_identifier", "identifier")
			if name == nil || hasToken(c, "static") {
				continue
			}

			path := compact(b.text(name))
			if firstNamed(c, "asterisk") != nil || hasToken(c, "*") {
				b.file.names.importPackage(path)
			} else {
				b.file.names.importSingle(path)
			}

		default:
			if isClassLike(c) {
				b.collectClass(c, "")
			}
		}
	}
}

func (b *builder) collectClass(n *sitter.Node, outer string) {
	nameNode := n.ChildByFieldName("name")
	if nameNode == nil {
		return
	}

	simple := b.text(nameNode)

	qualified := b.file.names.qualify(simple)
	if outer != "" {
		qualified = outer + "." + simple
	}

	if _, ok := b.file.names.local[simple]; !ok {
		b.file.names.local[simple] = qualified
	}

	cls := &typesys.Class{
		Name:      qualified,
		Interface: n.Type() == "interface_declaration" || n.Type() == "annotation_type_declaration",
	}
	b.file.Universe.Define(cls)

	cd := &classDecl{node: n, class: cls, fields: make(map[string]field)}
	b.classes = append(b.classes, cd)
	b.classAt[spanOf(n)] = cd
	b.classNamed[qualified] = cd

	for m := range members(n) {
		if isClassLike(m) {
			b.collectClass(m, qualified)
		}
	}
}

// members yields the member declarations of a class body.
func members(n *sitter.Node) iter.Seq[*sitter.Node] {
	return func(yield func(*sitter.Node) bool) {
		body := n.ChildByFieldName("body")
		for m := range namedChildren(body) {
			if m.Type() == "enum_body_declarations" {
				for d := range namedChildren(m) {
					if !yield(d) {
						return
					}
				}

				continue
			}

			if !yield(m) {
				return
			}
		}
	}
}

// declareAll declares supertypes and members of all collected classes.
func (b *builder) declareAll() {
	for _, cd := range b.classes {
		b.declareClass(cd)
	}
}

func (b *builder) declareClass(cd *classDecl) {
	n, cls := cd.node, cd.class

	b.enclosing = append(b.enclosing, cd)
	defer func() { b.enclosing = b.enclosing[:len(b.enclosing)-1] }()

	_, cls.Annotations = b.modifiers(n)

	for c := range namedChildren(n) {
		switch c.Type() {
		case "superclass":
			if t := firstNamed(c); t != nil {
				cls.Supers = appendType(cls.Supers, b.resolveType(t))
			}

		case "super_interfaces", "extends_interfaces":
			for t := range namedChildren(firstNamed(c, "type_list")) {
				cls.Supers = appendType(cls.Supers, b.resolveType(t))
			}
		}
	}

	switch n.Type() {
	case "record_declaration":
		cls.Supers = append(cls.Supers, "java.lang.Record")
		cls.Components = make([]typesys.Param, 0)

		for p := range namedChildren(n.ChildByFieldName("parameters")) {
			if p.Type() != "formal_parameter" {
				continue
			}

			param := b.param(p)
			cls.Components = append(cls.Components, param)

			key := declKey{spanOf(p), syntax.KindParameter}
			cd.fields[param.Name] = field{typ: param.Type, key: key}

			accessor := &typesys.Method{Name: param.Name, Result: param.Type.Bare(), Annotations: param.Annotations}
			cls.Methods = append(cls.Methods, accessor)
			b.declOf[accessor] = key
		}

		canonical := &typesys.Method{Name: "<init>", Params: cls.Components, Constructor: true}
		cls.Methods = append(cls.Methods, canonical)
		b.declOf[canonical] = declKey{spanOf(n), syntax.KindClass}

	case "enum_declaration":
		cls.Supers = append(cls.Supers, "java.lang.Enum")

		for c := range namedChildren(n.ChildByFieldName("body")) {
			if c.Type() != "enum_constant" {
				continue
			}

			name := b.text(c.ChildByFieldName("name"))
			cls.Constants = append(cls.Constants, name)
			cd.fields[name] = field{typ: cls.Type(), key: declKey{spanOf(c), syntax.KindVariable}, static: true}
		}
	}

	for m := range members(n) {
		switch m.Type() {
		case "field_declaration", "constant_declaration":
			static, annotations := b.modifiers(m)
			typ := b.resolveType(m.ChildByFieldName("type")).Annotated(annotations...)

			for d := range namedChildren(m) {
				if d.Type() != "variable_declarator" {
					continue
				}

				name := b.text(d.ChildByFieldName("name"))
				cd.fields[name] = field{
					typ:    typ,
					key:    declKey{spanOf(d), syntax.KindVariable},
					static: static || cls.Interface,
				}
			}

		case "method_declaration":
			static, annotations := b.modifiers(m)

			method := &typesys.Method{
				Name:        b.text(m.ChildByFieldName("name")),
				Params:      b.params(m.ChildByFieldName("parameters")),
				Annotations: annotations,
				Result:      b.resolveType(m.ChildByFieldName("type")),
				Static:      static,
			}
			cls.Methods = append(cls.Methods, method)
			b.declOf[method] = declKey{spanOf(m), syntax.KindMethod}

		case "constructor_declaration":
			_, annotations := b.modifiers(m)

			method := &typesys.Method{
				Name:        "<init>",
				Params:      b.params(m.ChildByFieldName("parameters")),
				Annotations: annotations,
				Constructor: true,
			}
			cls.Methods = append(cls.Methods, method)
			b.declOf[method] = declKey{spanOf(m), syntax.KindMethod}
		}
	}
}

func appendType(supers []string, t *typesys.Type) []string {
	if t == nil || slices.Contains(supers, t.Name) {
		return supers
	}

	return append(supers, t.Name)
}

func (b *builder) params(n *sitter.Node) []typesys.Param {
	var params []typesys.Param

	for p := range namedChildren(n) {
		switch p.Type() {
		case "formal_parameter", "spread_parameter":
			params = append(params, b.param(p))
		}
	}

	return params
}

func (b *builder) param(p *sitter.Node) typesys.Param {
	_, annotations := b.modifiers(p)

	typeNode := p.ChildByFieldName("type")
	if typeNode == nil {
		typeNode = firstNamed(p, typeNodes...)
	}

	return typesys.Param{
		Name:        b.paramName(p),
		Type:        b.resolveType(typeNode).Annotated(annotations...),
		Annotations: annotations,
		VarArgs:     p.Type() == "spread_parameter",
	}
}

func (b *builder) paramName(p *sitter.Node) string {
	if name := p.ChildByFieldName("name"); name != nil {
		return b.text(name)
	}

	if d := firstNamed(p, "variable_declarator"); d != nil {
		return b.text(d.ChildByFieldName("name"))
	}

	if id := lastNamed(p, "identifier"); id != nil {
		return b.text(id)
	}

	return ""
}

// modifiers returns the static modifier and the resolved annotation names of a declaration.
func (b *builder) modifiers(n *sitter.Node) (static bool, annotations []string) {
	mods := firstNamed(n, "modifiers")
	for c := range allChildren(mods) {
		switch c.Type() {
		case "static":
			static = true

		case "marker_annotation", "annotation":
			annotations = append(annotations, b.annotationName(c))
		}
	}

	return static, annotations
}

func (b *builder) annotationName(n *sitter.Node) string {
	name := n.ChildByFieldName("name")
	if name == nil {
		return ""
	}

	text := compact(b.text(name))
	if strings.ContainsRune(text, '.') {
		return b.resolveDotted(text)
	}

	if q, ok := b.file.Resolve(text); ok {
		return q
	}

	return text
}
