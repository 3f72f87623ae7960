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
	"slices"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/kalacheck/internal/syntax"
	"fillmore-labs.com/kalacheck/internal/typesys"
)

// build lowers the concrete syntax tree into the arena.
func (b *builder) build(root *sitter.Node) *syntax.Tree {
	b.comments(root)

	file := b.tb.Add(syntax.NoNode, syntax.RoleNone, syntax.KindFile, spanOf(root))
	b.tb.SetName(file, b.file.Package)

	for c := range namedChildren(root) {
		if isClassLike(c) {
			b.class(file, syntax.RoleMember, c)

			continue
		}

		b.tb.Add(file, syntax.RoleNone, syntax.KindOther, spanOf(c))
	}

	for _, f := range b.fixups {
		if decl, ok := b.declared[f.key]; ok {
			b.tb.SetDecl(f.node, decl)
		}
	}

	return b.tb.Finish()
}

func (b *builder) comments(n *sitter.Node) {
	for c := range allChildren(n) {
		if isComment(c) {
			b.tb.AddComment(spanOf(c))

			continue
		}

		b.comments(c)
	}
}

func (b *builder) add(parent syntax.NodeID, role syntax.Role, kind syntax.Kind, n *sitter.Node) syntax.NodeID {
	return b.tb.Add(parent, role, kind, spanOf(n))
}

func (b *builder) declare(id syntax.NodeID, kind syntax.Kind, n *sitter.Node) {
	b.declared[declKey{spanOf(n), kind}] = id
}

func (b *builder) refer(id syntax.NodeID, key declKey) {
	b.fixups = append(b.fixups, fixup{node: id, key: key})
}

func (b *builder) identifier(parent syntax.NodeID, n *sitter.Node) syntax.NodeID {
	if n == nil {
		return syntax.NoNode
	}

	id := b.add(parent, syntax.RoleName, syntax.KindIdentifier, n)
	b.tb.SetName(id, b.text(n))

	return id
}

func (b *builder) thisClass() *classDecl {
	if len(b.enclosing) == 0 {
		return nil
	}

	return b.enclosing[len(b.enclosing)-1]
}

func (b *builder) class(parent syntax.NodeID, role syntax.Role, n *sitter.Node) {
	cd, ok := b.classAt[spanOf(n)]
	if !ok {
		b.add(parent, role, syntax.KindOther, n)

		return
	}

	cls := cd.class

	id := b.add(parent, role, syntax.KindClass, n)
	b.tb.SetName(id, cls.Name)
	b.tb.SetCanonical(id, cls.Name)
	b.tb.SetType(id, cls.Type().Annotated(cls.Annotations...))
	b.declare(id, syntax.KindClass, n)

	if cls.Record() {
		b.tb.SetAttr(id, syntax.AttrRecord)
	}

	b.enclosing = append(b.enclosing, cd)
	defer func() { b.enclosing = b.enclosing[:len(b.enclosing)-1] }()

	b.annotations(id, n)
	b.identifier(id, n.ChildByFieldName("name"))

	if cls.Record() {
		for p := range namedChildren(n.ChildByFieldName("parameters")) {
			if p.Type() == "formal_parameter" {
				param := b.parameter(id, p)
				b.declare(param, syntax.KindParameter, p)
			}
		}
	}

	if n.Type() == "enum_declaration" {
		for c := range namedChildren(n.ChildByFieldName("body")) {
			if c.Type() == "enum_constant" {
				b.enumConstant(id, c)
			}
		}
	}

	for m := range members(n) {
		b.member(id, m)
	}
}

func (b *builder) enumConstant(parent syntax.NodeID, n *sitter.Node) {
	id := b.add(parent, syntax.RoleMember, syntax.KindVariable, n)
	b.tb.SetAttr(id, syntax.AttrStatic)
	b.tb.SetType(id, b.thisClass().class.Type())
	b.declare(id, syntax.KindVariable, n)

	b.annotations(id, n)

	name := n.ChildByFieldName("name")
	b.identifier(id, name)
	b.tb.SetName(id, b.text(name))

	if args := n.ChildByFieldName("arguments"); args != nil {
		b.scopes.push(true)
		b.arguments(id, args)
		b.scopes.pop()
	}
}

func (b *builder) member(parent syntax.NodeID, n *sitter.Node) {
	switch n.Type() {
	case "field_declaration", "constant_declaration":
		b.scopes.push(true)
		b.declaration(parent, syntax.RoleMember, n, true)
		b.scopes.pop()

	case "method_declaration", "constructor_declaration", "compact_constructor_declaration":
		b.method(parent, n)

	case "block", "static_initializer":
		b.scopes.push(true)
		b.statement(parent, syntax.RoleMember, n)
		b.scopes.pop()

	case "enum_constant":

	default:
		if isClassLike(n) {
			b.class(parent, syntax.RoleMember, n)

			return
		}

		b.add(parent, syntax.RoleMember, syntax.KindOther, n)
	}
}

func (b *builder) method(parent syntax.NodeID, n *sitter.Node) {
	id := b.add(parent, syntax.RoleMember, syntax.KindMethod, n)
	b.declare(id, syntax.KindMethod, n)

	static, annotations := b.modifiers(n)
	if static {
		b.tb.SetAttr(id, syntax.AttrStatic)
	}

	if n.Type() != "method_declaration" {
		b.tb.SetAttr(id, syntax.AttrConstructor)
	}

	b.annotations(id, n)

	if typeNode := n.ChildByFieldName("type"); typeNode != nil {
		_, t := b.typeNode(id, syntax.RoleType, typeNode)
		b.tb.SetType(id, t.Annotated(annotations...))
	}

	name := n.ChildByFieldName("name")
	b.identifier(id, name)

	if name != nil {
		b.tb.SetName(id, b.text(name))
	}

	b.scopes.push(true)
	defer b.scopes.pop()

	if n.Type() == "compact_constructor_declaration" {
		b.recordComponentsInScope()
	}

	for p := range namedChildren(n.ChildByFieldName("parameters")) {
		switch p.Type() {
		case "formal_parameter", "spread_parameter":
			b.parameter(id, p)
		}
	}

	if body := n.ChildByFieldName("body"); body != nil {
		b.statement(id, syntax.RoleBody, body)
	}
}

// recordComponentsInScope makes the implicit parameters of a compact constructor visible.
func (b *builder) recordComponentsInScope() {
	cd := b.thisClass()
	if cd == nil {
		return
	}

	for _, c := range cd.class.Components {
		f := cd.fields[c.Name]
		if decl, ok := b.declared[f.key]; ok {
			b.scopes.define(c.Name, binding{decl: decl, typ: f.typ})
		}
	}
}

// parameter builds a formal parameter and defines it in the current frame.
func (b *builder) parameter(parent syntax.NodeID, n *sitter.Node) syntax.NodeID {
	id := b.add(parent, syntax.RoleParameter, syntax.KindParameter, n)
	b.tb.SetDecl(id, id)

	_, annotations := b.modifiers(n)
	b.annotations(id, n)

	typeNode := n.ChildByFieldName("type")
	if typeNode == nil {
		typeNode = firstNamed(n, typeNodes...)
	}

	var t *typesys.Type
	if typeNode != nil {
		_, t = b.typeNode(id, syntax.RoleType, typeNode)
	}

	t = t.Annotated(annotations...)
	b.tb.SetType(id, t)

	if n.Type() == "spread_parameter" {
		b.tb.SetAttr(id, syntax.AttrVarArgs)
	}

	name := b.paramName(n)

	switch nameNode := n.ChildByFieldName("name"); {
	case n.Type() == "identifier":
		name = b.text(n)

	case nameNode != nil:
		b.identifier(id, nameNode)

	default:
		if d := firstNamed(n, "variable_declarator"); d != nil {
			b.identifier(id, d.ChildByFieldName("name"))
		}
	}

	b.tb.SetName(id, name)
	b.scopes.define(name, binding{decl: id, typ: t})

	return id
}

// annotations builds the annotations in the modifiers of a declaration.
func (b *builder) annotations(parent syntax.NodeID, n *sitter.Node) {
	for c := range allChildren(firstNamed(n, "modifiers")) {
		switch c.Type() {
		case "marker_annotation", "annotation":
			b.annotation(parent, c)
		}
	}
}

func (b *builder) annotation(parent syntax.NodeID, n *sitter.Node) {
	id := b.add(parent, syntax.RoleAnnotation, syntax.KindAnnotation, n)
	b.tb.SetName(id, b.annotationName(n))

	var literals func(*sitter.Node)
	literals = func(c *sitter.Node) {
		for a := range namedChildren(c) {
			if a.Type() == "string_literal" {
				lit := b.add(id, syntax.RoleArgument, syntax.KindLiteral, a)
				b.tb.SetName(lit, unquote(b.text(a)))
				b.tb.SetType(lit, typesys.String)

				continue
			}

			literals(a)
		}
	}

	literals(n.ChildByFieldName("arguments"))
}

// typeNode builds a type reference. Annotations of annotated types are attached to parent.
func (b *builder) typeNode(parent syntax.NodeID, role syntax.Role, n *sitter.Node) (syntax.NodeID, *typesys.Type) {
	if n.Type() == "annotated_type" {
		var (
			inner       *sitter.Node
			annotations []string
		)

		for c := range namedChildren(n) {
			switch c.Type() {
			case "marker_annotation", "annotation":
				b.annotation(parent, c)
				annotations = append(annotations, b.annotationName(c))

			default:
				inner = c
			}
		}

		if inner == nil {
			return syntax.NoNode, nil
		}

		id, t := b.typeNode(parent, role, inner)

		return id, t.Annotated(annotations...)
	}

	id := b.add(parent, role, syntax.KindType, n)
	b.tb.SetAttr(id, syntax.AttrTypeName)

	t := b.resolveType(n)
	if t == nil {
		b.tb.SetAttr(id, syntax.AttrInferred)
		b.tb.SetName(id, b.text(n))

		return id, nil
	}

	b.tb.SetType(id, t)
	b.tb.SetName(id, t.SimpleName())
	b.tb.SetCanonical(id, t.Name)

	if args := firstNamed(n, "type_arguments"); args != nil {
		ta := b.add(id, syntax.RoleTypeArguments, syntax.KindOther, args)
		if firstNamed(args) == nil {
			b.tb.SetAttr(id, syntax.AttrDiamond)
			b.tb.SetAttr(ta, syntax.AttrDiamond)
		}
	}

	return id, t
}

// statementTypes are node types built as statements.
var statementTypes = []string{
	"assert_statement", "block", "break_statement", "continue_statement", "do_statement",
	"enhanced_for_statement", "expression_statement", "for_statement", "if_statement",
	"labeled_statement", "local_class_declaration", "local_variable_declaration", "return_statement",
	"static_initializer", "synchronized_statement", "throw_statement", "try_statement",
	"try_with_resources_statement", "while_statement", "yield_statement", "catch_clause",
	"finally_clause", "class_declaration", "record_declaration", "enum_declaration",
	"interface_declaration",
}

func (b *builder) statement(parent syntax.NodeID, role syntax.Role, n *sitter.Node) syntax.NodeID {
	switch n.Type() {
	case "block", "static_initializer", "constructor_body":
		if n.Type() == "static_initializer" {
			n = firstNamed(n, "block")
			if n == nil {
				return syntax.NoNode
			}
		}

		id := b.add(parent, role, syntax.KindBlock, n)

		b.scopes.push(true)
		defer b.scopes.pop()

		for c := range namedChildren(n) {
			b.statement(id, syntax.RoleStatement, c)
		}

		return id

	case "local_variable_declaration":
		return b.declaration(parent, role, n, false)

	case "expression_statement":
		id := b.add(parent, role, syntax.KindExprStmt, n)
		if e := firstNamed(n); e != nil {
			b.expr(id, syntax.RoleOperand, e)
		}

		return id

	case "if_statement":
		id := b.add(parent, role, syntax.KindIf, n)
		b.condition(id, n.ChildByFieldName("condition"))

		if then := n.ChildByFieldName("consequence"); then != nil {
			b.statement(id, syntax.RoleThen, then)
		}

		if alt := n.ChildByFieldName("alternative"); alt != nil {
			b.statement(id, syntax.RoleElse, alt)
		}

		return id

	case "switch_expression":
		return b.switchBlock(parent, role, n)

	case "enhanced_for_statement":
		return b.enhancedFor(parent, role, n)

	case "local_class_declaration", "class_declaration", "record_declaration", "enum_declaration",
		"interface_declaration":
		return b.add(parent, role, syntax.KindOther, n)

	case "ERROR":
		return b.add(parent, role, syntax.KindOther, n)

	default:
		if !slices.Contains(statementTypes, n.Type()) {
			return b.expr(parent, role, n)
		}

		return b.genericStatement(parent, role, n)
	}
}

// condition builds a parenthesized condition without its syntactic parentheses.
func (b *builder) condition(parent syntax.NodeID, n *sitter.Node) {
	if n == nil {
		return
	}

	if n.Type() == "parenthesized_expression" {
		if inner := firstNamed(n); inner != nil {
			n = inner
		}
	}

	b.expr(parent, syntax.RoleCondition, n)
}

func (b *builder) genericStatement(parent syntax.NodeID, role syntax.Role, n *sitter.Node) syntax.NodeID {
	id := b.add(parent, role, syntax.KindStatement, n)
	b.tb.SetName(id, n.Type())

	b.scopes.push(true)
	defer b.scopes.pop()

	for c := range namedChildren(n) {
		switch t := c.Type(); {
		case t == "catch_formal_parameter":
			b.parameter(id, c)

		case t == "resource_specification":
			for r := range namedChildren(c) {
				b.resource(id, r)
			}

		case t == "local_variable_declaration":
			b.declaration(id, syntax.RoleStatement, c, false)

		case t == "identifier" && isLabel(n):

		case slices.Contains(statementTypes, t):
			b.statement(id, syntax.RoleBody, c)

		default:
			b.expr(id, syntax.RoleOperand, c)
		}
	}

	return id
}

func isLabel(n *sitter.Node) bool {
	switch n.Type() {
	case "labeled_statement", "break_statement", "continue_statement":
		return true

	default:
		return false
	}
}

func (b *builder) resource(parent syntax.NodeID, n *sitter.Node) {
	name := n.ChildByFieldName("name")
	if name == nil {
		if e := firstNamed(n); e != nil {
			b.expr(parent, syntax.RoleOperand, e)
		}

		return
	}

	id := b.add(parent, syntax.RoleDeclarator, syntax.KindVariable, n)
	b.tb.SetDecl(id, id)

	var t *typesys.Type
	if typeNode := n.ChildByFieldName("type"); typeNode != nil {
		_, t = b.typeNode(id, syntax.RoleType, typeNode)
	}

	b.identifier(id, name)

	if value := n.ChildByFieldName("value"); value != nil {
		v := b.expr(id, syntax.RoleValue, value)
		if t == nil {
			t = b.tb.View(v).Type().Bare()
		}
	}

	b.tb.SetName(id, b.text(name))
	b.tb.SetType(id, t)
	b.scopes.define(b.text(name), binding{decl: id, typ: t})
}

func (b *builder) enhancedFor(parent syntax.NodeID, role syntax.Role, n *sitter.Node) syntax.NodeID {
	id := b.add(parent, role, syntax.KindStatement, n)
	b.tb.SetName(id, n.Type())

	b.scopes.push(true)
	defer b.scopes.pop()

	if value := n.ChildByFieldName("value"); value != nil {
		b.expr(id, syntax.RoleValue, value)
	}

	if name := n.ChildByFieldName("name"); name != nil {
		v := b.tb.Add(id, syntax.RoleDeclarator, syntax.KindVariable, spanOf(name))
		b.tb.SetDecl(v, v)

		_, annotations := b.modifiers(n)

		var t *typesys.Type
		if typeNode := n.ChildByFieldName("type"); typeNode != nil {
			_, t = b.typeNode(id, syntax.RoleType, typeNode)
		}

		t = t.Annotated(annotations...)
		b.tb.SetName(v, b.text(name))
		b.tb.SetType(v, t)
		b.scopes.define(b.text(name), binding{decl: v, typ: t})
	}

	if body := n.ChildByFieldName("body"); body != nil {
		b.statement(id, syntax.RoleBody, body)
	}

	return id
}

// declaration builds a local variable or field declaration. Local variables are defined in
// the current frame after their initializer.
func (b *builder) declaration(parent syntax.NodeID, role syntax.Role, n *sitter.Node, member bool) syntax.NodeID {
	id := b.add(parent, role, syntax.KindDeclaration, n)

	static, annotations := b.modifiers(n)
	if static {
		b.tb.SetAttr(id, syntax.AttrStatic)
	}

	b.annotations(id, n)

	var declared *typesys.Type
	if typeNode := n.ChildByFieldName("type"); typeNode != nil {
		_, declared = b.typeNode(id, syntax.RoleType, typeNode)
	}

	for d := range namedChildren(n) {
		if d.Type() != "variable_declarator" {
			continue
		}

		v := b.add(id, syntax.RoleDeclarator, syntax.KindVariable, d)
		b.tb.SetDecl(v, v)

		if static {
			b.tb.SetAttr(v, syntax.AttrStatic)
		}

		name := d.ChildByFieldName("name")
		b.identifier(v, name)
		b.tb.SetName(v, b.text(name))

		t := declared.Annotated(annotations...)

		if value := d.ChildByFieldName("value"); value != nil {
			e := b.expr(v, syntax.RoleValue, value)
			if declared == nil {
				t = b.tb.View(e).Type().Bare().Annotated(annotations...)
				b.tb.SetAttr(v, syntax.AttrInferred)
			}
		}

		b.tb.SetType(v, t)

		if member {
			b.declare(v, syntax.KindVariable, d)

			continue
		}

		b.scopes.define(b.text(name), binding{decl: v, typ: t})
	}

	return id
}
