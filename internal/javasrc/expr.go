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
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/kalacheck/internal/syntax"
	"fillmore-labs.com/kalacheck/internal/typesys"
)

func (b *builder) expr(parent syntax.NodeID, role syntax.Role, n *sitter.Node) syntax.NodeID {
	if n == nil {
		return syntax.NoNode
	}

	switch n.Type() {
	case "parenthesized_expression":
		id := b.add(parent, role, syntax.KindParen, n)

		var t *typesys.Type
		if inner := firstNamed(n); inner != nil {
			t = b.tb.View(b.expr(id, syntax.RoleOperand, inner)).Type()
		}

		return b.finish(id, n, t)

	case "identifier":
		return b.name(parent, role, n)

	case "field_access":
		return b.fieldAccess(parent, role, n)

	case "method_invocation":
		return b.call(parent, role, n)

	case "object_creation_expression":
		return b.newExpr(parent, role, n)

	case "binary_expression":
		return b.binary(parent, role, n)

	case "assignment_expression":
		id := b.add(parent, role, syntax.KindAssign, n)
		left := b.expr(id, syntax.RoleLeft, n.ChildByFieldName("left"))
		b.operator(id, n.ChildByFieldName("operator"))
		b.expr(id, syntax.RoleRight, n.ChildByFieldName("right"))

		return b.finish(id, n, b.tb.View(left).Type())

	case "ternary_expression":
		id := b.add(parent, role, syntax.KindConditional, n)
		b.expr(id, syntax.RoleCondition, n.ChildByFieldName("condition"))
		then := b.expr(id, syntax.RoleThen, n.ChildByFieldName("consequence"))
		alt := b.expr(id, syntax.RoleElse, n.ChildByFieldName("alternative"))

		t := b.tb.View(then).Type()
		if t == nil || t.IsNull() {
			t = b.tb.View(alt).Type()
		}

		return b.finish(id, n, t)

	case "instanceof_expression":
		return b.instanceOf(parent, role, n)

	case "lambda_expression":
		return b.lambda(parent, role, n)

	case "switch_expression":
		return b.switchBlock(parent, role, n)

	case "this":
		id := b.add(parent, role, syntax.KindReference, n)
		b.tb.SetName(id, "this")

		var t *typesys.Type
		if cd := b.thisClass(); cd != nil {
			t = cd.class.Type()
		}

		return b.finish(id, n, t)

	case "super":
		id := b.add(parent, role, syntax.KindReference, n)
		b.tb.SetName(id, "super")

		var t *typesys.Type
		if cd := b.thisClass(); cd != nil && len(cd.class.Supers) > 0 {
			t = typesys.New(cd.class.Supers[0])
		}

		return b.finish(id, n, t)

	case "block":
		return b.statement(parent, role, n)

	case "ERROR":
		return b.add(parent, role, syntax.KindOther, n)
	}

	if t, ok := literalType(n.Type(), b.text(n)); ok {
		id := b.add(parent, role, syntax.KindLiteral, n)
		b.tb.SetName(id, b.text(n))

		return b.finish(id, n, t)
	}

	if slices.Contains(typeNodes, n.Type()) {
		id, _ := b.typeNode(parent, role, n)

		return id
	}

	return b.generic(parent, role, n)
}

// finish records the type and canonical text of an expression.
func (b *builder) finish(id syntax.NodeID, n *sitter.Node, t *typesys.Type) syntax.NodeID {
	b.tb.SetType(id, t)

	if b.tb.View(id).Canonical() == "" {
		b.tb.SetCanonical(id, compact(b.text(n)))
	}

	return id
}

func (b *builder) generic(parent syntax.NodeID, role syntax.Role, n *sitter.Node) syntax.NodeID {
	id := b.add(parent, role, syntax.KindExpression, n)
	b.tb.SetName(id, n.Type())

	var operand *typesys.Type
	for c := range namedChildren(n) {
		switch {
		case slices.Contains(typeNodes, c.Type()):
			b.typeNode(id, syntax.RoleType, c)

		case c.Type() == "block":
			b.statement(id, syntax.RoleBody, c)

		case c.Type() == "argument_list":
			b.arguments(id, c)

		default:
			e := b.expr(id, syntax.RoleOperand, c)
			if operand == nil {
				operand = b.tb.View(e).Type()
			}
		}
	}

	var t *typesys.Type

	switch n.Type() {
	case "cast_expression":
		t = b.resolveType(n.ChildByFieldName("type"))

	case "unary_expression":
		if op := n.ChildByFieldName("operator"); op != nil && b.text(op) == "!" {
			t = typesys.Boolean
		} else {
			t = operand
		}

	case "update_expression":
		t = operand

	case "array_access":
		if name, ok := strings.CutSuffix(operand.Erasure(), "[]"); ok {
			t = typesys.New(name)
			if p, ok := typesys.Primitive(name); ok {
				t = p
			}
		}

	case "class_literal":
		t = typesys.New("java.lang.Class")
	}

	return b.finish(id, n, t)
}

func (b *builder) operator(parent syntax.NodeID, n *sitter.Node) string {
	if n == nil {
		return ""
	}

	op := b.text(n)
	id := b.add(parent, syntax.RoleOperator, syntax.KindOther, n)
	b.tb.SetName(id, op)
	b.tb.SetName(parent, op)

	return op
}

// name builds a simple name in expression position: a variable, a field or a class.
func (b *builder) name(parent syntax.NodeID, role syntax.Role, n *sitter.Node) syntax.NodeID {
	id := b.add(parent, role, syntax.KindReference, n)
	name := b.text(n)
	b.tb.SetName(id, name)

	if v, ok := b.scopes.lookup(name); ok {
		b.tb.SetDecl(id, v.decl)

		return b.finish(id, n, v.typ)
	}

	for i := len(b.enclosing) - 1; i >= 0; i-- {
		if f, ok := b.memberField(b.enclosing[i].class.Name, name); ok {
			b.refer(id, f.key)

			return b.finish(id, n, f.typ)
		}
	}

	if q, ok := b.lookupClass(name); ok {
		b.tb.SetAttr(id, syntax.AttrTypeName)
		b.tb.SetCanonical(id, q)
	}

	return b.finish(id, n, nil)
}

// memberField finds a field declared in this file by class or one of its supertypes.
func (b *builder) memberField(class, name string) (field, bool) {
	for s := range b.file.Universe.Supertypes(class) {
		if cd, ok := b.classNamed[s]; ok {
			if f, ok := cd.fields[name]; ok {
				return f, true
			}
		}
	}

	return field{}, false
}

// lookupClass resolves a simple name to a known class.
func (b *builder) lookupClass(simple string) (string, bool) {
	for i := len(b.enclosing) - 1; i >= 0; i-- {
		nested := b.enclosing[i].class.Name + "." + simple
		if _, ok := b.file.Universe.Class(nested); ok {
			return nested, true
		}
	}

	return b.file.Resolve(simple)
}

func (b *builder) fieldAccess(parent syntax.NodeID, role syntax.Role, n *sitter.Node) syntax.NodeID {
	id := b.add(parent, role, syntax.KindReference, n)

	recv := b.tb.View(b.expr(id, syntax.RoleReceiver, n.ChildByFieldName("object")))

	fieldNode := n.ChildByFieldName("field")
	b.identifier(id, fieldNode)

	name := ""
	if fieldNode != nil {
		name = b.text(fieldNode)
	}

	b.tb.SetName(id, name)

	switch {
	case recv.Has(syntax.AttrTypeName):
		if f, ok := b.memberField(recv.Canonical(), name); ok {
			b.refer(id, f.key)

			return b.finish(id, n, f.typ)
		}

		if cls, ok := b.file.Universe.Class(recv.Canonical()); ok && cls.HasConstant(name) {
			return b.finish(id, n, cls.Type())
		}

		if nested := recv.Canonical() + "." + name; b.known(nested) {
			b.tb.SetAttr(id, syntax.AttrTypeName)
			b.tb.SetCanonical(id, nested)
		}

	case recv.Type() != nil:
		t := recv.Type()
		if f, ok := b.memberField(t.Name, name); ok {
			b.refer(id, f.key)

			return b.finish(id, n, f.typ)
		}

		if name == "length" && strings.HasSuffix(t.Name, "[]") {
			return b.finish(id, n, typesys.Int)
		}

	case recv.Kind() == syntax.KindReference && !recv.Decl().Valid():
		// package prefix of a qualified class name
		if dotted := recv.Canonical() + "." + name; b.known(dotted) {
			b.tb.SetAttr(id, syntax.AttrTypeName)
			b.tb.SetCanonical(id, dotted)
		}
	}

	return b.finish(id, n, nil)
}

func (b *builder) known(class string) bool {
	_, ok := b.file.Universe.Class(class)

	return ok
}

func (b *builder) arguments(parent syntax.NodeID, n *sitter.Node) int {
	if n == nil {
		return 0
	}

	id := b.add(parent, syntax.RoleArguments, syntax.KindArguments, n)

	count := 0
	for a := range namedChildren(n) {
		b.expr(id, syntax.RoleArgument, a)
		count++
	}

	return count
}

func (b *builder) call(parent syntax.NodeID, role syntax.Role, n *sitter.Node) syntax.NodeID {
	id := b.add(parent, role, syntax.KindCall, n)

	recv := syntax.NoNode
	if object := n.ChildByFieldName("object"); object != nil {
		recv = b.expr(id, syntax.RoleReceiver, object)
	}

	if ta := n.ChildByFieldName("type_arguments"); ta != nil {
		b.add(id, syntax.RoleTypeArguments, syntax.KindOther, ta)
	}

	nameNode := n.ChildByFieldName("name")
	b.identifier(id, nameNode)

	name := ""
	if nameNode != nil {
		name = b.text(nameNode)
	}

	b.tb.SetName(id, name)

	args := b.arguments(id, n.ChildByFieldName("arguments"))

	m, self := b.lookupMethod(b.tb.View(recv), name, args)
	if m == nil {
		return b.finish(id, n, nil)
	}

	if key, ok := b.declOf[m]; ok {
		b.refer(id, key)
	}

	return b.finish(id, n, m.ResultFor(self).Annotated(m.Annotations...))
}

// lookupMethod resolves a call. It returns the method and the type standing for the
// receiver in its result.
func (b *builder) lookupMethod(recv syntax.Cursor, name string, args int) (*typesys.Method, *typesys.Type) {
	u := b.file.Universe

	switch {
	case !recv.Valid():
		for i := len(b.enclosing) - 1; i >= 0; i-- {
			owner := b.enclosing[i].class
			if m, _, ok := u.LookupMethod(owner.Name, name, args, false); ok {
				return m, owner.Type()
			}
		}

	case recv.Has(syntax.AttrTypeName):
		if m, _, ok := u.LookupMethod(recv.Canonical(), name, args, true); ok {
			return m, typesys.New(recv.Canonical())
		}

	case recv.Type() != nil:
		if m, _, ok := u.LookupMethod(recv.Type().Name, name, args, false); ok {
			return m, recv.Type()
		}
	}

	return nil, nil
}

func (b *builder) newExpr(parent syntax.NodeID, role syntax.Role, n *sitter.Node) syntax.NodeID {
	id := b.add(parent, role, syntax.KindNew, n)

	var t *typesys.Type
	if typeNode := n.ChildByFieldName("type"); typeNode != nil {
		_, t = b.typeNode(id, syntax.RoleType, typeNode)
	}

	args := b.arguments(id, n.ChildByFieldName("arguments"))

	if body := firstNamed(n, "class_body"); body != nil {
		b.add(id, syntax.RoleBody, syntax.KindOther, body)
	}

	if t == nil {
		return b.finish(id, n, nil)
	}

	if cls, ok := b.file.Universe.Class(t.Name); ok {
		if m, ok := cls.Constructor(args); ok {
			if key, ok := b.declOf[m]; ok {
				b.refer(id, key)
			}
		}
	}

	return b.finish(id, n, t)
}

func (b *builder) binary(parent syntax.NodeID, role syntax.Role, n *sitter.Node) syntax.NodeID {
	id := b.add(parent, role, syntax.KindBinary, n)

	left := b.expr(id, syntax.RoleLeft, n.ChildByFieldName("left"))
	op := b.operator(id, n.ChildByFieldName("operator"))
	right := b.expr(id, syntax.RoleRight, n.ChildByFieldName("right"))

	return b.finish(id, n, binaryType(op, b.tb.View(left).Type(), b.tb.View(right).Type()))
}

func binaryType(op string, l, r *typesys.Type) *typesys.Type {
	switch op {
	case "<", "<=", ">", ">=", "==", "!=", "&&", "||":
		return typesys.Boolean

	case "+":
		if l.Erasure() == typesys.String.Name || r.Erasure() == typesys.String.Name {
			return typesys.String
		}

	case "<<", ">>", ">>>":
		return promote(l, typesys.Int)

	case "&", "|", "^":
		if l.Erasure() == typesys.Boolean.Name {
			return typesys.Boolean
		}
	}

	return promote(l, r)
}

// promote applies binary numeric promotion.
func promote(l, r *typesys.Type) *typesys.Type {
	if !l.IsPrimitive() || !r.IsPrimitive() {
		return nil
	}

	for _, t := range [...]*typesys.Type{typesys.Double, typesys.Float, typesys.Long} {
		if l.Name == t.Name || r.Name == t.Name {
			return t
		}
	}

	return typesys.Int
}

func literalType(kind, text string) (*typesys.Type, bool) {
	switch kind {
	case "decimal_integer_literal", "hex_integer_literal", "octal_integer_literal", "binary_integer_literal":
		if strings.HasSuffix(text, "l") || strings.HasSuffix(text, "L") {
			return typesys.Long, true
		}

		return typesys.Int, true

	case "decimal_floating_point_literal", "hex_floating_point_literal":
		if strings.HasSuffix(text, "f") || strings.HasSuffix(text, "F") {
			return typesys.Float, true
		}

		return typesys.Double, true

	case "true", "false":
		return typesys.Boolean, true

	case "character_literal":
		return typesys.Char, true

	case "string_literal", "text_block":
		return typesys.String, true

	case "null_literal":
		return typesys.Null, true

	default:
		return nil, false
	}
}
