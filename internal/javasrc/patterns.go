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
	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/kalacheck/internal/syntax"
	"fillmore-labs.com/kalacheck/internal/typesys"
)

func (b *builder) lambda(parent syntax.NodeID, role syntax.Role, n *sitter.Node) syntax.NodeID {
	id := b.add(parent, role, syntax.KindLambda, n)

	b.scopes.push(true)
	defer b.scopes.pop()

	switch params := n.ChildByFieldName("parameters"); {
	case params == nil:

	case params.Type() == "identifier":
		b.parameter(id, params)

	default:
		for p := range namedChildren(params) {
			switch p.Type() {
			case "formal_parameter", "spread_parameter", "identifier":
				b.parameter(id, p)
			}
		}
	}

	if body := n.ChildByFieldName("body"); body != nil {
		if body.Type() == "block" {
			b.statement(id, syntax.RoleBody, body)
		} else {
			b.expr(id, syntax.RoleBody, body)
		}
	}

	return b.finish(id, n, nil)
}

func (b *builder) instanceOf(parent syntax.NodeID, role syntax.Role, n *sitter.Node) syntax.NodeID {
	id := b.add(parent, role, syntax.KindInstanceOf, n)

	if left := n.ChildByFieldName("left"); left != nil {
		b.expr(id, syntax.RoleLeft, left)
	}

	right, name := n.ChildByFieldName("right"), n.ChildByFieldName("name")

	switch pattern := n.ChildByFieldName("pattern"); {
	case pattern != nil:
		b.pattern(id, pattern)

	case right != nil && name != nil:
		p := b.tb.Add(id, syntax.RolePattern, syntax.KindTypePattern, syntax.Span{
			Start: int(right.StartByte()),
			End:   int(name.EndByte()),
		})
		b.tb.SetDecl(p, p)

		_, t := b.typeNode(p, syntax.RoleType, right)
		b.identifier(p, name)
		b.tb.SetName(p, b.text(name))
		b.tb.SetType(p, t)
		b.scopes.bind(b.text(name), binding{decl: p, typ: t})

	case right != nil:
		b.typeNode(id, syntax.RoleType, right)
	}

	return b.finish(id, n, typesys.Boolean)
}

// pattern builds a type or record pattern.
func (b *builder) pattern(parent syntax.NodeID, n *sitter.Node) {
	switch n.Type() {
	case "pattern":
		if inner := firstNamed(n); inner != nil {
			b.pattern(parent, inner)
		}

	case "type_pattern":
		b.typePattern(parent, syntax.RolePattern, n, nil)

	case "record_pattern":
		b.recordPattern(parent, syntax.RolePattern, n)

	default:
		b.add(parent, syntax.RolePattern, syntax.KindOther, n)
	}
}

// typePattern builds a pattern binding a variable. An inferred type is replaced by component,
// the declared type of the matched record component.
func (b *builder) typePattern(parent syntax.NodeID, role syntax.Role, n *sitter.Node, component *typesys.Type) {
	nameNode := lastNamed(n, "identifier")
	if nameNode == nil || firstNamed(n, "underscore_pattern") != nil {
		b.add(parent, role, syntax.KindOther, n)

		return
	}

	id := b.add(parent, role, syntax.KindTypePattern, n)
	b.tb.SetDecl(id, id)

	_, annotations := b.modifiers(n)
	b.annotations(id, n)

	var t *typesys.Type
	if typeNode := firstNamed(n, typeNodes...); typeNode != nil {
		_, t = b.typeNode(id, syntax.RoleType, typeNode)
	}

	if t == nil && component != nil {
		t = component.Bare()
		b.tb.SetAttr(id, syntax.AttrInferred)
	}

	t = t.Annotated(annotations...)

	name := b.text(nameNode)
	b.identifier(id, nameNode)
	b.tb.SetName(id, name)
	b.tb.SetType(id, t)
	b.scopes.bind(name, binding{decl: id, typ: t})
}

func (b *builder) recordPattern(parent syntax.NodeID, role syntax.Role, n *sitter.Node) {
	id := b.add(parent, role, syntax.KindRecordPattern, n)

	var t *typesys.Type
	if typeNode := firstNamed(n, append([]string{"identifier"}, typeNodes...)...); typeNode != nil {
		_, t = b.typeNode(id, syntax.RoleType, typeNode)
	}

	b.tb.SetType(id, t)

	var components []typesys.Param
	if t != nil {
		if cls, ok := b.file.Universe.Class(t.Name); ok {
			components = cls.Components
		}
	}

	i := 0
	for c := range namedChildren(firstNamed(n, "record_pattern_body")) {
		var component *typesys.Type
		if i < len(components) {
			component = components[i].Type
		}

		switch c.Type() {
		case "record_pattern_component":
			b.typePattern(id, syntax.RoleComponent, c, component)

		case "record_pattern":
			b.recordPattern(id, syntax.RoleComponent, c)

		default:
			b.add(id, syntax.RoleComponent, syntax.KindOther, c)
		}

		i++
	}

	b.tb.SetCanonical(id, compact(b.text(n)))
}

// switchBlock builds a switch statement or expression.
func (b *builder) switchBlock(parent syntax.NodeID, role syntax.Role, n *sitter.Node) syntax.NodeID {
	id := b.add(parent, role, syntax.KindSwitch, n)
	b.condition(id, n.ChildByFieldName("condition"))

	for c := range namedChildren(n.ChildByFieldName("body")) {
		switch c.Type() {
		case "switch_rule", "switch_block_statement_group":
			b.switchRule(id, c)
		}
	}

	return b.finish(id, n, nil)
}

// switchRule builds a switch rule or a statement group. Rules carry their body in RoleBody,
// groups their statements in RoleStatement.
func (b *builder) switchRule(parent syntax.NodeID, n *sitter.Node) {
	id := b.add(parent, syntax.RoleStatement, syntax.KindSwitchRule, n)

	b.scopes.push(true)
	defer b.scopes.pop()

	role := syntax.RoleStatement
	if n.Type() == "switch_rule" {
		role = syntax.RoleBody
	}

	for c := range namedChildren(n) {
		if c.Type() == "switch_label" {
			b.caseLabel(id, c)

			continue
		}

		b.statement(id, role, c)
	}
}

func (b *builder) caseLabel(parent syntax.NodeID, n *sitter.Node) {
	id := b.add(parent, syntax.RoleLabel, syntax.KindCaseLabel, n)

	if hasToken(n, "default") {
		b.tb.SetName(id, "default")
	}

	for c := range namedChildren(n) {
		switch c.Type() {
		case "pattern", "type_pattern", "record_pattern":
			b.pattern(id, c)

		case "guard":
			if e := firstNamed(c); e != nil {
				b.expr(id, syntax.RoleCondition, e)
			}

		default:
			b.expr(id, syntax.RoleValue, c)
		}
	}
}
