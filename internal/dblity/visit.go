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

package dblity

import (
	"fillmore-labs.com/kalacheck/internal/astutil"
	"fillmore-labs.com/kalacheck/internal/syntax"
	"fillmore-labs.com/kalacheck/internal/typesys"
)

// sequential is the state of one method pass.
type sequential struct {
	*Analyzer
	universe *typesys.Universe
	known    Known
}

// foreplay seeds the environment with the parameters of a method.
func (s *sequential) foreplay(method syntax.Cursor) {
	for p := range method.ChildrenOf(syntax.RoleParameter) {
		s.known[p.Span()] = s.typeKind(p.Type())
	}
}

func (s *sequential) statement(n syntax.Cursor) {
	switch n.Kind() {
	case syntax.KindBlock:
		for c := range n.ChildrenOf(syntax.RoleStatement) {
			s.statement(c)
		}

	case syntax.KindDeclaration:
		s.declaration(n)

	case syntax.KindExprStmt:
		s.expression(n.Child(syntax.RoleOperand))

	case syntax.KindIf:
		s.expression(n.Child(syntax.RoleCondition))
		s.statement(n.Child(syntax.RoleThen))
		s.statement(n.Child(syntax.RoleElse))

	case syntax.KindSwitch:
		s.switchBlock(n)
	}
}

func (s *sequential) expression(n syntax.Cursor) {
	switch n.Kind() {
	case syntax.KindCall, syntax.KindNew:
		s.call(n)

	case syntax.KindAssign:
		s.assignment(n)

	case syntax.KindInstanceOf:
		operand := n.Child(syntax.RoleLeft)
		s.expression(operand)

		if p := n.Child(syntax.RolePattern); p.Valid() {
			s.pattern(p, 0, operand)
		}

	case syntax.KindSwitch:
		s.switchBlock(n)

	case syntax.KindConditional:
		s.expression(n.Child(syntax.RoleCondition))
		s.expression(n.Child(syntax.RoleThen))
		s.expression(n.Child(syntax.RoleElse))
	}
}

func (s *sequential) declaration(n syntax.Cursor) {
	for v := range astutil.AllDeclaredVariables(n) {
		value := v.Child(syntax.RoleValue)
		if !value.Valid() {
			continue
		}

		expected := s.typeKind(v.Type())
		if expected == Unknown {
			continue
		}

		actual := s.exprKind(value)
		s.known[v.Span()] = expected

		if expected != Inherit && expected == actual {
			s.proposeDelete(v)
		}

		s.inspect(expected, actual, value, false)
	}
}

func (s *sequential) assignment(n syntax.Cursor) {
	if n.Name() != "=" {
		return
	}

	lhs, rhs := n.Child(syntax.RoleLeft), n.Child(syntax.RoleRight)
	if lhs.Type() == nil || !rhs.Valid() {
		return
	}

	expected := s.typeKind(lhs.Type())
	if expected == Unknown {
		return
	}

	actual := s.exprKind(rhs)

	decl := lhs.Decl()
	if decl.Valid() {
		s.known[decl.Span()] = expected
	}

	if expected != Inherit && expected == actual && decl.Valid() {
		s.proposeDelete(decl)
	}

	s.inspect(expected, actual, rhs, false)
}

// call checks the arguments against the parameters of a resolved method or record.
func (s *sequential) call(n syntax.Cursor) {
	params := parameters(n.Decl())
	args := astutil.Arguments(n)

	if len(params) == 0 || len(params) > len(args) {
		return
	}

	var param syntax.Cursor
	for i, arg := range args {
		if !param.Has(syntax.AttrVarArgs) {
			if i >= len(params) {
				return
			}

			param = params[i]
		}

		if expected := s.typeKind(param.Type()); expected != Unknown {
			s.inspect(expected, s.exprKind(arg), arg, true)
		}
	}
}

// parameters returns the parameters of a method declaration or the components of a record.
func parameters(decl syntax.Cursor) []syntax.Cursor {
	switch {
	case decl.Kind() == syntax.KindMethod, decl.Kind() == syntax.KindClass && decl.Has(syntax.AttrRecord):

	default:
		return nil
	}

	var params []syntax.Cursor
	for p := range decl.ChildrenOf(syntax.RoleParameter) {
		params = append(params, p)
	}

	return params
}

// pattern binds the variables of a pattern matched against scrutinee. Components of a record
// pattern matched against an instance creation are matched against the corresponding
// constructor argument.
func (s *sequential) pattern(p syntax.Cursor, index int, scrutinee syntax.Cursor) {
	switch p.Kind() {
	case syntax.KindTypePattern:
		s.patternVariable(p, index, scrutinee)

	case syntax.KindRecordPattern:
		var components []syntax.Cursor
		for c := range p.ChildrenOf(syntax.RoleComponent) {
			components = append(components, c)
		}

		if scrutinee.Kind() == syntax.KindNew && scrutinee.Child(syntax.RoleArguments).Valid() {
			for i, arg := range astutil.Arguments(scrutinee) {
				if i >= len(components) {
					break
				}

				s.pattern(components[i], i, arg)
			}

			return
		}

		for i, c := range components {
			s.pattern(c, i, scrutinee)
		}
	}
}

// patternVariable infers the kind of a pattern variable from the record component it binds
// or from the matched expression. An explicit annotation is redundant when either is
// specific.
func (s *sequential) patternVariable(v syntax.Cursor, index int, scrutinee syntax.Cursor) {
	kind := Unknown

	if parent := v.Parent(); index >= 0 && parent.Kind() == syntax.KindRecordPattern {
		if cls, ok := s.universe.Class(parent.Type().Erasure()); ok && index < len(cls.Components) {
			kind = s.kindOf(cls.Components[index].Annotations)
		}
	}

	if !kind.specific() && scrutinee.Valid() {
		kind = s.exprKind(scrutinee)
	}

	if kind.specific() {
		s.proposeDelete(v)
	} else {
		var names []string
		for _, an := range astutil.Annotations(v) {
			names = append(names, an.Name())
		}

		kind = s.kindOf(names)
	}

	s.known[v.Span()] = kind
}

func (s *sequential) switchBlock(n syntax.Cursor) {
	scrutinee := n.Child(syntax.RoleCondition)
	s.expression(scrutinee)

	for rule := range n.ChildrenOf(syntax.RoleStatement) {
		for label := range rule.ChildrenOf(syntax.RoleLabel) {
			for c := range label.Children() {
				switch c.Role() {
				case syntax.RolePattern:
					s.pattern(c, 0, scrutinee)

				case syntax.RoleValue:
					s.expression(c)
				}
			}
		}

		for c := range rule.Children() {
			switch c.Role() {
			case syntax.RoleBody, syntax.RoleStatement:
				s.statement(c)
			}
		}
	}
}
