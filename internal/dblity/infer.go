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
	"fillmore-labs.com/kalacheck/internal/report"
	"fillmore-labs.com/kalacheck/internal/syntax"
)

// exprKind infers the kind of an expression. Unknown means the inspection stops.
func (s *sequential) exprKind(e syntax.Cursor) Kind {
	t := e.Type()
	if t == nil || t.IsNull() {
		return Unknown
	}

	basic := s.typeKind(t)
	if basic != Inherit {
		return basic
	}

	if cls, ok := s.universe.Class(t.Name); ok {
		if k := s.kindOf(cls.Annotations); k.specific() {
			return k
		}
	}

	switch e.Kind() {
	case syntax.KindParen:
		if inner := e.Child(syntax.RoleOperand); inner.Valid() {
			return s.exprKind(inner)
		}

	case syntax.KindReference:
		decl := e.Decl()
		if !decl.Valid() {
			return basic
		}

		// TODO: seed the environment with the fields of the enclosing classes.
		if k, ok := s.known[decl.Span()]; ok && k != Unknown {
			return k
		}

	case syntax.KindCall:
		// a method returning Inherit has the kind of its receiver
		if recv := e.Child(syntax.RoleReceiver); recv.Valid() {
			if k := s.exprKind(recv); k != Unknown {
				return k
			}
		}
	}

	return basic
}

// inspect compares the kind of an expression against the expected kind. Strict checks
// treat an Inherit value as Bound.
func (s *sequential) inspect(expected, actual Kind, expr syntax.Cursor, strict bool) {
	if expected == Inherit || expected == Unknown || actual == Unknown || !strict && actual == Inherit {
		return
	}

	switch cmp := expected.Assignable(actual); {
	case cmp < 0:
		s.report(report.Warning, expr, report.NewMessage(report.KeyNotAssignable,
			"'"+s.annotationName(actual)+"'", "'"+s.annotationName(expected)+"'"))

	case cmp > 0 && s.Narrowing:
		s.report(report.Info, expr, report.NewMessage(report.KeySmartCast, s.annotationName(expected)))
	}
}
