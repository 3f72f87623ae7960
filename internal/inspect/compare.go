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

package inspect

import (
	"fillmore-labs.com/kalacheck/internal/catalog"
	"fillmore-labs.com/kalacheck/internal/config"
	"fillmore-labs.com/kalacheck/internal/report"
	"fillmore-labs.com/kalacheck/internal/rewrite"
	"fillmore-labs.com/kalacheck/internal/syntax"
)

// inverse maps a comparison to the one with swapped operands.
var inverse = map[string]string{"<": ">", "<=": ">=", ">": "<", ">=": "<=", "==": "==", "!=": "!="}

// sizeCompare reports 'q.size() <op> n' on traversables, replacing it by the size comparison
// method or, against a literal zero, by an emptiness test or a constant.
func (p *Pass) sizeCompare(call syntax.Cursor) {
	if arity(call) != 0 || call.Name() != p.Catalog.Word(catalog.WordSize) {
		return
	}

	recv, t, ok := receiverType(call)
	if !ok || !p.matches(t, catalog.Comparison, call.Name()) {
		return
	}

	binary := call.Parent()
	if binary.Kind() != syntax.KindBinary {
		return
	}

	op, ok := inverse[binary.Name()]
	if !ok {
		return
	}

	var operand syntax.Cursor

	switch call.Role() {
	case syntax.RoleLeft:
		op, operand = binary.Name(), binary.Child(syntax.RoleRight)

	case syntax.RoleRight:
		operand = binary.Child(syntax.RoleLeft)

	default:
		return
	}

	operator := binary.Child(syntax.RoleOperator)
	if !operand.Valid() || !operator.Valid() {
		return
	}

	replacement, ok := p.sizeComparison(recv.Text(), op, operand)
	if !ok {
		return
	}

	edit := rewrite.ReplaceRestoringComments(call.Tree(), binary.Span(), replacement, recv.Span(), operand.Span())
	fix := p.fix(report.NewMessage(report.KeyReplaceFix, binary.Text(), replacement), binary, edit)

	p.report(config.SizeCompare, report.Warning, binary, operator.Span(), report.NewMessage(report.KeySizeCompare), fix)
}

// sizeComparison returns the expression replacing 'q.size() <op> operand'.
func (p *Pass) sizeComparison(q, op string, operand syntax.Cursor) (string, bool) {
	if isZero(operand) {
		word := catalog.WordIsEmpty

		switch op {
		case "<":
			return "false", true

		case ">=":
			return "true", true

		case ">", "!=":
			word = catalog.WordIsNotEmpty
		}

		return q + "." + p.Catalog.Word(word) + "()", true
	}

	method, ok := p.Catalog.Comparison(op)
	if !ok {
		return "", false
	}

	return q + "." + method + "(" + operand.Text() + ")", true
}

// isZero reports whether n is the literal '0'.
func isZero(n syntax.Cursor) bool {
	return n.Kind() == syntax.KindLiteral && n.Text() == "0"
}

// sameness reports 'x.sameElements(x)', which is always true.
func (p *Pass) sameness(call syntax.Cursor) {
	if arity(call) == 0 {
		return
	}

	recv, t, ok := receiverType(call)
	if !ok || !p.matches(t, catalog.Sameness, call.Name()) {
		return
	}

	arg := call.Child(syntax.RoleArguments).Child(syntax.RoleArgument)
	if !sameReference(recv, arg) {
		return
	}

	edit := rewrite.ReplaceRestoringComments(call.Tree(), call.Span(), "true")
	fix := p.fix(report.NewMessage(report.KeyUseFix, "true"), call, edit)

	p.report(config.Sameness, report.Warning, call, call.Span(), report.NewMessage(report.KeySameness), fix)
}

// sameReference reports whether two expressions are references resolving to the same
// declaration through qualifier chains of the same shape.
func sameReference(a, b syntax.Cursor) bool {
	a, b = a.Unparen(), b.Unparen()
	if a.Kind() != syntax.KindReference || b.Kind() != syntax.KindReference {
		return false
	}

	if decl := a.Decl(); !decl.Valid() || decl != b.Decl() {
		return false
	}

	qa, qb := a.Child(syntax.RoleReceiver), b.Child(syntax.RoleReceiver)
	switch {
	case !qa.Valid() && !qb.Valid():
		return true

	case !qa.Valid() || !qb.Valid():
		return false

	case qa.Has(syntax.AttrTypeName) || qa.Name() == "this":
		return qa.Kind() == qb.Kind() && qa.Canonical() == qb.Canonical()

	default:
		return sameReference(qa, qb)
	}
}
