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
	"slices"

	"fillmore-labs.com/kalacheck/internal/catalog"
	"fillmore-labs.com/kalacheck/internal/config"
	"fillmore-labs.com/kalacheck/internal/report"
	"fillmore-labs.com/kalacheck/internal/rewrite"
	"fillmore-labs.com/kalacheck/internal/syntax"
)

// mapPut reports 'map.put(e.getKey(), e.getValue())' and 'map.put(e._1, e._2)', where the
// entry is decomposed only to be put back.
func (p *Pass) mapPut(call syntax.Cursor) {
	if arity(call) != 2 {
		return
	}

	_, t, ok := receiverType(call)
	if !ok || !p.matches(t, catalog.MapPut, call.Name()) {
		return
	}

	args := call.Child(syntax.RoleArguments)
	first, second := args.Nth(syntax.RoleArgument, 0), args.Nth(syntax.RoleArgument, 1)

	if !p.accessors(first, second) {
		return
	}

	q1, q2 := first.Child(syntax.RoleReceiver), second.Child(syntax.RoleReceiver)
	if !q1.Valid() || !q2.Valid() {
		return
	}

	// TODO: accept Tuple2 qualifiers bound by iterating the entries of a map.
	if q1.Canonical() != q2.Canonical() || q1.Type().Erasure() == p.Catalog.Capability(catalog.CapTuple2) {
		return
	}

	tree := call.Tree()
	span := first.Span().Union(second.Span())

	fix := p.fix(report.NewMessage(report.KeySimplifyFix), args,
		rewrite.ReplaceRestoringComments(tree, first.Span(), q1.Text(), q1.Span()),
		rewrite.ReplaceRestoringComments(tree, syntax.Span{Start: first.Span().End, End: second.Span().End}, ""),
	)

	p.report(config.MapPut, report.Unused, args, span, report.NewMessage(report.KeyMapPut), fix)
}

// accessors reports whether two arguments are the first and second entry accessor,
// either both fields or both methods.
func (p *Pass) accessors(first, second syntax.Cursor) bool {
	acc := p.Catalog.Accessors()

	switch {
	case first.Kind() == syntax.KindReference && second.Kind() == syntax.KindReference:
		return first.Name() == acc.Fields[0] && second.Name() == acc.Fields[1]

	case first.Kind() == syntax.KindCall && second.Kind() == syntax.KindCall:
		return arity(first) == 0 && arity(second) == 0 &&
			slices.Contains(acc.First, first.Name()) && slices.Contains(acc.Second, second.Name())

	default:
		return false
	}
}
