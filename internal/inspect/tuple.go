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

// tupleOf reports 'new Tuple2<>(a, b)', which is 'Tuple.of(a, b)'.
func (p *Pass) tupleOf(expr syntax.Cursor) {
	if expr.Child(syntax.RoleBody).Valid() {
		return // anonymous class
	}

	typ := expr.Child(syntax.RoleType)
	args := expr.Child(syntax.RoleArguments)
	if !typ.Valid() || !args.Valid() || typ.Type() == nil {
		return
	}

	var pattern catalog.Pattern

	found := false
	for candidate := range p.Catalog.Patterns(catalog.TupleNew) {
		if len(candidate.Methods) > 0 && candidate.Matches(p.File.Universe, typ.Type()) {
			pattern, found = candidate, true

			break
		}
	}

	if !found {
		return
	}

	factory := p.qualifier(catalog.CapTuple) + "." + pattern.Methods[0]

	var (
		replacement = p.qualifier(catalog.CapTuple) + "."
		keep        = []syntax.Span{args.Span()}
	)

	if ta := typ.Child(syntax.RoleTypeArguments); ta.Valid() && !ta.Has(syntax.AttrDiamond) {
		replacement += ta.Text()
		keep = append(keep, ta.Span())
	}

	replacement += pattern.Methods[0] + args.Text()

	start := expr.Span().Start
	keyword := syntax.Span{Start: start, End: start + len("new")}

	edit := rewrite.ReplaceRestoringComments(expr.Tree(), expr.Span(), replacement, keep...)
	fix := p.fix(report.NewMessage(report.KeyUseFix, factory), expr, edit)

	p.report(config.TupleOf, report.Deprecated, expr, keyword, report.NewMessage(report.KeyTupleOf, factory), fix)
}
