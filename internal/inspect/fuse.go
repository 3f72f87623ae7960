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

// fuseImmSeq reports chains of at least two transformations on an immutable sequence.
// Each transformation materializes a new sequence; going through a view computes the
// result once.
func (p *Pass) fuseImmSeq(call syntax.Cursor) {
	u := p.File.Universe
	if !u.Is(call.Type(), p.Catalog.Capability(catalog.CapImmutableSeq)) {
		return
	}

	// mid-chain, the outermost call reports
	if parent := call.Parent(); call.Role() == syntax.RoleReceiver && parent.Kind() == syntax.KindCall &&
		p.Catalog.Contains(catalog.Fusible, parent.Name()) {
		return
	}

	outermost, ok := nameToken(call)
	if !ok {
		return
	}

	var (
		count     int
		innermost syntax.Span
		qualifier syntax.Cursor
	)

	for expr := call; ; {
		if !p.Catalog.Contains(catalog.Fusible, expr.Name()) {
			qualifier = expr

			break
		}

		name, ok := nameToken(expr)
		if !ok {
			return
		}

		count++
		innermost = name

		qualifier = expr.Child(syntax.RoleReceiver)
		if qualifier.Kind() != syntax.KindCall {
			break
		}

		expr = qualifier
	}

	if count < 2 || !qualifier.Valid() {
		return
	}

	view, materialize := p.Catalog.Word(catalog.WordView), p.Catalog.Word(catalog.WordMaterialize)

	end := call.Span().End
	edits := []rewrite.Edit{
		{Span: syntax.Span{Start: qualifier.Span().End, End: qualifier.Span().End}, New: "." + view + "()"},
	}

	// an enclosing 'toImmutableSeq()' already materializes the view
	if parent := call.Parent(); call.Role() != syntax.RoleReceiver || parent.Kind() != syntax.KindCall ||
		parent.Name() != materialize || arity(parent) != 0 {
		edits = append(edits, rewrite.Edit{Span: syntax.Span{Start: end, End: end}, New: "." + materialize + "()"})
	}

	fix := p.fix(report.NewMessage(report.KeyFuseFix), call, edits...)

	p.Reporter.Report(report.Diagnostic{
		Inspection: config.FuseImmSeq.Name(),
		Severity:   report.Warning,
		Node:       call,
		Span:       outermost,
		Message:    report.NewMessage(report.KeyFuse, count),
		Related: []report.Related{{
			Span:    syntax.Span{Start: innermost.Start, End: end},
			Message: report.NewMessage(report.KeyFuseChain),
		}},
		Fixes: []rewrite.Fix{fix},
	})
}
