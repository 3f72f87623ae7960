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

// muda reports conversions and views on a receiver that already has the target type.
func (p *Pass) muda(call syntax.Cursor) {
	if arity(call) != 0 {
		return
	}

	recv, t, ok := receiverType(call)
	if !ok {
		return
	}

	name, ok := nameToken(call)
	if !ok {
		return
	}

	method := call.Name()
	if !p.matches(t, catalog.Redundant, method) {
		return
	}

	edit := rewrite.ReplaceRestoringComments(call.Tree(), call.Span(), recv.Text(), recv.Span())
	fix := p.fix(report.NewMessage(report.KeyRedundantFix, method), call, edit)

	p.report(config.Muda, report.Unused, call, name, report.NewMessage(report.KeyRedundant, method), fix)
}

// preferEmpty reports argumentless 'of()' factories of classes offering a dedicated
// factory. The qualifier must name the class itself: factories are static members.
func (p *Pass) preferEmpty(call syntax.Cursor) {
	if arity(call) != 0 {
		return
	}

	recv := call.Child(syntax.RoleReceiver)
	if !recv.Has(syntax.AttrTypeName) {
		return
	}

	pattern, ok := p.Catalog.Exact(recv.Canonical(), catalog.Factory, call.Name())
	if !ok {
		return
	}

	name, ok := nameToken(call)
	if !ok {
		return
	}

	method, replacement := call.Name(), pattern.Replacement
	edit := rewrite.ReplaceRestoringComments(call.Tree(), name, replacement)
	fix := p.fix(report.NewMessage(report.KeyReplaceFix, method, replacement), call, edit)

	p.report(config.PreferEmpty, report.Deprecated, call, name,
		report.NewMessage(report.KeyPreferEmpty, method, replacement), fix)
}

// viewSize reports 'size()' on a traversable that is not a collection, which is
// potentially a view computing its size by traversal.
func (p *Pass) viewSize(call syntax.Cursor) {
	if arity(call) != 0 || call.Name() != p.Catalog.Word(catalog.WordSize) {
		return
	}

	_, t, ok := receiverType(call)
	if !ok || !p.matches(t, catalog.ViewSize, call.Name()) {
		return
	}

	name, ok := nameToken(call)
	if !ok {
		return
	}

	p.report(config.ViewSize, report.Info, call, name, report.NewMessage(report.KeyViewSize))
}

// viewToMap reports 'q.toImmutableMap()', better written as 'ImmutableMap.from(q)'.
func (p *Pass) viewToMap(call syntax.Cursor) {
	if arity(call) != 0 {
		return
	}

	recv := call.Child(syntax.RoleReceiver)
	if !recv.Valid() || recv.Has(syntax.AttrTypeName) {
		return
	}

	method := call.Name()

	pattern, ok := p.match(recv.Type(), catalog.ViewMap, method)
	if !ok {
		return
	}

	name, ok := nameToken(call)
	if !ok {
		return
	}

	factory := p.qualifier(catalog.CapImmutableMap) + "." + pattern.Replacement
	edit := rewrite.ReplaceRestoringComments(call.Tree(), call.Span(), factory+"("+recv.Text()+")", recv.Span())
	fix := p.fix(report.NewMessage(report.KeyUseFix, pattern.Replacement), call, edit)

	p.report(config.ViewToMap, report.Deprecated, call, name,
		report.NewMessage(report.KeyViewToMap, method, factory), fix)
}

// needlessCollect reports 'q.collect(ImmutableSeq.factory())', which is 'q.toImmutableSeq()'.
func (p *Pass) needlessCollect(call syntax.Cursor) {
	if arity(call) != 1 {
		return
	}

	_, t, ok := receiverType(call)
	if !ok || !p.matches(t, catalog.Collect, call.Name()) {
		return
	}

	args := call.Child(syntax.RoleArguments)

	factory := args.Child(syntax.RoleArgument)
	if factory.Kind() != syntax.KindCall {
		return
	}

	owner := factory.Child(syntax.RoleReceiver)
	if !owner.Has(syntax.AttrTypeName) {
		return
	}

	pattern, ok := p.Catalog.Exact(owner.Canonical(), catalog.Collector, factory.Name())
	if !ok {
		return
	}

	name, ok := nameToken(call)
	if !ok {
		return
	}

	method := pattern.Replacement
	fix := p.fix(report.NewMessage(report.KeyReplaceFix, call.Name(), method), call,
		rewrite.Edit{Span: name, New: method},
		rewrite.ReplaceRestoringComments(call.Tree(), args.Span(), "()"),
	)

	p.report(config.NeedlessCollect, report.Warning, call, name, report.NewMessage(report.KeyNeedlessCollect, method), fix)
}
