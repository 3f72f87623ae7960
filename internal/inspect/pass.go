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
	"context"
	"runtime/trace"

	"fillmore-labs.com/kalacheck/internal/catalog"
	"fillmore-labs.com/kalacheck/internal/config"
	"fillmore-labs.com/kalacheck/internal/javasrc"
	"fillmore-labs.com/kalacheck/internal/report"
	"fillmore-labs.com/kalacheck/internal/rewrite"
	"fillmore-labs.com/kalacheck/internal/syntax"
	"fillmore-labs.com/kalacheck/internal/typesys"
)

// Pass is one run of the enabled inspections over a parsed file.
type Pass struct {
	File     *javasrc.File
	Catalog  *catalog.Catalog
	Reporter report.Reporter
	// Bundle renders fix titles. Defaults to [report.English].
	Bundle report.Bundle
	// Version is the document version the file was parsed from.
	Version     int
	Inspections config.BitMask[config.Inspections]
}

// rule is a single inspection over nodes of one kind.
type rule struct {
	inspection config.Inspections
	check      func(p *Pass, n syntax.Cursor)
}

// rules is the dispatch table from node kind to the rules inspecting it.
var rules = map[syntax.Kind][]rule{
	syntax.KindCall: {
		{config.FuseImmSeq, (*Pass).fuseImmSeq},
		{config.Muda, (*Pass).muda},
		{config.PreferEmpty, (*Pass).preferEmpty},
		{config.SizeCompare, (*Pass).sizeCompare},
		{config.MapPut, (*Pass).mapPut},
		{config.ViewSize, (*Pass).viewSize},
		{config.ViewToMap, (*Pass).viewToMap},
		{config.Sameness, (*Pass).sameness},
		{config.NeedlessCollect, (*Pass).needlessCollect},
	},
	syntax.KindNew: {
		{config.TupleOf, (*Pass).tupleOf},
	},
}

// Run inspects the whole file.
func (p *Pass) Run(ctx context.Context) {
	defer trace.StartRegion(ctx, "Inspect").End()

	if p.Bundle == nil {
		p.Bundle = report.English
	}

	for n := range p.File.Tree.Root().Preorder(syntax.KindCall, syntax.KindNew) {
		for _, r := range rules[n.Kind()] {
			if p.Inspections.Enabled(r.inspection) {
				r.check(p, n)
			}
		}
	}
}

// report registers a diagnostic of an inspection.
func (p *Pass) report(inspection config.Inspections, severity report.Severity, node syntax.Cursor, span syntax.Span,
	msg report.Message, fixes ...rewrite.Fix,
) {
	p.Reporter.Report(report.Diagnostic{
		Inspection: inspection.Name(),
		Severity:   severity,
		Node:       node,
		Span:       span,
		Message:    msg,
		Fixes:      fixes,
	})
}

// fix creates a quick-fix anchored at target.
func (p *Pass) fix(title report.Message, target syntax.Cursor, edits ...rewrite.Edit) rewrite.Fix {
	return rewrite.Fix{
		Title:  p.Bundle.Format(title),
		Target: rewrite.NewAnchor(target, p.Version),
		Edits:  edits,
	}
}

// receiverType returns the static type of the receiver of a call.
func receiverType(call syntax.Cursor) (syntax.Cursor, *typesys.Type, bool) {
	recv := call.Child(syntax.RoleReceiver)
	if !recv.Valid() || recv.Has(syntax.AttrTypeName) || recv.Type() == nil {
		return recv, nil, false
	}

	return recv, recv.Type(), true
}

// arity returns the number of arguments of a call.
func arity(call syntax.Cursor) int {
	return call.Child(syntax.RoleArguments).Count(syntax.RoleArgument)
}

// nameToken returns the span of the method name of a call.
func nameToken(call syntax.Cursor) (syntax.Span, bool) {
	name := call.Child(syntax.RoleName)
	if !name.Valid() {
		return syntax.Span{}, false
	}

	return name.Span(), true
}

// qualifier returns the shortest reference to a capability class from the inspected file.
func (p *Pass) qualifier(c catalog.Capability) string {
	return p.File.Qualifier(p.Catalog.Capability(c))
}

// match returns the first pattern of the class listing the method for receiver type t.
func (p *Pass) match(t *typesys.Type, class catalog.Class, method string) (catalog.Pattern, bool) {
	for pattern := range p.Catalog.Match(p.File.Universe, t, class, method) {
		return pattern, true
	}

	return catalog.Pattern{}, false
}

// matches reports whether a pattern of the class lists the method for receiver type t.
func (p *Pass) matches(t *typesys.Type, class catalog.Class, method string) bool {
	_, ok := p.match(t, class, method)

	return ok
}
