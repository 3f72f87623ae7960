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
	"context"
	"runtime/trace"
	"strings"

	"fillmore-labs.com/kalacheck/internal/astutil"
	"fillmore-labs.com/kalacheck/internal/config"
	"fillmore-labs.com/kalacheck/internal/javasrc"
	"fillmore-labs.com/kalacheck/internal/report"
	"fillmore-labs.com/kalacheck/internal/rewrite"
	"fillmore-labs.com/kalacheck/internal/syntax"
	"fillmore-labs.com/kalacheck/internal/typesys"
)

// Analyzer checks the db-lity annotations of a file.
type Analyzer struct {
	Reporter report.Reporter
	// Bundle renders fix titles. Defaults to [report.English].
	Bundle report.Bundle
	// Version is the document version the file was parsed from.
	Version int
	Names   config.Annotations
	// Narrowing enables informational diagnostics for implicit narrowing.
	Narrowing bool
}

// Run analyzes every method and constructor body of the file.
func (a *Analyzer) Run(ctx context.Context, f *javasrc.File) {
	defer trace.StartRegion(ctx, "Dblity").End()

	if a.Bundle == nil {
		a.Bundle = report.English
	}

	if a.Names == (config.Annotations{}) {
		a.Names = config.DefaultAnnotations()
	}

	root := f.Tree.Root()

	a.conflicts(root)

	for m := range root.Preorder(syntax.KindMethod) {
		body := m.Child(syntax.RoleBody)
		if !body.Valid() {
			continue
		}

		s := sequential{Analyzer: a, universe: f.Universe, known: make(Known)}
		s.foreplay(m)
		s.statement(body)
	}
}

// kindOf classifies a set of annotation names.
func (a *Analyzer) kindOf(annotations []string) Kind {
	var closed, bound, noInherit bool

	for _, name := range annotations {
		switch {
		case named(name, a.Names.NoInherit):
			noInherit = true

		case named(name, a.Names.Closed):
			closed = true

		case named(name, a.Names.Bound):
			bound = true
		}
	}

	switch {
	case noInherit:
		return Unknown

	case closed:
		return Closed

	case bound:
		return Bound

	default:
		return Inherit
	}
}

// typeKind is the kind declared by the annotations of a type.
func (a *Analyzer) typeKind(t *typesys.Type) Kind {
	if t == nil {
		return Inherit
	}

	return a.kindOf(t.Annotations)
}

// lattice reports whether an annotation node is one of the db-lity annotations.
func (a *Analyzer) lattice(annotation syntax.Cursor) bool {
	name := annotation.Name()

	return named(name, a.Names.Closed) || named(name, a.Names.Bound) || named(name, a.Names.NoInherit)
}

func named(name, simple string) bool {
	return simple != "" && (name == simple || strings.HasSuffix(name, "."+simple))
}

// conflicts reports contradicting annotations: Bound together with Closed, or NoInherit
// together with either.
func (a *Analyzer) conflicts(root syntax.Cursor) {
	for owner := range root.Preorder() {
		var closed, bound, noInherit []syntax.Cursor

		for an := range owner.ChildrenOf(syntax.RoleAnnotation) {
			switch name := an.Name(); {
			case named(name, a.Names.NoInherit):
				noInherit = append(noInherit, an)

			case named(name, a.Names.Closed):
				closed = append(closed, an)

			case named(name, a.Names.Bound):
				bound = append(bound, an)
			}
		}

		var conflicting []syntax.Cursor

		switch {
		case len(noInherit) > 0:
			conflicting = append(closed, bound...)

		case len(closed) > 0:
			conflicting = bound
		}

		for _, an := range conflicting {
			a.report(report.Error, an, report.NewMessage(report.KeyConflict))
		}
	}
}

func (a *Analyzer) report(severity report.Severity, node syntax.Cursor, msg report.Message, fixes ...rewrite.Fix) {
	a.Reporter.Report(report.Diagnostic{
		Inspection: config.Dblity.Name(),
		Severity:   severity,
		Node:       node,
		Span:       node.Span(),
		Message:    msg,
		Fixes:      fixes,
	})
}

// proposeDelete reports the lattice annotations of a declaration as redundant.
func (a *Analyzer) proposeDelete(decl syntax.Cursor) {
	for _, an := range astutil.Annotations(decl) {
		if !a.lattice(an) {
			continue
		}

		fix := rewrite.Fix{
			Title:  a.Bundle.Format(report.NewMessage(report.KeyDeleteAnnotation)),
			Target: rewrite.NewAnchor(an, a.Version),
			Edits:  []rewrite.Edit{{Span: withTrailingSpace(an)}},
		}

		a.report(report.Unused, an, report.NewMessage(report.KeyUnusedAnnotation), fix)
	}
}

// withTrailingSpace extends the span of a node over the blanks following it.
func withTrailingSpace(n syntax.Cursor) syntax.Span {
	s, src := n.Span(), n.Tree().Source()
	for s.End < len(src) && (src[s.End] == ' ' || src[s.End] == '\t') {
		s.End++
	}

	return s
}

// annotationName formats the annotation standing for a kind.
func (a *Analyzer) annotationName(k Kind) string {
	switch k {
	case Closed:
		return "@" + a.Names.Closed

	case Bound:
		return "@" + a.Names.Bound

	default:
		return "@" + k.String()
	}
}
