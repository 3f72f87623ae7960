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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/kalacheck/internal/catalog"
	"fillmore-labs.com/kalacheck/internal/config"
	"fillmore-labs.com/kalacheck/internal/run"
)

// Option configures specific behavior of a [New] kalacheck analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithInspection is an [Option] to configure whether a single inspection is enabled.
func WithInspection(inspection config.Inspections, enabled bool) Option {
	return inspectionOption{inspection: inspection, enabled: enabled}
}

type inspectionOption struct {
	inspection config.Inspections
	enabled    bool
}

func (o inspectionOption) apply(r *run.Options) {
	r.Inspections.Set(o.inspection, o.enabled)
}

func (o inspectionOption) LogAttr() slog.Attr {
	return slog.Bool(o.inspection.Name(), o.enabled)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithNarrowing is an [Option] to configure informational diagnostics for values implicitly
// narrowed to a less specific annotation.
func WithNarrowing(narrowing bool) Option { return narrowingOption{narrowing: narrowing} }

type narrowingOption struct{ narrowing bool }

func (o narrowingOption) apply(r *run.Options) {
	r.Behavior.Set(config.ReportNarrowing, o.narrowing)
}

func (o narrowingOption) LogAttr() slog.Attr {
	return slog.Bool("narrowing", o.narrowing)
}

// WithAnnotationNames is an [Option] to configure the simple names of the db-lity annotations.
func WithAnnotationNames(names config.Annotations) Option { return annotationsOption{names: names} }

type annotationsOption struct{ names config.Annotations }

func (o annotationsOption) apply(r *run.Options) {
	r.Annotations = o.names
}

func (o annotationsOption) LogAttr() slog.Attr {
	return slog.Group("annotations",
		slog.String("closed", o.names.Closed),
		slog.String("bound", o.names.Bound),
		slog.String("noInherit", o.names.NoInherit),
	)
}

// WithCatalog is an [Option] to replace the library model and inspection patterns.
func WithCatalog(c *catalog.Catalog) Option { return catalogOption{catalog: c} }

type catalogOption struct{ catalog *catalog.Catalog }

func (o catalogOption) apply(r *run.Options) {
	if o.catalog != nil {
		r.Catalog = o.catalog
	}
}

func (o catalogOption) LogAttr() slog.Attr {
	return slog.Any("catalog", o.catalog)
}

// WithFixRounds is an [Option] to limit the parse and fix rounds when applying fixes.
func WithFixRounds(rounds int) Option { return fixRoundsOption{rounds: rounds} }

type fixRoundsOption struct{ rounds int }

func (o fixRoundsOption) apply(r *run.Options) {
	r.FixRounds = o.rounds
}

func (o fixRoundsOption) LogAttr() slog.Attr {
	return slog.Int("fixRounds", o.rounds)
}
