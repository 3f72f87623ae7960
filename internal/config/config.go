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

package config

import "iter"

// Inspections represents specific inspections.
type Inspections uint16

const (
	// FuseImmSeq reports chains of transformations on immutable sequences.
	FuseImmSeq Inspections = 1 << iota

	// Muda reports redundant conversions and views.
	Muda

	// PreferEmpty reports argumentless 'of()' factory calls.
	PreferEmpty

	// SizeCompare reports comparisons of 'size()'.
	SizeCompare

	// MapPut reports map entries decomposed only to be put back.
	MapPut

	// ViewSize reports 'size()' on views.
	ViewSize

	// ViewToMap reports 'toImmutableMap()' without arguments.
	ViewToMap

	// Sameness reports collections compared with themselves.
	Sameness

	// Dblity checks the db-lity annotation lattice.
	Dblity

	// NeedlessCollect reports 'collect' with a factory of a materializing class.
	NeedlessCollect

	// TupleOf reports tuple constructors.
	TupleOf

	// PatternInspections are the inspections matching call shapes against the catalog.
	PatternInspections = FuseImmSeq | Muda | PreferEmpty | SizeCompare | MapPut | ViewSize |
		ViewToMap | Sameness | NeedlessCollect | TupleOf

	// AllInspections enables every inspection.
	AllInspections = PatternInspections | Dblity
)

var inspectionNames = [...]string{
	"fuse-immseq", "muda", "prefer-empty", "size-compare", "map-put", "view-size",
	"view-to-map", "sameness", "dblity", "needless-collect", "tuple-of",
}

// Name returns the identifier of a single inspection, used in flags, suppressions and output.
func (i Inspections) Name() string {
	for n, name := range inspectionNames {
		if i == 1<<n {
			return name
		}
	}

	return ""
}

// ParseInspection returns the inspection with the given identifier.
func ParseInspection(name string) (Inspections, bool) {
	for n, id := range inspectionNames {
		if id == name {
			return 1 << n, true
		}
	}

	return 0, false
}

// All yields every single inspection in declaration order.
func All() iter.Seq[Inspections] {
	return func(yield func(Inspections) bool) {
		for n := range inspectionNames {
			if !yield(1 << n) {
				return
			}
		}
	}
}

// Behavior represents behavioral options.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Behavior = 1 << iota

	// ReportNarrowing enables informational diagnostics for implicit narrowing.
	ReportNarrowing
)

// Annotations are the simple names of the db-lity annotations.
type Annotations struct {
	Closed    string
	Bound     string
	NoInherit string
}

// DefaultAnnotations returns the annotation names used by the Aya prover.
func DefaultAnnotations() Annotations {
	return Annotations{Closed: "Closed", Bound: "Bound", NoInherit: "NoInherit"}
}
