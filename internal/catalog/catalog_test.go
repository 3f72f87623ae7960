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

package catalog_test

import (
	"errors"
	"slices"
	"testing"

	. "fillmore-labs.com/kalacheck/internal/catalog"
	"fillmore-labs.com/kalacheck/internal/typesys"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	c := Default()
	u := c.Library()

	if got, want := c.Capability(CapTraversable), "kala.collection.base.AnyTraversable"; got != want {
		t.Errorf("Got traversable capability %q, want %q", got, want)
	}

	if got, want := c.Word(WordMaterialize), "toImmutableSeq"; got != want {
		t.Errorf("Got materialize word %q, want %q", got, want)
	}

	if m, ok := c.Comparison(">="); !ok || m != "sizeGreaterThanOrEquals" {
		t.Errorf("Got comparison %q for >=", m)
	}

	if !u.IsSubtype("kala.collection.immutable.ImmutableArray", "kala.collection.Seq") {
		t.Error("ImmutableArray is not a Seq")
	}

	if got, want := c.Accessors().Fields, [2]string{"_1", "_2"}; got != want {
		t.Errorf("Got entry fields %v, want %v", got, want)
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	c := Default()
	u := c.Library()

	tests := []struct {
		name   string
		typ    string
		class  Class
		method string
		want   int
	}{
		{"redundant_subtype", "kala.collection.immutable.ImmutableArray", Redundant, "toImmutableSeq", 1},
		{"redundant_supertype", "kala.collection.Seq", Redundant, "toImmutableSeq", 0},
		{"fusible", "kala.collection.immutable.ImmutableVector", Fusible, "map", 1},
		{"fusible_view", "kala.collection.SeqView", Fusible, "map", 0},
		{"view_size", "kala.collection.SeqView", ViewSize, "size", 1},
		{"view_size_collection", "kala.collection.immutable.ImmutableSeq", ViewSize, "size", 0},
		{"any_owner", "unknown.Type", ViewMap, "toImmutableMap", 1},
		{"tuple", "kala.tuple.Tuple2", TupleNew, "of", 1},
		{"tuple_xxl", "kala.tuple.TupleXXL", TupleNew, "of", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := slices.Collect(c.Match(u, typesys.New(tt.typ), tt.class, tt.method))
			if len(got) != tt.want {
				t.Errorf("Got %d patterns, want %d", len(got), tt.want)
			}
		})
	}
}

func TestExact(t *testing.T) {
	t.Parallel()

	c := Default()

	p, ok := c.Exact("kala.collection.mutable.Buffer", Factory, "of")
	if !ok || p.Replacement != "create" {
		t.Errorf("Got pattern %+v for Buffer.of", p)
	}

	if _, ok := c.Exact("kala.collection.mutable.MutableArrayList", Factory, "of"); ok {
		t.Error("Exact matched a subtype")
	}
}

func TestExtend(t *testing.T) {
	t.Parallel()

	c := Default()

	e, err := c.Extend(Pattern{Class: Redundant, Owner: "$immutableSeq", Methods: []string{"toSeq"}})
	if err != nil {
		t.Fatalf("Can't extend catalog: %v", err)
	}

	if got := slices.Collect(e.Named(Redundant, "toSeq")); len(got) != 2 || got[1].Owner != "kala.collection.immutable.ImmutableSeq" {
		t.Errorf("Got patterns %+v", got)
	}

	if got := slices.Collect(c.Named(Redundant, "toSeq")); len(got) != 1 {
		t.Errorf("Extend modified the original catalog: %+v", got)
	}

	if _, err := c.Extend(Pattern{Owner: "$unknown"}); !errors.Is(err, ErrCatalog) {
		t.Errorf("Got error %v, want %v", err, ErrCatalog)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{"syntax", "capabilities: ["},
		{"fields", "accessors: {fields: [_1]}"},
		{"vocabulary", "accessors: {fields: [_1, _2]}\nvocabulary: {view: view}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Load([]byte(tt.doc)); !errors.Is(err, ErrCatalog) {
				t.Errorf("Got error %v, want %v", err, ErrCatalog)
			}
		})
	}
}

func TestParseClass(t *testing.T) {
	t.Parallel()

	for c := range TupleNew + 1 {
		got, err := ParseClass(c.String())
		if err != nil || got != c {
			t.Errorf("Got %v, %v for %v", got, err, c)
		}
	}
}
