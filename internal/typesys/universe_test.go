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

package typesys_test

import (
	"slices"
	"testing"

	. "fillmore-labs.com/kalacheck/internal/typesys"
)

func universe() *Universe {
	u := NewUniverse(nil)
	u.Define(&Class{Name: "a.Traversable", Interface: true})
	u.Define(&Class{Name: "a.Seq", Supers: []string{"a.Traversable"}, Interface: true, Methods: []*Method{
		{Name: "take", Params: []Param{{Name: "n", Type: Int}}, Self: true},
		{Name: "of", Params: []Param{{Name: "xs", Type: Object, VarArgs: true}}, Self: true, Static: true},
	}})
	u.Define(&Class{Name: "a.ImmutableSeq", Supers: []string{"a.Seq"}})

	return u
}

func TestSubtypes(t *testing.T) {
	t.Parallel()

	u := universe()
	local := NewUniverse(u)
	local.Define(&Class{Name: "b.Mine", Supers: []string{"a.ImmutableSeq"}})

	tests := []struct {
		name, super string
		want        bool
	}{
		{"a.ImmutableSeq", "a.Traversable", true},
		{"a.ImmutableSeq", "a.ImmutableSeq", true},
		{"a.Traversable", "a.Seq", false},
		{"b.Mine", "a.Seq", true},
		{"b.Mine", "java.lang.Object", true},
		{"int", "java.lang.Object", false},
		{"unknown", "a.Seq", false},
	}

	for _, tt := range tests {
		if got := local.IsSubtype(tt.name, tt.super); got != tt.want {
			t.Errorf("Got IsSubtype(%s, %s) = %t, want %t", tt.name, tt.super, got, tt.want)
		}
	}

	if _, ok := u.Class("b.Mine"); ok {
		t.Error("Local class leaked into the parent universe")
	}

	if got, want := slices.Collect(local.Supertypes("b.Mine")), []string{"b.Mine", "a.ImmutableSeq", "a.Seq", "a.Traversable"}; !slices.Equal(got, want) {
		t.Errorf("Got supertypes %v, want %v", got, want)
	}
}

func TestLookupMethod(t *testing.T) {
	t.Parallel()

	u := universe()

	m, owner, ok := u.LookupMethod("a.ImmutableSeq", "take", 1, false)
	if !ok || owner.Name != "a.Seq" {
		t.Fatalf("Can't find take")
	}

	recv := New("a.ImmutableSeq", String).Annotated("x.Closed")
	if got := m.ResultFor(recv); got.Name != "a.ImmutableSeq" || len(got.Annotations) != 0 || len(got.Args) != 1 {
		t.Errorf("Got result %v", got)
	}

	if _, _, ok := u.LookupMethod("a.ImmutableSeq", "take", 2, false); ok {
		t.Error("Found take with two arguments")
	}

	if _, _, ok := u.LookupMethod("a.Seq", "of", 3, true); !ok {
		t.Error("Can't find static of")
	}

	if _, _, ok := u.LookupMethod("a.ImmutableSeq", "of", 0, true); ok {
		t.Error("Found inherited static method")
	}

	if _, _, ok := u.LookupMethod("a.Seq", "take", 1, true); ok {
		t.Error("Found instance method in static lookup")
	}
}

func TestTypes(t *testing.T) {
	t.Parallel()

	seq := New("a.Seq", String, nil)

	if got, want := seq.String(), "a.Seq<java.lang.String, ?>"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	if got, want := seq.SimpleName(), "Seq"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	a := seq.Annotated("x.Bound")
	if len(seq.Annotations) != 0 || len(a.Annotations) != 1 || len(a.Bare().Annotations) != 0 {
		t.Error("Annotated modified its receiver")
	}

	var unknown *Type
	if unknown.Annotated("x.Bound") != nil || unknown.Erasure() != "" || unknown.IsPrimitive() {
		t.Error("Nil type is not empty")
	}

	if !Int.IsPrimitive() || String.IsPrimitive() || !Null.IsNull() {
		t.Error("Wrong primitive classification")
	}
}
