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

package config_test

import (
	"testing"

	. "fillmore-labs.com/kalacheck/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(Muda | Dblity)

	b.Set(TupleOf, true)
	b.Disable(Muda)

	for _, tt := range []struct {
		flag Inspections
		want bool
	}{
		{Muda, false},
		{Dblity, true},
		{TupleOf, true},
		{FuseImmSeq, false},
	} {
		if got := b.Enabled(tt.flag); got != tt.want {
			t.Errorf("Got %s enabled %t, want %t", tt.flag.Name(), got, tt.want)
		}
	}

	if got, want := b.Bits(), Dblity|TupleOf; got != want {
		t.Errorf("Got bits %b, want %b", got, want)
	}

	if !b.Enabled(PatternInspections) {
		t.Error("Got no pattern inspection enabled, want tuple-of")
	}

	b.Disable(TupleOf)
	if b.Enabled(PatternInspections) {
		t.Error("Got pattern inspection enabled, want only dblity")
	}
}

func TestInspectionNames(t *testing.T) {
	t.Parallel()

	var count int
	for i := range All() {
		count++

		name := i.Name()
		if name == "" {
			t.Errorf("Got no name for inspection %d", i)

			continue
		}

		if got, ok := ParseInspection(name); !ok || got != i {
			t.Errorf("Got ParseInspection(%q) = %d, %t, want %d", name, got, ok, i)
		}

		if AllInspections&i == 0 {
			t.Errorf("Got %s not in AllInspections", name)
		}
	}

	if count != 11 {
		t.Errorf("Got %d inspections, want 11", count)
	}

	if _, ok := ParseInspection("unknown"); ok {
		t.Error("Got unknown inspection parsed")
	}

	if got := (Muda | Dblity).Name(); got != "" {
		t.Errorf("Got name %q for a combination, want none", got)
	}
}
