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

import "fillmore-labs.com/kalacheck/internal/syntax"

// Kind is a lattice value.
type Kind uint8

//go:generate go tool stringer -type Kind
const (
	// Unknown means no information: NoInherit, the null type or an unresolved type.
	Unknown Kind = iota
	Inherit
	Bound
	Closed
)

// specific reports whether k is an explicit guarantee.
func (k Kind) specific() bool { return k == Bound || k == Closed }

// Assignable compares an actual kind against the expected kind k. It is negative when
// actual is not assignable, positive when it is assignable with an implicit narrowing.
// An Inherit actual is compared as Bound.
func (k Kind) Assignable(actual Kind) int {
	if actual == Inherit {
		actual = Bound
	}

	return int(actual) - int(k)
}

// Known maps the span of a declaration to its inferred kind.
type Known map[syntax.Span]Kind
