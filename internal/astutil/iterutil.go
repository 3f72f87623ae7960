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

package astutil

import (
	"iter"

	"fillmore-labs.com/kalacheck/internal/syntax"
)

// AllDeclaredVariables yields the variables declared by a local declaration statement.
func AllDeclaredVariables(stmt syntax.Cursor) iter.Seq[syntax.Cursor] {
	if stmt.Kind() != syntax.KindDeclaration {
		return func(func(syntax.Cursor) bool) {}
	}

	return func(yield func(syntax.Cursor) bool) {
		for v := range stmt.ChildrenOf(syntax.RoleDeclarator) {
			if v.Kind() != syntax.KindVariable || v.Name() == "_" {
				continue // unnamed variable
			}

			if !yield(v) {
				return
			}
		}
	}
}

// Arguments returns the argument expressions of a call or instance creation.
func Arguments(call syntax.Cursor) []syntax.Cursor {
	var args []syntax.Cursor
	for a := range call.Child(syntax.RoleArguments).ChildrenOf(syntax.RoleArgument) {
		args = append(args, a)
	}

	return args
}

// Annotations returns the annotation nodes attached to a declaration. Annotations of a
// declared variable live on its declaration statement.
func Annotations(decl syntax.Cursor) []syntax.Cursor {
	owner := decl
	if decl.Kind() == syntax.KindVariable && decl.Role() == syntax.RoleDeclarator {
		owner = decl.Parent()
	}

	var annotations []syntax.Cursor
	for a := range owner.ChildrenOf(syntax.RoleAnnotation) {
		annotations = append(annotations, a)
	}

	return annotations
}
