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

package javasrc

import (
	"slices"
	"strings"
)

const javaLang = "java.lang"

// Commonly used members of java.lang, resolvable without an import.
var javaLangNames = []string{
	"Boolean", "Byte", "CharSequence", "Character", "Class", "Comparable", "Deprecated",
	"Double", "Enum", "Error", "Exception", "Float", "FunctionalInterface",
	"IllegalArgumentException", "IllegalStateException", "IndexOutOfBoundsException",
	"Integer", "Iterable", "Long", "Math", "NullPointerException", "Number", "Object",
	"Override", "Record", "Runnable", "RuntimeException", "SafeVarargs", "Short", "String",
	"StringBuilder", "SuppressWarnings", "System", "Thread", "Throwable",
	"UnsupportedOperationException", "Void",
}

type names struct {
	pkg      string
	imports  map[string]string // simple name -> qualified name
	onDemand []string          // imported packages, java.lang last
	local    map[string]string // classes declared in this file
}

func newNames() names {
	return names{imports: make(map[string]string), local: make(map[string]string)}
}

func (n *names) importSingle(qualified string) {
	simple := qualified[strings.LastIndexByte(qualified, '.')+1:]
	n.imports[simple] = qualified
}

func (n *names) importPackage(pkg string) {
	if !slices.Contains(n.onDemand, pkg) {
		n.onDemand = append(n.onDemand, pkg)
	}
}

func (n *names) qualify(simple string) string {
	if n.pkg == "" {
		return simple
	}

	return n.pkg + "." + simple
}

// Resolve returns the qualified name of a class referred to by its simple name.
func (f *File) Resolve(simple string) (string, bool) {
	if q, ok := f.names.local[simple]; ok {
		return q, true
	}

	if q, ok := f.names.imports[simple]; ok {
		return q, true
	}

	if q := f.names.qualify(simple); q != simple {
		if _, ok := f.Universe.Class(q); ok {
			return q, true
		}
	}

	for _, pkg := range f.names.onDemand {
		if _, ok := f.Universe.Class(pkg + "." + simple); ok {
			return pkg + "." + simple, true
		}
	}

	if slices.Contains(javaLangNames, simple) {
		return javaLang + "." + simple, true
	}

	return "", false
}

// Qualifier returns the shortest text referring to the class qualified from this file:
// the simple name when it resolves to the class, the qualified name otherwise.
func (f *File) Qualifier(qualified string) string {
	simple := qualified[strings.LastIndexByte(qualified, '.')+1:]
	if q, ok := f.Resolve(simple); ok && q == qualified {
		return simple
	}

	if _, shadowed := f.names.imports[simple]; shadowed {
		return qualified
	}

	if _, shadowed := f.names.local[simple]; shadowed {
		return qualified
	}

	if pkg, ok := strings.CutSuffix(qualified, "."+simple); ok && slices.Contains(f.names.onDemand, pkg) {
		return simple
	}

	return qualified
}
