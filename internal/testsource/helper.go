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

// Package testsource provides utilities for parsing Java source code in tests.
//
// It handles the boilerplate of wrapping statement fragments into a class and parsing
// them against the built-in library model.
package testsource

import (
	"bytes"
	"os"
	"testing"

	"golang.org/x/tools/txtar"

	"fillmore-labs.com/kalacheck/internal/catalog"
	"fillmore-labs.com/kalacheck/internal/javasrc"
	"fillmore-labs.com/kalacheck/internal/syntax"
)

// Parse parses a Java statement fragment.
// The provided source `src` is automatically wrapped in a method body `void test() { ... }`
// within a class `Test` importing the kala collection packages. Declarations of the enclosing
// class can be passed as members.
//
// Returns:
//   - *javasrc.File: The parsed file.
//   - syntax.Cursor: A cursor positioned at the wrapper method's body.
func Parse(tb testing.TB, src string, members ...string) (*javasrc.File, syntax.Cursor) {
	tb.Helper()

	f := ParseFile(tb, "Test.java", wrapSource(src, members))

	for m := range f.Tree.Root().Preorder(syntax.KindMethod) {
		if m.Name() == "test" {
			return f, m.Child(syntax.RoleBody)
		}
	}

	tb.Fatal("Can't find method")

	return nil, syntax.Cursor{}
}

// ParseFile parses a complete Java compilation unit.
func ParseFile(tb testing.TB, filename string, src []byte) *javasrc.File {
	tb.Helper()

	p := javasrc.NewParser(catalog.Default().Library())
	defer p.Close()

	f, err := p.Parse(tb.Context(), filename, src)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	if f.HasErrors {
		tb.Fatalf("Source %s has syntax errors:\n%s", filename, src)
	}

	return f
}

// Archive reads a txtar archive from testdata.
func Archive(tb testing.TB, path string) *txtar.Archive {
	tb.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("Can't read archive: %v", err)
	}

	return txtar.Parse(data)
}

// Section returns the content of the named file in an archive.
func Section(tb testing.TB, a *txtar.Archive, name string) ([]byte, bool) {
	tb.Helper()

	for _, f := range a.Files {
		if f.Name == name {
			return f.Data, true
		}
	}

	return nil, false
}

// Header are the imports of wrapped fragments.
const Header = `package test;

import kala.collection.*;
import kala.collection.immutable.*;
import kala.collection.mutable.*;
import kala.tuple.*;
import java.util.function.Function;

`

func wrapSource(src string, members []string) []byte {
	const (
		prefix = "class Test {\n"
		method = "  void test() {\n"
		suffix = "\n  }\n}\n"
	)

	var srcFile bytes.Buffer

	srcFile.WriteString(Header) // ignore error
	srcFile.WriteString(prefix) // ignore error

	for _, m := range members {
		srcFile.WriteString("  ") // ignore error
		srcFile.WriteString(m)    // ignore error
		srcFile.WriteString("\n") // ignore error
	}

	srcFile.WriteString(method) // ignore error
	srcFile.WriteString(src)    // ignore error
	srcFile.WriteString(suffix) // ignore error

	return srcFile.Bytes()
}
