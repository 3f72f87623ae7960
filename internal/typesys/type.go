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

// Package typesys models static Java types and the class hierarchy they live in.
package typesys

import (
	"slices"
	"strings"
)

// Type is a static type: a canonical (erased) name, optional type arguments and the
// qualified names of annotations attached to it.
type Type struct {
	Name        string
	Args        []*Type
	Annotations []string
}

// Well-known types.
var (
	Null    = &Type{Name: "null"}
	Void    = &Type{Name: "void"}
	Boolean = &Type{Name: "boolean"}
	Int     = &Type{Name: "int"}
	Long    = &Type{Name: "long"}
	Char    = &Type{Name: "char"}
	Float   = &Type{Name: "float"}
	Double  = &Type{Name: "double"}
	String  = &Type{Name: "java.lang.String"}
	Object  = &Type{Name: "java.lang.Object"}
)

var primitives = map[string]*Type{
	"boolean": Boolean, "byte": {Name: "byte"}, "short": {Name: "short"}, "int": Int,
	"long": Long, "char": Char, "float": Float, "double": Double, "void": Void,
}

// Primitive returns the primitive type with the given keyword.
func Primitive(name string) (*Type, bool) {
	t, ok := primitives[name]

	return t, ok
}

// New returns a class type.
func New(name string, args ...*Type) *Type {
	return &Type{Name: name, Args: args}
}

// IsPrimitive reports whether t is a primitive type.
func (t *Type) IsPrimitive() bool {
	if t == nil {
		return false
	}

	_, ok := primitives[t.Name]

	return ok
}

// IsNull reports whether t is the type of the null literal.
func (t *Type) IsNull() bool { return t != nil && t.Name == Null.Name }

// Erasure returns the canonical name without type arguments.
func (t *Type) Erasure() string {
	if t == nil {
		return ""
	}

	return t.Name
}

// SimpleName returns the last segment of the canonical name.
func (t *Type) SimpleName() string {
	if t == nil {
		return ""
	}

	return t.Name[strings.LastIndexByte(t.Name, '.')+1:]
}

// Annotated returns a copy of t with additional annotations.
func (t *Type) Annotated(annotations ...string) *Type {
	if t == nil || len(annotations) == 0 {
		return t
	}

	c := *t
	c.Annotations = append(slices.Clip(t.Annotations), annotations...)

	return &c
}

// Bare returns t without annotations.
func (t *Type) Bare() *Type {
	if t == nil || len(t.Annotations) == 0 {
		return t
	}

	c := *t
	c.Annotations = nil

	return &c
}

// String formats t as Java source, without annotations.
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}

	if len(t.Args) == 0 {
		return t.Name
	}

	var b strings.Builder
	b.WriteString(t.Name) // ignore error
	b.WriteByte('<')      // ignore error
	for i, a := range t.Args {
		if i > 0 {
			b.WriteString(", ") // ignore error
		}

		if a == nil {
			b.WriteByte('?') // ignore error

			continue
		}

		b.WriteString(a.String()) // ignore error
	}
	b.WriteByte('>') // ignore error

	return b.String()
}
