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

package typesys

import (
	"iter"
	"slices"
	"strings"
)

// Class describes a class, interface, enum or record.
type Class struct {
	Name        string
	Supers      []string
	Annotations []string
	Components  []Param
	Constants   []string
	Methods     []*Method
	Interface   bool
}

// SimpleName returns the last segment of the class name.
func (c *Class) SimpleName() string { return c.Name[strings.LastIndexByte(c.Name, '.')+1:] }

// Type returns the raw class type.
func (c *Class) Type() *Type { return New(c.Name) }

// Record reports whether c is a record class.
func (c *Class) Record() bool { return c.Components != nil }

// HasConstant reports whether c declares the enum constant name.
func (c *Class) HasConstant(name string) bool { return slices.Contains(c.Constants, name) }

// Component returns the record component with the given name.
func (c *Class) Component(name string) (Param, bool) {
	for _, p := range c.Components {
		if p.Name == name {
			return p, true
		}
	}

	return Param{}, false
}

// Method is a method or constructor signature.
type Method struct {
	Name        string
	Params      []Param
	Annotations []string
	// Result is the return type. Nil together with Self false means the result is unknown.
	Result *Type
	// Self marks methods returning the receiver type, or the qualifying class for static methods.
	Self        bool
	Static      bool
	Constructor bool
}

// VarArgs reports whether the last parameter has variable arity.
func (m *Method) VarArgs() bool {
	return len(m.Params) > 0 && m.Params[len(m.Params)-1].VarArgs
}

// Accepts reports whether m can be called with n arguments. A negative n matches any arity.
func (m *Method) Accepts(n int) bool {
	switch {
	case n < 0, n == len(m.Params):
		return true

	case m.VarArgs():
		return n >= len(m.Params)-1

	default:
		return false
	}
}

// ResultFor returns the type produced by calling m on a receiver of type recv.
func (m *Method) ResultFor(recv *Type) *Type {
	if m.Self {
		return recv.Bare()
	}

	return m.Result
}

// Param is a method parameter or record component.
type Param struct {
	Name        string
	Type        *Type
	Annotations []string
	VarArgs     bool
}

// Universe is a table of classes. Universes are layered: lookups fall back to the parent,
// definitions always go to the receiver. A universe must not be modified while it is used as
// a parent.
type Universe struct {
	parent  *Universe
	classes map[string]*Class
}

// NewUniverse creates an empty universe layered over parent, which may be nil.
func NewUniverse(parent *Universe) *Universe {
	return &Universe{parent: parent, classes: make(map[string]*Class)}
}

// Define adds or replaces a class.
func (u *Universe) Define(c *Class) *Class {
	u.classes[c.Name] = c

	return c
}

// Class looks up a class by canonical name.
func (u *Universe) Class(name string) (*Class, bool) {
	for ; u != nil; u = u.parent {
		if c, ok := u.classes[name]; ok {
			return c, true
		}
	}

	return nil, false
}

// Supertypes yields name followed by all its known supertypes in breadth-first order,
// each exactly once.
func (u *Universe) Supertypes(name string) iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := map[string]struct{}{name: {}}
		for queue := []string{name}; len(queue) > 0; queue = queue[1:] {
			current := queue[0]
			if !yield(current) {
				return
			}

			c, ok := u.Class(current)
			if !ok {
				continue
			}

			for _, s := range c.Supers {
				if _, ok := seen[s]; ok {
					continue
				}
				seen[s] = struct{}{}
				queue = append(queue, s)
			}
		}
	}
}

// IsSubtype reports whether the class name is super or inherits from it.
func (u *Universe) IsSubtype(name, super string) bool {
	if name == "" || super == "" {
		return false
	}

	if super == Object.Name {
		_, primitive := primitives[name]

		return !primitive && name != Null.Name
	}

	for s := range u.Supertypes(name) {
		if s == super {
			return true
		}
	}

	return false
}

// Is reports whether t is a subtype of the class super. It is false for a nil type.
func (u *Universe) Is(t *Type, super string) bool {
	return t != nil && u.IsSubtype(t.Name, super)
}

// LookupMethod finds the most specific method called name on owner accepting args arguments
// (any number when negative). Static lookups only consider static methods declared by owner
// itself. It returns the method and the class declaring it.
func (u *Universe) LookupMethod(owner, name string, args int, static bool) (*Method, *Class, bool) {
	if static {
		if c, ok := u.Class(owner); ok {
			if m, ok := c.lookup(name, args, true); ok {
				return m, c, true
			}
		}

		return nil, nil, false
	}

	for s := range u.Supertypes(owner) {
		c, ok := u.Class(s)
		if !ok {
			continue
		}

		if m, ok := c.lookup(name, args, false); ok {
			return m, c, true
		}
	}

	return nil, nil, false
}

func (c *Class) lookup(name string, args int, static bool) (*Method, bool) {
	for _, m := range c.Methods {
		if m.Name == name && (m.Static || !static) && !m.Constructor && m.Accepts(args) {
			return m, true
		}
	}

	return nil, false
}

// Constructor finds a constructor of c accepting args arguments.
func (c *Class) Constructor(args int) (*Method, bool) {
	for _, m := range c.Methods {
		if m.Constructor && m.Accepts(args) {
			return m, true
		}
	}

	return nil, false
}
