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

// Package catalog holds the declarative tables shared by the inspections: a model of the
// kala collections library (class hierarchy and method result types) and the
// (owner type, method name) patterns each rule matches against.
//
// The tables are data, loaded from an embedded YAML document. Owners may refer to a
// capability tag such as "$traversable" instead of a concrete class, so every rule asking
// "is this receiver traversable?" consults the same definition.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
	"sync"

	"fillmore-labs.com/kalacheck/internal/typesys"
)

//go:embed kala.yaml
var kalaYAML []byte

// ErrCatalog is returned for malformed catalog documents.
var ErrCatalog = errors.New("invalid catalog")

// Class classifies what a rule does with a matched call.
type Class uint8

//go:generate go tool stringer -type Class -linecomment
const (
	Redundant  Class = iota // redundant
	Fusible                 // fusible
	Factory                 // factory
	Comparison              // comparison
	ViewSize                // viewsize
	MapPut                  // mapput
	ViewMap                 // viewmap
	Sameness                // sameness
	Collect                 // collect
	Collector               // collector
	TupleNew                // tuple
)

// ParseClass parses the textual form of a [Class].
func ParseClass(s string) (Class, error) {
	for c := range TupleNew + 1 {
		if c.String() == s {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown pattern class %q", ErrCatalog, s)
}

// Capability names a library interface several rules test against.
type Capability string

const (
	CapTraversable    Capability = "traversable"
	CapCollection     Capability = "collection"
	CapCollectionLike Capability = "collectionLike"
	CapImmutableSeq   Capability = "immutableSeq"
	CapImmutableMap   Capability = "immutableMap"
	CapMutableMapLike Capability = "mutableMapLike"
	CapTuple          Capability = "tuple"
	CapTuple2         Capability = "tuple2"
)

// Word names a method of the library vocabulary used in rewrites.
type Word string

const (
	WordView        Word = "view"
	WordMaterialize Word = "materialize"
	WordSize        Word = "size"
	WordIsEmpty     Word = "isEmpty"
	WordIsNotEmpty  Word = "isNotEmpty"
	WordFrom        Word = "from"
	WordOf          Word = "of"
)

// AnyOwner matches every receiver, including receivers of unknown type.
const AnyOwner = "*"

// Pattern is a (owner type, method names) entry with its classification.
type Pattern struct {
	Class       Class
	Owner       string
	Methods     []string
	Replacement string
	Exclude     []string
}

// Matches reports whether a receiver of type t satisfies the pattern's owner.
func (p Pattern) Matches(u *typesys.Universe, t *typesys.Type) bool {
	if p.Owner == AnyOwner {
		return true
	}

	if !u.Is(t, p.Owner) {
		return false
	}

	for _, x := range p.Exclude {
		if u.Is(t, x) {
			return false
		}
	}

	return true
}

// Accessors lists the entry decomposition accessors of a map entry.
type Accessors struct {
	Fields [2]string
	First  []string
	Second []string
}

type key struct {
	class  Class
	method string
}

// Catalog is an immutable set of patterns over a library model.
type Catalog struct {
	capabilities map[Capability]string
	vocabulary   map[Word]string
	comparisons  map[string]string
	accessors    Accessors
	patterns     []Pattern
	index        map[key][]int
	library      *typesys.Universe
}

// Default returns the built-in catalog for kala-common.
var Default = sync.OnceValue(func() *Catalog {
	c, err := Load(kalaYAML)
	if err != nil {
		panic(err)
	}

	return c
})

// Capability returns the class implementing a capability.
func (c *Catalog) Capability(name Capability) string { return c.capabilities[name] }

// Word returns the method name for a vocabulary entry.
func (c *Catalog) Word(w Word) string { return c.vocabulary[w] }

// Comparison returns the size comparison method replacing a relational operator.
func (c *Catalog) Comparison(op string) (string, bool) {
	m, ok := c.comparisons[op]

	return m, ok
}

// Accessors returns the map entry accessors.
func (c *Catalog) Accessors() Accessors { return c.accessors }

// Library returns the library class table. It must not be modified.
func (c *Catalog) Library() *typesys.Universe { return c.library }

// Patterns yields all patterns of a class.
func (c *Catalog) Patterns(class Class) iter.Seq[Pattern] {
	return func(yield func(Pattern) bool) {
		for _, p := range c.patterns {
			if p.Class == class && !yield(p) {
				return
			}
		}
	}
}

// Contains reports whether any pattern of the class lists method.
func (c *Catalog) Contains(class Class, method string) bool {
	return len(c.index[key{class, method}]) > 0
}

// Named yields the patterns of a class listing method.
func (c *Catalog) Named(class Class, method string) iter.Seq[Pattern] {
	return func(yield func(Pattern) bool) {
		for _, i := range c.index[key{class, method}] {
			if !yield(c.patterns[i]) {
				return
			}
		}
	}
}

// Match yields the patterns of a class listing method whose owner is a supertype of t.
func (c *Catalog) Match(u *typesys.Universe, t *typesys.Type, class Class, method string) iter.Seq[Pattern] {
	return func(yield func(Pattern) bool) {
		for p := range c.Named(class, method) {
			if p.Matches(u, t) && !yield(p) {
				return
			}
		}
	}
}

// Exact returns the pattern of a class listing method whose owner is exactly owner.
func (c *Catalog) Exact(owner string, class Class, method string) (Pattern, bool) {
	for p := range c.Named(class, method) {
		if p.Owner == owner {
			return p, true
		}
	}

	return Pattern{}, false
}

// Extend returns a copy of c with additional patterns. Owners may name capabilities.
func (c *Catalog) Extend(patterns ...Pattern) (*Catalog, error) {
	if len(patterns) == 0 {
		return c, nil
	}

	e := *c
	e.patterns = slices.Clip(c.patterns)

	for _, p := range patterns {
		owner, err := c.resolve(p.Owner)
		if err != nil {
			return nil, err
		}
		p.Owner = owner

		p.Exclude = slices.Clone(p.Exclude)
		for i, x := range p.Exclude {
			if p.Exclude[i], err = c.resolve(x); err != nil {
				return nil, err
			}
		}

		e.patterns = append(e.patterns, p)
	}

	e.reindex()

	return &e, nil
}

func (c *Catalog) resolve(owner string) (string, error) {
	name, ok := strings.CutPrefix(owner, "$")
	if !ok {
		return owner, nil
	}

	resolved, ok := c.capabilities[Capability(name)]
	if !ok {
		return "", fmt.Errorf("%w: unknown capability %q", ErrCatalog, owner)
	}

	return resolved, nil
}

func (c *Catalog) reindex() {
	c.index = make(map[key][]int)
	for i, p := range c.patterns {
		for _, m := range p.Methods {
			k := key{p.Class, m}
			c.index[k] = append(c.index[k], i)
		}
	}
}

// String summarizes the catalog for logging.
func (c *Catalog) String() string {
	return fmt.Sprintf("catalog(%d patterns, capabilities %v)", len(c.patterns), slices.Sorted(maps.Keys(c.capabilities)))
}
