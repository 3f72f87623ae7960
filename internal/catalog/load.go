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

package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/kalacheck/internal/typesys"
)

type document struct {
	Capabilities map[Capability]string `yaml:"capabilities"`
	Vocabulary   map[Word]string       `yaml:"vocabulary"`
	Comparisons  map[string]string     `yaml:"comparisons"`
	Accessors    struct {
		Fields []string `yaml:"fields"`
		First  []string `yaml:"first"`
		Second []string `yaml:"second"`
	} `yaml:"accessors"`
	Types    []typeEntry    `yaml:"types"`
	Methods  []methodEntry  `yaml:"methods"`
	Patterns []patternEntry `yaml:"patterns"`
}

type typeEntry struct {
	Name      string   `yaml:"name"`
	Supers    []string `yaml:"supers"`
	Interface bool     `yaml:"interface"`
}

type methodEntry struct {
	Owners  []string `yaml:"owners"`
	Names   []string `yaml:"names"`
	Returns string   `yaml:"returns"`
	Static  bool     `yaml:"static"`
}

type patternEntry struct {
	Class       string   `yaml:"class"`
	Owner       string   `yaml:"owner"`
	Methods     []string `yaml:"methods"`
	Replacement string   `yaml:"replacement"`
	Exclude     []string `yaml:"exclude"`
}

// Load decodes a catalog document.
func Load(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalog, err)
	}

	if len(doc.Accessors.Fields) != 2 {
		return nil, fmt.Errorf("%w: need exactly two entry fields, got %d", ErrCatalog, len(doc.Accessors.Fields))
	}

	c := &Catalog{
		capabilities: doc.Capabilities,
		vocabulary:   doc.Vocabulary,
		comparisons:  doc.Comparisons,
		accessors: Accessors{
			Fields: [2]string(doc.Accessors.Fields),
			First:  doc.Accessors.First,
			Second: doc.Accessors.Second,
		},
		library: typesys.NewUniverse(nil),
	}

	for _, w := range [...]Word{WordView, WordMaterialize, WordSize, WordIsEmpty, WordIsNotEmpty, WordFrom, WordOf} {
		if c.vocabulary[w] == "" {
			return nil, fmt.Errorf("%w: missing vocabulary entry %q", ErrCatalog, w)
		}
	}

	if err := c.loadTypes(doc.Types); err != nil {
		return nil, err
	}

	if err := c.loadMethods(doc.Methods); err != nil {
		return nil, err
	}

	patterns := make([]Pattern, 0, len(doc.Patterns))
	for _, e := range doc.Patterns {
		class, err := ParseClass(e.Class)
		if err != nil {
			return nil, err
		}

		patterns = append(patterns, Pattern{
			Class:       class,
			Owner:       e.Owner,
			Methods:     e.Methods,
			Replacement: e.Replacement,
			Exclude:     e.Exclude,
		})
	}

	return c.Extend(patterns...)
}

func (c *Catalog) loadTypes(types []typeEntry) error {
	for _, t := range types {
		supers := make([]string, 0, len(t.Supers))
		for _, s := range t.Supers {
			resolved, err := c.resolve(s)
			if err != nil {
				return err
			}
			supers = append(supers, resolved)
		}

		c.library.Define(&typesys.Class{Name: t.Name, Supers: supers, Interface: t.Interface})
	}

	return nil
}

// anyArity is the parameter list of library methods, whose signatures are not modeled.
var anyArity = []typesys.Param{{Name: "args", Type: typesys.Object, VarArgs: true}}

func (c *Catalog) loadMethods(methods []methodEntry) error {
	for _, e := range methods {
		var result *typesys.Type
		self := e.Returns == "self"

		switch {
		case self, e.Returns == "":

		default:
			if p, ok := typesys.Primitive(e.Returns); ok {
				result = p
			} else {
				result = typesys.New(e.Returns)
			}
		}

		for _, o := range e.Owners {
			owner, err := c.resolve(o)
			if err != nil {
				return err
			}

			class, ok := c.library.Class(owner)
			if !ok {
				return fmt.Errorf("%w: methods for undeclared type %q", ErrCatalog, owner)
			}

			for _, name := range e.Names {
				class.Methods = append(class.Methods, &typesys.Method{
					Name:   name,
					Params: anyArity,
					Result: result,
					Self:   self,
					Static: e.Static,
				})
			}
		}
	}

	return nil
}
