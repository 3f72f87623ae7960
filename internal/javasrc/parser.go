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
	"context"
	"errors"
	"fmt"
	"runtime/trace"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"fillmore-labs.com/kalacheck/internal/syntax"
	"fillmore-labs.com/kalacheck/internal/typesys"
)

// ErrSyntax is returned when a file can't be parsed at all.
var ErrSyntax = errors.New("syntax error")

// File is a parsed Java compilation unit.
type File struct {
	Tree     *syntax.Tree
	Universe *typesys.Universe
	Package  string
	// HasErrors is set when the parser had to recover from syntax errors.
	HasErrors bool

	names names
}

// Parser parses Java files. A Parser is not safe for concurrent use.
type Parser struct {
	parser  *sitter.Parser
	library *typesys.Universe
}

// NewParser creates a parser resolving against the given library classes.
func NewParser(library *typesys.Universe) *Parser {
	p := sitter.NewParser()
	p.SetLanguage(java.GetLanguage())

	return &Parser{parser: p, library: library}
}

// Close releases parser resources.
func (p *Parser) Close() {
	p.parser.Close()
}

// Parse parses a single Java file.
func (p *Parser) Parse(ctx context.Context, filename string, src []byte) (*File, error) {
	defer trace.StartRegion(ctx, "Parse").End()

	tree, err := p.parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%w in %s: %w", ErrSyntax, filename, err)
	}

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("%w in %s: no syntax tree", ErrSyntax, filename)
	}

	f := &File{
		Universe:  typesys.NewUniverse(p.library),
		HasErrors: root.HasError(),
		names:     newNames(),
	}

	b := newBuilder(f, filename, src)
	b.collect(root)
	b.declareAll()
	f.Tree = b.build(root)

	return f, nil
}
