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
	"fillmore-labs.com/kalacheck/internal/syntax"
	"fillmore-labs.com/kalacheck/internal/typesys"
)

type binding struct {
	decl syntax.NodeID
	typ  *typesys.Type
}

type frame struct {
	vars  map[string]binding
	block bool
}

// scopes is the stack of local variable frames. Pattern variables are bound in the innermost
// block frame, so they stay visible after the statement introducing them.
type scopes struct {
	frames []*frame
}

func (s *scopes) push(block bool) {
	s.frames = append(s.frames, &frame{vars: make(map[string]binding), block: block})
}

func (s *scopes) pop() {
	s.frames = s.frames[:len(s.frames)-1]
}

func (s *scopes) define(name string, b binding) {
	if len(s.frames) == 0 || name == "" || name == "_" {
		return
	}

	s.frames[len(s.frames)-1].vars[name] = b
}

func (s *scopes) bind(name string, b binding) {
	if name == "" || name == "_" {
		return
	}

	for i := len(s.frames) - 1; i >= 0; i-- {
		if f := s.frames[i]; f.block {
			f.vars[name] = b

			return
		}
	}

	s.define(name, b)
}

func (s *scopes) lookup(name string) (binding, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if b, ok := s.frames[i].vars[name]; ok {
			return b, true
		}
	}

	return binding{}, false
}
