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

// Package javasrc builds [syntax.Tree] values from Java source text.
//
// Parsing is done by tree-sitter. The concrete syntax tree is lowered into the arena
// representation in three steps: collecting the classes declared in the file, declaring
// their members in a file [typesys.Universe] layered over the library, and building the
// arena with expression types and resolved declarations.
//
// Resolution is local to one file. Types not declared in the file and unknown to the
// library keep the name they are written with and have no supertypes.
package javasrc
