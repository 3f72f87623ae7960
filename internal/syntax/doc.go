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

// Package syntax provides an immutable, index-based syntax tree for Java sources.
//
// Nodes live in an arena owned by a [Tree] and are addressed by [NodeID]. Parent and child
// relationships are resolved through the arena, so walking a tree never follows mutable
// references. A [Cursor] pairs a tree with a node and offers total accessors: every method
// on an invalid cursor returns a zero value instead of failing, which lets matching code
// chain queries like
//
//	call.Child(syntax.RoleReceiver).Type()
//
// without intermediate checks.
//
// Trees are constructed with a [Builder] and never change afterwards. Source edits produce a
// new text and a new tree.
package syntax
