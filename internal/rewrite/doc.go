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

// Package rewrite applies quick-fixes to source documents.
//
// Edits are staged in a transaction and committed at once, so intermediate states are
// never observable. A fix carries an anchor fingerprinting its target; applying a fix whose
// target text has changed since the diagnostic was produced fails with [ErrStale] and leaves
// the document untouched.
package rewrite
