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

// Package inspect implements the kala collection inspections.
//
// Each inspection is a rule over one node kind. A [Pass] walks the syntax tree of a file
// once and dispatches every node to the rules registered for its kind. Rules match local
// expression shapes against the [catalog.Catalog] and report diagnostics with quick-fixes;
// a failed precondition means "not applicable" and is silent.
package inspect
