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

// Package dblity checks the db-lity annotations of the Aya prover.
//
// Types and declarations carry one of three lattice values, Inherit < Bound < Closed.
// Unannotated values inherit their kind from context: a call returning an Inherit value
// has the kind of its receiver. The analysis visits each method body once, top to bottom,
// recording the kind of every local declaration in a [Known] environment. It is not a
// fixpoint data-flow analysis: loop bodies and other compound statements are not entered.
package dblity
