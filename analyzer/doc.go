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

// Package analyzer implements the kalacheck inspections for Java sources.
//
// # Overview
//
// kalacheck reports misuse of the kala collections library, such as redundant
// conversions, chains of eager transformations and size comparisons, and checks
// the db-lity annotation lattice of the Aya prover.
//
// # Example
//
// Before:
//
//	ImmutableSeq<Term> args = terms.map(f).filter(p).toImmutableSeq();
//	if (args.size() > 0) { ... }
//
// After applying kalacheck's suggested fixes:
//
//	ImmutableSeq<Term> args = terms.view().map(f).filter(p).toImmutableSeq();
//	if (args.isNotEmpty()) { ... }
//
// # Configuration
//
// Analyzers are configured with [Option] values, command line flags bound with
// [Analyzer.RegisterFlags], or settings files loaded with [LoadSettings].
package analyzer
