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

package analyzer

import (
	"context"

	"fillmore-labs.com/kalacheck/internal/report"
	"fillmore-labs.com/kalacheck/internal/run"
)

// Public API constants for the kalacheck analyzer.
const (
	Name = "kalacheck"
	Doc  = `kalacheck reports misuse of the kala collections library and the db-lity annotations in Java sources`
	URL  = "https://pkg.go.dev/fillmore-labs.com/kalacheck"
)

// Result is the outcome of checking one file.
type Result = run.Result

// FixResult is the outcome of fixing one file.
type FixResult = run.FixResult

// Analyzer is a configured kalacheck instance. It is safe for concurrent use; files are
// checked in a [Session].
type Analyzer struct {
	options *run.Options
}

// New creates a new instance of the kalacheck analyzer.
// It allows for programmatic configuration using [Option].
func New(opts ...Option) *Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	return &Analyzer{options: r}
}

// Bundle returns the message bundle diagnostics are rendered with.
func (a *Analyzer) Bundle() report.Bundle {
	return a.options.Bundle
}

// NewSession creates a [Session] with its own parser.
func (a *Analyzer) NewSession() *Session {
	return &Session{checker: a.options.NewChecker()}
}

// Session checks files one at a time. A Session is not safe for concurrent use.
type Session struct {
	checker *run.Checker
}

// Close releases the resources of the session.
func (s *Session) Close() {
	s.checker.Close()
}

// Check parses and inspects a Java source file.
func (s *Session) Check(ctx context.Context, filename string, src []byte) (Result, error) {
	return s.checker.Check(ctx, filename, src)
}

// Fix applies the quick-fixes of a Java source file and returns the fixed source.
func (s *Session) Fix(ctx context.Context, filename string, src []byte) (FixResult, error) {
	return s.checker.Fix(ctx, filename, src)
}
