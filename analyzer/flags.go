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
	"flag"

	"fillmore-labs.com/kalacheck/internal/config"
)

// Flag is a named command line value configuring the analyzer.
type Flag struct {
	Name  string
	Usage string
	Value flag.Getter
}

// Flags returns the command line values bound to the configuration of the analyzer.
// Flags must be parsed before the first [Session] is created.
func (a *Analyzer) Flags() []Flag {
	r := a.options
	flags := []Flag{
		{"generated", "check generated files", NewBehaviorValue(&r.Behavior, config.IncludeGenerated)},
		{"narrowing", "report values implicitly narrowed to a less specific annotation", NewBehaviorValue(&r.Behavior, config.ReportNarrowing)},
	}

	for i := range config.All() {
		name := i.Name()
		flags = append(flags, Flag{name, "enable " + name + " inspection", NewInspectionValue(&r.Inspections, i)})
	}

	return flags
}

// RegisterFlags binds the analyzer configuration to command line flag values.
// A nil flag set value defaults to the program's command line.
func (a *Analyzer) RegisterFlags(flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	for _, f := range a.Flags() {
		flags.Var(f.Value, f.Name, f.Usage)
	}

	flags.IntVar(&a.options.FixRounds, "fix-rounds", a.options.FixRounds, "maximum number of parse and fix rounds")
}
