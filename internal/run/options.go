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

package run

import (
	"fillmore-labs.com/kalacheck/internal/catalog"
	"fillmore-labs.com/kalacheck/internal/config"
	"fillmore-labs.com/kalacheck/internal/report"
)

// Options represent the configuration of the kalacheck pipeline.
type Options struct {
	// Inspections represent the inspections to be enabled.
	Inspections config.BitMask[config.Inspections]

	// Behavior holds behavioral options.
	Behavior config.BitMask[config.Behavior]

	// Annotations names the db-lity annotations.
	Annotations config.Annotations

	// Catalog is the library model and the inspection patterns.
	Catalog *catalog.Catalog

	// Bundle renders messages and fix titles.
	Bundle report.Bundle

	// FixRounds limits the number of parse and fix rounds of [Checker.Fix].
	FixRounds int
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Inspections: config.NewBitMask(config.AllInspections),
		Behavior:    config.NewBitMask(config.ReportNarrowing),
		Annotations: config.DefaultAnnotations(),
		Catalog:     catalog.Default(),
		Bundle:      report.English,
		FixRounds:   5,
	}
}
