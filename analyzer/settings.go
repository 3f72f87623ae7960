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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"fillmore-labs.com/kalacheck/internal/catalog"
	"fillmore-labs.com/kalacheck/internal/config"
)

// ErrSettings is returned for settings that can not be turned into options.
var ErrSettings = errors.New("invalid settings")

// SettingsNames are the file names [FindSettings] searches for, in order.
var SettingsNames = []string{
	".kalacheck.yaml",
	".kalacheck.yml",
	".kalacheck.toml",
	".kalacheck.json",
}

// Settings represents the file configuration of the analyzer.
type Settings struct {
	// Inspections enables or disables inspections by identifier.
	Inspections map[string]bool `json:"inspections,omitzero" koanf:"inspections"`
	// Generated enables diagnostics in generated files.
	Generated *bool `json:"generated,omitzero" koanf:"generated"`
	// Narrowing enables informational diagnostics for implicit narrowing.
	Narrowing *bool `json:"narrowing,omitzero" koanf:"narrowing"`
	// FixRounds limits the parse and fix rounds.
	FixRounds *int `json:"fix-rounds,omitzero" koanf:"fix-rounds"`
	// Annotations renames the db-lity annotations.
	Annotations AnnotationSettings `json:"annotations,omitzero" koanf:"annotations"`
	// Patterns extends the inspection patterns of the library model.
	Patterns []PatternSettings `json:"patterns,omitzero" koanf:"patterns"`
}

// AnnotationSettings are the simple names of the db-lity annotations. Empty names keep the default.
type AnnotationSettings struct {
	Closed    string `json:"closed,omitzero"     koanf:"closed"`
	Bound     string `json:"bound,omitzero"      koanf:"bound"`
	NoInherit string `json:"no-inherit,omitzero" koanf:"no-inherit"`
}

// PatternSettings is an additional inspection pattern. Owners starting with '$' name capabilities.
type PatternSettings struct {
	Class       string   `json:"class"                 koanf:"class"`
	Owner       string   `json:"owner"                 koanf:"owner"`
	Methods     []string `json:"methods"               koanf:"methods"`
	Replacement string   `json:"replacement,omitzero" koanf:"replacement"`
	Exclude     []string `json:"exclude,omitzero"     koanf:"exclude"`
}

// Options converts [Settings] into a list of [Option] for the analyzer.
// It processes settings and applies them only when explicitly set.
func (s Settings) Options() (Options, error) {
	var opts Options

	ids := make([]string, 0, len(s.Inspections))
	for id := range s.Inspections {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		i, ok := config.ParseInspection(id)
		if !ok {
			return nil, fmt.Errorf("%w: unknown inspection %q", ErrSettings, id)
		}

		opts = append(opts, WithInspection(i, s.Inspections[id]))
	}

	opts = appendOption(opts, s.Generated, WithGenerated)
	opts = appendOption(opts, s.Narrowing, WithNarrowing)
	opts = appendOption(opts, s.FixRounds, WithFixRounds)

	if a := s.Annotations; a != (AnnotationSettings{}) {
		names := config.DefaultAnnotations()
		setName(&names.Closed, a.Closed)
		setName(&names.Bound, a.Bound)
		setName(&names.NoInherit, a.NoInherit)
		opts = append(opts, WithAnnotationNames(names))
	}

	if len(s.Patterns) > 0 {
		c, err := s.catalog()
		if err != nil {
			return nil, err
		}

		opts = append(opts, WithCatalog(c))
	}

	return opts, nil
}

func (s Settings) catalog() (*catalog.Catalog, error) {
	patterns := make([]catalog.Pattern, 0, len(s.Patterns))
	for n, p := range s.Patterns {
		class, err := catalog.ParseClass(p.Class)
		if err != nil {
			return nil, fmt.Errorf("%w: pattern %d: %w", ErrSettings, n+1, err)
		}

		if p.Owner == "" || len(p.Methods) == 0 {
			return nil, fmt.Errorf("%w: pattern %d needs an owner and methods", ErrSettings, n+1)
		}

		if class == catalog.Factory && p.Replacement == "" {
			return nil, fmt.Errorf("%w: factory pattern %d needs a replacement", ErrSettings, n+1)
		}

		patterns = append(patterns, catalog.Pattern{
			Class:       class,
			Owner:       p.Owner,
			Methods:     p.Methods,
			Replacement: p.Replacement,
			Exclude:     p.Exclude,
		})
	}

	c, err := catalog.Default().Extend(patterns...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSettings, err)
	}

	return c, nil
}

func setName(name *string, value string) {
	if value != "" {
		*name = value
	}
}

// appendOption appends a non-nil setting to an [Option] list.
func appendOption[T any](opts Options, value *T, constructor func(T) Option) Options {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

// LoadSettings loads settings from a file. The format is chosen by extension and defaults to TOML.
func LoadSettings(path string) (Settings, error) {
	k := koanf.New(".")

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return Settings{}, fmt.Errorf("loading %s: %w", path, err)
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return Settings{}, fmt.Errorf("decoding %s: %w", path, err)
	}

	return s, nil
}

// FindSettings searches dir for a settings file named in [SettingsNames].
func FindSettings(dir string) (string, bool) {
	for _, name := range SettingsNames {
		path := filepath.Join(dir, name)
		if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
			return path, true
		}
	}

	return "", false
}
