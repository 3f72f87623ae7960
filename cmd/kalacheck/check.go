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

package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sourcegraph/conc/pool"
	"github.com/urfave/cli/v2"

	"fillmore-labs.com/kalacheck/analyzer"
	"fillmore-labs.com/kalacheck/internal/config"
	"fillmore-labs.com/kalacheck/internal/report"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
)

type fileResult struct {
	path        string
	src         []byte
	diagnostics []report.Diagnostic
	applied     int
	stale       int
	err         error
}

func check(c *cli.Context, inspections config.BitMask[config.Inspections]) error {
	level := slog.LevelInfo
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level}))

	switch format := c.String("format"); format {
	case formatText, formatJSON:
	default:
		return cli.Exit(fmt.Sprintf("unknown output format %q", format), exitError)
	}

	opts, err := options(c, inspections, logger)
	if err != nil {
		return cli.Exit(err.Error(), exitError)
	}

	logger.Debug("configuration", opts.LogAttr())

	files, err := collect(c.Args().Slice())
	if err != nil {
		return cli.Exit(err.Error(), exitError)
	}

	a := analyzer.New(opts...)
	results := process(c.Context, a, files, c.Int("jobs"), c.Bool("fix"))

	return output(c, a.Bundle(), results, logger)
}

// options combines the settings file with command line overrides.
func options(c *cli.Context, inspections config.BitMask[config.Inspections], logger *slog.Logger) (analyzer.Options, error) {
	path := c.String("config")
	if path == "" {
		path, _ = analyzer.FindSettings(".")
	}

	var opts analyzer.Options

	if path != "" {
		s, err := analyzer.LoadSettings(path)
		if err != nil {
			return nil, err
		}

		if opts, err = s.Options(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		logger.Debug("loaded settings", slog.String("path", path))
	}

	if c.IsSet("generated") {
		opts = append(opts, analyzer.WithGenerated(c.Bool("generated")))
	}

	if c.IsSet("narrowing") {
		opts = append(opts, analyzer.WithNarrowing(c.Bool("narrowing")))
	}

	for i := range config.All() {
		if c.IsSet(i.Name()) {
			opts = append(opts, analyzer.WithInspection(i, inspections.Enabled(i)))
		}
	}

	return opts, nil
}

// collect returns the Java files named by paths, walking directories. Hidden directories are skipped.
func collect(paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var files []string

	for _, root := range paths {
		fi, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		if !fi.IsDir() {
			files = append(files, root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			switch {
			case err != nil:
				return err

			case d.IsDir():
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}

			case filepath.Ext(path) == ".java":
				files = append(files, path)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("can't walk %s: %w", root, err)
		}
	}

	return files, nil
}

// process checks files concurrently, each worker with its own session. Results are in input order.
func process(ctx context.Context, a *analyzer.Analyzer, files []string, jobs int, fix bool) []fileResult {
	if len(files) == 0 {
		return nil
	}

	jobs = min(max(jobs, 1), len(files))

	sessions := make(chan *analyzer.Session, jobs)
	for range jobs {
		sessions <- a.NewSession()
	}

	results := make([]fileResult, len(files))

	p := pool.New().WithMaxGoroutines(jobs)
	for n, path := range files {
		p.Go(func() {
			s := <-sessions
			defer func() { sessions <- s }()

			results[n] = checkFile(ctx, s, path, fix)
		})
	}
	p.Wait()

	close(sessions)
	for s := range sessions {
		s.Close()
	}

	return results
}

func checkFile(ctx context.Context, s *analyzer.Session, path string, fix bool) fileResult {
	r := fileResult{path: path}

	src, err := os.ReadFile(path)
	if err != nil {
		r.err = err
		return r
	}

	if !fix {
		res, err := s.Check(ctx, path, src)
		r.src, r.diagnostics, r.err = src, res.Diagnostics, err

		return r
	}

	res, err := s.Fix(ctx, path, src)
	if err != nil {
		r.err = err
		return r
	}

	r.src, r.diagnostics, r.applied, r.stale = res.Source, res.Diagnostics, res.Applied, res.Stale

	if res.Applied > 0 {
		r.err = writeFile(path, res.Source)
	}

	return r
}

func writeFile(path string, data []byte) error {
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, fi.Mode().Perm()); err != nil {
		return fmt.Errorf("can't write fixed source: %w", err)
	}

	return nil
}

func output(c *cli.Context, bundle report.Bundle, results []fileResult, logger *slog.Logger) error {
	stdout := c.App.Writer
	format := c.String("format")

	var (
		summary report.Summary
		tree    = make(report.JSONTree)
		text    = report.TextWriter{W: stdout, Bundle: bundle, Color: c.Bool("color")}
	)

	failed, findings := false, false

	for _, r := range results {
		if r.err != nil {
			logger.Error("can't check file", slog.String("file", r.path), slog.Any("error", r.err))
			failed = true

			continue
		}

		if r.applied > 0 {
			logger.Info("applied fixes", slog.String("file", r.path), slog.Int("count", r.applied))
		}

		if r.stale > 0 {
			logger.Debug("skipped stale fixes", slog.String("file", r.path), slog.Int("count", r.stale))
		}

		lines := report.NewLines(r.path, r.src)
		if format == formatJSON {
			tree.Add(analyzer.Name, lines, r.diagnostics, bundle)
		} else if err := text.Write(lines, r.diagnostics); err != nil {
			return cli.Exit(err.Error(), exitError)
		}

		summary.Add(r.diagnostics)

		findings = findings || slices.ContainsFunc(r.diagnostics, isFinding)
	}

	if format == formatJSON {
		if err := tree.Print(stdout); err != nil {
			return cli.Exit(err.Error(), exitError)
		}
	}

	if c.Bool("summary") {
		w := stdout
		if format == formatJSON {
			w = c.App.ErrWriter
		}

		if err := summary.Render(w); err != nil {
			return cli.Exit(err.Error(), exitError)
		}
	}

	switch {
	case failed:
		return cli.Exit("", exitError)

	case findings:
		return cli.Exit("", exitFindings)

	default:
		return nil
	}
}

// isFinding reports whether a diagnostic affects the exit status. Informational diagnostics do not.
func isFinding(d report.Diagnostic) bool {
	return d.Severity > report.Info
}
