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

// Kalacheck reports misuse of the kala collections library in Java sources.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"fillmore-labs.com/kalacheck/analyzer"
	"fillmore-labs.com/kalacheck/internal/config"
)

var version = "dev"

// Exit statuses.
const (
	exitOK       = 0
	exitFindings = 1
	exitError    = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	err := newApp(stdout, stderr).RunContext(ctx, args)

	var exit cli.ExitCoder
	switch {
	case err == nil:
		return exitOK

	case errors.As(err, &exit):
		if msg := exit.Error(); msg != "" {
			_, _ = fmt.Fprintln(stderr, msg)
		}

		return exit.ExitCode()

	default:
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)

		return exitError
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	inspections := config.NewBitMask(config.AllInspections)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to settings file (YAML, TOML, or JSON)",
			EnvVars: []string{"KALACHECK_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   formatText,
			Usage:   "Output format: text, json",
		},
		&cli.BoolFlag{
			Name:  "fix",
			Usage: "Apply suggested fixes in place",
		},
		&cli.BoolFlag{
			Name:  "summary",
			Usage: "Print a summary table",
		},
		&cli.IntFlag{
			Name:    "jobs",
			Aliases: []string{"j"},
			Value:   runtime.NumCPU(),
			Usage:   "Number of files processed concurrently",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable debug logging",
		},
		&cli.BoolFlag{
			Name:  "color",
			Value: !color.NoColor,
			Usage: "Colorize text output",
		},
		&cli.BoolFlag{
			Name:  "generated",
			Usage: "Check generated files",
		},
		&cli.BoolFlag{
			Name:  "narrowing",
			Value: true,
			Usage: "Report values implicitly narrowed to a less specific annotation",
		},
	}

	for i := range config.All() {
		flags = append(flags, &cli.GenericFlag{
			Name:     i.Name(),
			Category: "Inspections",
			Usage:    "Enable " + i.Name() + " inspection",
			Value:    analyzer.NewInspectionValue(&inspections, i),
		})
	}

	return &cli.App{
		Name:            analyzer.Name,
		Usage:           "Inspect Java sources using the kala collections library",
		ArgsUsage:       "<path>...",
		Version:         version,
		Description:     analyzer.Doc,
		Writer:          stdout,
		ErrWriter:       stderr,
		Flags:           flags,
		HideHelpCommand: true,
		ExitErrHandler:  func(*cli.Context, error) {},
		Action: func(c *cli.Context) error {
			return check(c, inspections)
		},
	}
}
