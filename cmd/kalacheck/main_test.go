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
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/kalacheck/internal/report"
)

const source = `package test;

import kala.collection.immutable.ImmutableSeq;

class A {
  Object f(ImmutableSeq<String> seq) {
    return seq.toImmutableSeq();
  }
}
`

// workspace creates a directory with a Java file and a copy in a hidden directory.
func workspace(t *testing.T) (dir, file string) {
	t.Helper()

	dir = t.TempDir()
	file = filepath.Join(dir, "A.java")
	require.NoError(t, os.WriteFile(file, []byte(source), 0o600))

	hidden := filepath.Join(dir, ".hidden")
	require.NoError(t, os.Mkdir(hidden, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(hidden, "B.java"), []byte(source), 0o600))

	return dir, file
}

func runArgs(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	var out, errOut strings.Builder
	code = run(t.Context(), append([]string{"kalacheck", "--color=false"}, args...), &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestRun(t *testing.T) {
	t.Parallel()

	dir, file := workspace(t)

	code, stdout, _ := runArgs(t, dir)
	assert.Equal(t, exitFindings, code)
	assert.Equal(t, file+":7:16: unused: Redundant call to 'toImmutableSeq' (muda)\n", stdout)
}

func TestRunDisabled(t *testing.T) {
	t.Parallel()

	_, file := workspace(t)

	code, stdout, _ := runArgs(t, "--muda=false", file)
	assert.Equal(t, exitOK, code)
	assert.Empty(t, stdout)
}

func TestRunSettings(t *testing.T) {
	t.Parallel()

	dir, file := workspace(t)

	settings := filepath.Join(dir, "kalacheck.yaml")
	require.NoError(t, os.WriteFile(settings, []byte("inspections:\n  muda: false\n"), 0o600))

	code, stdout, _ := runArgs(t, "--config", settings, file)
	assert.Equal(t, exitOK, code)
	assert.Empty(t, stdout)

	code, _, _ = runArgs(t, "--config", settings, "--muda", file)
	assert.Equal(t, exitFindings, code)
}

func TestRunJSON(t *testing.T) {
	t.Parallel()

	_, file := workspace(t)

	code, stdout, _ := runArgs(t, "--format", "json", file)
	assert.Equal(t, exitFindings, code)

	var tree report.JSONTree
	require.NoError(t, json.Unmarshal([]byte(stdout), &tree))

	diagnostics := tree[file]["kalacheck"]
	require.Len(t, diagnostics, 1)
	assert.Equal(t, file+":7:16", diagnostics[0].Posn)
	assert.Equal(t, "muda", diagnostics[0].Category)
	assert.Len(t, diagnostics[0].SuggestedFixes, 1)
}

func TestRunFix(t *testing.T) {
	t.Parallel()

	dir, file := workspace(t)

	code, stdout, _ := runArgs(t, "--fix", dir)
	assert.Equal(t, exitOK, code)
	assert.Empty(t, stdout)

	fixed, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, strings.Replace(source, "seq.toImmutableSeq()", "seq", 1), string(fixed))

	hidden, err := os.ReadFile(filepath.Join(dir, ".hidden", "B.java"))
	require.NoError(t, err)
	assert.Equal(t, source, string(hidden))
}

func TestRunSummary(t *testing.T) {
	t.Parallel()

	_, file := workspace(t)

	code, stdout, _ := runArgs(t, "--summary", file)
	assert.Equal(t, exitFindings, code)
	assert.Equal(t, 2, strings.Count(stdout, "muda"))
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	dir, _ := workspace(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "format",
			args: []string{"--format", "xml", dir},
			want: `unknown output format "xml"`,
		},
		{
			name: "path",
			args: []string{filepath.Join(dir, "missing")},
			want: "missing",
		},
		{
			name: "settings",
			args: []string{"--config", filepath.Join(dir, "missing.toml"), dir},
			want: "missing.toml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, _, stderr := runArgs(t, tt.args...)
			assert.Equal(t, exitError, code)
			assert.Contains(t, stderr, tt.want)
		})
	}
}
