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

package analyzer_test

import (
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	. "fillmore-labs.com/reshape/analyzer"
	"fillmore-labs.com/reshape/analyzer/level"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	testdata := analysistest.TestData()

	tests := []struct {
		name    string
		dir     string
		options Option
		fix     bool
	}{
		{
			name:    "Nesting",
			dir:     "./nesting",
			options: WithOnly("nesting"),
			fix:     true,
		},
		{
			name:    "Nested",
			dir:     "./nested",
			options: Options{WithOnly("RS1001"), WithNesting(level.NestingNested)},
		},
		{
			name:    "Switch",
			dir:     "./ifswitch",
			options: WithOnly("switch"),
			fix:     true,
		},
		{
			name:    "Wrapper",
			dir:     "./wrapper",
			options: WithOnly("wrapper"),
			fix:     true,
		},
		{
			name:    "Chain",
			dir:     "./chain",
			options: WithOnly("chain"),
			fix:     true,
		},
		{
			name:    "BoolCompare",
			dir:     "./boolcmp",
			options: WithOnly("boolcmp"),
			fix:     true,
		},
		{
			name:    "NilCheck",
			dir:     "./nilcheck",
			options: WithOnly("nilcheck"),
			fix:     true,
		},
		{
			name:    "InlineReturn",
			dir:     "./inline",
			options: WithOnly("inline"),
			fix:     true,
		},
		{
			name:    "FuncValue",
			dir:     "./funcvalue",
			options: WithOnly("funcvalue"),
			fix:     true,
		},
		{
			name:    "Constraint",
			dir:     "./constraint",
			options: WithOnly("constraint"),
			fix:     true,
		},
		{
			name:    "IfReturn",
			dir:     "./ifreturn",
			options: WithOnly("ifreturn"),
			fix:     true,
		},
		{
			name:    "NoFix",
			dir:     "./nofix",
			options: WithFixes(false),
		},
		{
			name:    "Config",
			dir:     "./config",
			options: WithConfigFile(filepath.Join(testdata, "config", "reshape.toml")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if a := New(tt.options); tt.fix {
				analysistest.RunWithSuggestedFixes(t, testdata, a, tt.dir)
			} else {
				analysistest.Run(t, testdata, a, tt.dir)
			}
		})
	}
}

func TestDoc(t *testing.T) {
	t.Parallel()

	for _, id := range [...]string{"RS1001", "RS1005", "RS1010"} {
		if !strings.Contains(Analyzer.Doc, id) {
			t.Errorf("Analyzer documentation does not list %s", id)
		}
	}
}

func TestUnknownRule(t *testing.T) {
	t.Parallel()

	a := New(WithRule("RS9999", true))
	if _, err := a.Run(nil); err == nil {
		t.Error("Expected error for unknown rule")
	}
}
