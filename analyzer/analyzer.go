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
	"fmt"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"fillmore-labs.com/reshape/internal/config"
	"fillmore-labs.com/reshape/internal/run"
)

// Public API constants for the reshape analyzer.
const (
	name = "reshape"
	doc  = `reshape suggests structural simplifications of Go code

It reduces if nesting with early exits, converts if-else chains to switch
statements, removes methods that only forward to an embedded field, chains
consecutive method calls and simplifies boolean expressions, nil checks,
returned variables, function literals and type parameter constraints.`
	url = "https://pkg.go.dev/fillmore-labs.com/reshape"
)

// New creates a new instance of the reshape analyzer.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the analyzer into other tools. For command-line use, the
// pre-configured [Analyzer] variable is typically sufficient.
func New(opts ...Option) *analysis.Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	a := &analysis.Analyzer{
		Name:     name,
		Doc:      ruleDoc(),
		URL:      url,
		Run:      r.Run,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}

	registerFlags(r, &a.Flags)

	return a
}

// Analyzer is a pre-configured *[analysis.Analyzer] suggesting structural simplifications.
var Analyzer = New()

// ruleDoc appends the rule table to the analyzer documentation.
func ruleDoc() string {
	var b strings.Builder
	b.WriteString(doc)
	b.WriteString("\n\nRules:\n")

	for rule := range config.AllRules.All() {
		info := rule.Info()
		fmt.Fprintf(&b, "\n  %s  %-10s  %s", info.ID, info.Name, info.Doc)
	}

	return b.String()
}
